// Package palette implements the shared palette state store: the single
// source of truth for the current colour slots, their lock flags and the
// subject they were extracted from.
//
// Consumers subscribe for change notifications and derive their own
// presentation from snapshots; all writes go through the operations defined
// here so independent surfaces can never drift apart.
package palette

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/palettedex/palettedex/internal/colour"
)

// Subject identifies the entity the current palette was extracted from.
type Subject struct {
	Name  string
	ID    int
	Shiny bool
	Form  string
}

// Slug returns a stable identity key for the subject. Saved palettes are
// keyed by it, so re-saving the same subject updates rather than duplicates.
func (s Subject) Slug() string {
	slug := s.Name
	if s.Form != "" {
		slug += "-" + s.Form
	}
	if s.Shiny {
		slug += "-shiny"
	}
	return slug
}

// String returns a display label for the subject.
func (s Subject) String() string {
	if s.Shiny {
		return s.Name + " (shiny)"
	}
	return s.Name
}

// ExtractFunc produces the dominant colours for a subject. Implementations
// resolve the subject's sprite and run the image extractor; they are expected
// to honour ctx cancellation.
type ExtractFunc func(ctx context.Context, subject Subject, count int) ([]colour.RGB, error)

// Snapshot is an immutable view of the store handed to subscribers.
type Snapshot struct {
	Colors     []colour.RGB
	Locks      []bool
	Subject    Subject
	Generation uint64
	Extracting bool
}

// Color returns the colour at a slot, or false when out of range. Consumers
// use this instead of keeping local copies of slot colours.
func (s Snapshot) Color(slot int) (colour.RGB, bool) {
	if slot < 0 || slot >= len(s.Colors) {
		return colour.RGB{}, false
	}
	return s.Colors[slot], true
}

// Store is the process-wide palette state. All methods are safe for
// concurrent use; every mutation notifies subscribers synchronously before
// returning, so there is no stale-read window between consumers.
type Store struct {
	mu          sync.Mutex
	colors      []colour.RGB
	locks       []bool
	subject     Subject
	generation  uint64
	extracting  bool
	size        int
	extract     ExtractFunc
	logger      hclog.Logger
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// Option configures a Store.
type Option func(*Store)

// WithSize sets the number of palette slots (default 5).
func WithSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.size = n
		}
	}
}

// WithLogger sets the logger used for commit/drop diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store seeded with the neutral fallback palette so
// consumers always have valid colours to render, even before the first
// extraction completes.
func NewStore(extract ExtractFunc, opts ...Option) *Store {
	s := &Store{
		size:        5,
		extract:     extract,
		logger:      hclog.NewNullLogger(),
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.colors = fallbackColors(s.size)
	s.locks = make([]bool, s.size)
	return s
}

// fallbackColors returns n colours drawn from the fixed neutral palette,
// cycling when n exceeds its length.
func fallbackColors(n int) []colour.RGB {
	fb := colour.Fallback().Colors
	out := make([]colour.RGB, n)
	for i := range out {
		out[i] = fb[i%len(fb)]
	}
	return out
}

// Subscribe registers fn to be called with a snapshot after every mutation.
// The returned function unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked builds a snapshot. Callers must hold s.mu.
func (s *Store) snapshotLocked() Snapshot {
	colors := make([]colour.RGB, len(s.colors))
	copy(colors, s.colors)
	locks := make([]bool, len(s.locks))
	copy(locks, s.locks)

	return Snapshot{
		Colors:     colors,
		Locks:      locks,
		Subject:    s.subject,
		Generation: s.generation,
		Extracting: s.extracting,
	}
}

// notify delivers the snapshot to all subscribers. Called outside the lock so
// subscribers may read the store.
func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// BeginSubject records a new subject selection and returns the generation
// token the eventual extraction result must present to CommitExtraction.
// A newer BeginSubject invalidates all earlier tokens: last request wins,
// not last completion.
func (s *Store) BeginSubject(subject Subject) uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.subject = subject
	s.extracting = true
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("subject selected", "subject", subject.Slug(), "generation", gen)
	s.notify(snap)
	return gen
}

// CommitExtraction merges an extraction result into the store. Results for a
// superseded generation are dropped even if their work completed later. A nil
// error merges the extracted colours into unlocked slots; an extraction
// failure merges the neutral fallback palette instead, without touching lock
// state.
func (s *Store) CommitExtraction(gen uint64, extracted []colour.RGB, extractErr error) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("dropping stale extraction", "generation", gen, "current", s.generation)
		return false
	}

	if extractErr != nil {
		s.logger.Warn("extraction failed, using fallback palette", "error", extractErr)
		extracted = nil
	}
	incoming := make([]colour.RGB, s.size)
	fb := fallbackColors(s.size)
	for i := range incoming {
		if i < len(extracted) {
			incoming[i] = extracted[i]
		} else {
			incoming[i] = fb[i]
		}
	}

	// Locked slots keep their previous value; unlocked slots take the new one.
	for i := range s.colors {
		if !s.locks[i] {
			s.colors[i] = incoming[i]
		}
	}

	s.extracting = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// SetSubject selects a subject and runs the extraction synchronously. The
// commit is still generation-checked, so a concurrent newer selection wins.
func (s *Store) SetSubject(ctx context.Context, subject Subject) error {
	if s.extract == nil {
		return fmt.Errorf("no extract function configured")
	}

	gen := s.BeginSubject(subject)
	colors, err := s.extract(ctx, subject, s.size)
	s.CommitExtraction(gen, colors, err)
	return err
}

// SetColorAt overwrites the colour at a slot. An explicit edit always wins:
// lock state neither prevents the write nor changes because of it.
// Out-of-range slots are a no-op.
func (s *Store) SetColorAt(slot int, c colour.RGB) {
	s.mu.Lock()
	if slot < 0 || slot >= len(s.colors) {
		s.mu.Unlock()
		return
	}
	s.colors[slot] = c
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ToggleLock flips the lock flag at a slot. Out-of-range slots are a no-op.
func (s *Store) ToggleLock(slot int) {
	s.mu.Lock()
	if slot < 0 || slot >= len(s.locks) {
		s.mu.Unlock()
		return
	}
	s.locks[slot] = !s.locks[slot]
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Reorder moves the colour at slot from to slot to, shifting the colours in
// between. Lock flags stay pinned to their positions: locking marks a visual
// role (slot), not a colour value. Out-of-range or equal indices are a no-op.
func (s *Store) Reorder(from, to int) {
	s.mu.Lock()
	n := len(s.colors)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		s.mu.Unlock()
		return
	}

	c := s.colors[from]
	if from < to {
		copy(s.colors[from:to], s.colors[from+1:to+1])
	} else {
		copy(s.colors[to+1:from+1], s.colors[to:from])
	}
	s.colors[to] = c

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}
