package palette

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettedex/palettedex/internal/colour"
)

var (
	red    = colour.RGB{R: 255, G: 0, B: 0}
	green  = colour.RGB{R: 0, G: 255, B: 0}
	blue   = colour.RGB{R: 0, G: 0, B: 255}
	yellow = colour.RGB{R: 247, G: 208, B: 44}
	white  = colour.RGB{R: 255, G: 255, B: 255}
)

// fixedExtract returns the same colours for every subject.
func fixedExtract(colors []colour.RGB) ExtractFunc {
	return func(_ context.Context, _ Subject, _ int) ([]colour.RGB, error) {
		return colors, nil
	}
}

func TestNewStoreSeedsFallback(t *testing.T) {
	s := NewStore(nil, WithSize(3))
	snap := s.Snapshot()

	require.Len(t, snap.Colors, 3)
	require.Len(t, snap.Locks, 3)
	assert.False(t, snap.Extracting)
}

func TestSetSubjectMergesExtraction(t *testing.T) {
	s := NewStore(fixedExtract([]colour.RGB{red, green, blue}), WithSize(3))

	err := s.SetSubject(context.Background(), Subject{Name: "bulbasaur", ID: 1})
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, []colour.RGB{red, green, blue}, snap.Colors)
	assert.Equal(t, "bulbasaur", snap.Subject.Name)
	assert.False(t, snap.Extracting)
}

func TestLockPreservation(t *testing.T) {
	s := NewStore(fixedExtract([]colour.RGB{red, green, blue}), WithSize(3))
	require.NoError(t, s.SetSubject(context.Background(), Subject{Name: "a"}))

	// Lock slot 1, then re-extract different colours.
	s.ToggleLock(1)
	s.extract = fixedExtract([]colour.RGB{yellow, white, yellow})
	require.NoError(t, s.SetSubject(context.Background(), Subject{Name: "b"}))

	snap := s.Snapshot()
	assert.Equal(t, yellow, snap.Colors[0], "unlocked slot takes the new value")
	assert.Equal(t, green, snap.Colors[1], "locked slot keeps its prior value")
	assert.Equal(t, yellow, snap.Colors[2], "unlocked slot takes the new value")
	assert.True(t, snap.Locks[1], "lock flag survives re-extraction")
}

func TestExtractionFailureFallsBackWithoutTouchingLocks(t *testing.T) {
	s := NewStore(fixedExtract([]colour.RGB{red, green, blue}), WithSize(3))
	require.NoError(t, s.SetSubject(context.Background(), Subject{Name: "a"}))

	s.ToggleLock(0)
	s.extract = func(context.Context, Subject, int) ([]colour.RGB, error) {
		return nil, errors.New("decode failed")
	}
	err := s.SetSubject(context.Background(), Subject{Name: "b"})
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, red, snap.Colors[0], "locked slot untouched by fallback")
	assert.True(t, snap.Locks[0])
	fb := colour.Fallback().Colors
	assert.Equal(t, fb[1], snap.Colors[1], "unlocked slot takes the fallback colour")
	assert.False(t, snap.Extracting, "failed extraction still clears the pending flag")
}

func TestStaleExtractionIsDropped(t *testing.T) {
	s := NewStore(nil, WithSize(3))

	genA := s.BeginSubject(Subject{Name: "a"})
	genB := s.BeginSubject(Subject{Name: "b"})

	// B finishes first, then A's late result arrives.
	require.True(t, s.CommitExtraction(genB, []colour.RGB{blue, blue, blue}, nil))
	require.False(t, s.CommitExtraction(genA, []colour.RGB{red, red, red}, nil))

	snap := s.Snapshot()
	assert.Equal(t, "b", snap.Subject.Name)
	assert.Equal(t, []colour.RGB{blue, blue, blue}, snap.Colors, "late result for a superseded subject must not be committed")
}

func TestSetColorAtOverridesLock(t *testing.T) {
	s := NewStore(nil, WithSize(3))
	s.ToggleLock(2)

	s.SetColorAt(2, yellow)

	snap := s.Snapshot()
	assert.Equal(t, yellow, snap.Colors[2], "explicit edit wins over lock")
	assert.True(t, snap.Locks[2], "edit does not change lock state")
}

func TestOutOfRangeOperationsAreNoOps(t *testing.T) {
	s := NewStore(nil, WithSize(3))
	before := s.Snapshot()

	s.ToggleLock(-1)
	s.ToggleLock(3)
	s.SetColorAt(99, red)
	s.Reorder(-1, 2)
	s.Reorder(0, 5)
	s.Reorder(1, 1)

	after := s.Snapshot()
	assert.Equal(t, before.Colors, after.Colors)
	assert.Equal(t, before.Locks, after.Locks)
}

func TestReorderMovesColoursNotLocks(t *testing.T) {
	s := NewStore(nil, WithSize(3))
	s.SetColorAt(0, red)
	s.SetColorAt(1, green)
	s.SetColorAt(2, blue)
	s.ToggleLock(0)

	s.Reorder(0, 2)

	snap := s.Snapshot()
	assert.Equal(t, []colour.RGB{green, blue, red}, snap.Colors)
	// Lock flags are positional: the lock stays at slot 0.
	assert.Equal(t, []bool{true, false, false}, snap.Locks)
}

func TestReorderBackward(t *testing.T) {
	s := NewStore(nil, WithSize(4))
	s.SetColorAt(0, red)
	s.SetColorAt(1, green)
	s.SetColorAt(2, blue)
	s.SetColorAt(3, yellow)

	s.Reorder(3, 1)

	snap := s.Snapshot()
	assert.Equal(t, []colour.RGB{red, yellow, green, blue}, snap.Colors)
}

// The parallel-array invariant must hold after any operation sequence.
func TestLockInvariantAcrossOperations(t *testing.T) {
	s := NewStore(fixedExtract([]colour.RGB{red, green}), WithSize(5))

	ops := []func(){
		func() { _ = s.SetSubject(context.Background(), Subject{Name: "a"}) },
		func() { s.ToggleLock(0) },
		func() { s.SetColorAt(3, white) },
		func() { s.Reorder(0, 4) },
		func() { s.ToggleLock(4) },
		func() { _ = s.SetSubject(context.Background(), Subject{Name: "b", Shiny: true}) },
		func() { s.Reorder(4, 0) },
		func() { s.ToggleLock(2) },
	}

	for i, op := range ops {
		op()
		snap := s.Snapshot()
		require.Equal(t, len(snap.Colors), len(snap.Locks), "invariant broken after operation %d", i)
		require.Len(t, snap.Colors, 5)
	}
}

func TestShortExtractionIsPaddedFromFallback(t *testing.T) {
	// A solid sprite can yield fewer unique colours than slots.
	s := NewStore(fixedExtract([]colour.RGB{red}), WithSize(5))
	require.NoError(t, s.SetSubject(context.Background(), Subject{Name: "solid"}))

	snap := s.Snapshot()
	require.Len(t, snap.Colors, 5)
	assert.Equal(t, red, snap.Colors[0])
	fb := colour.Fallback().Colors
	assert.Equal(t, fb[1], snap.Colors[1])
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	s := NewStore(nil, WithSize(3))

	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.SetColorAt(0, red)
	s.ToggleLock(1)
	require.Len(t, got, 2)
	assert.Equal(t, red, got[0].Colors[0])
	assert.True(t, got[1].Locks[1])

	unsubscribe()
	s.SetColorAt(0, blue)
	assert.Len(t, got, 2, "unsubscribed consumer receives no further snapshots")
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(nil, WithSize(3))
	snap := s.Snapshot()
	snap.Colors[0] = red
	snap.Locks[0] = true

	fresh := s.Snapshot()
	assert.NotEqual(t, red, fresh.Colors[0], "mutating a snapshot must not affect the store")
	assert.False(t, fresh.Locks[0])
}

func TestSubjectSlug(t *testing.T) {
	tests := []struct {
		subject Subject
		want    string
	}{
		{Subject{Name: "pikachu"}, "pikachu"},
		{Subject{Name: "pikachu", Shiny: true}, "pikachu-shiny"},
		{Subject{Name: "deoxys", Form: "attack"}, "deoxys-attack"},
		{Subject{Name: "deoxys", Form: "attack", Shiny: true}, "deoxys-attack-shiny"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.subject.Slug())
	}
}
