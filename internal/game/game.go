// Package game implements the Pokemon guessing game: a hidden subject, a
// limited number of guesses and per-guess feedback.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Status is the game lifecycle state.
type Status string

const (
	// StatusPlaying means guesses are still accepted.
	StatusPlaying Status = "playing"

	// StatusWon means the subject was guessed.
	StatusWon Status = "won"

	// StatusLost means the attempts ran out.
	StatusLost Status = "lost"
)

// DefaultMaxAttempts is the number of guesses a round allows.
const DefaultMaxAttempts = 6

var (
	// ErrInvalidName is returned for guesses that are not a known Pokemon.
	// It is part of normal flow (inline message), not a failure path.
	ErrInvalidName = errors.New("invalid name")

	// ErrFinished is returned for guesses after the game is over.
	ErrFinished = errors.New("game over")
)

// Answer is the hidden subject and the facts feedback is computed from.
type Answer struct {
	Name  string
	DexID int
	Types []string
}

// LookupFunc resolves a guessed name into an Answer. Unknown names return an
// error; the engine maps any lookup failure to ErrInvalidName.
type LookupFunc func(ctx context.Context, name string) (Answer, error)

// Feedback is what a single guess reveals.
type Feedback struct {
	Name        string
	Correct     bool
	TypeMatches []string
	DexHint     string // "higher", "lower" or "" when correct
}

// Game is a single round. Not safe for concurrent use; the UI event loop is
// single-threaded.
type Game struct {
	answer      Answer
	lookup      LookupFunc
	maxAttempts int
	guesses     []Feedback
	status      Status
}

// New starts a round for the given hidden answer.
func New(answer Answer, lookup LookupFunc, maxAttempts int) (*Game, error) {
	if answer.Name == "" {
		return nil, fmt.Errorf("game answer cannot be empty")
	}
	if lookup == nil {
		return nil, fmt.Errorf("lookup function is required")
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Game{
		answer:      answer,
		lookup:      lookup,
		maxAttempts: maxAttempts,
		status:      StatusPlaying,
	}, nil
}

// Guess submits a guess by name. Unknown names cost no attempt and return
// ErrInvalidName. Repeated guesses of the same name are rejected the same
// way. Returns the feedback for valid guesses.
func (g *Game) Guess(ctx context.Context, name string) (Feedback, error) {
	if g.status != StatusPlaying {
		return Feedback{}, ErrFinished
	}

	slug := normalize(name)
	if slug == "" {
		return Feedback{}, ErrInvalidName
	}
	for _, prev := range g.guesses {
		if prev.Name == slug {
			return Feedback{}, fmt.Errorf("%w: already guessed %q", ErrInvalidName, slug)
		}
	}

	if slug == normalize(g.answer.Name) {
		fb := Feedback{Name: slug, Correct: true}
		g.guesses = append(g.guesses, fb)
		g.status = StatusWon
		return fb, nil
	}

	guessed, err := g.lookup(ctx, slug)
	if err != nil {
		return Feedback{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	fb := Feedback{
		Name:        slug,
		TypeMatches: intersectTypes(guessed.Types, g.answer.Types),
		DexHint:     dexHint(guessed.DexID, g.answer.DexID),
	}
	g.guesses = append(g.guesses, fb)

	if len(g.guesses) >= g.maxAttempts {
		g.status = StatusLost
	}
	return fb, nil
}

// Status returns the current lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Guesses returns the feedback history in guess order.
func (g *Game) Guesses() []Feedback {
	out := make([]Feedback, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// Remaining returns the number of attempts left.
func (g *Game) Remaining() int {
	return g.maxAttempts - len(g.guesses)
}

// Reveal returns the hidden answer once the game is over, or "" while
// guesses are still accepted.
func (g *Game) Reveal() string {
	if g.status == StatusPlaying {
		return ""
	}
	return g.answer.Name
}

// Score awards more points the fewer attempts were used. A lost round scores
// zero.
func (g *Game) Score() int {
	if g.status != StatusWon {
		return 0
	}
	return (g.maxAttempts - len(g.guesses) + 1) * 100
}

// normalize lowercases and hyphenates a guess the way the dex names are keyed.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}

// intersectTypes returns the guess's types that the answer shares, in the
// guess's order.
func intersectTypes(guess, answer []string) []string {
	var matches []string
	for _, t := range guess {
		for _, a := range answer {
			if t == a {
				matches = append(matches, t)
				break
			}
		}
	}
	return matches
}

// dexHint tells the player which direction the answer's dex number lies.
func dexHint(guess, answer int) string {
	switch {
	case guess == 0 || answer == 0:
		return ""
	case answer > guess:
		return "higher"
	case answer < guess:
		return "lower"
	default:
		return ""
	}
}
