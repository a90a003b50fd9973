package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDex = map[string]Answer{
	"pikachu":   {Name: "pikachu", DexID: 25, Types: []string{"electric"}},
	"raichu":    {Name: "raichu", DexID: 26, Types: []string{"electric"}},
	"bulbasaur": {Name: "bulbasaur", DexID: 1, Types: []string{"grass", "poison"}},
	"gengar":    {Name: "gengar", DexID: 94, Types: []string{"ghost", "poison"}},
	"mewtwo":    {Name: "mewtwo", DexID: 150, Types: []string{"psychic"}},
}

func testLookup(_ context.Context, name string) (Answer, error) {
	a, ok := testDex[name]
	if !ok {
		return Answer{}, errors.New("not found")
	}
	return a, nil
}

func newTestGame(t *testing.T, answer string, attempts int) *Game {
	t.Helper()
	g, err := New(testDex[answer], testLookup, attempts)
	require.NoError(t, err)
	return g
}

func TestNewValidation(t *testing.T) {
	_, err := New(Answer{}, testLookup, 3)
	assert.Error(t, err)

	_, err = New(testDex["pikachu"], nil, 3)
	assert.Error(t, err)

	g, err := New(testDex["pikachu"], testLookup, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxAttempts, g.Remaining())
}

func TestCorrectGuessWins(t *testing.T) {
	g := newTestGame(t, "pikachu", 3)

	fb, err := g.Guess(context.Background(), "Pikachu")
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, StatusWon, g.Status())
	assert.Equal(t, "pikachu", g.Reveal())
}

func TestInvalidNameCostsNoAttempt(t *testing.T) {
	g := newTestGame(t, "pikachu", 3)

	_, err := g.Guess(context.Background(), "not-a-pokemon")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 3, g.Remaining())
	assert.Equal(t, StatusPlaying, g.Status())

	_, err = g.Guess(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 3, g.Remaining())
}

func TestRepeatedGuessRejected(t *testing.T) {
	g := newTestGame(t, "pikachu", 3)

	_, err := g.Guess(context.Background(), "raichu")
	require.NoError(t, err)

	_, err = g.Guess(context.Background(), "RAICHU")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 2, g.Remaining())
}

func TestFeedbackTypesAndDexHint(t *testing.T) {
	g := newTestGame(t, "gengar", 6)

	fb, err := g.Guess(context.Background(), "bulbasaur")
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, []string{"poison"}, fb.TypeMatches)
	assert.Equal(t, "higher", fb.DexHint)

	fb, err = g.Guess(context.Background(), "mewtwo")
	require.NoError(t, err)
	assert.Empty(t, fb.TypeMatches)
	assert.Equal(t, "lower", fb.DexHint)
}

func TestAttemptsExhaustedLoses(t *testing.T) {
	g := newTestGame(t, "pikachu", 2)

	_, err := g.Guess(context.Background(), "raichu")
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, g.Status())

	_, err = g.Guess(context.Background(), "mewtwo")
	require.NoError(t, err)
	assert.Equal(t, StatusLost, g.Status())
	assert.Equal(t, "pikachu", g.Reveal())

	_, err = g.Guess(context.Background(), "bulbasaur")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestRevealHiddenWhilePlaying(t *testing.T) {
	g := newTestGame(t, "mewtwo", 3)
	assert.Equal(t, "", g.Reveal())
}

func TestScore(t *testing.T) {
	g := newTestGame(t, "pikachu", 6)
	_, err := g.Guess(context.Background(), "raichu")
	require.NoError(t, err)
	_, err = g.Guess(context.Background(), "pikachu")
	require.NoError(t, err)
	assert.Equal(t, 500, g.Score())

	lost := newTestGame(t, "pikachu", 1)
	_, err = lost.Guess(context.Background(), "raichu")
	require.NoError(t, err)
	assert.Equal(t, 0, lost.Score())
}

func TestGuessesHistoryIsCopy(t *testing.T) {
	g := newTestGame(t, "gengar", 6)
	_, err := g.Guess(context.Background(), "bulbasaur")
	require.NoError(t, err)

	h := g.Guesses()
	require.Len(t, h, 1)
	h[0].Name = "mutated"
	assert.Equal(t, "bulbasaur", g.Guesses()[0].Name)
}
