package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solverFunc adapts a plain function to the Solver interface.
type solverFunc func(history []Guess) string

func (f solverFunc) Guess(history []Guess) string { return f(history) }

// setDict is a minimal Dictionary for tests.
type setDict map[string]struct{}

func (d setDict) Contains(word string) bool {
	_, ok := d[word]
	return ok
}

func TestPlayImmediateWin(t *testing.T) {
	round, won := Play("crane", solverFunc(func(history []Guess) string {
		return "crane"
	}), nil)
	require.True(t, won)
	assert.Equal(t, 1, round)
}

func TestPlayWinsOnKthGuess(t *testing.T) {
	for k := 1; k <= MaxRounds; k++ {
		calls := 0
		round, won := Play("crane", solverFunc(func(history []Guess) string {
			// The solver sees exactly the entries from its prior guesses.
			assert.Len(t, history, calls)
			calls++
			if calls == k {
				return "crane"
			}
			return "slate"
		}), nil)
		require.True(t, won, "k=%d", k)
		assert.Equal(t, k, round, "k=%d", k)
		assert.Equal(t, k, calls, "k=%d", k)
	}
}

func TestPlayExhaustsBudget(t *testing.T) {
	calls := 0
	round, won := Play("crane", solverFunc(func(history []Guess) string {
		calls++
		return "slate"
	}), nil)
	assert.False(t, won)
	assert.Zero(t, round)
	// Hard budget: no solver invocation past the final round.
	assert.Equal(t, MaxRounds, calls)
}

func TestPlayHistoryFeedback(t *testing.T) {
	var seen []Guess
	Play("crane", solverFunc(func(history []Guess) string {
		seen = history
		return "caner"
	}), nil)
	require.Len(t, seen, MaxRounds-1)
	for _, g := range seen {
		assert.Equal(t, "caner", g.Word)
		assert.Equal(t, Compute("crane", "caner"), g.Mask)
	}
}

func TestPlayDictionaryLegality(t *testing.T) {
	dict := setDict{"crane": {}, "slate": {}}

	round, won := Play("crane", solverFunc(func(history []Guess) string {
		return "crane"
	}), dict)
	require.True(t, won)
	assert.Equal(t, 1, round)

	// A solver emitting a word outside the dictionary has broken its
	// contract; the loop fails fast.
	require.Panics(t, func() {
		Play("crane", solverFunc(func(history []Guess) string {
			return "zzzzz"
		}), dict)
	})
}

func TestNewAnswerContract(t *testing.T) {
	require.Panics(t, func() { New("too long answer", nil) })
	require.Panics(t, func() { New("", nil) })
}

func TestApplyGuessStateMachine(t *testing.T) {
	g := New("crane", nil)
	assert.Equal(t, Playing, g.State())

	for i := 1; i < MaxRounds; i++ {
		_, state := g.ApplyGuess("slate")
		assert.Equal(t, Playing, state)
		assert.Equal(t, i, g.Round())
	}
	_, state := g.ApplyGuess("slate")
	assert.Equal(t, Lost, state)
	assert.Len(t, g.History(), MaxRounds)

	require.Panics(t, func() { g.ApplyGuess("crane") })
}

func TestApplyGuessWinRecorded(t *testing.T) {
	g := New("crane", nil)
	mask, state := g.ApplyGuess("crane")
	assert.True(t, mask.AllCorrect())
	assert.Equal(t, Won, state)
	assert.Equal(t, "won", state.String())
}

func TestHistoryViewIsCapped(t *testing.T) {
	g := New("crane", nil)
	g.ApplyGuess("slate")
	view := g.History()

	// Appending to the view must not leak into the game's history.
	_ = append(view, Guess{Word: "xxxxx"})
	g.ApplyGuess("trace")
	assert.Equal(t, "trace", g.History()[1].Word)
}
