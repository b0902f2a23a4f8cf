// internal/game/game.go
//
// Game state machine and solver-driven loop for a single Wordle session.
// Responsibilities:
//   - Track the answer, the append-only guess history, and the coarse state.
//   - Validate and score guesses (length contract, dictionary legality).
//   - Drive a pluggable Solver through at most MaxRounds rounds.
//
// Notes:
//   - Contract violations (bad lengths, a solver emitting a word outside the
//     dictionary) panic: they indicate a bug in the caller or the solver,
//     not a recoverable condition.
//   - Running out of rounds is a normal outcome, reported by Play as the
//     absence of a winning round.

package game

import "fmt"

// Game holds the state of one game: the secret answer, the optional
// dictionary used to validate guesses, and the history so far.
// Each game is a small single-threaded computation; a Game is not safe for
// concurrent use and is not meant to be shared.
type Game struct {
	answer  string
	dict    Dictionary
	history []Guess
	state   State
}

// New constructs a game for the given answer. dict may be nil, in which case
// guesses are not checked for dictionary membership. Panics unless the
// answer is exactly WordLen characters.
func New(answer string, dict Dictionary) *Game {
	if len(answer) != WordLen {
		panic(fmt.Sprintf("game: answer %q is not %d characters", answer, WordLen))
	}
	return &Game{answer: answer, dict: dict}
}

// Round returns the number of guesses applied so far.
func (g *Game) Round() int { return len(g.history) }

// State returns the current coarse state.
func (g *Game) State() State { return g.state }

// History returns a read-only view of the guesses applied so far, ordered by
// round. The returned slice is capped so appends cannot alias the game's
// backing array; entries must not be mutated.
func (g *Game) History() []Guess {
	return g.history[:len(g.history):len(g.history)]
}

// ApplyGuess scores one guess, appends it to the history, and advances the
// state machine: playing → won on an exact match, playing → lost when the
// round budget is spent without one.
//
// Panics if the game is already finished, the word is not exactly WordLen
// characters, or a dictionary is configured and does not contain the word.
// The last case is a solver contract breach: solvers are required to emit
// only legal words.
func (g *Game) ApplyGuess(word string) (Feedback, State) {
	if g.state != Playing {
		panic("game: guess applied to a finished game")
	}
	if len(word) != WordLen {
		panic(fmt.Sprintf("game: guess %q is not %d characters", word, WordLen))
	}
	if g.dict != nil && !g.dict.Contains(word) {
		panic(fmt.Sprintf("game: guess %q is not in the dictionary", word))
	}

	mask := Compute(g.answer, word)
	g.history = append(g.history, Guess{Word: word, Mask: mask})

	switch {
	case mask.AllCorrect():
		g.state = Won
	case len(g.history) >= MaxRounds:
		g.state = Lost
	}
	return mask, g.state
}

// Play runs one full game: each round the solver is handed the history so
// far and must produce the next guess. Returns the 1-indexed round of the
// winning guess, or (0, false) if the budget of MaxRounds rounds is spent
// without a match. The solver is never invoked after the final round.
func Play(answer string, s Solver, dict Dictionary) (round int, won bool) {
	g := New(answer, dict)
	for g.State() == Playing {
		word := s.Guess(g.History())
		if _, state := g.ApplyGuess(word); state == Won {
			return g.Round(), true
		}
	}
	return 0, false
}
