// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterState: per-letter result of a guess (correct/misplaced/wrong).
//   - Feedback: the fixed five-slot mask produced for one guess.
//   - Guess: one history entry pairing a guessed word with its mask.
//   - State: coarse game state (playing/won/lost).

package game

import "errors"

const (
	// WordLen is the number of letters per word.
	WordLen = 5
	// MaxRounds is the maximum number of guesses allowed per game.
	MaxRounds = 6
)

// LetterState classifies a single guess letter relative to the answer.
//   - Correct:   same letter, same position.
//   - Misplaced: letter occurs elsewhere in the answer and was not consumed
//     by a stronger match.
//   - Wrong:     letter has no unconsumed occurrence in the answer.
type LetterState uint8

const (
	Wrong LetterState = iota
	Misplaced
	Correct
)

var errInvalidLetterState = errors.New("game: invalid letter state")

// String returns the wire form used in JSON payloads.
func (s LetterState) String() string {
	switch s {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	default:
		return "wrong"
	}
}

// MarshalText encodes the state as its string form, so a Feedback value
// serializes as a JSON array of strings.
func (s LetterState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes the string form produced by MarshalText.
func (s *LetterState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "correct":
		*s = Correct
	case "misplaced":
		*s = Misplaced
	case "wrong":
		*s = Wrong
	default:
		return errInvalidLetterState
	}
	return nil
}

// Feedback is the ordered mask of letter states for one guess, one slot per
// position. The zero value is all Wrong.
type Feedback [WordLen]LetterState

// AllCorrect reports whether every position is Correct, i.e. the guess
// matched the answer exactly.
func (f Feedback) AllCorrect() bool {
	for _, s := range f {
		if s != Correct {
			return false
		}
	}
	return true
}

// Guess is one history entry: a guessed word and the feedback it earned.
// Entries are never mutated after creation.
type Guess struct {
	Word string   `json:"word"`
	Mask Feedback `json:"mask"`
}

// Solver produces the next guess from the history of prior guesses.
// Implementations must treat the history slice as read-only and must only
// emit words present in the game's dictionary, if one is configured.
type Solver interface {
	Guess(history []Guess) string
}

// Dictionary is the read-only word set the game consults to validate guess
// legality. Implementations live outside this package.
type Dictionary interface {
	Contains(word string) bool
}

// State is the coarse game state.
type State uint8

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}
