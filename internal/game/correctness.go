// internal/game/correctness.go
//
// Feedback computation for a single guess: the classic two-pass Wordle
// scoring algorithm with duplicate-letter handling.

package game

import "fmt"

// Compute scores guess against answer and returns the per-position mask.
//
// Pass 1 marks exact matches Correct and consumes those answer positions.
// Pass 2 walks the remaining guess positions left to right; each one claims
// the earliest unconsumed occurrence of its letter in the answer (Misplaced)
// or, failing that, is Wrong. The left-to-right consumption order is what
// resolves duplicate letters: once an answer position is claimed, no later
// guess position can match it again.
//
// Both inputs must be exactly WordLen characters; anything else is a caller
// bug and panics. Characters are compared as opaque bytes, so case and
// character-set normalization are the caller's concern. The result is a pure
// function of the inputs.
func Compute(answer, guess string) Feedback {
	if len(answer) != WordLen {
		panic(fmt.Sprintf("game: answer %q is not %d characters", answer, WordLen))
	}
	if len(guess) != WordLen {
		panic(fmt.Sprintf("game: guess %q is not %d characters", guess, WordLen))
	}

	var mask Feedback // zero value: all Wrong
	var used [WordLen]bool

	// First pass: exact matches.
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			mask[i] = Correct
			used[i] = true
		}
	}

	// Second pass: cross matches against unconsumed answer positions.
	for i := 0; i < WordLen; i++ {
		if mask[i] == Correct {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if !used[j] && answer[j] == guess[i] {
				mask[i] = Misplaced
				used[j] = true
				break
			}
		}
	}
	return mask
}
