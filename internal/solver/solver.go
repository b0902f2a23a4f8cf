// internal/solver/solver.go
//
// Solver implementations for the game loop. A solver sees only the history
// of prior (word, mask) pairs and produces the next guess; the loop treats
// every solver through that single method.

package solver

import (
	"github.com/stepanbenes/wordle/internal/game"
	"github.com/stepanbenes/wordle/internal/words"
)

// Constant always guesses the same word, ignoring history. Useful as a
// baseline and in tests; it only wins when its word is the answer.
type Constant struct {
	Word string
}

func (c Constant) Guess(history []game.Guess) string { return c.Word }

// Filtering tracks the set of dictionary words still consistent with every
// feedback mask observed so far and always guesses the best remaining
// candidate. A candidate is consistent with a history entry when scoring the
// past guess against the candidate reproduces the observed mask; any word
// that fails this for some entry cannot be the answer.
//
// Candidates are tried in the order the dictionary supplies them (most
// frequent first), so common words are guessed before obscure ones.
//
// A Filtering solver accumulates state across rounds: use a fresh instance
// per game.
type Filtering struct {
	candidates []string
	applied    int // history entries already folded into candidates
}

// NewFiltering seeds a solver with the dictionary's words. The answer must
// be one of them; otherwise every candidate is eventually eliminated.
func NewFiltering(dict *words.Dictionary) *Filtering {
	return &Filtering{candidates: dict.Words()}
}

func (f *Filtering) Guess(history []game.Guess) string {
	// Fold in only the entries added since the previous call.
	for ; f.applied < len(history); f.applied++ {
		entry := history[f.applied]
		kept := f.candidates[:0]
		for _, cand := range f.candidates {
			if game.Compute(cand, entry.Word) == entry.Mask {
				kept = append(kept, cand)
			}
		}
		f.candidates = kept
	}
	if len(f.candidates) == 0 {
		panic("solver: no candidates consistent with history; answer is not in the dictionary")
	}
	return f.candidates[0]
}
