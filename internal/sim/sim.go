// internal/sim/sim.go
//
// Simulation driver: plays one game per answer with a fresh solver and
// reports how the run went. Games are independent computations, so the
// driver owns nothing but the loop and the logging.

package sim

import (
	"github.com/rs/zerolog"

	"github.com/stepanbenes/wordle/internal/game"
	"github.com/stepanbenes/wordle/internal/words"
)

// Runner drives a batch of games.
type Runner struct {
	// Dict validates solver guesses and, when set, filters out answers it
	// does not contain (a filtering solver cannot find a word it has never
	// seen). May be nil to skip legality checks.
	Dict *words.Dictionary

	// NewSolver builds a fresh solver for each game; solvers may carry
	// per-game state, so instances are never reused.
	NewSolver func() game.Solver

	Log zerolog.Logger
}

// Summary aggregates one run.
type Summary struct {
	Played int
	Won    int
	Rounds int // total winning rounds, for averaging
}

// Run plays every answer in order and returns the run summary.
func (r Runner) Run(answers []string) Summary {
	var dict game.Dictionary
	if r.Dict != nil {
		dict = r.Dict
	}

	var s Summary
	for _, answer := range answers {
		if r.Dict != nil && !r.Dict.Contains(answer) {
			r.Log.Warn().Str("answer", answer).Msg("answer not in dictionary, skipping")
			continue
		}
		round, won := game.Play(answer, r.NewSolver(), dict)
		s.Played++
		if won {
			s.Won++
			s.Rounds += round
		}
		r.Log.Debug().
			Str("answer", answer).
			Bool("won", won).
			Int("round", round).
			Msg("game finished")
	}
	return s
}
