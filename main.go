package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stepanbenes/wordle/internal/game"
	"github.com/stepanbenes/wordle/internal/httpserver"
	"github.com/stepanbenes/wordle/internal/sim"
	"github.com/stepanbenes/wordle/internal/solver"
	"github.com/stepanbenes/wordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		dictPath    string
		answersPath string
		solverName  string
		word        string
		serve       bool
	)
	flag.StringVar(&dictPath, "dict", "", "dictionary file, one \"word frequency\" per line (default: embedded list)")
	flag.StringVar(&answersPath, "answers", "", "answers file, whitespace-separated words (default: embedded list)")
	flag.StringVar(&solverName, "solver", "filtering", "solver for simulations: filtering or constant")
	flag.StringVar(&word, "word", "", "fixed word for the constant solver")
	flag.BoolVar(&serve, "serve", false, "serve the HTTP API instead of running a simulation")
	flag.Parse()

	dict := words.Default()
	if dictPath != "" {
		var err error
		if dict, err = words.Load(dictPath); err != nil {
			log.Fatal().Err(err).Str("path", dictPath).Msg("failed to load dictionary")
		}
	}

	if serve {
		srv := httpserver.New(dict, os.Getenv("JWT_SECRET"))
		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Int("words", dict.Len()).Msg("starting wordle-sim server")
		if err := srv.Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	answers := words.DefaultAnswers()
	if answersPath != "" {
		var err error
		if answers, err = words.LoadAnswers(answersPath); err != nil {
			log.Fatal().Err(err).Str("path", answersPath).Msg("failed to load answers")
		}
	}

	var newSolver func() game.Solver
	switch solverName {
	case "filtering":
		newSolver = func() game.Solver { return solver.NewFiltering(dict) }
	case "constant":
		if !dict.Contains(word) {
			log.Fatal().Str("word", word).Msg("constant solver word is not in the dictionary")
		}
		newSolver = func() game.Solver { return solver.Constant{Word: word} }
	default:
		log.Fatal().Str("solver", solverName).Msg("unknown solver")
	}

	runner := sim.Runner{Dict: dict, NewSolver: newSolver, Log: log.Logger}
	summary := runner.Run(answers)
	log.Info().
		Int("played", summary.Played).
		Int("won", summary.Won).
		Int("rounds", summary.Rounds).
		Msg("simulation finished")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
