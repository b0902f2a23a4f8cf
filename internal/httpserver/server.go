// internal/httpserver/server.go
//
// HTTP wiring for the simulation service.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Engine endpoints: POST /score (feedback for one guess),
//     POST /simulate (a full solver-driven game).
//
// Notes:
//   - The service is stateless: every request is a complete computation and
//     nothing survives between requests.
//   - When a token secret is configured, the engine endpoints require a
//     valid bearer token; diagnostics stay public.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/stepanbenes/wordle/internal/game"
	"github.com/stepanbenes/wordle/internal/solver"
	"github.com/stepanbenes/wordle/internal/words"
)

// Server bundles the router, the shared dictionary, and the optional token
// secret.
type Server struct {
	r      *chi.Mux
	dict   *words.Dictionary
	secret string
}

// New constructs a Server, installs middleware, and registers routes.
// If secret is non-empty, the engine endpoints require a bearer token
// signed with it.
func New(dict *words.Dictionary, secret string) *Server {
	s := &Server{r: chi.NewRouter(), dict: dict, secret: secret}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-sim","endpoints":["/health","/debug/words","POST /score","POST /simulate"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.dict.Len()})
	})

	// Engine endpoints — gated when a secret is configured.
	s.r.Group(func(api chi.Router) {
		if secret != "" {
			api.Use(s.requireAuth())
		}
		api.Post("/score", s.handleScore)
		api.Post("/simulate", s.handleSimulate)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// normalize lowercases and trims request words so they compare the same way
// the dictionary stores them.
func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SCORE --------------------------------------

// scoreReq/Res payloads for POST /score.
type scoreReq struct {
	Answer string `json:"answer"`
	Guess  string `json:"guess"`
}
type scoreRes struct {
	Marks game.Feedback `json:"marks"`
}

// handleScore computes the feedback mask for one (answer, guess) pair.
// The boundary validates lengths before handing off to the engine, whose
// length contract is a panic.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	answer := normalize(req.Answer)
	guess := normalize(req.Guess)
	if len(answer) != game.WordLen || len(guess) != game.WordLen {
		http.Error(w, `{"error":"answer and guess must be 5 letters"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(scoreRes{Marks: game.Compute(answer, guess)})
}

// ----------------------------- SIMULATE ------------------------------------

// simulateReq/Res payloads for POST /simulate.
type simulateReq struct {
	Answer string `json:"answer"`
	Solver string `json:"solver"` // "filtering" (default) | "constant"
	Word   string `json:"word"`   // constant solver's word
}
type simulateRes struct {
	Won     bool         `json:"won"`
	Round   int          `json:"round"` // 1-indexed winning round, 0 on a loss
	History []game.Guess `json:"history"`
}

// handleSimulate plays one full solver-driven game for the given answer and
// returns the outcome with the complete guess history.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	// The engine compares raw bytes, so normalize here the way the
	// dictionary does; otherwise a case-variant answer passes the lookup
	// but can never be matched.
	answer := normalize(req.Answer)
	if !s.dict.Contains(answer) {
		http.Error(w, `{"error":"answer not in word list"}`, http.StatusBadRequest)
		return
	}

	var sv game.Solver
	switch req.Solver {
	case "", "filtering":
		sv = solver.NewFiltering(s.dict)
	case "constant":
		word := normalize(req.Word)
		if !s.dict.Contains(word) {
			http.Error(w, `{"error":"word not in word list"}`, http.StatusBadRequest)
			return
		}
		sv = solver.Constant{Word: word}
	default:
		http.Error(w, `{"error":"unknown solver"}`, http.StatusBadRequest)
		return
	}

	g := game.New(answer, s.dict)
	for g.State() == game.Playing {
		g.ApplyGuess(sv.Guess(g.History()))
	}
	won := g.State() == game.Won
	round := 0
	if won {
		round = g.Round()
	}
	log.Debug().Str("answer", answer).Bool("won", won).Int("round", round).Msg("simulated game")

	// Copy the history so encoding never aliases the game's own slice.
	history := append([]game.Guess(nil), g.History()...)
	_ = json.NewEncoder(w).Encode(simulateRes{Won: won, Round: round, History: history})
}
