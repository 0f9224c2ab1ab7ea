// internal/httpserver/server.go
//
// HTTP server wiring for the honeycomb solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoint: POST /solve (raw word list in, best honeycomb out).
//   - Dictionary endpoints: mounted under /dictionaries (see routes_dict.go).
//   - Auth endpoints: /auth/* (see auth.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Solving is open to guests; creating or deleting stored dictionaries
//     requires a valid JWT.
//   - Solve results are recomputed on every request, never cached.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/axel-kramer/honeycomb/internal/game"
	"github.com/axel-kramer/honeycomb/internal/solver"
	"github.com/axel-kramer/honeycomb/internal/words"
)

// Server bundles the router, DB handle, filter config, and default word list.
type Server struct {
	r       *chi.Mux
	db      *sql.DB
	cfg     words.Config
	defList words.List // used when a solve request carries no words
	workers int        // search pool size; 0 means NumCPU
}

// New constructs a Server, installs middleware, and registers routes.
func New(db *sql.DB, cfg words.Config, defList words.List, workers int) *Server {
	s := &Server{r: chi.NewRouter(), db: db, cfg: cfg, defList: defList, workers: workers}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"honeycomb","endpoints":["/health","POST /solve","/dictionaries","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Debug: default word list stats
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"words":      s.defList.Len(),
			"totalScore": s.defList.TotalScore(),
		})
	})

	// Solver — open to guests
	s.r.Post("/solve", s.handleSolve)

	// Stored dictionaries (mutations gated by auth)
	s.mountDictionaries()

	// Auth
	s.mountAuthRoutes()

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

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SOLVE --------------------------------------

// solveReq is the payload for POST /solve. Words is raw whitespace-separated
// text; when empty the server's default word list is solved instead.
type solveReq struct {
	Words string `json:"words"`
}

// solveRes is the solver response: the winning honeycomb, its score, and
// the full grouped report.
type solveRes struct {
	Score   int           `json:"score"`
	Letters string        `json:"letters"`
	Center  string        `json:"center"`
	Report  solver.Report `json:"report"`
}

// handleSolve filters the submitted text, builds the points table, runs the
// search, and returns the best honeycomb with its report.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	list := s.defList
	if strings.TrimSpace(req.Words) != "" {
		list = words.ParseText(req.Words, s.cfg)
	}
	s.writeSolve(w, list)
}

// writeSolve runs the search over a word list and writes the JSON response.
// Shared by /solve and /dictionaries/{name}/solve.
func (s *Server) writeSolve(w http.ResponseWriter, list words.List) {
	table := solver.BuildPointsTable(list)
	res, err := solver.SearchParallel(table, s.workers)
	if errors.Is(err, solver.ErrNoPangram) {
		http.Error(w, `{"error":"no_pangram"}`, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		http.Error(w, `{"error":"search_failed"}`, http.StatusInternalServerError)
		return
	}

	rep := solver.BuildReport(list, res.Honeycomb)
	_ = json.NewEncoder(w).Encode(solveRes{
		Score:   res.Score,
		Letters: res.Honeycomb.Letters.String(),
		Center:  string(res.Honeycomb.Center),
		Report:  rep,
	})
}

// parseHoneycomb validates explicit letters/center query input into a
// game.Honeycomb for report requests.
func parseHoneycomb(letters, center string) (game.Honeycomb, error) {
	set, err := game.ParseLetterSet(letters)
	if err != nil {
		return game.Honeycomb{}, err
	}
	if set.Size() != game.GameSize {
		return game.Honeycomb{}, errors.New("letters must contain exactly 7 distinct letters")
	}
	c := strings.ToUpper(strings.TrimSpace(center))
	if len(c) != 1 {
		return game.Honeycomb{}, errors.New("center must be a single letter")
	}
	h := game.Honeycomb{Letters: set, Center: c[0]}
	if !h.Valid() {
		return game.Honeycomb{}, errors.New("center must be one of the 7 letters")
	}
	return h, nil
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
