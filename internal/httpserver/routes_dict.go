// internal/httpserver/routes_dict.go
//
// HTTP routes for stored dictionaries (named word lists).
// Exposes under /dictionaries:
//   - GET    /dictionaries               → list stored dictionaries
//   - POST   /dictionaries               → upload a new one (auth)
//   - GET    /dictionaries/{name}        → the filtered words
//   - DELETE /dictionaries/{name}        → remove (auth, owner only)
//   - POST   /dictionaries/{name}/solve  → best honeycomb for the list
//   - GET    /dictionaries/{name}/report → report for an explicit honeycomb
//
// Dictionaries are filtered on ingest with the server's filter config and
// stored as newline-separated uppercase words. Solves always recompute
// from the stored words.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/axel-kramer/honeycomb/internal/solver"
	"github.com/axel-kramer/honeycomb/internal/words"
)

// dictNameRe bounds dictionary names to something URL- and SQL-friendly.
var dictNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// mountDictionaries registers all /dictionaries routes.
func (s *Server) mountDictionaries() {
	s.r.Route("/dictionaries", func(r chi.Router) {
		r.Get("/", s.handleDictList)
		r.With(s.requireAuth()).Post("/", s.handleDictCreate)
		r.Get("/{name}", s.handleDictGet)
		r.With(s.requireAuth()).Delete("/{name}", s.handleDictDelete)
		r.Post("/{name}/solve", s.handleDictSolve)
		r.Get("/{name}/report", s.handleDictReport)
	})
}

// dictCreateReq is the payload for POST /dictionaries. Words is raw text;
// it is filtered before storage.
type dictCreateReq struct {
	Name  string `json:"name"`
	Words string `json:"words"`
}

// dictInfo is the listing row for a stored dictionary.
type dictInfo struct {
	Name      string `json:"name"`
	WordCount int    `json:"wordCount"`
	CreatedAt string `json:"createdAt"`
}

// handleDictCreate filters and stores a named word list for the
// authenticated user. Empty-after-filtering lists are rejected: storing
// them would only ever produce no_pangram solves.
func (s *Server) handleDictCreate(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	var req dictCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if !dictNameRe.MatchString(name) {
		http.Error(w, `{"error":"invalid_name"}`, http.StatusBadRequest)
		return
	}
	list := words.ParseText(req.Words, s.cfg)
	if list.Len() == 0 {
		http.Error(w, `{"error":"no_playable_words"}`, http.StatusBadRequest)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO dictionaries (name, owner_id, word_count, words, created_at)
	                     VALUES (?,?,?,?,?)`,
		name, me.ID, list.Len(), strings.Join(list.Words(), "\n"), now)
	if err != nil {
		// UNIQUE violation on name is the expected failure here.
		http.Error(w, `{"error":"name_taken"}`, http.StatusConflict)
		return
	}
	log.Info().Str("dictionary", name).Int("words", list.Len()).Str("owner", me.ID).Msg("dictionary stored")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(dictInfo{Name: name, WordCount: list.Len(), CreatedAt: now})
}

// handleDictList returns all stored dictionaries with their word counts.
func (s *Server) handleDictList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.Query(`SELECT name, word_count, created_at FROM dictionaries ORDER BY name`)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	out := []dictInfo{}
	for rows.Next() {
		var d dictInfo
		if err := rows.Scan(&d.Name, &d.WordCount, &d.CreatedAt); err == nil {
			out = append(out, d)
		}
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleDictGet returns the stored (already filtered) words of one dictionary.
func (s *Server) handleDictGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	list, err := s.loadDict(name)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"name":  name,
		"words": list.Words(),
	})
}

// handleDictDelete removes a dictionary; only its owner may delete it.
func (s *Server) handleDictDelete(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	name := chi.URLParam(r, "name")
	res, err := s.db.Exec(`DELETE FROM dictionaries WHERE name=? AND owner_id=?`, name, me.ID)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleDictSolve recomputes the best honeycomb for a stored dictionary.
func (s *Server) handleDictSolve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	list, err := s.loadDict(name)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	s.writeSolve(w, list)
}

// handleDictReport builds the grouped report of a stored dictionary for an
// explicitly supplied honeycomb (?letters=ACEIORT&center=T).
func (s *Server) handleDictReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	list, err := s.loadDict(name)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	h, err := parseHoneycomb(r.URL.Query().Get("letters"), r.URL.Query().Get("center"))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(solver.BuildReport(list, h))
}

// loadDict fetches the stored words of a dictionary as a List. The stored
// text was filtered on ingest; running it through the filter again is a
// no-op for an unchanged config and keeps solves consistent if the rules
// change between runs.
func (s *Server) loadDict(name string) (words.List, error) {
	var raw string
	err := s.db.QueryRow(`SELECT words FROM dictionaries WHERE name=?`, name).Scan(&raw)
	if err != nil {
		return words.List{}, err
	}
	return words.ParseText(raw, s.cfg), nil
}
