package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axel-kramer/honeycomb/internal/words"
)

// testDB opens an in-memory SQLite database with the server schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// One connection so every query sees the same in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TEXT NOT NULL
		);
		CREATE TABLE dictionaries (
			name       TEXT PRIMARY KEY,
			owner_id   TEXT REFERENCES users(id) ON DELETE CASCADE,
			word_count INTEGER NOT NULL,
			words      TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`)
	require.NoError(t, err)
	return db
}

// testServer builds a Server over an in-memory DB and the sample word list,
// plus an HTTP client with a cookie jar so auth cookies stick.
func testServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	cfg := words.DefaultConfig()
	defList := words.ParseText("AMALGAM CACCIATORE EROTICA GAME GLAM MEGAPLEX", cfg)
	s := New(testDB(t), cfg, defList, 2)

	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}
}

func postJSON(t *testing.T, c *http.Client, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := c.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts, c := testServer(t)
	resp, err := c.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSolve(t *testing.T) {
	ts, c := testServer(t)

	t.Run("submitted words", func(t *testing.T) {
		resp := postJSON(t, c, ts.URL+"/solve", solveReq{
			Words: "amalgam cacciatore erotica game glam megaplex",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decode[solveRes](t, resp)
		assert.Equal(t, 31, res.Score)
		assert.Equal(t, "ACEIORT", res.Letters)
		assert.Equal(t, "T", res.Center)
		assert.Equal(t, 2, res.Report.WordCount)
	})

	t.Run("empty body falls back to the default list", func(t *testing.T) {
		resp := postJSON(t, c, ts.URL+"/solve", solveReq{})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decode[solveRes](t, resp)
		assert.Equal(t, 31, res.Score)
	})

	t.Run("no pangram is a 422, not a degenerate result", func(t *testing.T) {
		resp := postJSON(t, c, ts.URL+"/solve", solveReq{Words: "game glam amalgam"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestDictionaryLifecycle(t *testing.T) {
	ts, c := testServer(t)

	// Mutations require auth.
	resp := postJSON(t, c, ts.URL+"/dictionaries", dictCreateReq{Name: "mine", Words: "erotica taco"})
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Sign up; the auth cookie lands in the jar.
	resp = postJSON(t, c, ts.URL+"/auth/signup", map[string]string{
		"Username": "tester", "Password": "hunter2hunter2",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Create.
	resp = postJSON(t, c, ts.URL+"/dictionaries", dictCreateReq{
		Name:  "sample",
		Words: "amalgam cacciatore erotica game glam megaplex",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dictInfo](t, resp)
	assert.Equal(t, "sample", created.Name)
	assert.Equal(t, 6, created.WordCount)

	// Duplicate name conflicts.
	resp = postJSON(t, c, ts.URL+"/dictionaries", dictCreateReq{Name: "sample", Words: "erotica"})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// List.
	resp, err := c.Get(ts.URL + "/dictionaries")
	require.NoError(t, err)
	list := decode[[]dictInfo](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, 6, list[0].WordCount)

	// Solve the stored list.
	resp = postJSON(t, c, ts.URL+"/dictionaries/sample/solve", struct{}{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[solveRes](t, resp)
	assert.Equal(t, 31, res.Score)
	assert.Equal(t, "ACEIORT", res.Letters)

	// Report for an explicit honeycomb.
	resp, err = c.Get(ts.URL + "/dictionaries/sample/report?letters=AEGLMPX&center=G")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rep := decode[struct {
		TotalScore int `json:"totalScore"`
		WordCount  int `json:"wordCount"`
	}](t, resp)
	assert.Equal(t, 24, rep.TotalScore)
	assert.Equal(t, 4, rep.WordCount)

	// Malformed honeycombs are rejected.
	resp, err = c.Get(ts.URL + "/dictionaries/sample/report?letters=AEG&center=G")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Delete.
	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/dictionaries/sample", nil)
	require.NoError(t, err)
	resp, err = c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = c.Get(ts.URL + "/dictionaries/sample")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuthMe(t *testing.T) {
	ts, c := testServer(t)

	resp, err := c.Get(ts.URL + "/auth/me")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, c, ts.URL+"/auth/signup", map[string]string{
		"Username": "someone", "Password": "longenoughpw",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = c.Get(ts.URL + "/auth/me")
	require.NoError(t, err)
	me := decode[authUser](t, resp)
	assert.Equal(t, "someone", me.Username)
}
