// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Filter raw text into the set of playable words (length, forbidden
//     letter, and distinct-letter constraints).
//   - Load word lists from a file, an io.Reader, or the embedded default.
//   - Hand downstream code an immutable List value (no package globals).
//
// Filter rules (Config):
//   • Words are case-normalized to uppercase.
//   • Tokens containing anything but ASCII letters are dropped.
//   • Words shorter than MinLength (raw length, default 4) are dropped.
//   • Words containing the Forbidden letter (default 'S') are dropped.
//   • Words with more than MaxDistinct distinct letters (default 7) are
//     dropped; the distinct count, not the raw length, decides this rule,
//     so long words built from few letters stay in.
//
// Empty or malformed input is not an error: it produces an empty List and
// the solver reports the missing-pangram condition downstream.

package words

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/axel-kramer/honeycomb/assets"
	"github.com/axel-kramer/honeycomb/internal/game"
)

// Config holds the filter parameters. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	MinLength   int  // minimum raw word length
	MaxDistinct int  // maximum distinct letters per word
	Forbidden   byte // uppercase letter excluded from play, 0 for none
}

// DefaultConfig returns the standard puzzle rules: length ≥ 4, at most 7
// distinct letters, and no letter 'S'.
func DefaultConfig() Config {
	return Config{MinLength: 4, MaxDistinct: game.GameSize, Forbidden: 'S'}
}

// List is an immutable, deduplicated, sorted collection of playable uppercase
// words. Construct one with ParseText, Read, LoadFile, or Load.
type List struct {
	words []string
}

// Words returns the playable words in ascending order. The returned slice is
// shared; callers must not modify it.
func (l List) Words() []string { return l.words }

// Len returns the number of playable words.
func (l List) Len() int { return len(l.words) }

// TotalScore sums the word scores of every playable word.
func (l List) TotalScore() int {
	var total int
	for _, w := range l.words {
		total += game.WordScore(w)
	}
	return total
}

// ParseText filters whitespace-separated tokens from raw text into a List.
func ParseText(raw string, cfg Config) List {
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(raw) {
		w, ok := normalize(tok, cfg)
		if !ok {
			continue
		}
		seen[w] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return List{words: out}
}

// Read consumes r line by line and filters the tokens on each line.
func Read(r io.Reader, cfg Config) (List, error) {
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			if w, ok := normalize(tok, cfg); ok {
				seen[w] = struct{}{}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return List{}, err
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return List{words: out}, nil
}

// LoadFile reads and filters a word list file (one or more words per line).
func LoadFile(path string, cfg Config) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, err
	}
	defer f.Close()
	return Read(f, cfg)
}

// Load resolves the default word list:
//  1. If WORDS_FILE is set, that file is loaded.
//  2. Otherwise the embedded default list ships with the binary.
func Load(cfg Config) (List, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return LoadFile(path, cfg)
	}
	raw, err := assets.DefaultWordText()
	if err != nil {
		return List{}, err
	}
	return ParseText(raw, cfg), nil
}

// normalize uppercases a token and applies the filter rules.
// The bool result reports whether the word is playable.
func normalize(tok string, cfg Config) (string, bool) {
	w := strings.ToUpper(strings.TrimSpace(tok))
	if len(w) < cfg.MinLength {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", false
		}
	}
	if cfg.Forbidden != 0 && strings.IndexByte(w, cfg.Forbidden) >= 0 {
		return "", false
	}
	if game.NewLetterSet(w).Size() > cfg.MaxDistinct {
		return "", false
	}
	return w, true
}
