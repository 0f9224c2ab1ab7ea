// internal/game/types.go
//
// Core type definitions for the honeycomb puzzle.
// Defines:
//   - LetterSet: the distinct uppercase letters of a word, packed into a bitmask.
//   - Honeycomb: a set of 7 distinct letters plus a designated center letter.

package game

import (
	"errors"
	"math/bits"
)

const (
	// GameSize is the number of distinct letters in a honeycomb. A word is a
	// pangram when its letter set reaches exactly this size.
	GameSize = 7

	// PangramBonus is the flat score bonus a pangram earns on top of its
	// length-based score.
	PangramBonus = 7
)

// LetterSet is a set of distinct uppercase letters packed into the low 26 bits
// of a uint32: bit 0 is 'A', bit 25 is 'Z'. Two words built from the same
// distinct letters map to the same LetterSet, which makes it the grouping key
// for the points table.
type LetterSet uint32

// NewLetterSet returns the letter set of an uppercase word.
// Bytes outside 'A'–'Z' are ignored; callers normalize input upstream.
func NewLetterSet(word string) LetterSet {
	var set LetterSet
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			continue
		}
		set |= 1 << (word[i] - 'A')
	}
	return set
}

// ErrBadLetterSet is returned by ParseLetterSet for input containing
// anything other than ASCII letters.
var ErrBadLetterSet = errors.New("letter set may contain only letters A-Z")

// ParseLetterSet converts a letter string such as "ACEIORT" into a LetterSet.
// Lowercase input is accepted and folded; order and repeats are irrelevant.
func ParseLetterSet(s string) (LetterSet, error) {
	var set LetterSet
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			set |= 1 << (c - 'A')
		case c >= 'a' && c <= 'z':
			set |= 1 << (c - 'a')
		default:
			return 0, ErrBadLetterSet
		}
	}
	return set, nil
}

// Size returns the number of distinct letters in the set.
func (s LetterSet) Size() int { return bits.OnesCount32(uint32(s)) }

// Has reports whether the uppercase letter c is a member of the set.
func (s LetterSet) Has(c byte) bool {
	if c < 'A' || c > 'Z' {
		return false
	}
	return s&(1<<(c-'A')) != 0
}

// ContainsAll reports whether every letter of o is also in s.
func (s LetterSet) ContainsAll(o LetterSet) bool { return s&o == o }

// String returns the canonical form: the member letters in ascending order,
// e.g. NewLetterSet("AMALGAM").String() == "AGLM".
func (s LetterSet) String() string {
	buf := make([]byte, 0, GameSize)
	for c := byte('A'); c <= 'Z'; c++ {
		if s.Has(c) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// Letters returns the member letters in ascending order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Size())
	for c := byte('A'); c <= 'Z'; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Honeycomb is one candidate puzzle configuration: exactly GameSize distinct
// letters plus a center letter that every played word must use.
type Honeycomb struct {
	Letters LetterSet // the 7 distinct letters
	Center  byte      // uppercase member of Letters
}

// Valid reports whether the honeycomb has exactly GameSize letters and a
// center drawn from them.
func (h Honeycomb) Valid() bool {
	return h.Letters.Size() == GameSize && h.Letters.Has(h.Center)
}

// Admits reports whether a word with letter set w is playable on this
// honeycomb: it must use the center and draw only from the 7 letters.
func (h Honeycomb) Admits(w LetterSet) bool {
	return w.Has(h.Center) && h.Letters.ContainsAll(w)
}

// Before imposes a deterministic total order on honeycombs, used to break
// score ties: canonical letter string first, then center letter.
func (h Honeycomb) Before(o Honeycomb) bool {
	hs, os := h.Letters.String(), o.Letters.String()
	if hs != os {
		return hs < os
	}
	return h.Center < o.Center
}
