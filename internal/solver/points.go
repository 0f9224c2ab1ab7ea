// internal/solver/points.go
//
// The points table: the one precomputation that makes the honeycomb search
// tractable. Folding the word list into per-letter-set score totals
// decouples the search cost from the size of the dictionary — after this
// step a candidate honeycomb is scored from 64 map lookups, never by
// rescanning words.

package solver

import (
	"sort"

	"github.com/axel-kramer/honeycomb/internal/game"
	"github.com/axel-kramer/honeycomb/internal/words"
)

// PointsTable maps a canonical letter set to the summed scores of every
// playable word built from exactly those letters. Built once per word list
// and read-only afterwards, so concurrent workers share it without locks.
type PointsTable map[game.LetterSet]int

// BuildPointsTable folds the filtered word list into a PointsTable in a
// single pass. Iteration order does not matter; summation commutes.
func BuildPointsTable(list words.List) PointsTable {
	table := make(PointsTable)
	for _, w := range list.Words() {
		table[game.NewLetterSet(w)] += game.WordScore(w)
	}
	return table
}

// Total returns the sum of all entries. It equals the total score of the
// word list the table was built from.
func (t PointsTable) Total() int {
	var total int
	for _, pts := range t {
		total += pts
	}
	return total
}

// PangramSets returns the keys with exactly seven distinct letters, sorted
// by canonical string. Only these can form honeycombs: a valid honeycomb
// must admit at least one pangram, and a 7-letter honeycomb is its
// pangram's letter set.
func (t PointsTable) PangramSets() []game.LetterSet {
	var sets []game.LetterSet
	for s := range t {
		if s.Size() == game.GameSize {
			sets = append(sets, s)
		}
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].String() < sets[j].String()
	})
	return sets
}
