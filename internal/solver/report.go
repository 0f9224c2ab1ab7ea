// internal/solver/report.go
//
// Report assembly for a chosen honeycomb: group the playable words by
// letter set, restricted to the honeycomb's 64 valid subsets, with
// per-word scores and summary totals. Presentation layers (HTTP, CLI)
// render this; the grouping here must match the scoring exactly, so every
// counted word lands in exactly one group.

package solver

import (
	"sort"

	"github.com/axel-kramer/honeycomb/internal/game"
	"github.com/axel-kramer/honeycomb/internal/words"
)

// ScoredWord pairs a playable word with its point value.
type ScoredWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Group is the set of playable words sharing one letter subset of the
// honeycomb.
type Group struct {
	Letters string       `json:"letters"`
	Pangram bool         `json:"pangram"`
	Score   int          `json:"score"`
	Words   []ScoredWord `json:"words"`
}

// Report summarizes everything playable on one honeycomb.
type Report struct {
	Letters    string  `json:"letters"`
	Center     string  `json:"center"`
	WordCount  int     `json:"wordCount"`
	TotalScore int     `json:"totalScore"`
	Groups     []Group `json:"groups"`
}

// BuildReport groups the word list's playable words under h.
// Groups are ordered pangram-forming subsets first (largest letter-set
// size), then by subset lexical order; words keep the list's lexical order.
func BuildReport(list words.List, h game.Honeycomb) Report {
	bySet := make(map[game.LetterSet][]ScoredWord)
	rep := Report{
		Letters: h.Letters.String(),
		Center:  string(h.Center),
	}
	for _, w := range list.Words() {
		ls := game.NewLetterSet(w)
		if !h.Admits(ls) {
			continue
		}
		score := game.WordScore(w)
		bySet[ls] = append(bySet[ls], ScoredWord{Word: w, Score: score})
		rep.WordCount++
		rep.TotalScore += score
	}

	rep.Groups = make([]Group, 0, len(bySet))
	for ls, ws := range bySet {
		g := Group{
			Letters: ls.String(),
			Pangram: ls.Size() == game.GameSize,
			Words:   ws,
		}
		for _, sw := range ws {
			g.Score += sw.Score
		}
		rep.Groups = append(rep.Groups, g)
	}
	sort.Slice(rep.Groups, func(i, j int) bool {
		gi, gj := rep.Groups[i], rep.Groups[j]
		if len(gi.Letters) != len(gj.Letters) {
			return len(gi.Letters) > len(gj.Letters)
		}
		return gi.Letters < gj.Letters
	})
	return rep
}
