// internal/solver/search.go
//
// Honeycomb search: enumerate every candidate honeycomb (each pangram
// letter set × each of its 7 letters as center) and pick the one whose 64
// center-containing subsets sum to the highest score in the points table.
//
// Determinism:
//   - Candidates are scored independently, so ties are possible; the winner
//     is the candidate that is smallest under Honeycomb.Before (canonical
//     letter string, then center letter).
//   - The parallel search merges per-worker maxima under the same order,
//     so the result does not depend on worker count or scheduling.

package solver

import (
	"errors"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/axel-kramer/honeycomb/internal/game"
)

// ErrNoPangram is returned when the word list contains no word with seven
// distinct letters. Without a pangram no valid honeycomb exists, so the
// search cannot produce a result.
var ErrNoPangram = errors.New("no pangram in word list: no valid honeycomb exists")

// Result is the outcome of a search: the winning honeycomb and its score.
type Result struct {
	Score     int
	Honeycomb game.Honeycomb
}

// better reports whether a should replace b as the running best.
func better(a, b Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Honeycomb.Before(b.Honeycomb)
}

// Subsets returns the 64 candidate subsets of h: every non-empty
// combination of its 7 letters that includes the center. Each of the 6
// non-center letters is independently in or out; the center is always in.
func Subsets(h game.Honeycomb) []game.LetterSet {
	center := game.LetterSet(1) << (h.Center - 'A')
	others := h.Letters &^ center
	out := make([]game.LetterSet, 0, 64)
	for sub := others; ; sub = (sub - 1) & others {
		out = append(out, sub|center)
		if sub == 0 {
			break
		}
	}
	return out
}

// Score sums the points table over the 64 candidate subsets of h. Subsets
// absent from the table contribute zero: no word uses exactly those letters.
func (t PointsTable) Score(h game.Honeycomb) int {
	center := game.LetterSet(1) << (h.Center - 'A')
	others := h.Letters &^ center
	var total int
	for sub := others; ; sub = (sub - 1) & others {
		total += t[sub|center]
		if sub == 0 {
			break
		}
	}
	return total
}

// bestOf scans a slice of pangram letter sets, trying all 7 centers of
// each, and returns the best candidate found.
func (t PointsTable) bestOf(pangrams []game.LetterSet) Result {
	best := Result{Score: -1}
	for _, set := range pangrams {
		for _, center := range set.Letters() {
			h := game.Honeycomb{Letters: set, Center: center}
			r := Result{Score: t.Score(h), Honeycomb: h}
			if better(r, best) {
				best = r
			}
		}
	}
	return best
}

// Search finds the maximum-scoring honeycomb sequentially.
func Search(t PointsTable) (Result, error) {
	pangrams := t.PangramSets()
	if len(pangrams) == 0 {
		return Result{}, ErrNoPangram
	}
	return t.bestOf(pangrams), nil
}

// SearchParallel partitions the pangram letter sets across an ants worker
// pool and merges the per-worker maxima. workers <= 1 (or a pangram count
// too small to split) falls back to the sequential search.
func SearchParallel(t PointsTable, workers int) (Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pangrams := t.PangramSets()
	if len(pangrams) == 0 {
		return Result{}, ErrNoPangram
	}
	if workers <= 1 || len(pangrams) < workers {
		return t.bestOf(pangrams), nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		// Pool construction is best-effort; the sequential path is always safe.
		return t.bestOf(pangrams), nil
	}
	defer pool.Release()

	chunk := (len(pangrams) + workers - 1) / workers
	locals := make([]Result, 0, workers)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for start := 0; start < len(pangrams); start += chunk {
		end := start + chunk
		if end > len(pangrams) {
			end = len(pangrams)
		}
		part := pangrams[start:end]
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			local := t.bestOf(part)
			mu.Lock()
			locals = append(locals, local)
			mu.Unlock()
		})
		if submitErr != nil {
			// Run inline rather than drop the partition.
			local := t.bestOf(part)
			mu.Lock()
			locals = append(locals, local)
			mu.Unlock()
			wg.Done()
		}
	}
	wg.Wait()

	best := Result{Score: -1}
	for _, r := range locals {
		if better(r, best) {
			best = r
		}
	}
	return best, nil
}
