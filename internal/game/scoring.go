// internal/game/scoring.go
//
// Scoring rules for the honeycomb puzzle.
// Responsibilities:
//   - Score a single word from its length and pangram status.
//   - Detect pangrams (words using exactly 7 distinct letters).
//
// Notes:
//   - Scores are a pure function of the word itself; they never depend on
//     which honeycomb the word is played on.
//   - Words are assumed uppercase and at least 4 letters long (the words
//     package enforces both before anything reaches here).
package game

// WordScore returns the point value of a word:
//   - 4-letter words are worth 1 point.
//   - Longer words are worth their length.
//   - Pangrams earn a flat PangramBonus on top.
//
// A 4-letter word can never be a pangram, so the branches do not overlap.
func WordScore(word string) int {
	if len(word) == 4 {
		return 1
	}
	score := len(word)
	if IsPangram(word) {
		score += PangramBonus
	}
	return score
}

// IsPangram reports whether the word uses exactly GameSize distinct letters.
func IsPangram(word string) bool {
	return NewLetterSet(word).Size() == GameSize
}
