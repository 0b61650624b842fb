// Package constraint decides whether a candidate word could be the secret
// given the feedback already received, and narrows candidate lists with it.
package constraint

import "github.com/robalobadob/wordle-solver/internal/game"

// SatisfiesAll reports whether word is consistent with every feedback entry.
// An empty history is satisfied by any word.
func SatisfiesAll(word string, history []game.GuessResult) bool {
	for _, fb := range history {
		if !Satisfies(word, fb) {
			return false
		}
	}
	return true
}

// Satisfies reports whether word, taken as the secret, is consistent with fb.
// All three conditions must hold:
//
//  1. word contains each letter at least as often as fb marks it hit or present.
//  2. a letter marked both hit/present and miss in fb occurs in word exactly
//     as often as it is marked hit or present.
//  3. hit positions carry the same letter in word; present and miss
//     positions carry a different one.
//
// A letter marked only as a miss is excluded at that position, not globally.
func Satisfies(word string, fb game.GuessResult) bool {
	if len(word) != len(fb) {
		return false
	}

	var have, known [256]int
	for i := 0; i < len(word); i++ {
		have[word[i]]++
	}
	for _, lr := range fb {
		if lr.Mark != game.IncorrectLetter {
			known[lr.Letter]++
		}
	}

	// at least the known letters
	for c, n := range known {
		if n > 0 && have[c] < n {
			return false
		}
	}

	// a miss next to a hit/present for the same letter pins its count
	for _, lr := range fb {
		if lr.Mark == game.IncorrectLetter && known[lr.Letter] > 0 && have[lr.Letter] != known[lr.Letter] {
			return false
		}
	}

	for i, lr := range fb {
		switch lr.Mark {
		case game.CorrectPlacement:
			if word[i] != lr.Letter {
				return false
			}
		default:
			if word[i] == lr.Letter {
				return false
			}
		}
	}
	return true
}

// Filter returns the candidates consistent with fb, in their original order.
// The input slice is not modified.
func Filter(candidates []string, fb game.GuessResult) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Satisfies(w, fb) {
			out = append(out, w)
		}
	}
	return out
}
