// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - LetterResult / GuessResult: the scored form of a guess.
//   - Outcome: derived game status (playing/won/lost).
//   - State: read-only projection of a game handed to drivers and strategies.

package game

import "strings"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the secret but at a different position.
//   - "miss":    letter is absent, or all its occurrences are already accounted for.
type Mark string

const (
	CorrectPlacement Mark = "hit"
	CorrectLetter    Mark = "present"
	IncorrectLetter  Mark = "miss"
)

// LetterResult pairs a guessed letter with its mark.
type LetterResult struct {
	Letter byte `json:"letter"`
	Mark   Mark `json:"mark"`
}

// GuessResult is the feedback for one guess, one entry per guessed letter.
type GuessResult []LetterResult

// Word reassembles the guessed word.
func (r GuessResult) Word() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, lr := range r {
		b.WriteByte(lr.Letter)
	}
	return b.String()
}

// Solved reports whether every letter is a CorrectPlacement.
func (r GuessResult) Solved() bool {
	for _, lr := range r {
		if lr.Mark != CorrectPlacement {
			return false
		}
	}
	return true
}

// Outcome is the coarse status of a game. It is always derived from the
// guess history, never stored.
type Outcome string

const (
	Playing Outcome = "playing"
	Win     Outcome = "won"
	Loss    Outcome = "lost"
)

// Terminal reports whether no further guesses can change the outcome.
func (o Outcome) Terminal() bool { return o == Win || o == Loss }

// State is a snapshot of a game. History is a copy; mutating it does not
// affect the game.
type State struct {
	History    []GuessResult `json:"history"`
	Outcome    Outcome       `json:"outcome"`
	MaxGuesses int           `json:"maxGuesses"`
	Remaining  int           `json:"remaining"`
	WordLength int           `json:"wordLength"`
}

// Last returns the most recent feedback, or nil before the first guess.
func (s State) Last() GuessResult {
	if len(s.History) == 0 {
		return nil
	}
	return s.History[len(s.History)-1]
}
