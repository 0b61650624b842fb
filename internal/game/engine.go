// internal/game/engine.go
//
// Core game engine for a single Wordle game.
// Responsibilities:
//   - Create games from an explicit secret or a random dictionary member.
//   - Validate and apply guesses (dictionary membership, guess budget).
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Derive the outcome from the guess history: playing → won/lost.
//
// Notes:
//   - The dictionary is supplied by the words package; the engine does no I/O.
//   - Randomness comes from an explicit random.Source so games are reproducible.

package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// DefaultMaxGuesses is the classic number of rows on a Wordle board.
const DefaultMaxGuesses = 6

// Game holds the state of a single Wordle game. It is not safe for
// concurrent use; each game belongs to one driver.
type Game struct {
	ID         string
	secret     string
	dict       *words.Dictionary
	history    []GuessResult
	maxGuesses int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithMaxGuesses overrides the guess budget. Values below 1 are ignored.
func WithMaxGuesses(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxGuesses = n
		}
	}
}

// New constructs a game with a fixed secret. The secret must be a dictionary
// word; anything else is a caller bug reported as ErrInvalidSecret.
func New(dict *words.Dictionary, secret string, opts ...Option) (*Game, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if dict == nil || !dict.Contains(secret) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	g := &Game{
		ID:         uuid.NewString(),
		secret:     secret,
		dict:       dict,
		history:    []GuessResult{},
		maxGuesses: DefaultMaxGuesses,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewRandom constructs a game whose secret is a uniformly random dictionary word.
func NewRandom(dict *words.Dictionary, rnd random.Source, opts ...Option) (*Game, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, words.ErrEmptyDictionary
	}
	return New(dict, dict.Random(rnd), opts...)
}

// SubmitGuess validates and scores a guess, appending its feedback to the
// history. Rejected guesses leave the game untouched.
//
// Validation rules, in order:
//   - Guess must be in the dictionary (ErrUnknownWord).
//   - History must be below the budget (ErrGuessBudgetExhausted).
//   - Game must not be won already (ErrAlreadySolved).
func (g *Game) SubmitGuess(word string) (GuessResult, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if !g.dict.Contains(word) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	if len(g.history) >= g.maxGuesses {
		return nil, ErrGuessBudgetExhausted
	}
	if g.outcome() == Win {
		return nil, ErrAlreadySolved
	}

	res := Score(word, g.secret)
	g.history = append(g.history, res)
	return res, nil
}

// State returns a read-only snapshot of the game.
func (g *Game) State() State {
	hist := make([]GuessResult, len(g.history))
	for i, r := range g.history {
		hist[i] = append(GuessResult(nil), r...)
	}
	return State{
		History:    hist,
		Outcome:    g.outcome(),
		MaxGuesses: g.maxGuesses,
		Remaining:  g.maxGuesses - len(g.history),
		WordLength: g.dict.WordLength(),
	}
}

// Outcome derives the current outcome from the history.
func (g *Game) Outcome() Outcome { return g.outcome() }

// Secret reveals the answer, for drivers that show it when a game ends.
func (g *Game) Secret() string { return g.secret }

func (g *Game) outcome() Outcome {
	for _, r := range g.history {
		if r.Solved() {
			return Win
		}
	}
	if len(g.history) >= g.maxGuesses {
		return Loss
	}
	return Playing
}

// Score implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as CorrectPlacement.
//   - Count remaining (non‑hit) secret letters.
//
// Pass 2:
//   - Left to right over non‑hit guess letters: if there is remaining count for
//     that letter, mark CorrectLetter and decrement; otherwise IncorrectLetter.
//
// Exact matches always claim a letter before misplaced ones, and excess
// repeats in the guess are misses. Positions of guess beyond the secret's
// length are misses, so the result always has len(guess) entries.
func Score(guess, secret string) GuessResult {
	n := len(guess)
	res := make(GuessResult, n)

	// Letter pool for the non‑hit positions of the secret.
	var counts [256]int

	for i := 0; i < len(secret); i++ {
		if i < n && guess[i] == secret[i] {
			continue
		}
		counts[secret[i]]++
	}

	// First pass: hits.
	for i := 0; i < n; i++ {
		res[i].Letter = guess[i]
		if i < len(secret) && guess[i] == secret[i] {
			res[i].Mark = CorrectPlacement
		}
	}

	// Second pass: presents/misses for non‑hit tiles.
	for i := 0; i < n; i++ {
		if res[i].Mark == CorrectPlacement {
			continue
		}
		c := guess[i]
		if counts[c] > 0 {
			res[i].Mark = CorrectLetter
			counts[c]--
		} else {
			res[i].Mark = IncorrectLetter
		}
	}
	return res
}
