// Package strategy holds the guessing strategies a solver can drive a game
// with. Strategies only read game state; the driver submits their guesses.
package strategy

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Strategy proposes the next guess for a game.
type Strategy interface {
	// NextGuess returns a dictionary word to submit next.
	NextGuess(state game.State) (string, error)
}

// Strategy names accepted by New.
const (
	NameRandom    = "random"
	NameNarrowing = "narrowing"
)

var (
	// ErrNoCandidates means no word is consistent with the feedback so far.
	ErrNoCandidates = errors.New("strategy: no candidate words left")

	// ErrUnknownStrategy is returned by New for an unrecognised name.
	ErrUnknownStrategy = errors.New("strategy: unknown strategy")
)

// Names lists the strategies New understands.
func Names() []string { return []string{NameRandom, NameNarrowing} }

// New builds a fresh strategy by name. Every call returns an independent
// instance with its own candidate pool.
func New(name string, dict *words.Dictionary, rnd random.Source) (Strategy, error) {
	switch name {
	case NameRandom:
		return NewRandom(dict, rnd), nil
	case NameNarrowing, "":
		return NewNarrowing(dict, rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
