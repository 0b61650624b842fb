package game

import "errors"

var (
	// ErrInvalidSecret is a construction-time contract violation: the secret
	// is not a member of the dictionary. Callers should treat it as fatal.
	ErrInvalidSecret = errors.New("secret is not in the dictionary")

	// Guess errors. None of them consume a guess.
	ErrUnknownWord          = errors.New("not in word list")
	ErrGuessBudgetExhausted = errors.New("no more guesses available")
	ErrAlreadySolved        = errors.New("game already won")
)
