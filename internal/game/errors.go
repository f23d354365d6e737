package game

import "errors"

// Session misuse errors. Each maps to a control the front end should have
// disabled.
var (
	ErrNoHand          = errors.New("no hand has been dealt")
	ErrHandPlayed      = errors.New("hand has already been played")
	ErrNoSelection     = errors.New("no cards selected")
	ErrNoRedraws       = errors.New("no redraws left")
	ErrDeckExhausted   = errors.New("not enough cards left in the deck")
	ErrTooManySelected = errors.New("more cards selected than the play hand size")
)
