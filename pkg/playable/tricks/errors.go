package tricks

import (
	"errors"
)

// ErrWrongPhase happens when a card is played outside of the playing phase
var ErrWrongPhase = errors.New("cards cannot be played right now")

// ErrUnknownSeat happens when the seat id does not belong to the game
var ErrUnknownSeat = errors.New("seat not found with that ID")

// ErrNotSeatsTurn is returned when it's not the seat's turn
var ErrNotSeatsTurn = errors.New("not seat's turn")

// ErrUnknownCard is returned when the card id cannot be parsed
var ErrUnknownCard = errors.New("unknown card")

// ErrCardNotInHand happens when a seat tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in seat's hand")

// ErrGameNotOver is an error when the winner is requested before the game has ended
var ErrGameNotOver = errors.New("game is not over")

// ErrSeatCount happens when the number of seat names does not match the table
var ErrSeatCount = errors.New("wrong number of seats")

// ConfigurationError is returned when the game cannot be set up as requested
// The game state is never modified when this error is returned
type ConfigurationError struct {
	Err error
}

func (c *ConfigurationError) Error() string {
	return "configuration error: " + c.Err.Error()
}

// Unwrap returns the underlying reason
func (c *ConfigurationError) Unwrap() error {
	return c.Err
}

// IllegalMoveError is returned when an operation is not allowed in the current state
// The game state is never modified when this error is returned
type IllegalMoveError struct {
	Err error
}

func (i *IllegalMoveError) Error() string {
	return "illegal move: " + i.Err.Error()
}

// Unwrap returns the underlying reason
func (i *IllegalMoveError) Unwrap() error {
	return i.Err
}

func configurationError(err error) error {
	return &ConfigurationError{Err: err}
}

func illegalMove(err error) error {
	return &IllegalMoveError{Err: err}
}
