package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Deck and card errors
	ErrDeckExhausted ErrorCode = "DECK_EXHAUSTED"
	ErrInvalidCard   ErrorCode = "INVALID_CARD"
	ErrCardNotFound  ErrorCode = "CARD_NOT_FOUND"

	// Player action errors
	ErrIllegalSuitFollow     ErrorCode = "ILLEGAL_SUIT_FOLLOW"
	ErrInvalidPlayIndex      ErrorCode = "INVALID_PLAY_INDEX"
	ErrInvalidRedrawPosition ErrorCode = "INVALID_REDRAW_POSITION"
	ErrInvalidInput          ErrorCode = "INVALID_INPUT"

	// Table errors
	ErrNotEnoughPlayers ErrorCode = "NOT_ENOUGH_PLAYERS"
	ErrTooManyPlayers   ErrorCode = "TOO_MANY_PLAYERS"
	ErrInvalidState     ErrorCode = "INVALID_STATE"
	ErrInvalidArgument  ErrorCode = "INVALID_ARGUMENT"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
	ErrDatabaseError ErrorCode = "DATABASE_ERROR"
)

// GameError represents a game-related error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a GameError with a formatted message
func Errorf(code ErrorCode, format string, args ...interface{}) *GameError {
	return NewGameError(code, fmt.Sprintf(format, args...))
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain
func As(err error, target **GameError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}

// IsRecoverable reports whether the error is local to a single decision and
// the same actor may simply be asked again.
func IsRecoverable(err error) bool {
	var gameErr *GameError
	if !As(err, &gameErr) {
		return false
	}
	switch gameErr.Code {
	case ErrCardNotFound, ErrIllegalSuitFollow, ErrInvalidPlayIndex,
		ErrInvalidRedrawPosition, ErrInvalidInput, ErrInvalidCard:
		return true
	}
	return false
}
