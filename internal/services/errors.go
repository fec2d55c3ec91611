package services

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidID is returned for identifiers that cannot name any record.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidTransition is returned when an order may not move to the
	// requested status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports unusable caller input. Message is safe to show to
// the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsClientError reports whether err was caused by the caller's input rather
// than by the store.
func IsClientError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrInvalidID) || errors.Is(err, ErrInvalidTransition)
}

// validID reports whether id has the canonical UUID form used for every
// stored record.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
