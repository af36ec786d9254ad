package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrProfileNotFound = errors.New("user profile not found")
	ErrModuleNotFound  = errors.New("module not found")
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrSessionBusy     = errors.New("session is busy")
	ErrGeneration      = errors.New("text generation failed")
)

// InvalidRequestError carries a client-facing reason and matches
// ErrInvalidRequest under errors.Is
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return ErrInvalidRequest.Error() + ": " + e.Reason
}

func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

func invalidf(format string, args ...interface{}) error {
	return &InvalidRequestError{Reason: fmt.Sprintf(format, args...)}
}
