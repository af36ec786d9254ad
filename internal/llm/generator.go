// Package llm wraps the text-generation provider used by chat.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider produced no text
var ErrEmptyResponse = errors.New("empty response from model")

// Request is a single-turn generation: a system prompt and one user message
type Request struct {
	System  string
	Message string
}

// Generator produces a text reply for a request
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	ModelID() string
}
