// Package llmtest provides a deterministic llm.Generator for tests.
package llmtest

import (
	"context"
	"sync"

	"finbuddy/internal/llm"
)

// Generator returns Reply (or Err) and records every request
type Generator struct {
	mu    sync.Mutex
	Reply string
	Err   error
	Calls []llm.Request
}

func (g *Generator) Generate(_ context.Context, req llm.Request) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Calls = append(g.Calls, req)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Reply, nil
}

func (g *Generator) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls so far
func (g *Generator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Calls)
}
