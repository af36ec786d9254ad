// Package eventtest provides an in-memory event.Publisher for tests.
package eventtest

import (
	"context"
	"sync"

	"finbuddy/internal/event"
)

// Publisher records published events
type Publisher struct {
	mu     sync.Mutex
	Events []event.Event
	Err    error
}

func (p *Publisher) Publish(_ context.Context, ev *event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, *ev)
	return nil
}

func (p *Publisher) Close() error { return nil }

// Types returns the recorded event types in publish order
func (p *Publisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, len(p.Events))
	for i, ev := range p.Events {
		out[i] = ev.Type
	}
	return out
}
