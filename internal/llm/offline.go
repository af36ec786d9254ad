package llm

import "context"

// OfflineReply is returned by OfflineGenerator
const OfflineReply = "FinBuddy's AI assistant is not configured right now, but your progress has been saved. " +
	"In the meantime, try a learning module or a quiz!"

// OfflineGenerator answers with a fixed reply; used when no API key is set
type OfflineGenerator struct{}

func (OfflineGenerator) Generate(_ context.Context, _ Request) (string, error) {
	return OfflineReply, nil
}

func (OfflineGenerator) ModelID() string {
	return "offline"
}
