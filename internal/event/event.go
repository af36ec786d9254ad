package event

import "time"

// Type identifies a gamification event and doubles as the routing key
type Type string

const (
	ChatMessage     Type = "chat.message"
	BadgeAwarded    Type = "badge.awarded"
	LevelUp         Type = "level.up"
	ModuleCompleted Type = "module.completed"
	QuizSubmitted   Type = "quiz.submitted"
)

// Event is the message body published to the exchange
type Event struct {
	Type      Type                   `json:"type"`
	SessionID string                 `json:"session_id"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// New stamps an event with the current time
func New(t Type, sessionID string, payload map[string]interface{}) *Event {
	return &Event{
		Type:      t,
		SessionID: sessionID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}
