package model

import "time"

// ChatMessage is one immutable chat turn
type ChatMessage struct {
	ID        string    `json:"id" bson:"id"`
	SessionID string    `json:"session_id" bson:"session_id"`
	Message   string    `json:"message" bson:"message"`
	Response  string    `json:"response" bson:"response"`
	Stage     Stage     `json:"user_stage" bson:"user_stage"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Stage     Stage  `json:"user_stage,omitempty"`
}

// ChatResponse is returned from POST /api/chat
type ChatResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}
