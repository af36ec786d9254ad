package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbuddy/internal/model"
)

// ChatRepo handles MongoDB operations for chat history
type ChatRepo interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string, limit int64) ([]*model.ChatMessage, error)
}

type chatRepo struct {
	collection *mongo.Collection
}

// NewChatRepo creates a new chat history repository
func NewChatRepo(db *mongo.Database) ChatRepo {
	return &chatRepo{
		collection: db.Collection(chatCollection),
	}
}

func (r *chatRepo) Create(ctx context.Context, msg *model.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *chatRepo) ListBySession(ctx context.Context, sessionID string, limit int64) ([]*model.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find chat history: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*model.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode chat history: %w", err)
	}
	return messages, nil
}
