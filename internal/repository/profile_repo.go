package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbuddy/internal/model"
)

// ProfileRepo handles MongoDB operations for user progress records
type ProfileRepo interface {
	GetBySessionID(ctx context.Context, sessionID string) (*model.UserProfile, error)
	Create(ctx context.Context, profile *model.UserProfile) error
	Save(ctx context.Context, profile *model.UserProfile) error
	UpdateStage(ctx context.Context, sessionID string, stage model.Stage) error
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection(profilesCollection),
	}
}

func (r *profileRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	profile.Normalize()
	return &profile, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *model.UserProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	profile.Normalize()

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// Save replaces the whole record for the session (last write wins)
func (r *profileRepo) Save(ctx context.Context, profile *model.UserProfile) error {
	profile.Normalize()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"session_id": profile.SessionID}, profile, opts)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// UpdateStage sets only the stage, creating a fresh record when none exists
func (r *profileRepo) UpdateStage(ctx context.Context, sessionID string, stage model.Stage) error {
	update := bson.M{
		"$set": bson.M{"user_stage": stage},
		"$setOnInsert": bson.M{
			"id":                uuid.New().String(),
			"streak_count":      0,
			"max_streak":        0,
			"total_questions":   0,
			"total_xp":          0,
			"level":             1,
			"badges":            bson.A{},
			"modules_completed": bson.A{},
			"quiz_scores":       bson.M{},
			"last_activity":     nil,
			"created_at":        time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"session_id": sessionID}, update, opts); err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	return nil
}
