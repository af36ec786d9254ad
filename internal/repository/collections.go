package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbuddy/internal/model"
)

const (
	profilesCollection = "user_profiles"
	chatCollection     = "chat_history"
	modulesCollection  = "learning_modules"
	quizzesCollection  = "quizzes"
)

// EnsureIndexes creates the lookup indexes the repositories rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		coll   string
		keys   bson.D
		unique bool
	}{
		{profilesCollection, bson.D{{Key: "session_id", Value: 1}}, true},
		{profilesCollection, bson.D{{Key: "total_xp", Value: -1}}, false},
		{chatCollection, bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}}, false},
		{modulesCollection, bson.D{{Key: "id", Value: 1}}, true},
		{modulesCollection, bson.D{{Key: "user_stage", Value: 1}, {Key: "order_index", Value: 1}}, false},
		{quizzesCollection, bson.D{{Key: "id", Value: 1}}, true},
	}

	for _, idx := range indexes {
		opts := options.Index().SetUnique(idx.unique)
		_, err := db.Collection(idx.coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys, Options: opts})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", idx.coll, err)
		}
	}
	return nil
}

// stageFilter matches items for the stage plus general items; an empty stage
// matches everything
func stageFilter(stage model.Stage) bson.M {
	if stage == "" {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{"user_stage": stage},
		bson.M{"user_stage": model.StageGeneral},
	}}
}
