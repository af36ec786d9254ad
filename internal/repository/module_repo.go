package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbuddy/internal/model"
)

// ModuleRepo handles MongoDB operations for learning modules
type ModuleRepo interface {
	Count(ctx context.Context) (int64, error)
	UpsertMany(ctx context.Context, modules []model.LearningModule) error
	List(ctx context.Context, stage model.Stage, limit int64) ([]*model.LearningModule, error)
	GetByID(ctx context.Context, id string) (*model.LearningModule, error)
}

type moduleRepo struct {
	collection *mongo.Collection
}

// NewModuleRepo creates a new learning module repository
func NewModuleRepo(db *mongo.Database) ModuleRepo {
	return &moduleRepo{
		collection: db.Collection(modulesCollection),
	}
}

func (r *moduleRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// UpsertMany writes modules keyed by id, so reseeding never duplicates
func (r *moduleRepo) UpsertMany(ctx context.Context, modules []model.LearningModule) error {
	if len(modules) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, len(modules))
	for i := range modules {
		writes[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": modules[i].ID}).
			SetReplacement(modules[i]).
			SetUpsert(true)
	}
	if _, err := r.collection.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("upsert modules: %w", err)
	}
	return nil
}

func (r *moduleRepo) List(ctx context.Context, stage model.Stage, limit int64) ([]*model.LearningModule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, stageFilter(stage), opts)
	if err != nil {
		return nil, fmt.Errorf("find modules: %w", err)
	}
	defer cursor.Close(ctx)

	modules := []*model.LearningModule{}
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, fmt.Errorf("decode modules: %w", err)
	}
	return modules, nil
}

func (r *moduleRepo) GetByID(ctx context.Context, id string) (*model.LearningModule, error) {
	var module model.LearningModule
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&module)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find module: %w", err)
	}
	return &module, nil
}
