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

// QuizRepo handles MongoDB operations for quizzes
type QuizRepo interface {
	Count(ctx context.Context) (int64, error)
	UpsertMany(ctx context.Context, quizzes []model.Quiz) error
	List(ctx context.Context, stage model.Stage, limit int64) ([]*model.Quiz, error)
	GetByID(ctx context.Context, id string) (*model.Quiz, error)
}

type quizRepo struct {
	collection *mongo.Collection
}

// NewQuizRepo creates a new quiz repository
func NewQuizRepo(db *mongo.Database) QuizRepo {
	return &quizRepo{
		collection: db.Collection(quizzesCollection),
	}
}

func (r *quizRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *quizRepo) UpsertMany(ctx context.Context, quizzes []model.Quiz) error {
	if len(quizzes) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, len(quizzes))
	for i := range quizzes {
		writes[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": quizzes[i].ID}).
			SetReplacement(quizzes[i]).
			SetUpsert(true)
	}
	if _, err := r.collection.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("upsert quizzes: %w", err)
	}
	return nil
}

func (r *quizRepo) List(ctx context.Context, stage model.Stage, limit int64) ([]*model.Quiz, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.collection.Find(ctx, stageFilter(stage), opts)
	if err != nil {
		return nil, fmt.Errorf("find quizzes: %w", err)
	}
	defer cursor.Close(ctx)

	quizzes := []*model.Quiz{}
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, fmt.Errorf("decode quizzes: %w", err)
	}
	return quizzes, nil
}

func (r *quizRepo) GetByID(ctx context.Context, id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find quiz: %w", err)
	}
	return &quiz, nil
}
