package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

const exercisesCollection = "exercises"

type ExerciseRepository struct {
	col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &ExerciseRepository{col: db.Collection(exercisesCollection)}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	res, err := r.col.InsertOne(ctx, exercise)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	exercise.ID = id
	return nil
}

func (r *ExerciseRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) ([]domain.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	cursor, err := r.col.Find(ctx, logQuery(userID, filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return exercises, nil
}

// logQuery builds the match document for a user's log. Both date bounds are
// inclusive and independent of one another.
func logQuery(userID primitive.ObjectID, filter repository.LogFilter) bson.M {
	query := bson.M{"userId": userID}

	dateFilter := bson.M{}
	if filter.From != nil {
		dateFilter["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateFilter["$lte"] = *filter.To
	}
	if len(dateFilter) > 0 {
		query["date"] = dateFilter
	}

	return query
}
