package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/domain"
)

// LogFilter narrows an exercise log query. Nil bounds are open; both are
// inclusive. Limit caps the result count when positive.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

// ExerciseRepository defines persistence operations for Exercise documents.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, filter LogFilter) ([]domain.Exercise, error)
}
