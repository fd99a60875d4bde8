package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

// LogExerciseInput carries the raw request fields for logging an exercise.
// Duration and Date arrive as text and are parsed here.
type LogExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// LogExerciseResult pairs the stored exercise with its owning user, which
// the response shape needs for username and id.
type LogExerciseResult struct {
	User     domain.User
	Exercise domain.Exercise
}

// HistoryQuery carries the raw query parameters of a log retrieval.
type HistoryQuery struct {
	From  string
	To    string
	Limit string
}

// HistoryResult is a user's filtered exercise log.
type HistoryResult struct {
	User      domain.User
	Exercises []domain.Exercise
}

// ExerciseService validates raw request fields and turns them into
// persistence queries.
type ExerciseService interface {
	Log(ctx context.Context, userID string, in LogExerciseInput) (*LogExerciseResult, error)
	History(ctx context.Context, userID string, q HistoryQuery) (*HistoryResult, error)
}

type exerciseService struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	now       func() time.Time
}

func NewExerciseService(users repository.UserRepository, exercises repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		users:     users,
		exercises: exercises,
		now:       time.Now,
	}
}

func (s *exerciseService) Log(ctx context.Context, userID string, in LogExerciseInput) (*LogExerciseResult, error) {
	// Check order matters: field presence, then user existence, then field
	// parsing. Callers depend on which error wins when several apply.
	if in.Description == "" || in.Duration == "" {
		return nil, ErrFieldsRequired
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(in.Duration)
	if err != nil {
		return nil, ErrInvalidDuration
	}

	date := s.now()
	if in.Date != "" {
		date, err = domain.ParseDate(in.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	exercise := domain.Exercise{
		UserID:      user.ID,
		Description: in.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, &exercise); err != nil {
		return nil, err
	}

	return &LogExerciseResult{User: *user, Exercise: exercise}, nil
}

func (s *exerciseService) History(ctx context.Context, userID string, q HistoryQuery) (*HistoryResult, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var filter repository.LogFilter
	if q.From != "" {
		from, err := domain.ParseDate(q.From)
		if err != nil {
			return nil, ErrInvalidFromDate
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := domain.ParseDate(q.To)
		if err != nil {
			return nil, ErrInvalidToDate
		}
		filter.To = &to
	}
	if q.Limit != "" {
		// An unparseable limit is ignored rather than rejected, unlike the
		// date bounds. Long-standing observable behavior; do not "fix".
		// A negative limit caps at its magnitude, matching the store's
		// cursor semantics that earlier versions relied on.
		if limit, err := strconv.Atoi(q.Limit); err == nil {
			if limit < 0 {
				limit = -limit
			}
			filter.Limit = int64(limit)
		}
	}

	exercises, err := s.exercises.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}

	return &HistoryResult{User: *user, Exercises: exercises}, nil
}

// findUser resolves a path id to a user. A malformed id cannot name any
// user, so it gets the same rejection as an unknown one.
func (s *exerciseService) findUser(ctx context.Context, userID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
