package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

type stubUserRepo struct {
	users     map[primitive.ObjectID]domain.User
	created   []domain.User
	createErr error
	listErr   error
	getErr    error
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	byID := make(map[primitive.ObjectID]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &stubUserRepo{users: byID}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = primitive.NewObjectID()
	r.created = append(r.created, *user)
	return nil
}

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

type stubExerciseRepo struct {
	created    []domain.Exercise
	listed     []domain.Exercise
	lastUserID primitive.ObjectID
	lastFilter repository.LogFilter
	createErr  error
	listErr    error
}

var _ repository.ExerciseRepository = (*stubExerciseRepo)(nil)

func (r *stubExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) error {
	if r.createErr != nil {
		return r.createErr
	}
	exercise.ID = primitive.NewObjectID()
	r.created = append(r.created, *exercise)
	return nil
}

func (r *stubExerciseRepo) ListByUser(_ context.Context, userID primitive.ObjectID, filter repository.LogFilter) ([]domain.Exercise, error) {
	r.lastUserID = userID
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.listed, nil
}
