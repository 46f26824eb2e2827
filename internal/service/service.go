package service

import (
	"context"

	"exercise_tracker/internal/models"
	"exercise_tracker/internal/repository"
)

// Users exposes user creation and listing.
type Users interface {
	CreateUser(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Exercises exposes exercise logging and the filtered exercise log.
type Exercises interface {
	LogExercise(ctx context.Context, userID string, in ExerciseInput) (LoggedExercise, error)
	History(ctx context.Context, userID string, q LogQuery) (ExerciseLog, error)
}

// Service aggregates all use cases behind the HTTP layer.
type Service struct {
	Users
	Exercises
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Users:     NewUserService(repos.Users),
		Exercises: NewExerciseService(repos.Users, repos.Exercises),
	}
}
