package service

import (
	"context"
	"fmt"

	"exercise_tracker/internal/models"
	"exercise_tracker/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser stores username as given; an empty username is allowed.
func (s *UserService) CreateUser(ctx context.Context, username string) (models.User, error) {
	u, err := s.userRepo.Create(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// ListUsers returns every user; never nil on success.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
