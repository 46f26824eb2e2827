package service

import (
	"context"
	"errors"
	"testing"

	"exercise_tracker/internal/models"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	u, err := svc.CreateUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID == "" || u.Username != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(repo.created) != 1 || repo.created[0] != "alice" {
		t.Fatalf("repo calls: %v", repo.created)
	}
}

func TestUserService_CreateUser_EmptyUsernamePassesThrough(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	if _, err := NewUserService(repo).CreateUser(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 || repo.created[0] != "" {
		t.Fatalf("expected empty username to be stored, got %v", repo.created)
	}
}

func TestUserService_CreateUser_RepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("db down")
	_, err := NewUserService(&fakeUserRepo{err: repoErr}).CreateUser(context.Background(), "x")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
	if KindOf(err) != KindInternal {
		t.Fatalf("expected internal kind")
	}
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	t.Run("returns repo users", func(t *testing.T) {
		t.Parallel()
		repo := &fakeUserRepo{listed: []models.User{{ID: "1", Username: "a"}, {ID: "2", Username: "b"}}}
		got, err := NewUserService(repo).ListUsers(context.Background())
		if err != nil || len(got) != 2 {
			t.Fatalf("got %+v, %v", got, err)
		}
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		t.Parallel()
		got, err := NewUserService(&fakeUserRepo{}).ListUsers(context.Background())
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v, %v", got, err)
		}
	})
}
