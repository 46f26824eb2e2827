package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"exercise_tracker/internal/models"

	"github.com/google/uuid"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserSQLite)(nil)

const (
	insertUserSQL     = `INSERT INTO users (id, username, created_at) VALUES (?, ?, ?)`
	selectUserByIDSQL = `SELECT id, username FROM users WHERE id = ?`
	selectUsersSQL    = `SELECT id, username FROM users ORDER BY rowid ASC`
)

// Create inserts a new user with a generated id.
func (r *UserSQLite) Create(ctx context.Context, username string) (models.User, error) {
	u := models.User{ID: uuid.NewString(), Username: username}
	_, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return models.User{}, fmt.Errorf("insert user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByIDSQL, id).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", id, err)
	}
	return &u, nil
}

// List returns all users in insertion order.
func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}
