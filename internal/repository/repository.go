package repository

import (
	"context"
	"database/sql"

	"exercise_tracker/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepo persists users.
type UserRepo interface {
	Create(ctx context.Context, username string) (models.User, error)
	// GetByID returns (nil, nil) when no user has the given id.
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// ExerciseRepo persists exercises. List applies f.Limit, Count ignores it.
type ExerciseRepo interface {
	Append(ctx context.Context, e models.Exercise) (models.Exercise, error)
	List(ctx context.Context, userID string, f models.LogFilter) ([]models.Exercise, error)
	Count(ctx context.Context, userID string, f models.LogFilter) (int64, error)
}

type Repository struct {
	Users     UserRepo
	Exercises ExerciseRepo
}

// NewSQLiteRepository backs both collections with SQLite tables.
func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserSQLite(db),
		Exercises: NewExerciseSQLite(db),
	}
}

// NewMongoRepository backs both collections with MongoDB collections in db.
func NewMongoRepository(db *mongo.Database) *Repository {
	return &Repository{
		Users:     NewUserMongo(db),
		Exercises: NewExerciseMongo(db),
	}
}
