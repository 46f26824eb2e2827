package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"exercise_tracker/internal/models"

	"github.com/google/uuid"
)

// Dates are stored as YYYY-MM-DD text so that string order equals calendar order.
const sqliteDateLayout = "2006-01-02"

type ExerciseSQLite struct {
	db *sql.DB
}

func NewExerciseSQLite(db *sql.DB) *ExerciseSQLite { return &ExerciseSQLite{db: db} }

var _ ExerciseRepo = (*ExerciseSQLite)(nil)

const insertExerciseSQL = `
		INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES (?, ?, ?, ?, ?)
	`

// Append inserts an exercise. If ID is empty it is generated.
func (r *ExerciseSQLite) Append(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Date = models.TruncateToDate(e.Date)

	_, err := r.db.ExecContext(ctx, insertExerciseSQL,
		e.ID,
		e.UserID,
		e.Description,
		e.Duration,
		e.Date.Format(sqliteDateLayout),
	)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("insert exercise for user %q: %w", e.UserID, err)
	}
	return e, nil
}

// whereClause builds the shared filter for List and Count.
func whereClause(userID string, f models.LogFilter) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !f.From.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, f.From.Format(sqliteDateLayout))
	}
	if !f.To.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, f.To.Format(sqliteDateLayout))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns the user's exercises within [From, To], ordered by date ASC.
func (r *ExerciseSQLite) List(ctx context.Context, userID string, f models.LogFilter) ([]models.Exercise, error) {
	where, args := whereClause(userID, f)

	q := `SELECT id, user_id, description, duration, date FROM exercises` + where + ` ORDER BY date ASC, rowid ASC`
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select exercises for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Exercise, 0, 32)
	for rows.Next() {
		var (
			e    models.Exercise
			date string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &date); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if e.Date, err = time.Parse(sqliteDateLayout, date); err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", date, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return out, nil
}

// Count returns how many of the user's exercises fall within [From, To].
func (r *ExerciseSQLite) Count(ctx context.Context, userID string, f models.LogFilter) (int64, error) {
	where, args := whereClause(userID, f)

	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count exercises for user %q: %w", userID, err)
	}
	return n, nil
}
