package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"exercise_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

var exerciseColumns = []string{"id", "user_id", "description", "duration", "date"}

func TestExerciseSQLite_Append_GeneratesIDAndTruncatesDate(t *testing.T) {
	t.Parallel()

	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExerciseSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertExerciseSQL)).
		WithArgs(sqlmock.AnyArg(), "u-1", "run", 30, "2023-01-15").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Append(ctx(t), models.Exercise{
		UserID:      "u-1",
		Description: "run",
		Duration:    30,
		Date:        time.Date(2023, time.January, 15, 17, 45, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !got.Date.Equal(time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date not truncated: %v", got.Date)
	}
}

func TestExerciseSQLite_Append_DBError(t *testing.T) {
	t.Parallel()

	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExerciseSQLite(db)

	mock.ExpectExec("INSERT INTO exercises").WillReturnError(errors.New("down"))

	_, err := repo.Append(ctx(t), models.Exercise{UserID: "u-1", Description: "x", Duration: 1, Date: time.Now()})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
}

func TestExerciseSQLite_List_NoFilters(t *testing.T) {
	t.Parallel()

	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExerciseSQLite(db)

	rows := sqlmock.NewRows(exerciseColumns).
		AddRow("e1", "u-1", "run", 30, "2023-01-15").
		AddRow("e2", "u-1", "swim", 45, "2023-02-01")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = ? ORDER BY date ASC, rowid ASC`)).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), "u-1", models.LogFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "e1" || got[1].Description != "swim" {
		t.Fatalf("unexpected exercises: %+v", got)
	}
	if !got[1].Date.Equal(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got[1].Date)
	}
}

func TestExerciseSQLite_List_WithFiltersAndLimit(t *testing.T) {
	t.Parallel()

	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExerciseSQLite(db)

	from := time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)

	query := `SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date ASC, rowid ASC LIMIT ?`
	rows := sqlmock.NewRows(exerciseColumns).AddRow("e1", "u-1", "run", 30, "2023-01-15")

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("u-1", "2022-12-31", "2023-01-31", 1).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), "u-1", models.LogFilter{From: from, To: to, Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestExerciseSQLite_List_BadStoredDate(t *testing.T) {
	t.Parallel()

	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExerciseSQLite(db)

	rows := sqlmock.NewRows(exerciseColumns).AddRow("e1", "u-1", "run", 30, "not-a-date")
	mock.ExpectQuery("SELECT id, user_id, description, duration, date FROM exercises").
		WillReturnRows(rows)

	if _, err := repo.List(ctx(t), "u-1", models.LogFilter{}); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestExerciseSQLite_Count(t *testing.T) {
	t.Parallel()

	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExerciseSQLite(db)

	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM exercises WHERE user_id = ? AND date >= ?`)).
		WithArgs("u-1", "2023-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	// Limit must not reach the count query.
	n, err := repo.Count(ctx(t), "u-1", models.LogFilter{From: from, Limit: 1})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count: got %d, want 3", n)
	}
}

func TestExerciseSQLite_Count_Error(t *testing.T) {
	t.Parallel()

	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExerciseSQLite(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("down"))

	if _, err := repo.Count(ctx(t), "u-1", models.LogFilter{}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
