package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"exercise_tracker/internal/models"
	"exercise_tracker/internal/repository"
)

// ExerciseInput is the raw exercise payload as received from the client.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string // optional
}

// LogQuery is the raw log filter as received from the client. Empty fields are unset.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// LoggedExercise is an exercise together with its owner.
type LoggedExercise struct {
	User     models.User
	Exercise models.Exercise
}

// ExerciseLog is a user's filtered log. Count ignores the filter's limit.
type ExerciseLog struct {
	User  models.User
	Count int64
	Log   []models.Exercise
}

type ExerciseService struct {
	userRepo     repository.UserRepo
	exerciseRepo repository.ExerciseRepo
	now          func() time.Time
}

func NewExerciseService(userRepo repository.UserRepo, exerciseRepo repository.ExerciseRepo) *ExerciseService {
	return &ExerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
}

// today returns the current UTC calendar date.
func (s *ExerciseService) today() time.Time {
	return models.TruncateToDate(s.now().UTC())
}

// parseDuration accepts a base-10 integer number of minutes.
func parseDuration(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, wrap(ErrInvalidDuration, err)
	}
	return n, nil
}

// resolveDate parses raw or falls back to today when raw is blank.
func (s *ExerciseService) resolveDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return s.today(), nil
	}
	d, err := models.ParseCalendarDate(raw)
	if err != nil {
		return time.Time{}, wrap(ErrInvalidDate, err)
	}
	return d, nil
}

// lookupUser returns ErrUserNotFound when the store has no such user.
func (s *ExerciseService) lookupUser(ctx context.Context, userID string) (models.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("lookup user %q: %w", userID, err)
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

func (s *ExerciseService) LogExercise(ctx context.Context, userID string, in ExerciseInput) (LoggedExercise, error) {
	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return LoggedExercise{}, err
	}

	date, err := s.resolveDate(in.Date)
	if err != nil {
		return LoggedExercise{}, err
	}
	duration, err := parseDuration(in.Duration)
	if err != nil {
		return LoggedExercise{}, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return LoggedExercise{}, ErrDescriptionRequired
	}

	saved, err := s.exerciseRepo.Append(ctx, models.Exercise{
		UserID:      user.ID,
		Description: in.Description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return LoggedExercise{}, fmt.Errorf("append exercise: %w", err)
	}
	return LoggedExercise{User: user, Exercise: saved}, nil
}

// parseLogQuery turns raw from/to/limit values into a LogFilter.
func parseLogQuery(q LogQuery) (models.LogFilter, error) {
	var f models.LogFilter
	var err error
	if strings.TrimSpace(q.From) != "" {
		if f.From, err = models.ParseCalendarDate(q.From); err != nil {
			return models.LogFilter{}, wrap(ErrInvalidFrom, err)
		}
	}
	if strings.TrimSpace(q.To) != "" {
		if f.To, err = models.ParseCalendarDate(q.To); err != nil {
			return models.LogFilter{}, wrap(ErrInvalidTo, err)
		}
	}
	if limit := strings.TrimSpace(q.Limit); limit != "" {
		if f.Limit, err = strconv.Atoi(limit); err != nil {
			return models.LogFilter{}, wrap(ErrInvalidLimit, err)
		}
	}
	return f, nil
}

// normalizeFilter truncates bounds to calendar dates and validates the range.
func normalizeFilter(f models.LogFilter) (models.LogFilter, error) {
	if !f.From.IsZero() {
		f.From = models.TruncateToDate(f.From)
	}
	if !f.To.IsZero() {
		f.To = models.TruncateToDate(f.To)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return models.LogFilter{}, ErrInvalidRange
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	return f, nil
}

// History looks up the user before parsing q, so an unknown user wins over a bad filter.
func (s *ExerciseService) History(ctx context.Context, userID string, q LogQuery) (ExerciseLog, error) {
	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return ExerciseLog{}, err
	}

	f, err := parseLogQuery(q)
	if err != nil {
		return ExerciseLog{}, err
	}
	if f, err = normalizeFilter(f); err != nil {
		return ExerciseLog{}, err
	}

	log, err := s.exerciseRepo.List(ctx, user.ID, f)
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("list exercises: %w", err)
	}
	count, err := s.exerciseRepo.Count(ctx, user.ID, f)
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("count exercises: %w", err)
	}
	if log == nil {
		log = []models.Exercise{}
	}
	return ExerciseLog{User: user, Count: count, Log: log}, nil
}
