package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"exercise_tracker/internal/metrics"
	"exercise_tracker/internal/models"
	"exercise_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// rawNumber holds a JSON number or string as text so the service can parse it.
type rawNumber string

func (n *rawNumber) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = rawNumber(s)
		return nil
	}
	*n = rawNumber(strings.TrimSpace(string(b)))
	return nil
}

// exerciseRequest accepts form-encoded or JSON bodies.
type exerciseRequest struct {
	Description string    `form:"description" json:"description" binding:"required"`
	Duration    rawNumber `form:"duration" json:"duration" binding:"required"`
	Date        string    `form:"date" json:"date"` // defaults to today
}

// logsQuery holds the optional log filters as sent. The service parses them after the user lookup.
type logsQuery struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

// ExerciseResponse is the owner's user record merged with the new exercise.
type ExerciseResponse struct {
	Username    string `json:"username" example:"alice"`
	Description string `json:"description" example:"run"`
	Duration    int    `json:"duration" example:"30"`
	Date        string `json:"date" example:"Sun Jan 15 2023"`
	ID          string `json:"id" example:"5f2b1c9e8d3a4b0012345678"`
}

// LogEntry is one exercise inside a log response.
type LogEntry struct {
	Description string `json:"description" example:"run"`
	Duration    int    `json:"duration" example:"30"`
	Date        string `json:"date" example:"Sun Jan 15 2023"`
}

// LogResponse is a user's exercise log. Count ignores limit.
type LogResponse struct {
	Username string     `json:"username" example:"alice"`
	Count    int64      `json:"count" example:"2"`
	ID       string     `json:"id" example:"5f2b1c9e8d3a4b0012345678"`
	Log      []LogEntry `json:"log"`
}

// @Summary      Log exercise
// @Tags         exercises
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        id           path      string  true   "User ID"
// @Param        description  formData  string  true   "Description"
// @Param        duration     formData  int     true   "Duration in minutes"
// @Param        date         formData  string  false  "Date, e.g. 2023-01-15; defaults to today"
// @Success      200  {object}  ExerciseResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users/{id}/exercises [post]
func (h *Handler) addExercise(c *gin.Context) {
	userID := c.Param("id")

	var req exerciseRequest
	if !h.bind(c, &req, c.ShouldBind, "exercise_add_bind") {
		return
	}

	res, err := h.services.LogExercise(c.Request.Context(), userID, service.ExerciseInput{
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		h.respondError(c, err, errAddExercise, "exercise_add_failed", "user_id", userID)
		return
	}
	metrics.ExercisesLoggedTotal.Inc()

	c.JSON(http.StatusOK, ExerciseResponse{
		Username:    res.User.Username,
		Description: res.Exercise.Description,
		Duration:    res.Exercise.Duration,
		Date:        models.FormatCalendarDate(res.Exercise.Date),
		ID:          res.User.ID,
	})
}

// @Summary      Exercise log
// @Tags         exercises
// @Produce      json
// @Param        id     path   string  true   "User ID"
// @Param        from   query  string  false  "Earliest date, inclusive"
// @Param        to     query  string  false  "Latest date, inclusive"
// @Param        limit  query  int     false  "Maximum number of entries"
// @Success      200  {object}  LogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users/{id}/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	userID := c.Param("id")

	var q logsQuery
	if !h.bind(c, &q, c.ShouldBindQuery, "exercise_log_bind") {
		return
	}

	res, err := h.services.History(c.Request.Context(), userID, service.LogQuery{
		From:  q.From,
		To:    q.To,
		Limit: q.Limit,
	})
	if err != nil {
		h.respondError(c, err, errLoadLogs, "exercise_log_failed", "user_id", userID)
		return
	}

	entries := make([]LogEntry, 0, len(res.Log))
	for _, e := range res.Log {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        models.FormatCalendarDate(e.Date),
		})
	}
	c.JSON(http.StatusOK, LogResponse{
		Username: res.User.Username,
		Count:    res.Count,
		ID:       res.User.ID,
		Log:      entries,
	})
}
