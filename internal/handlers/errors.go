package handlers

import (
	"net/http"

	"exercise_tracker/internal/metrics"
	"exercise_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing messages for internal failures.
const (
	errCreateUser  = "failed to create user"
	errListUsers   = "failed to list users"
	errAddExercise = "failed to add exercise"
	errLoadLogs    = "failed to load exercise log"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"user not found"`
}

// statusFor maps an error kind to an HTTP status.
func (h *Handler) statusFor(kind service.Kind) int {
	switch kind {
	case service.KindNotFound:
		if h.opts.legacySoftErrors {
			return http.StatusOK
		}
		return http.StatusNotFound
	case service.KindValidation:
		if h.opts.legacySoftErrors {
			return http.StatusOK
		}
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes {"error": msg}. Internal causes are never sent to clients.
func (h *Handler) respondError(c *gin.Context, err error, fallback, logKey string, kv ...interface{}) {
	kind := service.KindOf(err)
	metrics.RequestErrorsTotal.WithLabelValues(kind.String()).Inc()

	fields := append([]interface{}{"err", err, "kind", kind.String()}, kv...)
	if kind == service.KindInternal {
		h.log.Errorw(logKey, fields...)
	} else {
		h.log.Infow(logKey, fields...)
	}

	c.JSON(h.statusFor(kind), ErrorResponse{Error: service.PublicMessage(err, fallback)})
}
