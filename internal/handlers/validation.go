package handlers

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"exercise_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators makes field errors on gin's validator report the
// form/query name instead of the Go field name.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
}

// bindingErrorMessage turns the first validation failure into a client message.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	default:
		return "invalid " + fe.Field()
	}
}

// bind binds body or query into dst and answers with a validation error on failure.
// Returns false if the request was already handled.
func (h *Handler) bind(c *gin.Context, dst any, bindFn func(any) error, logKey string) bool {
	if err := bindFn(dst); err != nil {
		h.respondError(c, service.Validation(bindingErrorMessage(err), err), "", logKey)
		return false
	}
	return true
}
