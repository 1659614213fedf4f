// Package response owns the HTTP boundary: the response envelope, request
// binding, and the single exhaustive translation from the internal error
// taxonomy to status codes. Internal detail is logged here and never leaves
// the process.
package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"taskdeck-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Envelope is the wire shape of every response.
type Envelope struct {
	Success bool                  `json:"success"`
	Data    any                   `json:"data,omitempty"`
	Message string                `json:"message,omitempty"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// Error translates any failure into the envelope. Unrecognized errors are
// treated as internal: full detail goes to the log, a generic message goes
// to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	status := http.StatusInternalServerError
	message := appErr.Message

	switch appErr.Kind {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindAuthentication:
		status = http.StatusUnauthorized
	case apperror.KindAuthorization:
		status = http.StatusForbidden
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindInternal:
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", appErr.Error(),
		)
		message = "internal server error"
	}

	c.JSON(status, Envelope{Success: false, Message: message, Errors: appErr.Fields})
}

// Bind decodes the JSON body into dst and converts decode/binding failures
// into field-tagged validation errors.
func Bind(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]apperror.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, apperror.FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: bindingMessage(fe),
				})
			}
			return apperror.Validation("validation failed", fields...)
		}
		return apperror.Validation("invalid request body")
	}
	return nil
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
