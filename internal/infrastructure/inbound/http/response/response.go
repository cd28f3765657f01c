package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentoffice-service/internal/custom_errors"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/pagination"
)

type MessageBody struct {
	Message string `json:"message"`
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

// Error writes the response for a service error. Data errors carry their own
// status and body; everything unrecognised is logged and hidden behind a 500.
func Error(c *gin.Context, log ports.Logger, err error) {
	if dataErr, ok := custom_errors.AsDataError(err); ok {
		c.JSON(dataErr.Status(), dataErr)
		return
	}

	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound):
		Message(c, http.StatusNotFound, "post not found")
	case errors.Is(err, custom_errors.ErrMenuItemNotFound):
		Message(c, http.StatusNotFound, "menu item not found")
	case errors.Is(err, custom_errors.ErrUserNotFound):
		Message(c, http.StatusNotFound, "user not found")
	case errors.Is(err, custom_errors.ErrStudentOfficeNotFound):
		Message(c, http.StatusNotFound, "student office not found")
	case errors.Is(err, custom_errors.ErrUnauthorized),
		errors.Is(err, custom_errors.ErrSessionNotFound),
		errors.Is(err, custom_errors.ErrSessionExpired):
		Message(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, custom_errors.ErrForbidden):
		Message(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, pagination.ErrInvalidCursor):
		Message(c, http.StatusBadRequest, "invalid cursor")
	case errors.Is(err, custom_errors.ErrInvalidInput):
		Message(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, custom_errors.ErrDatabaseQuery), errors.Is(err, custom_errors.ErrDatabaseScan):
		log.Error("Database error", slog.String("route", c.FullPath()), slog.String("error", err.Error()))
		Message(c, http.StatusInternalServerError, "database error")
	default:
		log.Error("Unexpected error", slog.String("route", c.FullPath()), slog.String("error", err.Error()))
		Message(c, http.StatusInternalServerError, "internal server error")
	}
}

type InvalidBody struct {
	Message    string   `json:"message"`
	Properties []string `json:"properties"`
}

// Invalid answers a request whose body or parameters failed validation.
func Invalid(c *gin.Context, properties []string) {
	if properties == nil {
		properties = []string{}
	}
	c.JSON(http.StatusBadRequest, InvalidBody{Message: "invalid request", Properties: properties})
}
