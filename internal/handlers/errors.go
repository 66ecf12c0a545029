package handlers

import (
	"errors"
	"net/http"

	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// errorStatus maps a service error onto an HTTP status and a stable machine readable code
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity, "validation"
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, services.ErrConfiguration):
		return http.StatusInternalServerError, "configuration"
	case errors.Is(err, services.ErrStorage):
		return http.StatusServiceUnavailable, "storage_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// respondError writes the JSON error for err. Server side failures are attached to the gin
// context for the request logger and reported to Sentry when it is enabled.
func respondError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil && status != http.StatusServiceUnavailable {
			hub.CaptureException(err)
		}
		logger.FromContext(c.Request.Context()).Error("Request failed", "path", c.FullPath(), "code", code, "error", err)
	}
	if services.IsRetryable(err) {
		c.Header("Retry-After", "1")
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
