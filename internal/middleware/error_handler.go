package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoicing_api/internal/apperrors"
	"github.com/SscSPs/invoicing_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error as
// {"error": {"message": ..., "status": ...}}. Handlers attach and return;
// this is the only place error bodies are written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperrors.StatusOf(err)
		logger := GetLoggerFromCtx(c.Request.Context())
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, apperrors.MessageOf(err)))
	}
}

// Recovery turns panics into the standard 500 error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Recovered from panic", slog.Any("panic", recovered))
		status := http.StatusInternalServerError
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, http.StatusText(status)))
	})
}

// NotFound answers unknown routes with the standard 404 error body.
func NotFound(c *gin.Context) {
	status := http.StatusNotFound
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, http.StatusText(status)))
}
