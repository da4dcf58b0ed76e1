package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-landing-mailer/internal/delivery/http/response"
	"go-landing-mailer/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				log.Warn("Request failed", "path", c.FullPath(), "status", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, http.StatusText(appErr.Code))
			return
		}

		// Never expose internal error details to clients
		log.Error("Internal Server Error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", http.StatusText(http.StatusInternalServerError))
	}
}
