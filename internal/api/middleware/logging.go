package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/connectfour/internal/middleware"
)

// Logging creates request logging middleware for the API.
// Requests get an X-Request-ID so client errors can be matched to log lines.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
