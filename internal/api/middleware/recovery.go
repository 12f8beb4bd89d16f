package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/connectfour/internal/api/apierr"
	"github.com/mcoot/connectfour/internal/middleware"
)

// Recovery converts panics into an INTERNAL_ERROR JSON body carrying the
// request id
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError(w.Header().Get(middleware.RequestIDHeader)))
	})
}
