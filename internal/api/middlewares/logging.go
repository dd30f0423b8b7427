package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/nexus-sdk/internal/utils/logger"
)

// Logging puts a logger tagged with the request id on the request context.
// It expects middleware.RequestID to run first.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			reqLog := log.With(
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), reqLog)))
		}
		return http.HandlerFunc(fn)
	}
}
