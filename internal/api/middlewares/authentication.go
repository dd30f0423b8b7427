package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/internal/utils/auth"
)

func Authentication(secret []byte, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		authFunc := func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := auth.TokenFromRequest(r)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelInfo,
					"failed to find token in request",
				)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}

			claims, err := auth.CheckToken(tokenStr, secret)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelInfo,
					"authentication failed",
					slog.Any(model.KeyLoggerError, err),
				)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}

			idCtx := context.WithValue(
				r.Context(), model.KeyContextPlayerID, claims.PlayerID)
			next.ServeHTTP(w, r.WithContext(idCtx))
		}
		return http.HandlerFunc(authFunc)
	}
}

// PlayerID returns the authenticated player stored by Authentication.
func PlayerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(model.KeyContextPlayerID).(string)
	return id, ok && id != ""
}
