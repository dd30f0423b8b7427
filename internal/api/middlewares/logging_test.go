package middlewares

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/talx-hub/nexus-sdk/internal/utils/logger"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context(), nil).LogAttrs(context.Background(), slog.LevelInfo, "inside")
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.RequestID(Logging(base)(next))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Contains(t, buf.String(), "msg=inside")
	assert.Contains(t, buf.String(), "request_id=")
	assert.Contains(t, buf.String(), "path=/ping")
}
