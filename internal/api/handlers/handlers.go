package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/talx-hub/nexus-sdk/internal/api/dto"
	"github.com/talx-hub/nexus-sdk/internal/model"
)

var errEmptyBody = errors.New("request body is empty")

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set(model.HeaderContentType, model.MIMEApplicationJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"failed to write response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func writeError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, log, w, status, dto.ErrorResponse{Message: msg})
}

type ConfigSource interface {
	Configured() bool
}

type HealthHandler struct {
	sdk ConfigSource
}

func NewHealthHandler(sdk ConfigSource) *HealthHandler {
	return &HealthHandler{sdk: sdk}
}

// Ping answers 503 until the Nexus keys are configured.
func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	if h.sdk != nil && !h.sdk.Configured() {
		http.Error(w, "nexus client is not configured", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
