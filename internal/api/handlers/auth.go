package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/talx-hub/nexus-sdk/internal/api/dto"
	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/internal/model/player"
	"github.com/talx-hub/nexus-sdk/internal/repo"
	"github.com/talx-hub/nexus-sdk/internal/utils/auth"
)

type AuthHandler struct {
	logger *slog.Logger
	repo   player.Repository
	secret []byte
	cost   int
}

func NewAuthHandler(r player.Repository, log *slog.Logger, secret string) *AuthHandler {
	return &AuthHandler{
		logger: log,
		repo:   r,
		secret: []byte(secret),
		cost:   bcrypt.DefaultCost,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.IsValid(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cost)
	if err != nil {
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to hash password",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	p := player.Player{
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err = h.repo.Create(r.Context(), &p); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			http.Error(w, "player already exists", http.StatusConflict)
			return
		}
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to create player",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.authorize(w, r, &p)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Password == "" {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	p, err := h.repo.FindByName(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to find player",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password))
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	h.authorize(w, r, p)
}

func (h *AuthHandler) authorize(w http.ResponseWriter, r *http.Request, p *player.Player) {
	token, cookie, err := auth.Authenticate(p.ID, h.secret)
	if err != nil {
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to issue token",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &cookie)
	writeJSON(r.Context(), h.logger, w, http.StatusOK, dto.TokenResponse{
		Token:      token,
		PlayerID:   p.ID,
		PlayerName: p.Name,
	})
}
