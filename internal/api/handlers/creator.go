package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	nexus "github.com/talx-hub/nexus-sdk"
	"github.com/talx-hub/nexus-sdk/internal/api/dto"
	"github.com/talx-hub/nexus-sdk/internal/api/middlewares"
	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/internal/model/player"
	"github.com/talx-hub/nexus-sdk/internal/repo"
	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

const URLParamPlayerID = "playerId"

type CreatorProgram interface {
	GetAllMembers(ctx context.Context, params *nexus.ListParams) (*nexus.AllMembersResponse, error)
	GetMemberByPlayerID(ctx context.Context, playerID string, params *nexus.GroupParams,
	) (*nexus.Member, error)
	GenerateCode(ctx context.Context, req nexus.GenerateCodeRequest, params *nexus.GroupParams,
	) (*nexus.GenerateCodeResponse, error)
	GetGroupTiers(ctx context.Context, params *nexus.ListParams) (*nexus.GroupTiersResponse, error)
	ListScheduledRevShares(ctx context.Context, params *nexus.ListParams,
	) (*nexus.ListScheduledRevSharesResponse, error)
}

type CreatorHandler struct {
	logger  *slog.Logger
	program CreatorProgram
	repo    player.Repository
	groupID string
}

func NewCreatorHandler(program CreatorProgram, r player.Repository, groupID string, log *slog.Logger,
) *CreatorHandler {
	return &CreatorHandler{
		logger:  log,
		program: program,
		repo:    r,
		groupID: groupID,
	}
}

func (h *CreatorHandler) groupParams() *nexus.GroupParams {
	if h.groupID == "" {
		return nil
	}
	return &nexus.GroupParams{GroupID: h.groupID}
}

func (h *CreatorHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	params, err := h.listParams(r)
	if err != nil {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.program.GetAllMembers(r.Context(), params)
	if err != nil {
		h.writeSDKError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), h.logger, w, http.StatusOK, resp)
}

func (h *CreatorHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, URLParamPlayerID)
	if playerID == "" {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, "playerId is required")
		return
	}

	resp, err := h.program.GetMemberByPlayerID(r.Context(), playerID, h.groupParams())
	if err != nil {
		h.writeSDKError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), h.logger, w, http.StatusOK, resp)
}

// GenerateCode enrolls the authenticated player as a creator.
// The display name defaults to the player's name.
func (h *CreatorHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playerID, ok := middlewares.PlayerID(ctx)
	if !ok {
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	var req dto.GenerateCodeRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(ctx, h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.repo.FindByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "authentication failed", http.StatusUnauthorized)
			return
		}
		h.logger.LogAttrs(ctx,
			slog.LevelError,
			"failed to find player",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "failed to generate code")
		return
	}

	name := req.DisplayName
	if name == "" {
		name = p.Name
	}
	resp, err := h.program.GenerateCode(ctx, nexus.GenerateCodeRequest{
		PlayerMetadata: &nexus.PlayerMetadata{DisplayName: name},
		PlayerID:       p.ID,
	}, h.groupParams())
	if err != nil {
		h.writeSDKError(ctx, w, err)
		return
	}
	writeJSON(ctx, h.logger, w, http.StatusOK, resp)
}

// Summary fetches the group counters concurrently. Any failed call fails
// the whole summary.
func (h *CreatorHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var (
		members   *nexus.AllMembersResponse
		tiers     *nexus.GroupTiersResponse
		revShares *nexus.ListScheduledRevSharesResponse
	)
	firstPage := &nexus.ListParams{GroupID: h.groupID, Page: 1, PageSize: 1}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		members, err = h.program.GetAllMembers(ctx, firstPage)
		return err //nolint: wrapcheck // kinds are mapped below
	})
	g.Go(func() error {
		var err error
		tiers, err = h.program.GetGroupTiers(ctx, firstPage)
		return err //nolint: wrapcheck // kinds are mapped below
	})
	g.Go(func() error {
		var err error
		revShares, err = h.program.ListScheduledRevShares(ctx, firstPage)
		return err //nolint: wrapcheck // kinds are mapped below
	})
	if err := g.Wait(); err != nil {
		h.writeSDKError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), h.logger, w, http.StatusOK, dto.CreatorSummary{
		GroupID:            members.GroupID,
		GroupName:          members.GroupName,
		MemberCount:        members.TotalCount,
		TierCount:          tiers.TotalCount,
		ScheduledRevShares: revShares.TotalCount,
	})
}

func (h *CreatorHandler) listParams(r *http.Request) (*nexus.ListParams, error) {
	q := r.URL.Query()
	params := &nexus.ListParams{GroupID: h.groupID}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return nil, errors.New("page must be a positive integer")
		}
		params.Page = page
	}
	if v := q.Get("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			return nil, errors.New("pageSize must be a positive integer")
		}
		params.PageSize = size
	}
	return params, nil
}

// StatusOf maps a client error to the status this backend answers with.
// Failures on the Nexus side are reported as a bad gateway, except a
// missing resource, which passes through as 404.
func StatusOf(err error) int {
	var e *serviceerrs.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case serviceerrs.KindValidation, serviceerrs.KindBadRequest:
		return http.StatusBadRequest
	case serviceerrs.KindConfiguration:
		return http.StatusServiceUnavailable
	case serviceerrs.KindServer:
		if e.HTTPStatus == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

func (h *CreatorHandler) writeSDKError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusOf(err)
	resp := dto.ErrorResponse{Message: http.StatusText(status)}

	var e *serviceerrs.Error
	if errors.As(err, &e) {
		resp = dto.ErrorResponse{Kind: e.Code(), Message: e.Message, Status: e.Status}
	}
	h.logger.LogAttrs(ctx,
		slog.LevelWarn,
		"nexus request failed",
		slog.Int("status", status),
		slog.Any(model.KeyLoggerError, err),
	)
	writeJSON(ctx, h.logger, w, status, resp)
}
