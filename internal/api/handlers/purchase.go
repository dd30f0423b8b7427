package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	nexus "github.com/talx-hub/nexus-sdk"
	"github.com/talx-hub/nexus-sdk/internal/api/dto"
	"github.com/talx-hub/nexus-sdk/internal/api/middlewares"
	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/internal/model/player"
	"github.com/talx-hub/nexus-sdk/internal/repo"
)

const (
	MsgPurchaseSuccessful = "Purchase Successful"
	platformDesktop       = "desktop"
	statusCompleted       = "completed"
)

// Item is a catalog entry sold by the demo store.
type Item struct {
	ID          string
	SkuID       string
	Description string
	Currency    string
	Price       float64
}

func DefaultCatalog() map[string]Item {
	return map[string]Item{
		"sku_healing_pot": {
			ID: "item_1234", SkuID: "sku_healing_pot", Description: "Healing Pot",
			Currency: "USD", Price: 49.99,
		},
		"sku_gem_pack": {
			ID: "item_2001", SkuID: "sku_gem_pack", Description: "Gem Pack",
			Currency: "JPY", Price: 1000,
		},
		"sku_season_pass": {
			ID: "item_3100", SkuID: "sku_season_pass", Description: "Season Pass",
			Currency: "EUR", Price: 9.99,
		},
	}
}

type TransactionNotifier interface {
	Notify(details nexus.TransactionDetails) error
}

type PurchaseHandler struct {
	logger   *slog.Logger
	repo     player.Repository
	notifier TransactionNotifier
	catalog  map[string]Item
	now      func() time.Time
}

func NewPurchaseHandler(r player.Repository, n TransactionNotifier, log *slog.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		logger:   log,
		repo:     r,
		notifier: n,
		catalog:  DefaultCatalog(),
		now:      time.Now,
	}
}

// PurchaseItem charges the player through the mocked gateway, answers, and
// only then hands a creator-coded purchase to the notifier.
func (h *PurchaseHandler) PurchaseItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playerID, ok := middlewares.PlayerID(ctx)
	if !ok {
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	var req dto.PurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.SkuID) == "" {
		writeError(ctx, h.logger, w, http.StatusBadRequest, "skuId is required")
		return
	}
	item, ok := h.catalog[req.SkuID]
	if !ok {
		writeError(ctx, h.logger, w, http.StatusNotFound, "unknown skuId")
		return
	}

	amount, err := model.FromFloat(item.Price, item.Currency)
	if err != nil {
		h.logger.LogAttrs(ctx,
			slog.LevelError,
			"invalid catalog price",
			slog.String("sku_id", item.SkuID),
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "purchase failed")
		return
	}

	at := h.now().UTC()
	before, err := h.repo.RecordPurchase(ctx, playerID, amount.Minor(), amount.Currency(), at)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "authentication failed", http.StatusUnauthorized)
			return
		}
		h.logger.LogAttrs(ctx,
			slog.LevelError,
			"failed to record purchase",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "purchase failed")
		return
	}

	transactionID := uuid.NewString()
	writeJSON(ctx, h.logger, w, http.StatusOK, dto.PurchaseResponse{
		Message: MsgPurchaseSuccessful,
		Data: dto.PurchaseData{
			TransactionID: transactionID,
			ItemID:        item.ID,
			Currency:      amount.Currency(),
			Subtotal:      amount.ToFloat64(),
		},
	})

	if !req.HasCreatorCode() {
		return
	}
	details := buildTransaction(before, item, amount, strings.TrimSpace(req.CreatorCode), transactionID, at)
	if err = h.notifier.Notify(details); err != nil {
		h.logger.LogAttrs(ctx,
			slog.LevelWarn,
			"transaction not scheduled for attribution",
			slog.String("transaction_id", transactionID),
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

// buildTransaction reports the buyer's history as it was before this purchase.
func buildTransaction(before *player.Player, item Item, amount model.Amount,
	code, transactionID string, at time.Time,
) nexus.TransactionDetails {
	spendCurrency := before.TotalSpendCurrency
	if spendCurrency == "" {
		spendCurrency = amount.Currency()
	}
	var spendTotal float64
	if spend, err := model.FromMinor(before.TotalSpendMinor, spendCurrency); err == nil {
		spendTotal = spend.ToFloat64()
	}

	var lastPurchase string
	if !before.LastPurchaseAt.IsZero() {
		lastPurchase = before.LastPurchaseAt.UTC().Format(time.RFC3339)
	}

	return nexus.TransactionDetails{
		Metrics: &nexus.Metrics{
			JoinDate: before.JoinedAt.UTC().Format(time.RFC3339),
			Conversion: nexus.Conversion{
				LastPurchaseDate: lastPurchase,
				TotalSpendToDate: nexus.SpendTotal{
					Total:    spendTotal,
					Currency: spendCurrency,
				},
			},
		},
		PlayerName:      before.Name,
		Code:            code,
		Currency:        amount.Currency(),
		Description:     item.Description,
		Platform:        platformDesktop,
		Status:          statusCompleted,
		TransactionID:   transactionID,
		TransactionDate: at.Format(time.RFC3339),
		SkuID:           item.SkuID,
		Subtotal:        amount.ToFloat64(),
	}
}
