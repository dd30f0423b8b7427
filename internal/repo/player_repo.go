package repo

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/talx-hub/nexus-sdk/internal/model/player"
)

var (
	ErrNotFound      = errors.New("player not found")
	ErrAlreadyExists = errors.New("player already exists")
	ErrInvalidPlayer = errors.New("player name and password hash are required")
)

// PlayerRepository keeps demo players in memory.
type PlayerRepository struct {
	log    *slog.Logger
	byID   map[string]*player.Player
	byName map[string]string
	mu     sync.RWMutex
}

func NewPlayerRepository(log *slog.Logger) *PlayerRepository {
	return &PlayerRepository{
		log:    log,
		byID:   make(map[string]*player.Player),
		byName: make(map[string]string),
	}
}

// Create stores p and assigns its ID and join date when they are empty.
func (r *PlayerRepository) Create(ctx context.Context, p *player.Player) error {
	if p.Name == "" || p.PasswordHash == "" {
		return ErrInvalidPlayer
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[p.Name]; ok {
		return ErrAlreadyExists
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.JoinedAt.IsZero() {
		p.JoinedAt = time.Now().UTC()
	}

	stored := *p
	r.byID[stored.ID] = &stored
	r.byName[stored.Name] = stored.ID
	r.log.LogAttrs(ctx, slog.LevelDebug, "player created",
		slog.String("player_id", stored.ID))
	return nil
}

func (r *PlayerRepository) FindByID(_ context.Context, id string) (*player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *PlayerRepository) FindByName(ctx context.Context, name string) (*player.Player, error) {
	r.mu.RLock()
	id, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// RecordPurchase adds a purchase to the player's spend and returns the state
// before the purchase, which is what attribution metrics report.
func (r *PlayerRepository) RecordPurchase(_ context.Context, id string, minor int64,
	currency string, at time.Time,
) (*player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	before := *p
	if p.TotalSpendCurrency == "" {
		p.TotalSpendCurrency = currency
	}
	if p.TotalSpendCurrency == currency {
		p.TotalSpendMinor += minor
	}
	p.LastPurchaseAt = at
	return &before, nil
}
