package player

import (
	"context"
	"time"
)

// Player is a game account of the demo backend.
type Player struct {
	JoinedAt           time.Time `json:"joined_at"`
	LastPurchaseAt     time.Time `json:"last_purchase_at"`
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	PasswordHash       string    `json:"-"`
	TotalSpendCurrency string    `json:"total_spend_currency"`
	TotalSpendMinor    int64     `json:"total_spend_minor"`
}

type Repository interface {
	Create(ctx context.Context, p *Player) error
	FindByID(ctx context.Context, id string) (*Player, error)
	FindByName(ctx context.Context, name string) (*Player, error)
	RecordPurchase(ctx context.Context, id string, minor int64, currency string, at time.Time) (*Player, error)
}
