package dto

import (
	"errors"
	"strings"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

type CredentialsRequest struct {
	Name     string `json:"username"`
	Password string `json:"password"`
}

func (r *CredentialsRequest) IsValid() error {
	var invalidNameErr error
	if strings.TrimSpace(r.Name) == "" {
		invalidNameErr = errors.New("username is empty")
	}

	const minEntropyBits = 50
	invalidPasswordErr := passwordvalidator.Validate(r.Password, minEntropyBits)
	return errors.Join(invalidNameErr, invalidPasswordErr)
}

type TokenResponse struct {
	Token      string `json:"token"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type PurchaseRequest struct {
	SkuID       string `json:"skuId"`
	CreatorCode string `json:"creatorCode"`
}

// HasCreatorCode reports whether the purchase should be attributed.
func (r *PurchaseRequest) HasCreatorCode() bool {
	return strings.TrimSpace(r.CreatorCode) != ""
}

type PurchaseData struct {
	TransactionID string  `json:"transactionId"`
	ItemID        string  `json:"itemId"`
	Currency      string  `json:"currency"`
	Subtotal      float64 `json:"subtotal"`
}

type PurchaseResponse struct {
	Message string       `json:"message"`
	Data    PurchaseData `json:"data"`
}

type GenerateCodeRequest struct {
	DisplayName string `json:"displayName"`
}

// CreatorSummary aggregates the program overview for the dashboard.
type CreatorSummary struct {
	GroupID            string `json:"groupId"`
	GroupName          string `json:"groupName"`
	MemberCount        int    `json:"memberCount"`
	TierCount          int    `json:"tierCount"`
	ScheduledRevShares int    `json:"scheduledRevShares"`
}

type ErrorResponse struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}
