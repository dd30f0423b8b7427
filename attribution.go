package nexus

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/talx-hub/nexus-sdk/internal/httpclient"
	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

const pathTransactions = "/attributions/transactions"

// AttributionService attributes purchases to creator-program members.
type AttributionService struct {
	d dispatcher
}

// SendTransaction validates and attributes a single purchase.
// Invalid details are rejected before any request is made.
func (s *AttributionService) SendTransaction(ctx context.Context, details TransactionDetails, params *GroupParams,
) (*TransactionResponse, error) {
	batch := []TransactionDetails{details}
	if err := validateTransactions(batch); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.send(ctx, batch, params, &raw); err != nil {
		return nil, err
	}
	return decodeSingle(raw)
}

// SendTransactions validates every element, then attributes them in one request.
// Nothing is sent when any element is invalid.
func (s *AttributionService) SendTransactions(ctx context.Context, details []TransactionDetails, params *GroupParams,
) ([]TransactionResponse, error) {
	if err := validateTransactions(details); err != nil {
		return nil, err
	}

	var resp []TransactionResponse
	if err := s.send(ctx, details, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateTransaction marks an attributed transaction as refunded, fraudulent or charged back.
func (s *AttributionService) UpdateTransaction(ctx context.Context, transactionID string,
	req UpdateTransactionRequest, params *GroupParams,
) ([]TransactionResponse, error) {
	var resp []TransactionResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodPatch,
		Path:     pathTransactions + "/" + url.PathEscape(transactionID),
		Query:    params.values(),
		Body:     req,
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return resp, nil
}

func (s *AttributionService) send(ctx context.Context, batch []TransactionDetails, params *GroupParams,
	out any,
) error {
	if batch == nil {
		batch = []TransactionDetails{}
	}
	return s.d.Do(ctx, httpclient.Request{ //nolint: wrapcheck // kinds are part of the API
		KeyClass: model.KeyPrivate,
		Method:   http.MethodPost,
		Path:     pathTransactions,
		Query:    params.values(),
		Body:     batch,
	}, out)
}

// decodeSingle accepts either an object or a one-element array, since the
// request body is always an array.
func decodeSingle(raw json.RawMessage) (*TransactionResponse, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return &TransactionResponse{}, nil
	}

	if raw[0] == '[' {
		var many []TransactionResponse
		if err := json.Unmarshal(raw, &many); err != nil || len(many) == 0 {
			return nil, serviceerrs.NewServerError("Failed to decode the API response.", http.StatusOK)
		}
		return &many[0], nil
	}

	var one TransactionResponse
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, serviceerrs.NewServerError("Failed to decode the API response.", http.StatusOK)
	}
	return &one, nil
}
