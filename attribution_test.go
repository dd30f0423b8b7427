package nexus

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

// echoTransactions answers like the API: one response per submitted transaction.
func echoTransactions(asObject bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req []TransactionDetails
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "body must be an array"})
			return
		}
		resp := make([]TransactionResponse, 0, len(req))
		for _, d := range req {
			resp = append(resp, TransactionResponse{Transaction: Transaction{
				ID:            "id-" + d.TransactionID,
				Code:          d.Code,
				Currency:      d.Currency,
				Subtotal:      d.Subtotal,
				Total:         d.Subtotal,
				TotalCurrency: d.Currency,
				TransactionID: d.TransactionID,
				PlayerName:    d.PlayerName,
			}})
		}
		if asObject && len(resp) == 1 {
			writeJSON(w, http.StatusOK, resp[0])
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func TestAttributionService_SendTransaction_single(t *testing.T) {
	for _, asObject := range []bool{true, false} {
		t.Run(map[bool]string{true: "object reply", false: "array reply"}[asObject], func(t *testing.T) {
			api := newFakeAPI(t)
			api.router.Post("/attributions/transactions", echoTransactions(asObject))

			details := validDetails()
			resp, err := api.client(t).Attribution.SendTransaction(context.Background(), details,
				&GroupParams{GroupID: "-XgND9kJQRre_UzlaptAE"})
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, "id-"+details.TransactionID, resp.Transaction.ID)
			assert.Equal(t, "USD", resp.Transaction.TotalCurrency)

			got := api.lastCall(t)
			assert.Equal(t, []string{"-XgND9kJQRre_UzlaptAE"}, got.Query["groupId"])
			var sent []TransactionDetails
			require.NoError(t, json.Unmarshal(got.Body, &sent))
			require.Len(t, sent, 1)
			assert.Equal(t, details, sent[0])
		})
	}
}

func TestAttributionService_SendTransactions_mirrorsArity(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Post("/attributions/transactions", echoTransactions(false))

	first := validDetails()
	first.TransactionID = "transaction1"
	second := validDetails()
	second.TransactionID = "transaction2"
	second.Subtotal = 1500

	resp, err := api.client(t).Attribution.SendTransactions(context.Background(),
		[]TransactionDetails{first, second}, nil)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "id-transaction1", resp[0].Transaction.ID)
	assert.Equal(t, "id-transaction2", resp[1].Transaction.ID)
	assert.InDelta(t, 1500, resp[1].Transaction.Total, 1e-9)
}

func TestAttributionService_SendTransaction_zeroDecimalInteger(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Post("/attributions/transactions", echoTransactions(true))

	details := validDetails()
	details.Currency = "JPY"
	details.Subtotal = 1000

	resp, err := api.client(t).Attribution.SendTransaction(context.Background(), details, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1000, resp.Transaction.Subtotal, 1e-9)
	assert.JSONEq(t, `1000`, string(mustField(t, api.lastCall(t).Body, "subtotal")))
}

func mustField(t *testing.T, body []byte, field string) json.RawMessage {
	t.Helper()
	var sent []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &sent))
	require.NotEmpty(t, sent)
	return sent[0][field]
}

func TestAttributionService_validationNeverReachesNetwork(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		subtotal float64
		wantMsg  string
	}{
		{"invalid currency", "INVALID", 100, "Invalid currency: INVALID"},
		{"zero subtotal", "USD", 0, "Subtotal must be greater than zero."},
		{"negative subtotal", "USD", -100, "Subtotal must be greater than zero."},
		{"fractional jpy", "JPY", 100.5, "Subtotal for zero-decimal currency (JPY) must be an integer."},
		{"NaN subtotal", "USD", math.NaN(), "Subtotal must be greater than zero."},
		{"infinite subtotal", "USD", math.Inf(1), "Subtotal must be a finite number."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)
			api.respond(http.StatusOK, `{}`)
			c := api.client(t)

			bad := validDetails()
			bad.Currency = tt.currency
			bad.Subtotal = tt.subtotal

			_, err := c.Attribution.SendTransaction(context.Background(), bad, nil)
			require.Error(t, err)
			assert.True(t, serviceerrs.IsKind(err, serviceerrs.KindValidation))
			assert.Equal(t, tt.wantMsg, err.Error())

			_, err = c.Attribution.SendTransactions(context.Background(),
				[]TransactionDetails{validDetails(), bad}, nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			assert.Empty(t, api.calls())
		})
	}
}

func TestAttributionService_validationBeforeConfiguration(t *testing.T) {
	api := newFakeAPI(t)
	bad := validDetails()
	bad.Currency = "XYZ"

	_, err := api.unconfiguredClient().Attribution.SendTransaction(context.Background(), bad, nil)
	require.Error(t, err)
	assert.True(t, serviceerrs.IsKind(err, serviceerrs.KindValidation))
}

func TestAttributionService_UpdateTransaction(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Patch("/attributions/transactions/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []TransactionResponse{{Transaction: Transaction{
			ID:     "transaction123",
			Status: "Refunded",
		}}})
	})

	resp, err := api.client(t).Attribution.UpdateTransaction(context.Background(), "transaction123",
		UpdateTransactionRequest{Action: ActionRefund}, nil)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Refunded", resp[0].Transaction.Status)

	got := api.lastCall(t)
	assert.Equal(t, "/attributions/transactions/transaction123", got.Path)
	assert.JSONEq(t, `{"action":"Refund"}`, string(got.Body))
}

func TestAttributionService_UpdateTransaction_notValidated(t *testing.T) {
	api := newFakeAPI(t)
	api.respond(http.StatusOK, `[]`)

	_, err := api.client(t).Attribution.UpdateTransaction(context.Background(), "tx",
		UpdateTransactionRequest{Action: ActionChargeback, PlayerID: "p-1"}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"Chargeback","playerId":"p-1"}`, string(api.lastCall(t).Body))
}

func TestAttributionService_serverErrors(t *testing.T) {
	api := newFakeAPI(t)
	api.respond(http.StatusInternalServerError, `{"message":"Transaction already exists","stack":"secret"}`)

	_, err := api.client(t).Attribution.SendTransaction(context.Background(), validDetails(), nil)
	require.Error(t, err)
	assert.True(t, serviceerrs.IsKind(err, serviceerrs.KindServer))
	assert.Equal(t, "Transaction already exists", err.Error())
	assert.NotContains(t, err.Error(), "secret")
}

func TestDecodeSingle(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantID  string
		wantErr bool
	}{
		{"object", `{"transaction":{"id":"a"}}`, "a", false},
		{"array", `[{"transaction":{"id":"b"}},{"transaction":{"id":"c"}}]`, "b", false},
		{"empty", ``, "", false},
		{"empty array", `[]`, "", true},
		{"garbage array", `[1,2]`, "", true},
		{"garbage", `"str"`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSingle(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, serviceerrs.IsKind(err, serviceerrs.KindServer))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.Transaction.ID)
		})
	}
}
