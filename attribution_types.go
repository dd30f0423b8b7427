package nexus

type SpendTotal struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

type Conversion struct {
	LastPurchaseDate string     `json:"lastPurchaseDate"`
	TotalSpendToDate SpendTotal `json:"totalSpendToDate"`
}

// Metrics describes the buyer's history at the time of the purchase.
type Metrics struct {
	JoinDate   string     `json:"joinDate"`
	Conversion Conversion `json:"conversion"`
}

type TransactionDetails struct {
	Metrics            *Metrics `json:"metrics,omitempty"`
	MemberSharePercent *float64 `json:"memberSharePercent,omitempty"`
	PlayerName         string   `json:"playerName"`
	Code               string   `json:"code"`
	Currency           string   `json:"currency"`
	Description        string   `json:"description"`
	Platform           string   `json:"platform"`
	Status             string   `json:"status"`
	TransactionID      string   `json:"transactionId"`
	TransactionDate    string   `json:"transactionDate"`
	SkuID              string   `json:"skuId,omitempty"`
	Subtotal           float64  `json:"subtotal"`
}

type Transaction struct {
	Metrics            *Metrics `json:"metrics,omitempty"`
	ID                 string   `json:"id"`
	Code               string   `json:"code"`
	MemberPlayerID     string   `json:"memberPlayerId"`
	Description        string   `json:"description"`
	Status             string   `json:"status"`
	Currency           string   `json:"currency"`
	TotalCurrency      string   `json:"totalCurrency"`
	TransactionID      string   `json:"transactionId"`
	TransactionDate    string   `json:"transactionDate"`
	Platform           string   `json:"platform"`
	PlayerID           string   `json:"playerId"`
	PlayerName         string   `json:"playerName"`
	SkuID              string   `json:"skuId"`
	Subtotal           float64  `json:"subtotal"`
	Total              float64  `json:"total"`
	MemberShareAmount  float64  `json:"memberShareAmount"`
	MemberSharePercent float64  `json:"memberSharePercent"`
	MemberPaid         bool     `json:"memberPaid"`
}

type TransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type TransactionAction string

const (
	ActionRefund     TransactionAction = "Refund"
	ActionFraud      TransactionAction = "Fraud"
	ActionChargeback TransactionAction = "Chargeback"
)

type UpdateTransactionRequest struct {
	Action   TransactionAction `json:"action"`
	PlayerID string            `json:"playerId,omitempty"`
}
