package nexus

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/nexus-sdk/currency"
	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

// ValidateTransaction applies the pre-flight checks of SendTransaction.
// The first failing rule is reported as a validation error.
func ValidateTransaction(t *TransactionDetails) error {
	if !currency.IsSupported(t.Currency) {
		return serviceerrs.NewValidationError(
			fmt.Sprintf("Invalid currency: %s", t.Currency))
	}

	if !(t.Subtotal > 0) {
		return serviceerrs.NewValidationError("Subtotal must be greater than zero.")
	}

	if math.IsInf(t.Subtotal, 1) {
		return serviceerrs.NewValidationError("Subtotal must be a finite number.")
	}

	if currency.IsZeroDecimal(t.Currency) && !isWhole(t.Subtotal) {
		return serviceerrs.NewValidationError(fmt.Sprintf(
			"Subtotal for zero-decimal currency (%s) must be an integer.", t.Currency))
	}

	return nil
}

func validateTransactions(ts []TransactionDetails) error {
	for i := range ts {
		if err := ValidateTransaction(&ts[i]); err != nil {
			return err
		}
	}
	return nil
}

func isWhole(v float64) bool {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}
	return decimal.NewFromFloat(v).IsInteger()
}
