package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/nexus-sdk/currency"
)

// Amount is a money value kept in minor units of its currency, the way
// payment gateways report it.
type Amount struct {
	currency string
	minor    int64
}

func FromMinor(minor int64, code string) (Amount, error) {
	if minor < 0 {
		return Amount{}, errors.New("amount must be positive")
	}
	if !currency.IsSupported(code) {
		return Amount{}, fmt.Errorf("unsupported currency %q", code)
	}
	return Amount{currency: code, minor: minor}, nil
}

// FromFloat rounds a major-unit value half away from zero to the currency's minor unit.
func FromFloat(amount float64, code string) (Amount, error) {
	if amount < 0 {
		return Amount{}, errors.New("amount must be positive")
	}
	exp, ok := currency.Exponent(code)
	if !ok {
		return Amount{}, fmt.Errorf("unsupported currency %q", code)
	}
	const maxPreciseInt = 9007199254740992
	minor := decimal.NewFromFloat(amount).Shift(exp).Round(0)
	if minor.GreaterThanOrEqual(decimal.NewFromInt(maxPreciseInt)) {
		return Amount{}, errors.New("amount overflow")
	}
	return Amount{currency: code, minor: minor.IntPart()}, nil
}

func (a Amount) Currency() string {
	return a.currency
}

func (a Amount) Minor() int64 {
	return a.minor
}

// ToFloat64 returns the value in major units, e.g. 4999 USD cents -> 49.99.
func (a Amount) ToFloat64() float64 {
	exp, _ := currency.Exponent(a.currency)
	return decimal.New(a.minor, -exp).InexactFloat64()
}
