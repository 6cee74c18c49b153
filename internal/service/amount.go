package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// Amounts are whole rupees or paise. Anything from 10^15 up is rejected.
	maxAmountDigits = 15
	maxAmountScale  = 2
)

var maxAmount = decimal.New(1, maxAmountDigits)

// checkAmount rejects money values the calculator and the float64 API fields cannot carry.
// The exponent is checked before any comparison so a value like 1e2000000 is never rescaled.
func checkAmount(field string, v decimal.Decimal) error {
	if v.IsZero() {
		return nil
	}
	if exp := v.Exponent(); exp > maxAmountDigits || exp < -(maxAmountDigits+maxAmountScale+3) {
		return fmt.Errorf("%s is out of range: %w", field, ErrInvalidInput)
	}
	if v.Abs().GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%s must be less than %s: %w", field, maxAmount.String(), ErrInvalidInput)
	}
	if !v.Equal(v.Truncate(maxAmountScale)) {
		return fmt.Errorf("%s has more than %d decimal places: %w", field, maxAmountScale, ErrInvalidInput)
	}
	return nil
}
