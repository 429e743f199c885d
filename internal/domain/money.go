package domain

import (
	"fmt"
	"math"
)

// FormatAmount renders an amount as the fixed-point string the processor
// expects, always with exactly two fractional digits. Non-finite values
// fail with an INVALID_AMOUNT error.
func FormatAmount(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", NewInvalidAmountError(amount)
	}
	return fmt.Sprintf("%.2f", amount), nil
}
