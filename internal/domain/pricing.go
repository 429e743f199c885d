package domain

import "strings"

// Currency is the only currency the storefront sells in.
const Currency = "EUR"

// Money is a price in major units of Currency.
type Money struct {
	Amount   float64
	Currency string
}

// packagePrices maps every accepted packageId spelling to its fixed price.
// Each tier has two spellings: the bare number and the pack_ prefixed form.
var packagePrices = map[string]float64{
	"1":      10,
	"pack_1": 10,
	"3":      20,
	"pack_3": 20,
	"5":      30,
	"pack_5": 30,
}

// ResolvePrice maps a packageId to its fixed price. The input is trimmed
// and matched case-sensitively; anything outside the accepted set fails
// with an INVALID_PACKAGE error naming the allowed values.
func ResolvePrice(packageID string) (Money, error) {
	amount, ok := packagePrices[strings.TrimSpace(packageID)]
	if !ok {
		return Money{}, NewInvalidPackageError(packageID)
	}
	return Money{Amount: amount, Currency: Currency}, nil
}

// PackageTier returns the bare-number spelling of a packageId, used in the
// human-readable order description. Unknown ids come back unchanged.
func PackageTier(packageID string) string {
	return strings.TrimPrefix(strings.TrimSpace(packageID), "pack_")
}
