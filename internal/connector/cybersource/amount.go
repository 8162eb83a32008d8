package cybersource

import "github.com/shopspring/decimal"

// zeroDecimalCurrencies lists ISO-4217 currencies whose major unit has no
// fractional component (§6 "zero-decimal currencies still major-unit").
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true, "KRW": true, "VND": true, "CLP": true, "XAF": true,
	"XOF": true, "XPF": true, "BIF": true, "DJF": true, "GNF": true,
	"PYG": true, "RWF": true, "UGX": true, "VUV": true,
}

// MajorUnitString converts a decimal amount already expressed in the
// currency's major unit into the gateway's wire string: "12.34" for USD,
// "1234" for JPY. This is the required primitive of §6.
func MajorUnitString(amount decimal.Decimal, currency string) string {
	if zeroDecimalCurrencies[currency] {
		return amount.StringFixed(0)
	}
	return amount.StringFixed(2)
}
