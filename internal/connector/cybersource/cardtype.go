package cybersource

import (
	"strconv"
	"strings"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// deriveCardTypeCode resolves the Cybersource type code for a card: prefer
// the explicit network when supplied, else fall back to BIN-derived issuer
// detection (§4.4.1 "falling back to (b) BIN-derived issuer").
func deriveCardTypeCode(network payment.CardNetwork, pan string) string {
	if code, ok := CardTypeCode(network); ok {
		return code
	}
	if derived, ok := CardTypeCode(deriveNetworkFromBIN(pan)); ok {
		return derived
	}
	return ""
}

// deriveNetworkFromBIN applies the standard IIN-range table to the leading
// digits of a PAN.
func deriveNetworkFromBIN(pan string) payment.CardNetwork {
	digits := strings.TrimSpace(pan)
	if digits == "" {
		return ""
	}

	prefix4, _ := strconv.Atoi(firstN(digits, 4))
	prefix2, _ := strconv.Atoi(firstN(digits, 2))

	switch {
	case strings.HasPrefix(digits, "4"):
		return payment.CardNetworkVisa
	case prefix2 == 34 || prefix2 == 37:
		return payment.CardNetworkAmex
	case prefix4 >= 2221 && prefix4 <= 2720:
		return payment.CardNetworkMastercard
	case prefix2 >= 51 && prefix2 <= 55:
		return payment.CardNetworkMastercard
	case strings.HasPrefix(digits, "6011") || strings.HasPrefix(digits, "65"):
		return payment.CardNetworkDiscover
	case prefix2 == 62:
		return payment.CardNetworkUnionPay
	case prefix2 >= 30 && prefix2 <= 30 || prefix2 == 36 || prefix2 == 38:
		return payment.CardNetworkDinersClub
	case prefix4 >= 3528 && prefix4 <= 3589:
		return payment.CardNetworkJCB
	case prefix2 == 50 || (prefix2 >= 56 && prefix2 <= 58) || prefix4 == 6304 || prefix4 == 6390:
		return payment.CardNetworkMaestro
	default:
		return ""
	}
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
