// Package cybersource implements the connector adapter layer for a
// Cybersource-shaped payment gateway: request building (§4.4), response
// parsing and status mapping (§4.5), and the 3-DS redirection assembler
// (§4.7).
package cybersource

import "github.com/routepay/gatewaycore/internal/domain/payment"

// cardTypeCodes is the fixed card-network -> Cybersource type-code table
// (§6 "Card type codes").
var cardTypeCodes = map[payment.CardNetwork]string{
	payment.CardNetworkVisa:            "001",
	payment.CardNetworkMastercard:      "002",
	payment.CardNetworkAmex:            "003",
	payment.CardNetworkDiscover:        "004",
	payment.CardNetworkDinersClub:      "005",
	payment.CardNetworkCartesBancaires: "006",
	payment.CardNetworkJCB:             "007",
	payment.CardNetworkUnionPay:        "062",
	payment.CardNetworkMaestro:         "042",
}

// CardTypeCode resolves the explicit network mapping; the BIN-derived
// fallback lives in cardtype.go since it needs the PAN itself.
func CardTypeCode(network payment.CardNetwork) (string, bool) {
	code, ok := cardTypeCodes[network]
	return code, ok
}

// Payment-solution codes (§6).
const (
	PaymentSolutionApplePay   = "001"
	PaymentSolutionSamsungPay = "008"
	PaymentSolutionGooglePay  = "012"
)

// Fluid-data descriptors (§6). ApplePayFluidDataDescriptor is the
// pre-encoded constant base64("FID=COMMON.APPLE.INAPP.PAYMENT");
// SamsungPayFluidDataDescriptorPlain must be base64-encoded again before
// emission, unlike its Apple Pay counterpart which is pre-encoded here.
const (
	ApplePayFluidDataDescriptor        = "RklEPUNPTU1PTi5BUFBMRS5JTkFQUC5QQVlNRU5U"
	SamsungPayFluidDataDescriptorPlain = "FID=COMMON.SAMSUNG.INAPP.PAYMENT"
)

// MIT reason codes (§6).
const (
	MITReasonIncrementalAuthorization = "5"
	MITReasonRecurringWithNTI         = "7"
)

// Transaction-type constants used across wallet builders (§4.4.1).
const (
	walletTransactionType = "1"
)

// Commerce indicator values (§4.4.1).
const (
	commerceIndicatorSPA              = "spa"
	commerceIndicatorInternet         = "internet"
	commerceIndicatorAESK             = "aesk"
	commerceIndicatorAESKAttempted    = "aesk_attempted"
	commerceIndicatorDIPB             = "dipb"
	commerceIndicatorDIPBAttempted    = "dipb_attempted"
	commerceIndicatorVBV              = "vbv"
	commerceIndicatorVBVAttempted     = "vbv_attempted"
	commerceIndicatorVBVFailure       = "vbv_failure"
	commerceIndicatorPB               = "pb"
	commerceIndicatorPBAttempted      = "pb_attempted"
	commerceIndicatorUP3DS            = "up3ds"
	commerceIndicatorUP3DSAttempted   = "up3ds_attempted"
	commerceIndicatorUP3DSFailure     = "up3ds_failure"
	commerceIndicatorRecurring        = "recurring"
)
