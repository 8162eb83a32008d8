package cybersource

import "github.com/routepay/gatewaycore/internal/domain/payment"

// CommerceIndicatorFromECI derives processingInformation.commerceIndicator
// from the (ECI, card network) pair per the precedence-1 table of §4.4.1.
// The function is total: every input maps to a value, matching §8.1
// property 4.
func CommerceIndicatorFromECI(eci string, network payment.CardNetwork) string {
	switch eci {
	case "00", "01", "02":
		if network == payment.CardNetworkMastercard || network == payment.CardNetworkMaestro {
			return commerceIndicatorSPA
		}
		return commerceIndicatorInternet
	case "05":
		switch network {
		case payment.CardNetworkAmex:
			return commerceIndicatorAESK
		case payment.CardNetworkDiscover:
			return commerceIndicatorDIPB
		case payment.CardNetworkMastercard:
			return commerceIndicatorSPA
		case payment.CardNetworkVisa:
			return commerceIndicatorVBV
		case payment.CardNetworkDinersClub:
			return commerceIndicatorPB
		case payment.CardNetworkUpi:
			return commerceIndicatorUP3DS
		default:
			return commerceIndicatorInternet
		}
	case "06":
		switch network {
		case payment.CardNetworkAmex:
			return commerceIndicatorAESKAttempted
		case payment.CardNetworkDiscover:
			return commerceIndicatorDIPBAttempted
		case payment.CardNetworkMastercard:
			return commerceIndicatorSPA
		case payment.CardNetworkVisa:
			return commerceIndicatorVBVAttempted
		case payment.CardNetworkDinersClub:
			return commerceIndicatorPBAttempted
		case payment.CardNetworkUpi:
			return commerceIndicatorUP3DSAttempted
		default:
			return commerceIndicatorInternet
		}
	case "07":
		switch network {
		case payment.CardNetworkVisa:
			return commerceIndicatorVBVFailure
		case payment.CardNetworkMastercard:
			return commerceIndicatorSPA
		case payment.CardNetworkUpi:
			return commerceIndicatorUP3DSFailure
		default:
			return commerceIndicatorInternet
		}
	default:
		return commerceIndicatorVBVFailure
	}
}

// CommerceIndicatorFromMandate implements precedence-2 of §4.4.1: network
// mandate / NTI reuse always signals "recurring"; a bare ConnectorMandateId
// is left at its solution-derived default (§9 open question, decided in
// DESIGN.md — never overridden here).
func CommerceIndicatorFromMandate(ref payment.MandateReferenceId, solutionDefault string) string {
	switch ref.(type) {
	case payment.NetworkMandateId, payment.NetworkTokenWithNTI:
		return commerceIndicatorRecurring
	default:
		return solutionDefault
	}
}

// CommerceIndicatorFromWalletSolution implements precedence-3 of §4.4.1:
// wallet solution + card network, used when no 3-DS ECI and no mandate
// reference are present.
func CommerceIndicatorFromWalletSolution(solution string, network payment.CardNetwork) string {
	switch solution {
	case PaymentSolutionApplePay, PaymentSolutionSamsungPay:
		if network == payment.CardNetworkMastercard {
			return commerceIndicatorSPA
		}
		return commerceIndicatorInternet
	case PaymentSolutionGooglePay:
		return commerceIndicatorInternet
	default:
		return commerceIndicatorInternet
	}
}
