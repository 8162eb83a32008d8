package cybersource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

func TestCommerceIndicatorFromECI_FullMatrix(t *testing.T) {
	tests := []struct {
		eci     string
		network payment.CardNetwork
		want    string
	}{
		// ECI 00/01/02: mastercard/maestro -> spa, everyone else -> internet.
		{"00", payment.CardNetworkMastercard, commerceIndicatorSPA},
		{"01", payment.CardNetworkMaestro, commerceIndicatorSPA},
		{"02", payment.CardNetworkVisa, commerceIndicatorInternet},
		{"02", payment.CardNetworkUnionPay, commerceIndicatorInternet},
		{"02", payment.CardNetworkUpi, commerceIndicatorInternet},

		// ECI 05.
		{"05", payment.CardNetworkAmex, commerceIndicatorAESK},
		{"05", payment.CardNetworkDiscover, commerceIndicatorDIPB},
		{"05", payment.CardNetworkMastercard, commerceIndicatorSPA},
		{"05", payment.CardNetworkVisa, commerceIndicatorVBV},
		{"05", payment.CardNetworkDinersClub, commerceIndicatorPB},
		{"05", payment.CardNetworkUpi, commerceIndicatorUP3DS},
		{"05", payment.CardNetworkUnionPay, commerceIndicatorInternet},
		{"05", payment.CardNetworkJCB, commerceIndicatorInternet},

		// ECI 06.
		{"06", payment.CardNetworkAmex, commerceIndicatorAESKAttempted},
		{"06", payment.CardNetworkDiscover, commerceIndicatorDIPBAttempted},
		{"06", payment.CardNetworkMastercard, commerceIndicatorSPA},
		{"06", payment.CardNetworkVisa, commerceIndicatorVBVAttempted},
		{"06", payment.CardNetworkDinersClub, commerceIndicatorPBAttempted},
		{"06", payment.CardNetworkUpi, commerceIndicatorUP3DSAttempted},
		{"06", payment.CardNetworkUnionPay, commerceIndicatorInternet},
		{"06", payment.CardNetworkJCB, commerceIndicatorInternet},

		// ECI 07.
		{"07", payment.CardNetworkAmex, commerceIndicatorInternet},
		{"07", payment.CardNetworkDiscover, commerceIndicatorInternet},
		{"07", payment.CardNetworkMastercard, commerceIndicatorSPA},
		{"07", payment.CardNetworkVisa, commerceIndicatorVBVFailure},
		{"07", payment.CardNetworkDinersClub, commerceIndicatorInternet},
		{"07", payment.CardNetworkUpi, commerceIndicatorUP3DSFailure},
		{"07", payment.CardNetworkUnionPay, commerceIndicatorInternet},

		// Unrecognized ECI falls back to vbv_failure.
		{"99", payment.CardNetworkVisa, commerceIndicatorVBVFailure},
	}

	for _, tt := range tests {
		got := CommerceIndicatorFromECI(tt.eci, tt.network)
		assert.Equal(t, tt.want, got, "eci=%s network=%s", tt.eci, tt.network)
	}
}

func TestCommerceIndicatorFromMandate(t *testing.T) {
	assert.Equal(t, commerceIndicatorRecurring,
		CommerceIndicatorFromMandate(payment.NetworkMandateId{}, commerceIndicatorInternet))
	assert.Equal(t, commerceIndicatorRecurring,
		CommerceIndicatorFromMandate(payment.NetworkTokenWithNTI{}, commerceIndicatorInternet))
	assert.Equal(t, commerceIndicatorInternet,
		CommerceIndicatorFromMandate(payment.ConnectorMandateId{}, commerceIndicatorInternet))
	assert.Equal(t, commerceIndicatorInternet,
		CommerceIndicatorFromMandate(nil, commerceIndicatorInternet))
}

func TestCommerceIndicatorFromWalletSolution(t *testing.T) {
	assert.Equal(t, commerceIndicatorSPA,
		CommerceIndicatorFromWalletSolution(PaymentSolutionApplePay, payment.CardNetworkMastercard))
	assert.Equal(t, commerceIndicatorInternet,
		CommerceIndicatorFromWalletSolution(PaymentSolutionApplePay, payment.CardNetworkVisa))
	assert.Equal(t, commerceIndicatorSPA,
		CommerceIndicatorFromWalletSolution(PaymentSolutionSamsungPay, payment.CardNetworkMastercard))
	assert.Equal(t, commerceIndicatorInternet,
		CommerceIndicatorFromWalletSolution(PaymentSolutionGooglePay, payment.CardNetworkMastercard))
	assert.Equal(t, commerceIndicatorInternet,
		CommerceIndicatorFromWalletSolution("unknown_solution", payment.CardNetworkVisa))
}
