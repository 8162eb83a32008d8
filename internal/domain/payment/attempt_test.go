package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetAmount_TotalIsOrderPlusAdditional(t *testing.T) {
	n := NetAmount{
		OrderAmount:  decimal.NewFromFloat(100),
		Surcharge:    decimal.NewFromFloat(2),
		ShippingCost: decimal.NewFromFloat(3),
		Discount:     decimal.NewFromFloat(1),
	}

	assert.True(t, n.Total().Equal(decimal.NewFromFloat(104)))
}

func TestNetAmount_WithTotalPreservesAdditionalAmount(t *testing.T) {
	// §8.2 Scenario F: authorized_amount=100.00, additional_amount=5.00
	n := NetAmount{
		OrderAmount:  decimal.NewFromFloat(100),
		Surcharge:    decimal.NewFromFloat(5),
		ShippingCost: decimal.Zero,
		Discount:     decimal.Zero,
	}

	updated := n.WithTotal(decimal.NewFromFloat(150))

	assert.True(t, updated.OrderAmount.Equal(decimal.NewFromFloat(145)))
	assert.True(t, updated.Total().Equal(decimal.NewFromFloat(150)))
	assert.True(t, updated.AdditionalAmount().Equal(decimal.NewFromFloat(5)))
}

func TestPaymentAttempt_IsMandateFlow(t *testing.T) {
	withMandate := &PaymentAttempt{MandateID: "mandate-1"}
	assert.True(t, withMandate.IsMandateFlow())

	withMandatePaymentMethod := &PaymentAttempt{PaymentMethodData: MandatePayment{}}
	assert.True(t, withMandatePaymentMethod.IsMandateFlow())

	plain := &PaymentAttempt{PaymentMethodData: Card{}}
	assert.False(t, plain.IsMandateFlow())
}

func TestNewAttempt_MintsIdAndIdempotencyKey(t *testing.T) {
	a := NewAttempt("intent-1", "cybersource", "USD")

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, a.ConnectorRequestReferenceID)
	assert.Equal(t, "intent-1", a.IntentID)
	assert.Equal(t, AttemptStatusStarted, a.Status)

	other := NewAttempt("intent-1", "cybersource", "USD")
	assert.NotEqual(t, a.ID, other.ID, "a retry attempt must mint its own id")
	assert.NotEqual(t, a.ConnectorRequestReferenceID, other.ConnectorRequestReferenceID)
}

func TestNewConnectorMandateRequestReferenceID_Unique(t *testing.T) {
	first := NewConnectorMandateRequestReferenceID()
	second := NewConnectorMandateRequestReferenceID()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
