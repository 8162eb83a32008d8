package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is a stored tokenization owned by a customer, reusable
// across intents (§3.1).
type PaymentMethod struct {
	ID                   string
	CustomerID           string
	PaymentMethodKind    PaymentMethodDataKind
	Status               PaymentMethodStatus
	LastUsedAt           *time.Time
	ConnectorTokenDetails map[string]*ConnectorTokenDetails // keyed by connector name
	NetworkTransactionID string                             // set only when SetupFutureUsage=OffSession and the connector returned one (§3.2)
}

// ConnectorTokenDetails is the per-connector view of a stored PaymentMethod.
type ConnectorTokenDetails struct {
	Token                           string
	ConnectorMandateRequestReferenceId string
	OriginalPaymentAuthorizedAmount *decimal.Decimal
	OriginalPaymentAuthorizedCurrency string
	Metadata                        map[string]string
	Status                          PaymentMethodStatus
}

// HasActiveMandateFor reports whether the PaymentMethod already has an
// active mandate recorded for the given connector (§4.6.1 step 8 guard).
func (pm *PaymentMethod) HasActiveMandateFor(connector string) bool {
	if pm == nil {
		return false
	}
	details, ok := pm.ConnectorTokenDetails[connector]
	return ok && details != nil && details.Status == PaymentMethodStatusActive
}
