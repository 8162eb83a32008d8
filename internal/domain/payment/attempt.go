package payment

import (
	"time"

	ierr "github.com/routepay/gatewaycore/internal/errors"
	"github.com/routepay/gatewaycore/internal/secret"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NetAmount decomposes a PaymentAttempt's amount into the order amount and
// the additional components, preserving the invariant that Total is always
// OrderAmount + AdditionalAmount (§3.2).
type NetAmount struct {
	OrderAmount  decimal.Decimal
	Surcharge    decimal.Decimal
	ShippingCost decimal.Decimal
	Discount     decimal.Decimal
}

// AdditionalAmount is surcharge + shipping - discount.
func (n NetAmount) AdditionalAmount() decimal.Decimal {
	return n.Surcharge.Add(n.ShippingCost).Sub(n.Discount)
}

// Total is order_amount + additional_amount.
func (n NetAmount) Total() decimal.Decimal {
	return n.OrderAmount.Add(n.AdditionalAmount())
}

// WithTotal returns a NetAmount whose Total() equals newTotal, derived by
// solving OrderAmount = newTotal - AdditionalAmount() while holding
// surcharge/shipping/discount fixed. This is the incremental-authorization
// update rule of §4.6.4 and §8.2 scenario F.
func (n NetAmount) WithTotal(newTotal decimal.Decimal) NetAmount {
	updated := n
	updated.OrderAmount = newTotal.Sub(n.AdditionalAmount())
	return updated
}

// AuthenticationData carries the 3-DS outcome attached to an attempt.
type AuthenticationData struct {
	CAVV                        secret.Masked[string]
	ECI                         string
	ThreeDSServerTransactionID  string
	DSTransactionID             string
	MessageVersion              string
	CardNetwork                 CardNetwork
	Indicator                   string // persisted commerce indicator; CompleteAuthorize reads ThreeDSData.Indicator, not this field
}

// PaymentAttempt is one try at one connector (§3.1).
type PaymentAttempt struct {
	ID                      string
	IntentID                string
	Connector               string
	MerchantConnectorID     string
	PaymentMethod           PaymentMethodDataKind
	PaymentMethodType       string
	NetAmount               NetAmount
	Currency                string
	Status                  AttemptStatus
	AuthorizedAmount        *decimal.Decimal
	AmountCapturable        decimal.Decimal
	MandateID               string
	ConnectorMandateDetail  *ConnectorMandateDetail
	PaymentMethodData       PaymentMethodData
	EncryptedPaymentMethodData []byte // set instead of PaymentMethodData when the merged data is sensitive (§4.6.1 step 2)
	AuthenticationData      *AuthenticationData
	ErrorCode               string
	ErrorMessage            string
	ErrorReason             string
	UnifiedCode             string
	UnifiedMessage          string
	ConnectorTransactionID  string
	MultipleCaptureData     *MultipleCaptureData
	ConnectorRequestReferenceID string // caller-supplied idempotency key, clientReferenceInformation.code
	PaymentMethodID         string
	FingerprintID            string
	AdditionalAmount          decimal.Decimal // copy of NetAmount.AdditionalAmount(); not kept in sync here, and incremental auth reads NetAmount
	IncrementalAuthorizationDetails *IncrementalAuthorizationDetails
	AuthorizationHistory    []*Authorization
	Metadata                map[string]string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IncrementalAuthorizationDetails is the in-flight detail the tracker needs
// to resolve §4.6.4.
type IncrementalAuthorizationDetails struct {
	TotalAmount     decimal.Decimal
	AuthorizationID string
}

// Validate checks the invariants an attempt must hold before a flow may
// build a request from it.
func (pa *PaymentAttempt) Validate() error {
	if pa.ID == "" {
		return ierr.NewError("invalid payment attempt id").
			WithHint("Payment attempt id is required").
			Mark(ierr.ErrValidation)
	}
	if pa.Connector == "" {
		return ierr.NewError("invalid connector").
			WithHint("Connector is required").
			Mark(ierr.ErrValidation)
	}
	if pa.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsMandateFlow reports whether this attempt is creating or reusing a
// mandate: the value callers pass as the required-fields resolver's
// isMandateFlow argument (§4.3).
func (pa *PaymentAttempt) IsMandateFlow() bool {
	return pa.MandateID != "" || pa.PaymentMethodData != nil && pa.PaymentMethodData.Kind() == PaymentMethodDataKindMandatePayment
}

// NewAttempt constructs a fresh PaymentAttempt for a new connector try,
// always minting both the attempt id and the connector_request_reference_id
// idempotency key; a retry attempt
// gets its own id while the previous attempt is preserved untouched
// (§3.1 "Lifecycle").
func NewAttempt(intentID, connector, currency string) *PaymentAttempt {
	now := time.Now()
	return &PaymentAttempt{
		ID:                          uuid.NewString(),
		IntentID:                    intentID,
		Connector:                   connector,
		Currency:                    currency,
		Status:                      AttemptStatusStarted,
		ConnectorRequestReferenceID: uuid.NewString(),
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
}

// NewConnectorMandateRequestReferenceID mints the client-supplied
// correlation id the router attaches to a TokenCreate request so a
// subsequently-returned connector_mandate_id can be matched back to the
// request that created it (§3.1 "Mandate / ConnectorMandateDetail").
func NewConnectorMandateRequestReferenceID() string {
	return uuid.NewString()
}
