package payment

import (
	"time"

	ierr "github.com/routepay/gatewaycore/internal/errors"
	"github.com/shopspring/decimal"
)

// PaymentIntent is the merchant-scoped logical payment that may have
// multiple PaymentAttempts (§3.1).
type PaymentIntent struct {
	ID                             string
	MerchantID                     string
	ProfileID                      string
	Currency                       string
	Amount                         decimal.Decimal
	CustomerID                     string
	SetupFutureUsage               SetupFutureUsage
	Status                         IntentStatus
	IncrementalAuthorizationAllowed bool
	FingerprintID                  string
	ShippingAddress                *Address
	BillingAddress                 *Address
	CaptureMethod                  CaptureMethod
	RequestIncrementalAuthorization bool
	AmountCaptured                 *decimal.Decimal
	StateMetadata                  IntentStateMetadata
	Metadata                       map[string]string
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

// IntentStateMetadata is an extensible bag the tracker writes
// flow-specific side channels into (§4.6.2 "PostCaptureVoid").
type IntentStateMetadata struct {
	PostCaptureVoidData map[string]any
}

// Validate checks the invariants an intent must hold before a flow may use
// it.
func (pi *PaymentIntent) Validate() error {
	if pi.ID == "" {
		return ierr.NewError("invalid payment intent id").
			WithHint("Payment intent id is required").
			Mark(ierr.ErrValidation)
	}
	if pi.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	if pi.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsOffSession reports whether this intent was set up for merchant-initiated
// future charges (§3.2 "network_transaction_id is populated only when...").
func (pi *PaymentIntent) IsOffSession() bool {
	return pi != nil && pi.SetupFutureUsage == SetupFutureUsageOffSession
}
