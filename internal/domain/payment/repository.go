package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// AttemptUpdate is a partial update applied to a PaymentAttempt; fields left
// nil/zero are left untouched by the store. This mirrors the source's
// per-variant PaymentAttemptUpdate enum (ResponseUpdate, ErrorUpdate,
// PreprocessingUpdate, AmountToCaptureUpdate, …) collapsed into one struct
// since Go has no sum-type update DSL to match it against.
type AttemptUpdate struct {
	Status                      *AttemptStatus
	ConnectorTransactionID      *string
	AuthType                    *string
	AmountCapturable            *string // decimal string; nil leaves untouched
	AuthenticationData          *AuthenticationData
	Metadata                    map[string]string
	NetworkTransactionID        *string
	MandateReference            MandateReferenceId
	ConnectorMandateDetail      *ConnectorMandateDetail
	CardNetwork                 *CardNetwork
	ErrorCode                   *string
	ErrorMessage                *string
	ErrorReason                 *string
	UnifiedCode                 *string
	UnifiedMessage              *string
	PreProcessingStepID         *string
	NetAmount                   *NetAmount
	PaymentMethodData           PaymentMethodData
	EncryptedPaymentMethodData  []byte
	// EncodedRedirectionData is the opaque, connector-produced redirection
	// form blob (§4.6.1 step 4, "encoded authentication-data (the
	// redirection form blob)"), distinct from AuthenticationData's own 3-DS
	// fields.
	EncodedRedirectionData *string
}

// IntentUpdate is the intent-level counterpart of AttemptUpdate (§4.6.2).
type IntentUpdate struct {
	Status                          *IntentStatus
	Amount                          *decimal.Decimal // updated alongside an incremental authorization (§4.6.4)
	AmountCaptured                  *string           // decimal string
	FingerprintID                   *string
	IncrementalAuthorizationAllowed *bool
	PostCaptureVoidData             map[string]any
}

// CaptureUpdate carries the per-capture result of a capture sync response
// (§4.6.3).
type CaptureUpdate struct {
	CaptureID          string
	Status             CaptureStatus
	ConnectorCaptureID string
}

// Repository is the persistence collaborator for PaymentIntent and
// PaymentAttempt. The HTTP layer, the actual datastore, and the
// transaction/locking machinery are all external collaborators (§1); this
// core only defines the contract it calls through.
type Repository interface {
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
	UpdateIntent(ctx context.Context, id string, update IntentUpdate) error

	GetAttempt(ctx context.Context, id string) (*PaymentAttempt, error)
	UpdateAttempt(ctx context.Context, id string, update AttemptUpdate) error

	ListCaptures(ctx context.Context, attemptID string) ([]*Capture, error)
	UpdateCapture(ctx context.Context, update CaptureUpdate) error

	ListAuthorizations(ctx context.Context, intentID string) ([]*Authorization, error)
	AppendAuthorization(ctx context.Context, auth *Authorization) error
}

// MandateCollaborator reconciles the shared Mandate row when an attempt's
// connector-mandate-id carryover resolves (§4.6.1 step 7).
type MandateCollaborator interface {
	UpsertFromAttempt(ctx context.Context, customerID string, detail *ConnectorMandateDetail) error
}

// PaymentMethodCollaborator fetches and updates the stored-tokenization
// state consulted/mutated by §4.6.1 steps 8-9.
type PaymentMethodCollaborator interface {
	Get(ctx context.Context, id string) (*PaymentMethod, error)
	UpdateStatus(ctx context.Context, id string, status PaymentMethodStatus) error
	SetNetworkTransactionID(ctx context.Context, id string, nti string) error
	UpdateConnectorMandateDetail(ctx context.Context, id, connector string, detail *ConnectorTokenDetails) error
}

// CardTestingGuard increments a bounded, fingerprint-keyed counter of failed
// attempts (§4.6.1 step 10, §5 "card-testing-guard counter").
type CardTestingGuard interface {
	RecordFailure(ctx context.Context, fingerprint string) error
}

// BackgroundRunner executes a detached side effect whose failure must not
// affect the caller's response (§9 "Async save-payment-method side effect").
type BackgroundRunner interface {
	Run(fn func() error)
}
