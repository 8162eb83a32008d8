// Package tracker implements the post-update state-transition logic that
// runs after a connector HTTP call returns: it turns a parsed response plus
// the in-flight payment data into attempt/intent/mandate/token updates
// (§4.6).
package tracker

import (
	"github.com/shopspring/decimal"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// OutcomeKind discriminates the response-case split of §4.6.1 step 4.
type OutcomeKind string

const (
	OutcomeKindError            OutcomeKind = "error"
	OutcomeKindTransaction      OutcomeKind = "transaction"
	OutcomeKindPreProcessing    OutcomeKind = "pre_processing"
	OutcomeKindMultipleCapture  OutcomeKind = "multiple_capture"
	OutcomeKindPostCaptureVoid  OutcomeKind = "post_capture_void"
	OutcomeKindOther            OutcomeKind = "other"
)

// Outcome is the sealed union of connector response shapes the tracker
// dispatches on. Other Ok variants (Session, SessionToken, Tokenization)
// collapse to OtherOutcome since §4.6.1 step 4 treats them identically
// ("no attempt/intent update").
type Outcome interface {
	Kind() OutcomeKind
}

// ErrorOutcome wraps a parsed connector error (§4.6.1 step 4, Err case).
type ErrorOutcome struct {
	Err *payment.ErrorResponse
}

func (ErrorOutcome) Kind() OutcomeKind { return OutcomeKindError }

// TransactionOutcome wraps a successful TransactionResponse.
type TransactionOutcome struct {
	Status                   payment.AttemptStatus
	ConnectorTransactionID   string
	CoercedAuthType          string // empty if the connector did not coerce it
	RespIncrementalAuthAllowed bool
	AmountCapturable         *decimal.Decimal
	EncodedAuthenticationData string // the redirection-form blob, opaque
	ConnectorMetadata        map[string]string
	NetworkTransactionID     string
	MandateReference         payment.MandateReferenceId
	CardNetwork              *payment.CardNetwork
	AmountCapturedExplicit   *decimal.Decimal // response's own amount_captured, if present
	MultipleCaptureData      *payment.MultipleCaptureData
	DebitRoutingSavings      *decimal.Decimal
	ObservedCardNetwork      *payment.CardNetwork // connector-reported PM data merge input (§4.6.1 step 1)
}

func (TransactionOutcome) Kind() OutcomeKind { return OutcomeKindTransaction }

// PreProcessingOutcome wraps a pre-processing-step response.
type PreProcessingOutcome struct {
	StepID                 string
	ConnectorTransactionID string
}

func (PreProcessingOutcome) Kind() OutcomeKind { return OutcomeKindPreProcessing }

// CaptureSyncObservation is one element of a multiple-capture sync
// response, connector-agnostic (§4.6.3).
type CaptureSyncObservation struct {
	ConnectorCaptureID           string
	ConnectorResponseReferenceID string
	AmountCaptured               *decimal.Decimal
	Status                       payment.CaptureStatus
}

// MultipleCaptureOutcome wraps a capture-sync response (§4.6.3).
type MultipleCaptureOutcome struct {
	Observations []CaptureSyncObservation
}

func (MultipleCaptureOutcome) Kind() OutcomeKind { return OutcomeKindMultipleCapture }

// PostCaptureVoidOutcome wraps a post-capture-void result, merged into the
// intent's state_metadata (§4.6.2).
type PostCaptureVoidOutcome struct {
	Data map[string]any
}

func (PostCaptureVoidOutcome) Kind() OutcomeKind { return OutcomeKindPostCaptureVoid }

// OtherOutcome covers Session/SessionToken/Tokenization and any other Ok
// variant that produces no attempt/intent update.
type OtherOutcome struct{}

func (OtherOutcome) Kind() OutcomeKind { return OutcomeKindOther }
