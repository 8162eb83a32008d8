package payment

import "github.com/shopspring/decimal"

// Flow tags a RouterData instantiation with which of the ~10 connector
// flows it is carrying, so generic code can still recover flow-specific
// behaviour (e.g. the §4.6.1 step 4 status-derivation table is keyed on it).
type Flow string

const (
	FlowAuthorize               Flow = "authorize"
	FlowSetupMandate            Flow = "setup_mandate"
	FlowCapture                 Flow = "capture"
	FlowVoid                    Flow = "void"
	FlowPostCaptureVoid         Flow = "post_capture_void"
	FlowRefund                  Flow = "refund"
	FlowPreProcessingSetup      Flow = "pre_processing_setup"
	FlowPreProcessingEnrollment Flow = "pre_processing_enrollment"
	FlowPreProcessingValidate   Flow = "pre_processing_validate"
	FlowCompleteAuthorize       Flow = "complete_authorize"
	FlowIncrementalAuthorization Flow = "incremental_authorization"
	FlowSync                    Flow = "sync"
	FlowPayoutFulfill           Flow = "payout_fulfill"
)

// ErrorResponse is the normalized shape of a failed connector call (§4.2).
type ErrorResponse struct {
	Code                          string
	Message                       string
	Reason                        string
	StatusCode                    int
	AttemptStatus                 *AttemptStatus
	ConnectorTransactionID        string
	NetworkAdviceCode             string
	NetworkDeclineCode            string
	NetworkErrorMessage           string
	ConnectorResponseReferenceID  string
}

// IntegrityCheckResult is Ok (nil) when the response's echoed amount,
// currency, and reference all matched what was sent; otherwise it names the
// mismatched fields (§3.2, §4.6.1 step 3).
type IntegrityCheckResult struct {
	FieldNames            []string
	ConnectorTransactionID string
}

// Failed reports whether the integrity check found a mismatch.
func (r *IntegrityCheckResult) Failed() bool {
	return r != nil && len(r.FieldNames) > 0
}

// Result is a minimal Ok/Err carrier mirroring the source's Result<Resp,
// ErrorResponse>, since Go has no native sum type for this.
type Result[Resp any] struct {
	Response Resp
	Err      *ErrorResponse
}

// Ok constructs a successful Result.
func Ok[Resp any](resp Resp) Result[Resp] {
	return Result[Resp]{Response: resp}
}

// Err constructs a failed Result.
func Err[Resp any](err *ErrorResponse) Result[Resp] {
	return Result[Resp]{Err: err}
}

// IsErr reports whether the Result carries an error.
func (r Result[Resp]) IsErr() bool {
	return r.Err != nil
}

// RouterData is the flow-typed envelope passed between the router core and
// the connector adapter (§4.2). Req and Resp are the flow's specific
// request/response document types; Flow is carried as a value (not a type
// parameter) since Go generics cannot usefully dispatch on it at the call
// site the way the source's trait-bound implementation does.
type RouterData[Req any, Resp any] struct {
	FlowName              Flow
	Connector             string
	MerchantID            string
	PaymentID             string
	PaymentMethod         PaymentMethodDataKind
	PaymentMethodToken    string // pre-decrypted payload, if any
	AuthType              string
	AmountCaptured        *decimal.Decimal
	MinorAmountCapturable *decimal.Decimal
	Status                AttemptStatus
	Request               Req
	Response              Result[Resp]
	ConnectorMetaData     map[string]any // opaque
	ConnectorResponse     map[string]any
	ShippingAddress       *Address
	BillingAddress        *Address
	IntegrityCheck        *IntegrityCheckResult
}
