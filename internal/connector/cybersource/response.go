package cybersource

import (
	"strconv"
	"strings"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// Connector status strings as they appear on the wire (§4.5).
const (
	statusAuthorized              = "AUTHORIZED"
	statusPendingAuthentication    = "PENDING_AUTHENTICATION"
	statusSucceeded                = "SUCCEEDED"
	statusTransmitted              = "TRANSMITTED"
	statusVoided                   = "VOIDED"
	statusReversed                  = "REVERSED"
	statusCancelled                 = "CANCELLED"
	statusFailed                    = "FAILED"
	statusDeclined                  = "DECLINED"
	statusAuthorizedRiskDeclined    = "AUTHORIZED_RISK_DECLINED"
	statusRejected                  = "REJECTED"
	statusInvalidRequest            = "INVALID_REQUEST"
	statusServerError               = "SERVER_ERROR"
	statusPendingReview             = "PENDING_REVIEW"
	statusStatusNotReceived         = "STATUS_NOT_RECEIVED"
	statusChallenge                 = "CHALLENGE"
	statusAccepted                  = "ACCEPTED"
	statusPending                   = "PENDING"
	statusAuthorizedPendingReview   = "AUTHORIZED_PENDING_REVIEW"
)

// MapAttemptStatus implements the §4.5 status-mapping table. captureFlag is
// whether the originating Authorize request was auto-capture
// (ProcessingInformation.Capture).
func MapAttemptStatus(connectorStatus string, captureFlag bool) payment.AttemptStatus {
	switch connectorStatus {
	case statusAuthorized:
		if captureFlag {
			return payment.AttemptStatusCharged
		}
		return payment.AttemptStatusAuthorized
	case statusSucceeded, statusTransmitted:
		return payment.AttemptStatusCharged
	case statusVoided, statusReversed, statusCancelled:
		return payment.AttemptStatusVoided
	case statusFailed, statusDeclined, statusAuthorizedRiskDeclined, statusRejected, statusInvalidRequest, statusServerError:
		return payment.AttemptStatusFailure
	case statusPendingAuthentication:
		return payment.AttemptStatusAuthenticationPending
	case statusPendingReview, statusStatusNotReceived, statusChallenge, statusAccepted, statusPending, statusAuthorizedPendingReview:
		return payment.AttemptStatusPending
	default:
		return payment.AttemptStatusPending
	}
}

// IsPaymentFailure reports whether a mapped AttemptStatus is the
// "payment failure" classification that triggers composite error-response
// construction (§4.5 "Failure detection for error-response construction").
func IsPaymentFailure(status payment.AttemptStatus) bool {
	switch status {
	case payment.AttemptStatusFailure, payment.AttemptStatusRouterDeclined, payment.AttemptStatusVoidFailed,
		payment.AttemptStatusCaptureFailed, payment.AttemptStatusAuthenticationFailed, payment.AttemptStatusExpired:
		return true
	default:
		return false
	}
}

// ParsePaymentsResponse maps a CybersourcePaymentsResponse plus its HTTP
// status to an internal Result, applying §4.5's error-response composition
// when the mapped status is a payment failure.
func ParsePaymentsResponse(resp *CybersourcePaymentsResponse, httpStatusCode int, captureFlag bool) (payment.AttemptStatus, *payment.ErrorResponse) {
	status := MapAttemptStatus(resp.Status, captureFlag)
	if !IsPaymentFailure(status) {
		return status, nil
	}
	errResp := buildErrorResponse(resp.ErrorInformation, resp.RiskInformation, httpStatusCode, resp.ID)
	errResp.AttemptStatus = &status
	return status, errResp
}

// buildErrorResponse implements the §4.5 "get_error_response" composite
// reason-string assembly: errorInformation.message, then each
// details[*].field:reason joined in, then each risk rule name, separated by
// the literal tokens below.
func buildErrorResponse(info *ErrorInformation, risk *RiskInformation, httpStatusCode int, connectorTransactionID string) *payment.ErrorResponse {
	var message, reason string
	code := DefaultErrorCode(httpStatusCode)

	if info != nil {
		message = info.Message
		if message == "" {
			message = info.Reason
		}
		reason = message
		if len(info.Details) > 0 {
			parts := make([]string, 0, len(info.Details))
			for _, d := range info.Details {
				parts = append(parts, d.Field+":"+d.Reason)
			}
			reason += ", detailed_error_information: " + strings.Join(parts, ", ")
		}
		if info.Reason != "" {
			code = info.Reason
		}
	}
	if risk != nil && len(risk.Rules) > 0 {
		names := make([]string, 0, len(risk.Rules))
		for _, r := range risk.Rules {
			names = append(names, r.Name)
		}
		reason += ", avs_message: " + strings.Join(names, ", ")
	}
	if message == "" {
		message = payment.DefaultUnifiedErrorMessage
	}

	return &payment.ErrorResponse{
		Code:                   code,
		Message:                message,
		Reason:                 reason,
		StatusCode:             httpStatusCode,
		ConnectorTransactionID: connectorTransactionID,
	}
}

// DefaultErrorCode falls back to the HTTP status string when Cybersource's
// errorInformation carries no machine-readable reason code.
func DefaultErrorCode(httpStatusCode int) string {
	return strconv.Itoa(httpStatusCode)
}

// fiveXXMnemonics is the total mapping of §4.5's "separate mapper [that]
// produces a coarser ErrorResponse with mnemonic messages": it covers
// 500-508, 510 and 511, and Build5xxErrorResponse falls back to
// "unknown_error" for any other code, so the mapper never panics on an
// unseen 5xx code.
var fiveXXMnemonics = map[int]string{
	500: "internal_server_error",
	501: "not_implemented",
	502: "bad_gateway",
	503: "service_unavailable",
	504: "gateway_timeout",
	505: "http_version_not_supported",
	506: "variant_also_negotiates",
	507: "insufficient_storage",
	508: "loop_detected",
	510: "not_extended",
	511: "network_authentication_required",
}

// Build5xxErrorResponse implements the 5xx mnemonic mapper. rawBody is the
// raw response bytes, carried through as Reason for diagnostics.
func Build5xxErrorResponse(httpStatusCode int, rawBody string) *payment.ErrorResponse {
	mnemonic, ok := fiveXXMnemonics[httpStatusCode]
	if !ok {
		mnemonic = "unknown_error"
	}
	return &payment.ErrorResponse{
		Code:       strconv.Itoa(httpStatusCode),
		Message:    mnemonic,
		Reason:     rawBody,
		StatusCode: httpStatusCode,
	}
}

// --- Error envelope tagged union ---

// ErrorEnvelopeKind discriminates the three shapes a non-2xx Cybersource
// body may take (§4.5 "Error envelopes are tagged-union-parsed").
type ErrorEnvelopeKind int

const (
	ErrorEnvelopeStandard ErrorEnvelopeKind = iota
	ErrorEnvelopeAuthentication
	ErrorEnvelopeNotAvailable
)

// StandardErrorBody is Cybersource's common error shape.
type StandardErrorBody struct {
	Status           string                   `json:"status,omitempty"`
	ErrorInformation *ErrorInformation        `json:"errorInformation,omitempty"`
	Details          []ErrorInformationDetail `json:"details,omitempty"`
}

// AuthenticationErrorBody is returned when the gateway rejects the
// request's credentials before evaluating the transaction at all.
type AuthenticationErrorBody struct {
	Response struct {
		Rmsg string `json:"rmsg,omitempty"`
	} `json:"response"`
}

// NotAvailableErrorBody is returned for 404-shaped "resource not found"
// responses (e.g. syncing a transaction id the gateway no longer knows).
type NotAvailableErrorBody struct {
	Message string `json:"message,omitempty"`
}

// ParseErrorEnvelope classifies and extracts a normalized ErrorResponse from
// one of the three tagged shapes, selected by which fields the caller was
// able to successfully decode into (the decode attempt itself is the
// caller's responsibility since Go has no native discriminated JSON union;
// callers try StandardErrorBody first, then the other two, in that order,
// consistent with how the source's serde-tagged enum resolves variants).
func ParseErrorEnvelope(kind ErrorEnvelopeKind, httpStatusCode int, std *StandardErrorBody, auth *AuthenticationErrorBody, notAvail *NotAvailableErrorBody, connectorTransactionID string) *payment.ErrorResponse {
	switch kind {
	case ErrorEnvelopeAuthentication:
		msg := payment.DefaultUnifiedErrorMessage
		if auth != nil && auth.Response.Rmsg != "" {
			msg = auth.Response.Rmsg
		}
		return &payment.ErrorResponse{
			Code:       strconv.Itoa(httpStatusCode),
			Message:    msg,
			Reason:     msg,
			StatusCode: httpStatusCode,
		}
	case ErrorEnvelopeNotAvailable:
		msg := payment.DefaultUnifiedErrorMessage
		if notAvail != nil && notAvail.Message != "" {
			msg = notAvail.Message
		}
		return &payment.ErrorResponse{
			Code:                   strconv.Itoa(httpStatusCode),
			Message:                msg,
			Reason:                 msg,
			StatusCode:             httpStatusCode,
			ConnectorTransactionID: connectorTransactionID,
		}
	default:
		var info *ErrorInformation
		if std != nil {
			info = std.ErrorInformation
			if info == nil && len(std.Details) > 0 {
				info = &ErrorInformation{Details: std.Details}
			}
		}
		return buildErrorResponse(info, nil, httpStatusCode, connectorTransactionID)
	}
}

// --- Refund status mapping ---

// RefundStatus is the target lattice for the refund flow's own status
// mapping (§4.5 "Refund status mapping is analogous").
type RefundStatus string

const (
	RefundStatusSuccess RefundStatus = "success"
	RefundStatusFailure RefundStatus = "failure"
	RefundStatusPending RefundStatus = "pending"
)

// MapRefundStatus implements the refund lattice: Succeeded/Transmitted ->
// Success; Failed/Voided/Cancelled -> Failure; Pending -> Pending.
func MapRefundStatus(connectorStatus string) RefundStatus {
	switch connectorStatus {
	case statusSucceeded, statusTransmitted:
		return RefundStatusSuccess
	case statusFailed, statusVoided, statusCancelled:
		return RefundStatusFailure
	default:
		return RefundStatusPending
	}
}

// errRefundVoidedMessage is the fixed message §4.5 requires when a refund sync
// response reports Voided: this is always surfaced as an error regardless
// of MapRefundStatus's Failure classification, since a voided refund never
// moved the funds and callers must not treat it as a completed reversal.
const errRefundVoidedMessage = "refund voided"

// RefundVoidedError builds the fixed error §4.5 requires when a refund
// sync response observes the connector status Voided.
func RefundVoidedError(httpStatusCode int, connectorTransactionID string) *payment.ErrorResponse {
	return &payment.ErrorResponse{
		Code:                   strconv.Itoa(httpStatusCode),
		Message:                errRefundVoidedMessage,
		Reason:                 errRefundVoidedMessage,
		StatusCode:             httpStatusCode,
		ConnectorTransactionID: connectorTransactionID,
	}
}

// ParseRefundSyncResponse applies MapRefundStatus plus the Voided special
// case from a refund sync response.
func ParseRefundSyncResponse(connectorStatus string, httpStatusCode int, connectorTransactionID string) (RefundStatus, *payment.ErrorResponse) {
	if connectorStatus == statusVoided {
		return RefundStatusFailure, RefundVoidedError(httpStatusCode, connectorTransactionID)
	}
	status := MapRefundStatus(connectorStatus)
	if status == RefundStatusFailure {
		return status, &payment.ErrorResponse{
			Code:                   strconv.Itoa(httpStatusCode),
			Message:                payment.DefaultUnifiedErrorMessage,
			StatusCode:             httpStatusCode,
			ConnectorTransactionID: connectorTransactionID,
		}
	}
	return status, nil
}
