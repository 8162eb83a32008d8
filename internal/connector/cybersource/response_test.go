package cybersource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

func TestMapAttemptStatus(t *testing.T) {
	tests := []struct {
		status      string
		captureFlag bool
		want        payment.AttemptStatus
	}{
		{statusAuthorized, true, payment.AttemptStatusCharged},
		{statusAuthorized, false, payment.AttemptStatusAuthorized},
		{statusSucceeded, false, payment.AttemptStatusCharged},
		{statusTransmitted, true, payment.AttemptStatusCharged},
		{statusVoided, true, payment.AttemptStatusVoided},
		{statusReversed, false, payment.AttemptStatusVoided},
		{statusCancelled, false, payment.AttemptStatusVoided},
		{statusFailed, true, payment.AttemptStatusFailure},
		{statusDeclined, false, payment.AttemptStatusFailure},
		{statusAuthorizedRiskDeclined, false, payment.AttemptStatusFailure},
		{statusServerError, false, payment.AttemptStatusFailure},
		{statusPendingAuthentication, false, payment.AttemptStatusAuthenticationPending},
		{statusPendingReview, true, payment.AttemptStatusPending},
		{statusChallenge, false, payment.AttemptStatusPending},
		{statusAuthorizedPendingReview, false, payment.AttemptStatusPending},
		{"SOME_UNSEEN_STATUS", false, payment.AttemptStatusPending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapAttemptStatus(tt.status, tt.captureFlag))
	}
}

func TestParsePaymentsResponse_Success(t *testing.T) {
	resp := &CybersourcePaymentsResponse{ID: "txn-1", Status: statusAuthorized}
	status, errResp := ParsePaymentsResponse(resp, 201, false)

	assert.Equal(t, payment.AttemptStatusAuthorized, status)
	assert.Nil(t, errResp)
}

func TestParsePaymentsResponse_Failure_ComposesReason(t *testing.T) {
	resp := &CybersourcePaymentsResponse{
		ID:     "txn-2",
		Status: statusDeclined,
		ErrorInformation: &ErrorInformation{
			Reason:  "DECLINED",
			Message: "Insufficient funds",
			Details: []ErrorInformationDetail{
				{Field: "card.number", Reason: "invalid"},
			},
		},
		RiskInformation: &RiskInformation{
			Rules: []RiskRule{{Name: "avs_mismatch"}},
		},
	}

	status, errResp := ParsePaymentsResponse(resp, 400, false)

	assert.Equal(t, payment.AttemptStatusFailure, status)
	if assert.NotNil(t, errResp) {
		assert.Equal(t, "DECLINED", errResp.Code)
		assert.Equal(t, "Insufficient funds", errResp.Message)
		assert.Contains(t, errResp.Reason, "detailed_error_information: card.number:invalid")
		assert.Contains(t, errResp.Reason, "avs_message: avs_mismatch")
		assert.Equal(t, "txn-2", errResp.ConnectorTransactionID)
		if assert.NotNil(t, errResp.AttemptStatus) {
			assert.Equal(t, payment.AttemptStatusFailure, *errResp.AttemptStatus)
		}
	}
}

func TestBuild5xxErrorResponse(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{500, "internal_server_error"},
		{501, "not_implemented"},
		{502, "bad_gateway"},
		{503, "service_unavailable"},
		{504, "gateway_timeout"},
		{511, "network_authentication_required"},
		{599, "unknown_error"},
	}

	for _, tt := range tests {
		errResp := Build5xxErrorResponse(tt.code, "raw body")
		assert.Equal(t, tt.want, errResp.Message)
		assert.Equal(t, tt.code, errResp.StatusCode)
	}
}

func TestParseErrorEnvelope_Authentication(t *testing.T) {
	auth := &AuthenticationErrorBody{}
	auth.Response.Rmsg = "invalid merchant credentials"

	errResp := ParseErrorEnvelope(ErrorEnvelopeAuthentication, 401, nil, auth, nil, "")

	assert.Equal(t, "invalid merchant credentials", errResp.Message)
	assert.Equal(t, 401, errResp.StatusCode)
}

func TestParseErrorEnvelope_NotAvailable(t *testing.T) {
	notAvail := &NotAvailableErrorBody{Message: "transaction not found"}

	errResp := ParseErrorEnvelope(ErrorEnvelopeNotAvailable, 404, nil, nil, notAvail, "txn-3")

	assert.Equal(t, "transaction not found", errResp.Message)
	assert.Equal(t, "txn-3", errResp.ConnectorTransactionID)
}

func TestParseErrorEnvelope_Standard(t *testing.T) {
	std := &StandardErrorBody{
		ErrorInformation: &ErrorInformation{Message: "bad request"},
	}

	errResp := ParseErrorEnvelope(ErrorEnvelopeStandard, 400, std, nil, nil, "")

	assert.Equal(t, "bad request", errResp.Message)
}

func TestMapRefundStatus(t *testing.T) {
	assert.Equal(t, RefundStatusSuccess, MapRefundStatus(statusSucceeded))
	assert.Equal(t, RefundStatusSuccess, MapRefundStatus(statusTransmitted))
	assert.Equal(t, RefundStatusFailure, MapRefundStatus(statusFailed))
	assert.Equal(t, RefundStatusFailure, MapRefundStatus(statusVoided))
	assert.Equal(t, RefundStatusFailure, MapRefundStatus(statusCancelled))
	assert.Equal(t, RefundStatusPending, MapRefundStatus(statusPending))
}

func TestParseRefundSyncResponse_VoidedIsError(t *testing.T) {
	status, errResp := ParseRefundSyncResponse(statusVoided, 200, "txn-4")

	assert.Equal(t, RefundStatusFailure, status)
	if assert.NotNil(t, errResp) {
		assert.Equal(t, errRefundVoidedMessage, errResp.Message)
		assert.Equal(t, "txn-4", errResp.ConnectorTransactionID)
	}
}

func TestParseRefundSyncResponse_Success(t *testing.T) {
	status, errResp := ParseRefundSyncResponse(statusSucceeded, 200, "txn-5")

	assert.Equal(t, RefundStatusSuccess, status)
	assert.Nil(t, errResp)
}
