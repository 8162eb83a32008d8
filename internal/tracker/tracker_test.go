package tracker

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// fakeRepo is a minimal in-memory payment.Repository for tracker tests.
type fakeRepo struct {
	intents        map[string]*payment.PaymentIntent
	attempts       map[string]*payment.PaymentAttempt
	captures       map[string][]*payment.Capture
	authorizations map[string][]*payment.Authorization

	lastAttemptUpdate payment.AttemptUpdate
	lastIntentUpdate  payment.IntentUpdate
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		intents:        map[string]*payment.PaymentIntent{},
		attempts:       map[string]*payment.PaymentAttempt{},
		captures:       map[string][]*payment.Capture{},
		authorizations: map[string][]*payment.Authorization{},
	}
}

func (f *fakeRepo) GetIntent(_ context.Context, id string) (*payment.PaymentIntent, error) {
	return f.intents[id], nil
}

func (f *fakeRepo) UpdateIntent(_ context.Context, id string, update payment.IntentUpdate) error {
	f.lastIntentUpdate = update
	intent := f.intents[id]
	if update.Status != nil {
		intent.Status = *update.Status
	}
	if update.IncrementalAuthorizationAllowed != nil {
		intent.IncrementalAuthorizationAllowed = *update.IncrementalAuthorizationAllowed
	}
	if update.Amount != nil {
		intent.Amount = *update.Amount
	}
	return nil
}

func (f *fakeRepo) GetAttempt(_ context.Context, id string) (*payment.PaymentAttempt, error) {
	return f.attempts[id], nil
}

func (f *fakeRepo) UpdateAttempt(_ context.Context, id string, update payment.AttemptUpdate) error {
	f.lastAttemptUpdate = update
	attempt := f.attempts[id]
	if update.Status != nil {
		attempt.Status = *update.Status
	}
	if update.ErrorCode != nil {
		attempt.ErrorCode = *update.ErrorCode
	}
	if update.ErrorReason != nil {
		attempt.ErrorReason = *update.ErrorReason
	}
	if update.ConnectorTransactionID != nil {
		attempt.ConnectorTransactionID = *update.ConnectorTransactionID
	}
	if update.NetAmount != nil {
		attempt.NetAmount = *update.NetAmount
	}
	if update.AmountCapturable != nil {
		d, _ := decimal.NewFromString(*update.AmountCapturable)
		attempt.AmountCapturable = d
	}
	return nil
}

func (f *fakeRepo) ListCaptures(_ context.Context, attemptID string) ([]*payment.Capture, error) {
	return f.captures[attemptID], nil
}

func (f *fakeRepo) UpdateCapture(_ context.Context, update payment.CaptureUpdate) error {
	for _, caps := range f.captures {
		for _, c := range caps {
			if c.ID == update.CaptureID {
				c.Status = update.Status
				c.ConnectorCaptureID = update.ConnectorCaptureID
			}
		}
	}
	return nil
}

func (f *fakeRepo) ListAuthorizations(_ context.Context, intentID string) ([]*payment.Authorization, error) {
	return f.authorizations[intentID], nil
}

func (f *fakeRepo) AppendAuthorization(_ context.Context, auth *payment.Authorization) error {
	f.authorizations[auth.PaymentAttemptID] = append(f.authorizations[auth.PaymentAttemptID], auth)
	return nil
}

func TestApplyAuthorizeOrSync_IntegrityFailure(t *testing.T) {
	// §8.2 Scenario E.
	repo := newFakeRepo()
	intent := &payment.PaymentIntent{ID: "intent-1"}
	attempt := &payment.PaymentAttempt{ID: "attempt-1", IntentID: "intent-1", Connector: "cybersource"}
	repo.intents[intent.ID] = intent
	repo.attempts[attempt.ID] = attempt

	tr := &Tracker{Repo: repo}

	result, err := tr.ApplyAuthorizeOrSync(context.Background(), AuthorizeOrSyncInput{
		Flow:    payment.FlowAuthorize,
		Attempt: attempt,
		Intent:  intent,
		IntegrityCheck: &payment.IntegrityCheckResult{
			FieldNames:             []string{"amount"},
			ConnectorTransactionID: "P2",
		},
		Outcome: TransactionOutcome{Status: payment.AttemptStatusAuthorized},
	})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IntegrityFailed)
	assert.Equal(t, payment.AttemptStatusIntegrityFailure, attempt.Status)
	assert.Equal(t, "IE", attempt.ErrorCode)
	assert.Contains(t, attempt.ErrorReason, "Value mismatched for fields amount")
	assert.Nil(t, attempt.ConnectorMandateDetail)
	assert.Equal(t, payment.IntentStatusFailed, intent.Status)
}

func TestApplyAuthorizeOrSync_SuccessfulCharge(t *testing.T) {
	repo := newFakeRepo()
	intent := &payment.PaymentIntent{ID: "intent-2", RequestIncrementalAuthorization: true}
	attempt := &payment.PaymentAttempt{
		ID:        "attempt-2",
		IntentID:  "intent-2",
		Connector: "cybersource",
		NetAmount: payment.NetAmount{OrderAmount: decimal.NewFromFloat(50)},
	}
	repo.intents[intent.ID] = intent
	repo.attempts[attempt.ID] = attempt

	tr := &Tracker{Repo: repo}

	result, err := tr.ApplyAuthorizeOrSync(context.Background(), AuthorizeOrSyncInput{
		Flow:           payment.FlowAuthorize,
		Attempt:        attempt,
		Intent:         intent,
		IntegrityCheck: nil,
		Outcome: TransactionOutcome{
			Status:                     payment.AttemptStatusCharged,
			ConnectorTransactionID:     "P1",
			RespIncrementalAuthAllowed: true,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, payment.AttemptStatusCharged, result.FinalAttemptStatus)
	assert.Equal(t, "P1", attempt.ConnectorTransactionID)
	assert.Equal(t, payment.IntentStatusSucceeded, intent.Status)
	assert.True(t, intent.IncrementalAuthorizationAllowed)
}

func TestApplyAuthorizeOrSync_ErrorDerivesPendingOn5xxForCapture(t *testing.T) {
	repo := newFakeRepo()
	intent := &payment.PaymentIntent{ID: "intent-3"}
	attempt := &payment.PaymentAttempt{ID: "attempt-3", IntentID: "intent-3", Connector: "cybersource"}
	repo.intents[intent.ID] = intent
	repo.attempts[attempt.ID] = attempt

	tr := &Tracker{Repo: repo}

	result, err := tr.ApplyAuthorizeOrSync(context.Background(), AuthorizeOrSyncInput{
		Flow:               payment.FlowCapture,
		Attempt:            attempt,
		Intent:             intent,
		ResponseStatusCode: 503,
		Outcome: ErrorOutcome{Err: &payment.ErrorResponse{
			Code:    "503",
			Message: "service_unavailable",
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, payment.AttemptStatusPending, result.FinalAttemptStatus)
}

func TestApplyAuthorizeOrSync_CardTestingGuardOnFailure(t *testing.T) {
	repo := newFakeRepo()
	intent := &payment.PaymentIntent{ID: "intent-4"}
	attempt := &payment.PaymentAttempt{ID: "attempt-4", IntentID: "intent-4", Connector: "cybersource", FingerprintID: "fp-1"}
	repo.intents[intent.ID] = intent
	repo.attempts[attempt.ID] = attempt

	guard := &recordingGuard{}
	tr := &Tracker{Repo: repo, CardTestingGuard: guard}

	_, err := tr.ApplyAuthorizeOrSync(context.Background(), AuthorizeOrSyncInput{
		Flow:               payment.FlowAuthorize,
		Attempt:            attempt,
		Intent:             intent,
		ResponseStatusCode: 400,
		Outcome: ErrorOutcome{Err: &payment.ErrorResponse{
			Code:    "400",
			Message: "declined",
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fp-1"}, guard.recorded)
}

type recordingGuard struct {
	recorded []string
}

func (g *recordingGuard) RecordFailure(_ context.Context, fingerprint string) error {
	g.recorded = append(g.recorded, fingerprint)
	return nil
}

// fakePMCollaborator is a minimal in-memory payment.PaymentMethodCollaborator
// for exercising §4.6.1 step 9.
type fakePMCollaborator struct {
	pm *payment.PaymentMethod

	lastNTI string
}

func (f *fakePMCollaborator) Get(_ context.Context, id string) (*payment.PaymentMethod, error) {
	return f.pm, nil
}

func (f *fakePMCollaborator) UpdateStatus(_ context.Context, id string, status payment.PaymentMethodStatus) error {
	f.pm.Status = status
	return nil
}

func (f *fakePMCollaborator) SetNetworkTransactionID(_ context.Context, id string, nti string) error {
	f.lastNTI = nti
	f.pm.NetworkTransactionID = nti
	return nil
}

func (f *fakePMCollaborator) UpdateConnectorMandateDetail(_ context.Context, id, connector string, detail *payment.ConnectorTokenDetails) error {
	return nil
}

func TestApplyAuthorizeOrSync_SetsNetworkTransactionIDFromOutcomeNotMandateReference(t *testing.T) {
	repo := newFakeRepo()
	intent := &payment.PaymentIntent{ID: "intent-nti", SetupFutureUsage: payment.SetupFutureUsageOffSession}
	attempt := &payment.PaymentAttempt{
		ID:                "attempt-nti",
		IntentID:          "intent-nti",
		Connector:         "cybersource",
		PaymentMethodID:   "pm-1",
		NetAmount:         payment.NetAmount{OrderAmount: decimal.NewFromFloat(50)},
	}
	repo.intents[intent.ID] = intent
	repo.attempts[attempt.ID] = attempt

	pmCollaborator := &fakePMCollaborator{pm: &payment.PaymentMethod{ID: "pm-1", Status: payment.PaymentMethodStatusInactive}}
	tr := &Tracker{Repo: repo, PMCollaborator: pmCollaborator}

	_, err := tr.ApplyAuthorizeOrSync(context.Background(), AuthorizeOrSyncInput{
		Flow:    payment.FlowAuthorize,
		Attempt: attempt,
		Intent:  intent,
		Outcome: TransactionOutcome{
			Status:                 payment.AttemptStatusCharged,
			ConnectorTransactionID: "P9",
			NetworkTransactionID:   "connector-nti-123",
			// A ConnectorMandateId reference carries no NTI of its own; the
			// PM's network_transaction_id must still come from the
			// connector response field, not this reference.
			MandateReference: payment.ConnectorMandateId{},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "connector-nti-123", pmCollaborator.lastNTI)
	assert.Equal(t, "connector-nti-123", pmCollaborator.pm.NetworkTransactionID)
	assert.Equal(t, payment.PaymentMethodStatusActive, pmCollaborator.pm.Status)
}

func TestApplyIncrementalAuthorization_Success(t *testing.T) {
	// §8.2 Scenario F.
	repo := newFakeRepo()
	intent := &payment.PaymentIntent{ID: "intent-5", Amount: decimal.NewFromFloat(100)}
	authorizedAmount := decimal.NewFromFloat(100)
	attempt := &payment.PaymentAttempt{
		ID:               "attempt-5",
		IntentID:         "intent-5",
		Status:           payment.AttemptStatusAuthorized,
		AuthorizedAmount: &authorizedAmount,
		NetAmount: payment.NetAmount{
			OrderAmount: decimal.NewFromFloat(100),
			Surcharge:   decimal.NewFromFloat(5),
		},
	}
	repo.intents[intent.ID] = intent
	repo.attempts[attempt.ID] = attempt

	tr := &Tracker{Repo: repo}

	err := tr.ApplyIncrementalAuthorization(context.Background(), attempt, intent, decimal.NewFromFloat(150), IncrementalAuthorizationResult{
		Status: payment.AuthorizationStatusSuccess,
	})

	require.NoError(t, err)
	assert.True(t, attempt.NetAmount.Total().Equal(decimal.NewFromFloat(150)))
	assert.True(t, attempt.NetAmount.OrderAmount.Equal(decimal.NewFromFloat(145)))
	assert.True(t, attempt.AmountCapturable.Equal(decimal.NewFromFloat(150)))
	assert.True(t, intent.Amount.Equal(decimal.NewFromFloat(150)))
	require.Len(t, repo.authorizations[attempt.ID], 1)
	assert.Equal(t, payment.AuthorizationStatusSuccess, repo.authorizations[attempt.ID][0].Status)
}

func TestApplyIncrementalAuthorization_FailureLeavesAmountsUnchanged(t *testing.T) {
	repo := newFakeRepo()
	intent := &payment.PaymentIntent{ID: "intent-6", Amount: decimal.NewFromFloat(100)}
	attempt := &payment.PaymentAttempt{
		ID:       "attempt-6",
		IntentID: "intent-6",
		NetAmount: payment.NetAmount{
			OrderAmount: decimal.NewFromFloat(100),
			Surcharge:   decimal.NewFromFloat(5),
		},
	}
	repo.intents[intent.ID] = intent
	repo.attempts[attempt.ID] = attempt

	tr := &Tracker{Repo: repo}

	err := tr.ApplyIncrementalAuthorization(context.Background(), attempt, intent, decimal.NewFromFloat(150), IncrementalAuthorizationResult{
		Status:       payment.AuthorizationStatusFailure,
		ErrorCode:    "declined",
		ErrorMessage: "insufficient limit",
	})

	require.NoError(t, err)
	assert.True(t, attempt.NetAmount.OrderAmount.Equal(decimal.NewFromFloat(100)))
	assert.True(t, intent.Amount.Equal(decimal.NewFromFloat(100)))
	require.Len(t, repo.authorizations[attempt.ID], 1)
	assert.Equal(t, payment.AuthorizationStatusFailure, repo.authorizations[attempt.ID][0].Status)
}

func TestReconcileMultipleCaptures(t *testing.T) {
	repo := newFakeRepo()
	authorizedAmount := decimal.NewFromFloat(100)
	attempt := &payment.PaymentAttempt{ID: "attempt-7", AuthorizedAmount: &authorizedAmount}
	repo.captures[attempt.ID] = []*payment.Capture{
		{ID: "cap-1", Amount: decimal.NewFromFloat(60), Status: payment.CaptureStatusPending, IsFinal: true},
		{ID: "cap-2", Amount: decimal.NewFromFloat(40), Status: payment.CaptureStatusPending, ConnectorCaptureID: "ccap-2", IsFinal: true},
	}

	tr := &Tracker{Repo: repo}

	update, err := tr.reconcileMultipleCaptures(context.Background(), attempt, []CaptureSyncObservation{
		{ConnectorCaptureID: "ccap-2", Status: payment.CaptureStatusCharged},
		{ConnectorResponseReferenceID: "cap-1", Status: payment.CaptureStatusCharged},
	})

	require.NoError(t, err)
	assert.Equal(t, payment.AttemptStatusCharged, *update.Status)
	assert.Equal(t, "0", *update.AmountCapturable)
}
