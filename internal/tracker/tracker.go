package tracker

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/routepay/gatewaycore/internal/domain/payment"
	ierr "github.com/routepay/gatewaycore/internal/errors"
)

// MetricsRecorder is the out-of-scope metrics collaborator consulted on a
// successful terminal status (§4.6.1 step 4, "SUCCESSFUL_PAYMENT counter").
// A nil Tracker.Metrics is a no-op, not an error.
type MetricsRecorder interface {
	IncrementSuccessfulPayment(ctx context.Context, connector string)
}

// Tracker implements the post-update algorithm of §4.6.1 for the Authorize
// and Sync flows (the canonical case) plus the capture (§4.6.3) and
// incremental-authorization (§4.6.4) specializations. All collaborators are
// constructor-injected external dependencies; the struct itself holds no
// connection state.
type Tracker struct {
	Repo                 payment.Repository
	MandateCollaborator  payment.MandateCollaborator
	PMCollaborator       payment.PaymentMethodCollaborator
	CardTestingGuard     payment.CardTestingGuard
	BackgroundRunner     payment.BackgroundRunner
	GSM                  payment.GSMRepository
	MerchantAdvice       payment.MerchantAdviceCodeRepository
	Translator           payment.UnifiedMessageTranslator
	Encryptor            Encryptor
	Metrics              MetricsRecorder
	// ModularPaymentMethodFeature, when true, skips §4.6.1 step 8 (the
	// connector-mandate-detail update lives elsewhere under that feature).
	ModularPaymentMethodFeature bool
}

// AuthorizeOrSyncInput gathers what ApplyAuthorizeOrSync needs: the
// in-flight payment data plus the parsed connector outcome (§4.6).
type AuthorizeOrSyncInput struct {
	Flow               payment.Flow
	Attempt            *payment.PaymentAttempt
	Intent             *payment.PaymentIntent
	IntegrityCheck     *payment.IntegrityCheckResult
	Outcome            Outcome
	MerchantInitiated  bool
	Locale             string
	RouterDataStatus   payment.AttemptStatus
	ResponseStatusCode int
}

// ApplyResult summarizes what the tracker decided, for the caller to surface
// to its own response envelope.
type ApplyResult struct {
	FinalAttemptStatus payment.AttemptStatus
	IntegrityFailed    bool
}

// ApplyAuthorizeOrSync runs the full §4.6.1 algorithm and returns the final
// attempt status. When the integrity check fails it still applies the
// frozen attempt/intent update (per the invariant in §3.2) and then returns
// the IntegrityCheckFailed outbound error (§7, §8.1 property 1).
func (t *Tracker) ApplyAuthorizeOrSync(ctx context.Context, in AuthorizeOrSyncInput) (*ApplyResult, error) {
	attempt, intent := in.Attempt, in.Intent

	// Steps 1-2: PM-data merge + encryption gate. The merge input is only
	// ever populated on a TransactionOutcome (the only case that carries an
	// observed-network field); all other outcomes leave the attempt's PM
	// data untouched.
	var observedNetwork *payment.CardNetwork
	if txn, ok := in.Outcome.(TransactionOutcome); ok {
		observedNetwork = txn.ObservedCardNetwork
	}
	mergedData, encryptedData, err := t.applyPMDataGate(ctx, attempt, observedNetwork)
	if err != nil {
		return nil, err
	}

	// Step 3: integrity-check gate.
	if in.IntegrityCheck.Failed() {
		status := payment.AttemptStatusIntegrityFailure
		errCode := "IE"
		errMsg := "Integrity Check Failed!"
		errReason := integrityFailureReason(in.IntegrityCheck.FieldNames)

		update := payment.AttemptUpdate{
			Status:       &status,
			ErrorCode:    &errCode,
			ErrorMessage: &errMsg,
			ErrorReason:  &errReason,
		}
		if mergedData != nil {
			update.PaymentMethodData = mergedData
		}
		if encryptedData != nil {
			update.EncryptedPaymentMethodData = encryptedData
		}
		if err := t.Repo.UpdateAttempt(ctx, attempt.ID, update); err != nil {
			return nil, err
		}

		intentUpdate := t.deriveIntentUpdateForStatus(status, intent)
		if err := t.Repo.UpdateIntent(ctx, intent.ID, intentUpdate); err != nil {
			return nil, err
		}

		return &ApplyResult{FinalAttemptStatus: status, IntegrityFailed: true},
			ierr.NewError("integrity check failed").
				WithHintf("%s", errReason).
				WithReportableDetails(map[string]any{
					"connector_transaction_id": in.IntegrityCheck.ConnectorTransactionID,
					"field_names":              in.IntegrityCheck.FieldNames,
				}).
				Mark(ierr.ErrIntegrityFailure)
	}

	// Step 4: response-case split.
	var attemptUpdate payment.AttemptUpdate
	var finalStatus payment.AttemptStatus
	var successfulTerminal bool
	var mandateReference payment.MandateReferenceId
	var networkTransactionID string

	switch outcome := in.Outcome.(type) {
	case ErrorOutcome:
		attemptUpdate = t.buildErrorAttemptUpdate(in, outcome.Err)
		finalStatus = *attemptUpdate.Status

	case TransactionOutcome:
		finalStatus = outcome.Status
		successfulTerminal = finalStatus.IsSuccessful()
		mandateReference = outcome.MandateReference
		networkTransactionID = outcome.NetworkTransactionID

		if outcome.MultipleCaptureData != nil {
			authorizedAmount := decimal.Zero
			if attempt.AuthorizedAmount != nil {
				authorizedAmount = *attempt.AuthorizedAmount
			}
			capStatus := outcome.MultipleCaptureData.GetAttemptStatus(authorizedAmount)
			blocked := outcome.MultipleCaptureData.BlockedAmount()
			amountCapturable := authorizedAmount.Sub(blocked).String()
			attemptUpdate = payment.AttemptUpdate{Status: &capStatus, AmountCapturable: &amountCapturable}
			finalStatus = capStatus
		} else {
			attemptUpdate = payment.AttemptUpdate{
				Status:                 &finalStatus,
				ConnectorTransactionID: &outcome.ConnectorTransactionID,
				MandateReference:       outcome.MandateReference,
			}
			if outcome.CoercedAuthType != "" {
				attemptUpdate.AuthType = &outcome.CoercedAuthType
			}
			if outcome.AmountCapturable != nil {
				s := outcome.AmountCapturable.String()
				attemptUpdate.AmountCapturable = &s
			}
			if outcome.EncodedAuthenticationData != "" {
				attemptUpdate.EncodedRedirectionData = &outcome.EncodedAuthenticationData
			}
			if len(outcome.ConnectorMetadata) > 0 {
				attemptUpdate.Metadata = outcome.ConnectorMetadata
			}
			if outcome.NetworkTransactionID != "" {
				attemptUpdate.NetworkTransactionID = &outcome.NetworkTransactionID
			}
			attemptUpdate.CardNetwork = outcome.CardNetwork
		}

		if mergedData != nil {
			attemptUpdate.PaymentMethodData = mergedData
		}
		if encryptedData != nil {
			attemptUpdate.EncryptedPaymentMethodData = encryptedData
		}

		if successfulTerminal && t.Metrics != nil {
			t.Metrics.IncrementSuccessfulPayment(ctx, attempt.Connector)
		}

	case PreProcessingOutcome:
		finalStatus = attempt.Status
		attemptUpdate = payment.AttemptUpdate{PreProcessingStepID: &outcome.StepID}
		if outcome.ConnectorTransactionID != "" {
			attemptUpdate.ConnectorTransactionID = &outcome.ConnectorTransactionID
		}

	case MultipleCaptureOutcome:
		update, err := t.reconcileMultipleCaptures(ctx, attempt, outcome.Observations)
		if err != nil {
			return nil, err
		}
		attemptUpdate = update
		finalStatus = *update.Status

	case PostCaptureVoidOutcome:
		finalStatus = attempt.Status
		// No attempt update; the void result merges into the intent's
		// state_metadata in step 6.

	default:
		// OtherOutcome: no attempt/intent update at all.
		return &ApplyResult{FinalAttemptStatus: attempt.Status}, nil
	}

	// Step 5: apply attempt update (skipped for PostCaptureVoid, which has
	// no attempt-level fields to write).
	if _, isVoid := in.Outcome.(PostCaptureVoidOutcome); !isVoid {
		if err := t.Repo.UpdateAttempt(ctx, attempt.ID, attemptUpdate); err != nil {
			return nil, err
		}
	}

	// Step 6: derive and apply intent update.
	intentUpdate := t.deriveIntentUpdate(in, finalStatus)
	if err := t.Repo.UpdateIntent(ctx, intent.ID, intentUpdate); err != nil {
		return nil, err
	}

	// Step 7: mandate-id carryover.
	if mandateReference != nil && attempt.MandateID != "" {
		if connMandate, ok := mandateReference.(payment.ConnectorMandateId); ok && t.MandateCollaborator != nil {
			detail := &payment.ConnectorMandateDetail{
				ConnectorMandateId:                 connMandate.ConnectorMandateReferenceId.ConnectorMandateId,
				ConnectorMandateRequestReferenceId: connMandate.ConnectorMandateReferenceId.ConnectorMandateRequestReferenceId,
				OriginalPaymentAuthorizedAmount:     connMandate.ConnectorMandateReferenceId.OriginalPaymentAuthorizedAmount,
				OriginalPaymentAuthorizedCurrency:   connMandate.ConnectorMandateReferenceId.OriginalPaymentAuthorizedCurrency,
			}
			if err := t.MandateCollaborator.UpsertFromAttempt(ctx, intent.CustomerID, detail); err != nil {
				return nil, err
			}
		}
	}

	// Step 8: conditional PM connector-mandate-detail update.
	if !t.ModularPaymentMethodFeature {
		if err := t.maybeUpdateConnectorMandateDetail(ctx, attempt, intent, in.Outcome, finalStatus, mandateReference); err != nil {
			return nil, err
		}
	}

	// Step 9: PM status and NTI update.
	if err := t.maybeUpdatePaymentMethod(ctx, attempt, intent, finalStatus, networkTransactionID); err != nil {
		return nil, err
	}

	// Step 10: card-testing guard.
	if finalStatus == payment.AttemptStatusFailure && t.CardTestingGuard != nil && attempt.FingerprintID != "" {
		if err := t.CardTestingGuard.RecordFailure(ctx, attempt.FingerprintID); err != nil {
			return nil, err
		}
	}

	return &ApplyResult{FinalAttemptStatus: finalStatus}, nil
}

// integrityFailureReason implements §4.6.1 step 3's fixed reason string.
func integrityFailureReason(fieldNames []string) string {
	reason := "… Value mismatched for fields"
	for i, name := range fieldNames {
		if i == 0 {
			reason = "Value mismatched for fields " + name
			continue
		}
		reason += ", " + name
	}
	return reason
}

// maybeUpdateConnectorMandateDetail implements §4.6.1 step 8: only when the
// response is a TransactionResponse, integrity passed (guaranteed here
// since the integrity gate already returned above), and the final status is
// one of the successful-terminal set; further gated on the referenced PM
// having no active mandate yet for this connector and the intent being
// OffSession.
func (t *Tracker) maybeUpdateConnectorMandateDetail(ctx context.Context, attempt *payment.PaymentAttempt, intent *payment.PaymentIntent, outcome Outcome, finalStatus payment.AttemptStatus, mandateReference payment.MandateReferenceId) error {
	if _, ok := outcome.(TransactionOutcome); !ok {
		return nil
	}
	switch finalStatus {
	case payment.AttemptStatusCharged, payment.AttemptStatusAuthorized, payment.AttemptStatusPartiallyAuthorized:
	default:
		return nil
	}
	if mandateReference == nil || attempt.PaymentMethodID == "" || t.PMCollaborator == nil {
		return nil
	}
	connMandate, ok := mandateReference.(payment.ConnectorMandateId)
	if !ok {
		return nil
	}

	pm, err := t.PMCollaborator.Get(ctx, attempt.PaymentMethodID)
	if err != nil {
		return err
	}
	if pm.HasActiveMandateFor(attempt.Connector) || !intent.IsOffSession() {
		return nil
	}

	detail := &payment.ConnectorTokenDetails{
		Token:                               connMandate.ConnectorMandateReferenceId.ConnectorMandateId,
		ConnectorMandateRequestReferenceId:  connMandate.ConnectorMandateReferenceId.ConnectorMandateRequestReferenceId,
		OriginalPaymentAuthorizedAmount:     connMandate.ConnectorMandateReferenceId.OriginalPaymentAuthorizedAmount,
		OriginalPaymentAuthorizedCurrency:   connMandate.ConnectorMandateReferenceId.OriginalPaymentAuthorizedCurrency,
		Status:                              payment.PaymentMethodStatusActive,
	}
	return t.PMCollaborator.UpdateConnectorMandateDetail(ctx, attempt.PaymentMethodID, attempt.Connector, detail)
}

// maybeUpdatePaymentMethod implements §4.6.1 step 9. The network-transaction-id
// comes from the connector's own response field (outcome.NetworkTransactionID),
// not from the mandate reference, which typically carries a connector mandate
// id rather than the NTI the gateway returned for this specific transaction.
func (t *Tracker) maybeUpdatePaymentMethod(ctx context.Context, attempt *payment.PaymentAttempt, intent *payment.PaymentIntent, finalStatus payment.AttemptStatus, networkTransactionID string) error {
	if attempt.PaymentMethodID == "" || t.PMCollaborator == nil {
		return nil
	}
	pm, err := t.PMCollaborator.Get(ctx, attempt.PaymentMethodID)
	if err != nil {
		return err
	}
	projected := payment.ProjectToPaymentMethodStatus(finalStatus)
	if pm.Status != payment.PaymentMethodStatusActive && pm.Status != projected {
		if err := t.PMCollaborator.UpdateStatus(ctx, attempt.PaymentMethodID, projected); err != nil {
			return err
		}
	}
	if intent.IsOffSession() && networkTransactionID != "" {
		if err := t.PMCollaborator.SetNetworkTransactionID(ctx, attempt.PaymentMethodID, networkTransactionID); err != nil {
			return err
		}
	}
	return nil
}
