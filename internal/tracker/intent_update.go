package tracker

import (
	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// deriveIntentUpdateForStatus builds the fixed PGStatusUpdate shape used by
// both the integrity-failure gate and the plain error case (§4.6.2 "On
// error response").
func (t *Tracker) deriveIntentUpdateForStatus(status payment.AttemptStatus, intent *payment.PaymentIntent) payment.IntentUpdate {
	projected := payment.ProjectAttemptStatus(status)
	allowed := false
	return payment.IntentUpdate{
		Status:                          &projected,
		IncrementalAuthorizationAllowed: &allowed,
	}
}

// deriveIntentUpdate implements §4.6.2 for the three outcome families: error
// response, PostCaptureVoid, and everything else ("other success").
func (t *Tracker) deriveIntentUpdate(in AuthorizeOrSyncInput, finalStatus payment.AttemptStatus) payment.IntentUpdate {
	switch outcome := in.Outcome.(type) {
	case ErrorOutcome:
		return t.deriveIntentUpdateForStatus(finalStatus, in.Intent)

	case PostCaptureVoidOutcome:
		merged := in.Intent.StateMetadata.PostCaptureVoidData
		if merged == nil {
			merged = map[string]any{}
		}
		for k, v := range outcome.Data {
			merged[k] = v
		}
		return payment.IntentUpdate{PostCaptureVoidData: merged}

	default:
		projected := payment.ProjectAttemptStatus(finalStatus)
		update := payment.IntentUpdate{
			Status:        &projected,
			FingerprintID: &in.Attempt.FingerprintID,
		}

		allowed := false
		if txn, ok := in.Outcome.(TransactionOutcome); ok {
			allowed = txn.RespIncrementalAuthAllowed && in.Intent.RequestIncrementalAuthorization
		}
		update.IncrementalAuthorizationAllowed = &allowed

		if amountCaptured := t.deriveAmountCaptured(in, finalStatus); amountCaptured != nil {
			update.AmountCaptured = amountCaptured
		}
		return update
	}
}

// deriveAmountCaptured implements §4.6.2's amount_captured derivation: the
// sum of blocked capture amounts when multiple-capture is active; else the
// response's own explicit amount_captured; else, when the mapped status is
// Charged, the attempt's net total; else nil (untouched).
func (t *Tracker) deriveAmountCaptured(in AuthorizeOrSyncInput, finalStatus payment.AttemptStatus) *string {
	txn, ok := in.Outcome.(TransactionOutcome)
	if !ok {
		return nil
	}
	if txn.MultipleCaptureData != nil {
		s := txn.MultipleCaptureData.BlockedAmount().String()
		return &s
	}
	if txn.AmountCapturedExplicit != nil {
		s := txn.AmountCapturedExplicit.String()
		return &s
	}
	if finalStatus == payment.AttemptStatusCharged {
		s := in.Attempt.NetAmount.Total().String()
		return &s
	}
	return nil
}
