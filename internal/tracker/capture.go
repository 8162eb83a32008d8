package tracker

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// reconcileMultipleCaptures implements §4.6.3: match each observation to a
// local Capture (by connector_capture_id, falling back to the unmatched
// heuristic), apply the per-capture update, then derive the attempt-level
// AmountToCaptureUpdate once every write has completed.
func (t *Tracker) reconcileMultipleCaptures(ctx context.Context, attempt *payment.PaymentAttempt, observations []CaptureSyncObservation) (payment.AttemptUpdate, error) {
	existing, err := t.Repo.ListCaptures(ctx, attempt.ID)
	if err != nil {
		return payment.AttemptUpdate{}, err
	}
	data := &payment.MultipleCaptureData{Captures: existing}

	for _, obs := range observations {
		target := data.FindByConnectorCaptureID(obs.ConnectorCaptureID)
		if target == nil {
			target = data.FindUnmatched(obs.ConnectorResponseReferenceID, obs.AmountCaptured)
		}
		if target == nil {
			continue
		}
		target.Status = obs.Status
		if obs.ConnectorCaptureID != "" {
			target.ConnectorCaptureID = obs.ConnectorCaptureID
		}
		if err := t.Repo.UpdateCapture(ctx, payment.CaptureUpdate{
			CaptureID:          target.ID,
			Status:             target.Status,
			ConnectorCaptureID: target.ConnectorCaptureID,
		}); err != nil {
			return payment.AttemptUpdate{}, err
		}
	}

	authorizedAmount := decimal.Zero
	if attempt.AuthorizedAmount != nil {
		authorizedAmount = *attempt.AuthorizedAmount
	}
	status := data.GetAttemptStatus(authorizedAmount)
	blocked := data.BlockedAmount()
	amountCapturable := authorizedAmount.Sub(blocked)

	return payment.AttemptUpdate{
		Status:           &status,
		AmountCapturable: ptrString(amountCapturable.String()),
	}, nil
}

func ptrString(s string) *string { return &s }
