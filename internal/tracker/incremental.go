package tracker

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// IncrementalAuthorizationResult carries the response of the connector's
// IncrementalAuthorization flow, connector-agnostic.
type IncrementalAuthorizationResult struct {
	Status                   payment.AuthorizationStatus
	ErrorCode                string
	ErrorMessage             string
	ConnectorAuthorizationID string
}

// ApplyIncrementalAuthorization implements §4.6.4: on success, solve the new
// NetAmount so Total() equals the requested total while preserving
// surcharge/shipping/discount, update both attempt and intent amounts; on
// failure, leave them unchanged. Always append an Authorization record, then
// re-fetch and attach the full set.
func (t *Tracker) ApplyIncrementalAuthorization(ctx context.Context, attempt *payment.PaymentAttempt, intent *payment.PaymentIntent, newTotal decimal.Decimal, result IncrementalAuthorizationResult) error {
	auth := &payment.Authorization{
		PaymentAttemptID:         attempt.ID,
		Amount:                   newTotal.String(),
		Currency:                 attempt.Currency,
		Status:                   result.Status,
		ErrorCode:                result.ErrorCode,
		ErrorMessage:             result.ErrorMessage,
		ConnectorAuthorizationID: result.ConnectorAuthorizationID,
	}
	if err := t.Repo.AppendAuthorization(ctx, auth); err != nil {
		return err
	}

	if result.Status == payment.AuthorizationStatusSuccess {
		newNetAmount := attempt.NetAmount.WithTotal(newTotal)
		netAmountUpdate := newNetAmount
		amountCapturable := newTotal.String()

		if err := t.Repo.UpdateAttempt(ctx, attempt.ID, payment.AttemptUpdate{
			NetAmount:        &netAmountUpdate,
			AmountCapturable: &amountCapturable,
		}); err != nil {
			return err
		}
		if err := t.Repo.UpdateIntent(ctx, intent.ID, payment.IntentUpdate{
			Amount: &newTotal,
		}); err != nil {
			return err
		}
	}

	history, err := t.Repo.ListAuthorizations(ctx, intent.ID)
	if err != nil {
		return err
	}
	attempt.AuthorizationHistory = history
	return nil
}
