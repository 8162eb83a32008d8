package tracker

import (
	"context"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// GoroutineBackgroundRunner implements payment.BackgroundRunner on a bare
// `go` statement, used as the default when the caller supplies none
// (justified in DESIGN.md).
type GoroutineBackgroundRunner struct{}

// Run launches fn detached; its error is swallowed since the foreground
// caller must never block on, or fail because of, this side effect.
func (GoroutineBackgroundRunner) Run(fn func() error) {
	go func() {
		_ = fn()
	}()
}

// SavePaymentMethodFunc is the side effect the background runner executes:
// persist the instrument in the locker and report back the minted id.
type SavePaymentMethodFunc func(ctx context.Context) (paymentMethodID string, err error)

// ScheduleSavePaymentMethod implements the "Async save-payment-method side
// effect" design note: spawned detached, and on success patches the attempt
// with the newly discovered payment-method-id so subsequent syncs observe
// it, even though the original request/response cycle has already returned.
func (t *Tracker) ScheduleSavePaymentMethod(attemptID string, save SavePaymentMethodFunc) {
	runner := t.BackgroundRunner
	if runner == nil {
		runner = GoroutineBackgroundRunner{}
	}
	runner.Run(func() error {
		ctx := context.Background()
		paymentMethodID, err := save(ctx)
		if err != nil {
			return err
		}
		if paymentMethodID == "" {
			return nil
		}
		return t.Repo.UpdateAttempt(ctx, attemptID, payment.AttemptUpdate{
			Metadata: map[string]string{"payment_method_id": paymentMethodID},
		})
	})
}
