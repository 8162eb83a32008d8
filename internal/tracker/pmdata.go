package tracker

import (
	"context"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// Encryptor is the external collaborator consulted at the PM-data
// encryption gate (§4.6.1 step 2, §5 "encryption service").
type Encryptor interface {
	Encrypt(ctx context.Context, data payment.PaymentMethodData) ([]byte, error)
}

// isSensitivePMData reports whether a merged PaymentMethodData variant must
// be encrypted at rest rather than stored in cleartext-at-rest form
// (§4.6.1 step 2). NetworkToken is excluded even though it carries a PAN:
// the network token is itself scoped to one merchant/device and the source
// treats it as already-opaque ("pass through unchanged").
func isSensitivePMData(data payment.PaymentMethodData) bool {
	if data == nil {
		return false
	}
	switch data.Kind() {
	case payment.PaymentMethodDataKindCard, payment.PaymentMethodDataKindCardDetailsForNetworkTransactionId,
		payment.PaymentMethodDataKindWallet, payment.PaymentMethodDataKindGiftCard:
		return true
	default:
		return false
	}
}

// mergeObservedCardNetwork implements §4.6.1 step 1 for the one connector
// field the current connector surface actually reports back: the observed
// card network on a Card instrument (e.g. upgraded from a BIN-derived guess
// to the network the issuer confirmed). NetworkToken-family data passes
// through unchanged; it carries no observable network to merge.
func mergeObservedCardNetwork(existing payment.PaymentMethodData, observed *payment.CardNetwork) payment.PaymentMethodData {
	if existing == nil || observed == nil {
		return existing
	}
	switch data := existing.(type) {
	case payment.Card:
		data.CardNetwork = *observed
		return data
	default:
		return existing
	}
}

// applyPMDataGate runs steps 1-2: merge the connector-reported observation
// into the attempt's stored PM data, then route it to cleartext or
// encrypted storage depending on sensitivity. When the Tracker has no
// Encryptor, sensitive data is returned in cleartext form as well; it is
// not encrypted. Returns the two mutually exclusive AttemptUpdate fields
// to set.
func (t *Tracker) applyPMDataGate(ctx context.Context, attempt *payment.PaymentAttempt, observedCardNetwork *payment.CardNetwork) (payment.PaymentMethodData, []byte, error) {
	merged := mergeObservedCardNetwork(attempt.PaymentMethodData, observedCardNetwork)

	if !isSensitivePMData(merged) {
		return merged, nil, nil
	}
	if t.Encryptor == nil {
		return merged, nil, nil
	}
	encrypted, err := t.Encryptor.Encrypt(ctx, merged)
	if err != nil {
		return nil, nil, err
	}
	return nil, encrypted, nil
}
