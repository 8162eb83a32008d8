package cybersource

import (
	"github.com/shopspring/decimal"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// PayoutFulfillInput gathers what BuildPayoutFulfillRequest needs (§4.4.9).
// This flow is feature-gated: callers must check config.Payouts.Enabled
// before invoking the builder (§9 "Feature-gated flows").
type PayoutFulfillInput struct {
	Card                        payment.Card
	Recipient                   payment.PayoutRecipient
	Amount                      decimal.Decimal
	Currency                    string
	ConnectorRequestReferenceID string
	SenderReferenceNumber       string
}

// BuildPayoutFulfillRequest implements §4.4.9. Bank and Wallet payout
// methods are explicitly unsupported; callers only ever construct this
// input for payment.PayoutMethodKindCard.
func BuildPayoutFulfillRequest(in PayoutFulfillInput) (*CybersourcePayoutRequest, error) {
	billTo := BuildRecipientBillTo(in.Recipient)

	return &CybersourcePayoutRequest{
		ClientReferenceInformation: ClientReferenceInformation{Code: in.ConnectorRequestReferenceID},
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{
				TotalAmount: MajorUnitString(in.Amount, in.Currency),
				Currency:    in.Currency,
			},
		},
		RecipientInformation: RecipientInformation{
			BillTo:      *billTo,
			PhoneNumber: in.Recipient.PhoneNumber,
		},
		SenderInformation: SenderInformation{
			ReferenceNumber: in.SenderReferenceNumber,
			Account:         SenderAccount{FundsSource: "05"},
		},
		ProcessingInformation: ProcessingInformation{
			BusinessApplicationID: "PP",
		},
		PaymentInformation: buildCardPaymentInformation(in.Card, true),
	}, nil
}

// errUnsupportedPayoutMethod builds the error for a payout instrument this
// connector cannot fulfill (§4.4.9 "Bank and Wallet payout types are
// explicitly unsupported").
func errUnsupportedPayoutMethod(kind string) error {
	return errNotImplemented("payout:" + kind)
}
