package cybersource

import "github.com/shopspring/decimal"

// RefundInput gathers what BuildRefundRequest needs (§4.4.5).
type RefundInput struct {
	Amount   decimal.Decimal
	Currency string
	RefundID string
}

// BuildRefundRequest implements §4.4.5.
func BuildRefundRequest(in RefundInput) *CybersourceRefundRequest {
	return &CybersourceRefundRequest{
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{
				TotalAmount: MajorUnitString(in.Amount, in.Currency),
				Currency:    in.Currency,
			},
		},
		ClientReferenceInformation: ClientReferenceInformation{Code: in.RefundID},
	}
}
