package cybersource

import "github.com/shopspring/decimal"

// VoidInput gathers what BuildVoidRequest needs for both the Void and
// PostCaptureVoid flows (§4.4.4); the two are request-shape identical, the
// distinction between them is which downstream endpoint the caller hits.
type VoidInput struct {
	Reason   string
	Amount   decimal.Decimal
	Currency string
}

// BuildVoidRequest implements §4.4.4.
func BuildVoidRequest(in VoidInput) (*CybersourceVoidRequest, error) {
	if in.Reason == "" {
		return nil, errMissingRequiredField("reversal_information.reason", "A cancellation reason is required")
	}

	return &CybersourceVoidRequest{
		ReversalInformation: ReversalInformation{
			Reason: in.Reason,
			AmountDetails: AmountDetails{
				TotalAmount: MajorUnitString(in.Amount, in.Currency),
				Currency:    in.Currency,
			},
		},
	}, nil
}
