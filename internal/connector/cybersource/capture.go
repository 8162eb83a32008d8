package cybersource

import "github.com/shopspring/decimal"

// CaptureInput gathers what BuildCaptureRequest needs (§4.4.3). For a
// single capture, callers set SequenceNumber=1, TotalCaptureCount=1, and
// IsFinal=(capture_method == Manual). For multi-capture, callers increment
// SequenceNumber/TotalCaptureCount themselves and set IsFinal=true only on
// the last one.
type CaptureInput struct {
	Amount            decimal.Decimal
	Currency          string
	SequenceNumber    int
	TotalCaptureCount int
	IsFinal           bool
}

// BuildCaptureRequest implements §4.4.3. commerceIndicator is hardcoded to
// "internet" regardless of the original authorize's indicator.
func BuildCaptureRequest(in CaptureInput) *CybersourceCaptureRequest {
	sequence := in.SequenceNumber
	if sequence == 0 {
		sequence = 1
	}
	total := in.TotalCaptureCount
	if total == 0 {
		total = 1
	}

	return &CybersourceCaptureRequest{
		ProcessingInformation: ProcessingInformation{
			CommerceIndicator: commerceIndicatorInternet,
			CaptureOptions: &CaptureOptions{
				CaptureSequenceNumber: sequence,
				TotalCaptureCount:     total,
				IsFinal:               in.IsFinal,
			},
		},
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{
				TotalAmount: MajorUnitString(in.Amount, in.Currency),
				Currency:    in.Currency,
			},
		},
	}
}
