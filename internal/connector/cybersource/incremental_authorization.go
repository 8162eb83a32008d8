package cybersource

import "github.com/shopspring/decimal"

// IncrementalAuthorizationRequestInput gathers what
// BuildIncrementalAuthorizationRequest needs (§4.4.8).
type IncrementalAuthorizationRequestInput struct {
	AdditionalAmount decimal.Decimal
	Currency         string
	DisableAVS       bool
	DisableCVN       bool
}

// BuildIncrementalAuthorizationRequest implements §4.4.8:
// orderInformation.amountDetails carries only the delta, and
// authorizationOptions pins initiator.storedCredentialUsed=true plus
// merchantInitiatedTransaction.reason="5" (the incremental-authorization
// row of the §4.4.1 table).
func BuildIncrementalAuthorizationRequest(in IncrementalAuthorizationRequestInput) *CybersourcePaymentsRequest {
	opts := &AuthorizationOptions{
		Initiator:                    &Initiator{StoredCredentialUsed: true},
		MerchantInitiatedTransaction: &MerchantInitiatedTransaction{Reason: MITReasonIncrementalAuthorization},
		IgnoreAVSResult:              in.DisableAVS,
		IgnoreCVResult:               in.DisableCVN,
	}

	return &CybersourcePaymentsRequest{
		ProcessingInformation: ProcessingInformation{
			AuthorizationOptions: opts,
		},
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{
				AdditionalAmount: MajorUnitString(in.AdditionalAmount, in.Currency),
				Currency:         in.Currency,
			},
		},
	}
}
