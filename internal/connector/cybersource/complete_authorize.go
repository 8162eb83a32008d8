package cybersource

import "github.com/routepay/gatewaycore/internal/domain/payment"

// CompleteAuthorizeInput gathers what BuildCompleteAuthorizeRequest needs
// (§4.4.7). ThreeDSData is the metadata persisted by the pre-processing
// Enrollment phase; its absence is an InternalServerError-taxonomy failure
// (§7), not a request-shaping one.
type CompleteAuthorizeInput struct {
	Attempt                     *payment.PaymentAttempt
	Intent                      *payment.PaymentIntent
	PaymentMethodData           payment.PaymentMethodData
	MandateReference            payment.MandateReferenceId
	ThreeDSData                 *ThreeDSData
	ConnectorRequestReferenceID string
	TopLevelEmail               string
}

// BuildCompleteAuthorizeRequest implements §4.4.7: consumerAuthentication
// carried over from the persisted three_ds_data, commerceIndicator from
// three_ds_data.indicator falling back to "internet".
func BuildCompleteAuthorizeRequest(in CompleteAuthorizeInput) (*CybersourcePaymentsRequest, error) {
	if in.ThreeDSData == nil {
		return nil, errThreeDSMetadataMissing
	}

	paymentInfo, solution, _, err := buildAuthorizePaymentInformation(AuthorizeInput{
		Attempt:           in.Attempt,
		Intent:            in.Intent,
		PaymentMethodData: in.PaymentMethodData,
		MandateReference:  in.MandateReference,
	})
	if err != nil {
		return nil, err
	}

	network := payment.CardNetwork(in.ThreeDSData.CardNetwork)

	billTo, err := BuildBillTo(in.Intent.BillingAddress, in.TopLevelEmail)
	if err != nil {
		return nil, err
	}

	commerceIndicator := in.ThreeDSData.Indicator
	if commerceIndicator == "" {
		commerceIndicator = commerceIndicatorInternet
	}

	return &CybersourcePaymentsRequest{
		ProcessingInformation: ProcessingInformation{
			Capture:           in.Intent.CaptureMethod.IsAutomatic(),
			CommerceIndicator: commerceIndicator,
			PaymentSolution:   solution,
		},
		PaymentInformation: paymentInfo,
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{
				TotalAmount: MajorUnitString(in.Attempt.NetAmount.Total(), in.Attempt.Currency),
				Currency:    in.Attempt.Currency,
			},
			BillTo: billTo,
		},
		ClientReferenceInformation: ClientReferenceInformation{Code: in.ConnectorRequestReferenceID},
		ConsumerAuthenticationInformation: &ConsumerAuthenticationInformation{
			UcafCollectionIndicator:      ucafIndicatorFor(network),
			Cavv:                         nonMastercardCavv(network, in.ThreeDSData.Cavv),
			UcafAuthenticationData:       mastercardCavv(network, in.ThreeDSData.Cavv),
			Xid:                          in.ThreeDSData.Xid,
			DirectoryServerTransactionID: in.ThreeDSData.DirectoryServerTransactionID,
			PaSpecificationVersion:       in.ThreeDSData.MessageVersion,
		},
	}, nil
}

func ucafIndicatorFor(network payment.CardNetwork) string {
	if network == payment.CardNetworkMastercard {
		return "2"
	}
	return ""
}

func nonMastercardCavv(network payment.CardNetwork, cavv string) string {
	if network == payment.CardNetworkMastercard {
		return ""
	}
	return cavv
}

func mastercardCavv(network payment.CardNetwork, cavv string) string {
	if network != payment.CardNetworkMastercard {
		return ""
	}
	return cavv
}
