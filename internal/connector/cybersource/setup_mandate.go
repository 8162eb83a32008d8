package cybersource

import "github.com/routepay/gatewaycore/internal/domain/payment"

// SetupMandateInput gathers what BuildSetupMandateRequest needs for the
// zero-dollar mandate-setup flow (§4.4.2).
type SetupMandateInput struct {
	Currency                    string
	PaymentMethodData           payment.PaymentMethodData
	ConnectorRequestReferenceID string
	TopLevelEmail               string
	BillingAddress              *payment.Address
	DisableAVS                  bool
	DisableCVN                  bool
}

// BuildSetupMandateRequest implements §4.4.2: amount forced to "0", the
// processingInformation pinned to the OffSession + customer-acceptance row
// of §4.4.1's table, and only Card / Wallet::ApplePay / Wallet::GooglePay
// supported.
func BuildSetupMandateRequest(in SetupMandateInput) (*CybersourcePaymentsRequest, error) {
	if in.PaymentMethodData == nil {
		return nil, errMissingRequiredField("payment_method_data", "Payment method data is required")
	}

	var (
		paymentInfo PaymentInformation
		solution    string
		network     payment.CardNetwork
	)

	switch in.PaymentMethodData.Kind() {
	case payment.PaymentMethodDataKindCard:
		card := in.PaymentMethodData.(payment.Card)
		paymentInfo = buildCardPaymentInformation(card, true)
		network = card.CardNetwork

	case payment.PaymentMethodDataKindWallet:
		wallet := in.PaymentMethodData.(payment.Wallet).Data
		switch wallet.WalletKind() {
		case payment.WalletDataKindApplePay:
			apple := wallet.(payment.ApplePayData)
			paymentInfo, solution = buildApplePayPaymentInformation(apple)
			network = applePayCardNetwork(apple)
		case payment.WalletDataKindGooglePay:
			google := wallet.(payment.GooglePayData)
			paymentInfo, solution = buildGooglePayPaymentInformation(google)
			network = googlePayCardNetwork(google)
		default:
			return nil, errNotImplemented("wallet:" + string(wallet.WalletKind()))
		}

	default:
		return nil, errNotImplemented(string(in.PaymentMethodData.Kind()))
	}

	billTo, err := BuildBillTo(in.BillingAddress, in.TopLevelEmail)
	if err != nil {
		return nil, err
	}

	opts := &AuthorizationOptions{
		Initiator: &Initiator{Type: "Customer", CredentialStoredOnFile: true},
	}
	opts.IgnoreAVSResult = in.DisableAVS
	opts.IgnoreCVResult = in.DisableCVN

	req := &CybersourcePaymentsRequest{
		ProcessingInformation: ProcessingInformation{
			CommerceIndicator:    CommerceIndicatorFromWalletSolution(solution, network),
			ActionList:           []string{"TokenCreate"},
			ActionTokenTypes:     []string{"PaymentInstrument", "Customer"},
			AuthorizationOptions: opts,
			PaymentSolution:      solution,
		},
		PaymentInformation: paymentInfo,
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{TotalAmount: "0", Currency: in.Currency},
			BillTo:        billTo,
		},
		ClientReferenceInformation: ClientReferenceInformation{Code: in.ConnectorRequestReferenceID},
	}

	if network == payment.CardNetworkMastercard && (solution == PaymentSolutionApplePay || solution == PaymentSolutionGooglePay) {
		req.ConsumerAuthenticationInformation = &ConsumerAuthenticationInformation{UcafCollectionIndicator: "2"}
	}

	return req, nil
}
