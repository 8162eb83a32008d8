package cybersource

import (
	"sort"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// AuthorizeInput gathers everything BuildAuthorizeRequest needs out of the
// router-data envelope and the in-flight payment data (§4.4.1). One struct
// per flow, per the builder-with-validation design note, rather than a
// TryFrom impl per tuple shape.
type AuthorizeInput struct {
	Attempt                     *payment.PaymentAttempt
	Intent                      *payment.PaymentIntent
	PaymentMethodData           payment.PaymentMethodData
	MandateReference            payment.MandateReferenceId
	RecurringMandateData        *payment.RecurringMandatePaymentData
	CustomerAcceptancePresent   bool
	AuthenticationData          *payment.AuthenticationData
	ConnectorRequestReferenceID string
	TopLevelEmail               string
	DisableAVS                  bool
	DisableCVN                  bool
}

// BuildAuthorizeRequest implements §4.4.1 end to end.
func BuildAuthorizeRequest(in AuthorizeInput) (*CybersourcePaymentsRequest, error) {
	paymentInfo, solution, network, err := buildAuthorizePaymentInformation(in)
	if err != nil {
		return nil, err
	}

	billTo, err := buildAuthorizeBillTo(in)
	if err != nil {
		return nil, err
	}

	commerceIndicator := deriveCommerceIndicator(in.AuthenticationData, in.MandateReference, solution, network)

	actionList, actionTokenTypes, authOptions, err := buildAuthorizationOptions(in, network)
	if err != nil {
		return nil, err
	}

	req := &CybersourcePaymentsRequest{
		ProcessingInformation: ProcessingInformation{
			Capture:              in.Intent.CaptureMethod.IsAutomatic(),
			CommerceIndicator:    commerceIndicator,
			ActionList:           actionList,
			ActionTokenTypes:     actionTokenTypes,
			AuthorizationOptions: authOptions,
			PaymentSolution:      solution,
		},
		PaymentInformation: paymentInfo,
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{
				TotalAmount: MajorUnitString(in.Attempt.NetAmount.Total(), in.Attempt.Currency),
				Currency:    in.Attempt.Currency,
			},
			BillTo: billTo,
		},
		ClientReferenceInformation: ClientReferenceInformation{
			Code: in.ConnectorRequestReferenceID,
		},
		ConsumerAuthenticationInformation: buildConsumerAuthenticationInformation(in.AuthenticationData),
		MerchantDefinedInformation:        buildMerchantDefinedInformation(in.Attempt.Metadata),
	}

	if network == payment.CardNetworkMastercard && (solution == PaymentSolutionApplePay || solution == PaymentSolutionGooglePay) {
		if req.ConsumerAuthenticationInformation == nil {
			req.ConsumerAuthenticationInformation = &ConsumerAuthenticationInformation{}
		}
		req.ConsumerAuthenticationInformation.UcafCollectionIndicator = "2"
	}

	return req, nil
}

// buildAuthorizeBillTo routes Paze through its own billTo derivation
// (§4.4.1 "Wallet::Paze") since it carries its own billing name/state
// alongside the token; every other payment method uses the order's
// billing address unchanged.
func buildAuthorizeBillTo(in AuthorizeInput) (*BillTo, error) {
	if wallet, ok := in.PaymentMethodData.(payment.Wallet); ok {
		if paze, ok := wallet.Data.(payment.PazeData); ok {
			return BuildPazeBillTo(paze, in.Intent.BillingAddress, in.TopLevelEmail)
		}
	}
	return BuildBillTo(in.Intent.BillingAddress, in.TopLevelEmail)
}

// buildAuthorizePaymentInformation implements §4.4.1's priority-ordered
// dispatch: mandate reuse first, else payment-method-data branching.
func buildAuthorizePaymentInformation(in AuthorizeInput) (PaymentInformation, string, payment.CardNetwork, error) {
	if connMandateId, ok := attemptConnectorMandateId(in.Attempt); ok {
		return PaymentInformation{PaymentInstrument: &PaymentInstrumentReference{ID: connMandateId}}, "", "", nil
	}

	if in.PaymentMethodData == nil {
		return PaymentInformation{}, "", "", errMissingRequiredField("payment_method_data", "Payment method data is required")
	}

	switch in.PaymentMethodData.Kind() {
	case payment.PaymentMethodDataKindCard:
		card := in.PaymentMethodData.(payment.Card)
		includeCVC := card.NetworkTransactionID == ""
		return buildCardPaymentInformation(card, includeCVC), "", card.CardNetwork, nil

	case payment.PaymentMethodDataKindCardDetailsForNetworkTransactionId:
		cd := in.PaymentMethodData.(payment.CardDetailsForNetworkTransactionId)
		network := deriveNetworkFromBIN(cd.Number.Peek())
		typeCode := deriveCardTypeCode("", cd.Number.Peek())
		return PaymentInformation{
			Card: &CardPaymentInformation{
				Number:          cd.Number.Peek(),
				ExpirationMonth: cd.ExpiryMonth,
				ExpirationYear:  cd.ExpiryYear,
				Type:            typeCode,
			},
		}, "", network, nil

	case payment.PaymentMethodDataKindNetworkToken:
		nt := in.PaymentMethodData.(payment.NetworkToken)
		return PaymentInformation{
			TokenizedCard: &TokenizedCardPaymentInformation{
				Number:          nt.TokenNumber.Peek(),
				ExpirationMonth: nt.ExpiryMonth,
				ExpirationYear:  nt.ExpiryYear,
				Cryptogram:      nt.Cryptogram.Peek(),
				TransactionType: walletTransactionType,
			},
		}, "", nt.CardNetwork, nil

	case payment.PaymentMethodDataKindWallet:
		wallet := in.PaymentMethodData.(payment.Wallet)
		return buildWalletPaymentInformation(wallet.Data)

	case payment.PaymentMethodDataKindMandatePayment:
		return PaymentInformation{}, "", "", errMissingRequiredField("mandate_id", "A mandate payment requires a resolved connector mandate id")

	default:
		return PaymentInformation{}, "", "", errNotImplemented(string(in.PaymentMethodData.Kind()))
	}
}

// buildCardPaymentInformation builds the card document for a payment.Card
// (authorize, setup mandate, pre-processing setup, payout); includeCVC is
// false on MIT reuse (§4.4.1 "Card"). CardDetailsForNetworkTransactionId
// builds its own card document in its arm above, without a CVC.
func buildCardPaymentInformation(card payment.Card, includeCVC bool) PaymentInformation {
	cvc := ""
	if includeCVC {
		cvc = card.CVC.Peek()
	}
	return PaymentInformation{
		Card: &CardPaymentInformation{
			Number:          card.Number.Peek(),
			ExpirationMonth: card.ExpiryMonth,
			ExpirationYear:  card.ExpiryYear,
			SecurityCode:    cvc,
			Type:            deriveCardTypeCode(card.CardNetwork, card.Number.Peek()),
		},
	}
}

// buildWalletPaymentInformation dispatches across the WalletData union
// (§4.4.1 "Wallet::*"). Only ApplePay, GooglePay, SamsungPay and Paze have a
// Cybersource builder arm; every other wallet variant hits the explicit
// NotImplemented fallthrough (§9 "the fallthrough arm must be explicit").
func buildWalletPaymentInformation(data payment.WalletData) (PaymentInformation, string, payment.CardNetwork, error) {
	switch data.WalletKind() {
	case payment.WalletDataKindApplePay:
		apple := data.(payment.ApplePayData)
		pi, solution := buildApplePayPaymentInformation(apple)
		return pi, solution, applePayCardNetwork(apple), nil

	case payment.WalletDataKindGooglePay:
		google := data.(payment.GooglePayData)
		pi, solution := buildGooglePayPaymentInformation(google)
		return pi, solution, googlePayCardNetwork(google), nil

	case payment.WalletDataKindSamsungPay:
		samsung := data.(payment.SamsungPayData)
		pi, err := buildSamsungPayPaymentInformation(samsung)
		if err != nil {
			return PaymentInformation{}, "", "", err
		}
		return pi, PaymentSolutionSamsungPay, samsung.CardNetwork, nil

	case payment.WalletDataKindPaze:
		paze := data.(payment.PazeData)
		return buildPazePaymentInformation(paze), "", "", nil

	default:
		return PaymentInformation{}, "", "", errNotImplemented("wallet:" + string(data.WalletKind()))
	}
}

// attemptConnectorMandateId implements §4.4.1 step 1: "If the attempt has a
// connector_mandate_id".
func attemptConnectorMandateId(attempt *payment.PaymentAttempt) (string, bool) {
	if attempt == nil || attempt.ConnectorMandateDetail == nil {
		return "", false
	}
	id := attempt.ConnectorMandateDetail.ConnectorMandateId
	return id, id != ""
}

// deriveCommerceIndicator composes the three-precedence commerce-indicator
// derivation of §4.4.1 into one total function (§8.1 property 4).
func deriveCommerceIndicator(auth *payment.AuthenticationData, mandateRef payment.MandateReferenceId, solution string, network payment.CardNetwork) string {
	if auth != nil && auth.ECI != "" {
		return CommerceIndicatorFromECI(auth.ECI, network)
	}
	if mandateRef != nil {
		solutionDefault := CommerceIndicatorFromWalletSolution(solution, network)
		return CommerceIndicatorFromMandate(mandateRef, solutionDefault)
	}
	return CommerceIndicatorFromWalletSolution(solution, network)
}

// buildAuthorizationOptions implements the §4.4.1 actionList /
// actionTokenTypes / authorizationOptions table for the Authorize flow
// (the zero-dollar-mandate-setup row lives in setup_mandate.go and the
// incremental-authorization row in incremental_authorization.go).
func buildAuthorizationOptions(in AuthorizeInput, network payment.CardNetwork) ([]string, []string, *AuthorizationOptions, error) {
	if in.Intent.SetupFutureUsage == payment.SetupFutureUsageOffSession && in.CustomerAcceptancePresent {
		opts := &AuthorizationOptions{
			Initiator: &Initiator{Type: "Customer", CredentialStoredOnFile: true},
		}
		applyIgnoreResultFlags(opts, in)
		return []string{"TokenCreate"}, []string{"PaymentInstrument", "Customer"}, opts, nil
	}

	switch ref := in.MandateReference.(type) {
	case payment.ConnectorMandateId:
		mit := &MerchantInitiatedTransaction{}
		originalAmount := ref.ConnectorMandateReferenceId.OriginalPaymentAuthorizedAmount
		originalCurrency := ref.ConnectorMandateReferenceId.OriginalPaymentAuthorizedCurrency
		if originalAmount == nil {
			if detail := in.Attempt.ConnectorMandateDetail; detail != nil {
				originalAmount = detail.OriginalPaymentAuthorizedAmount
				originalCurrency = detail.OriginalPaymentAuthorizedCurrency
			}
		}
		if originalAmount != nil {
			mit.OriginalAuthorizedAmount = MajorUnitString(*originalAmount, originalCurrency)
		}
		opts := &AuthorizationOptions{MerchantInitiatedTransaction: mit}
		applyIgnoreResultFlags(opts, in)
		return nil, nil, opts, nil

	case payment.NetworkMandateId, payment.NetworkTokenWithNTI:
		if err := validateDiscoverNTIGuard(network, in.RecurringMandateData); err != nil {
			return nil, nil, nil, err
		}
		mit := &MerchantInitiatedTransaction{Reason: MITReasonRecurringWithNTI}
		if in.RecurringMandateData != nil {
			mit.PreviousTransactionID = in.RecurringMandateData.PreviousTransactionID
			if in.RecurringMandateData.OriginalAmount != nil {
				mit.OriginalAuthorizedAmount = MajorUnitString(*in.RecurringMandateData.OriginalAmount, in.RecurringMandateData.OriginalCurrency)
			}
		}
		opts := &AuthorizationOptions{
			Initiator:                    &Initiator{Type: "Merchant", StoredCredentialUsed: true},
			MerchantInitiatedTransaction: mit,
		}
		applyIgnoreResultFlags(opts, in)
		return nil, nil, opts, nil
	}

	if in.DisableAVS || in.DisableCVN {
		opts := &AuthorizationOptions{}
		applyIgnoreResultFlags(opts, in)
		return nil, nil, opts, nil
	}

	return nil, nil, nil, nil
}

// applyIgnoreResultFlags lifts the connector-metadata AVS/CVN overrides onto
// every authorizationOptions document built (§4.4.1).
func applyIgnoreResultFlags(opts *AuthorizationOptions, in AuthorizeInput) {
	opts.IgnoreAVSResult = in.DisableAVS
	opts.IgnoreCVResult = in.DisableCVN
}

// validateDiscoverNTIGuard implements §8.1 property 8 / §4.4.1 "For the
// Discover network specifically, originalAuthorizedAmount is mandatory".
func validateDiscoverNTIGuard(network payment.CardNetwork, recurring *payment.RecurringMandatePaymentData) error {
	if network != payment.CardNetworkDiscover {
		return nil
	}
	if recurring == nil || recurring.OriginalAmount == nil || recurring.OriginalCurrency == "" {
		return errMissingRequiredField(
			"recurring_mandate_payment_data.original_payment_authorized_amount",
			"Discover network transaction reuse requires the original authorized amount and currency",
		)
	}
	return nil
}

// buildConsumerAuthenticationInformation implements §4.4.1's 3-DS
// carry-forward: Mastercard routes the cryptogram through
// ucafAuthenticationData, every other network through cavv.
func buildConsumerAuthenticationInformation(auth *payment.AuthenticationData) *ConsumerAuthenticationInformation {
	if auth == nil {
		return nil
	}
	info := &ConsumerAuthenticationInformation{
		Xid:                          auth.ThreeDSServerTransactionID,
		DirectoryServerTransactionID: auth.DSTransactionID,
		PaSpecificationVersion:       auth.MessageVersion,
		VeresEnrolled:                "Y",
	}
	if auth.CardNetwork == payment.CardNetworkMastercard {
		info.UcafAuthenticationData = auth.CAVV.Peek()
	} else {
		info.Cavv = auth.CAVV.Peek()
	}
	return info
}

// buildMerchantDefinedInformation lowers the attempt's metadata into the
// sorted, 1-based-index list Cybersource expects (§4.4.1).
func buildMerchantDefinedInformation(metadata map[string]string) []MerchantDefinedInformationEntry {
	if len(metadata) == 0 {
		return nil
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]MerchantDefinedInformationEntry, 0, len(keys))
	for i, k := range keys {
		entries = append(entries, MerchantDefinedInformationEntry{
			Key:   i + 1,
			Value: k + "=" + metadata[k],
		})
	}
	return entries
}
