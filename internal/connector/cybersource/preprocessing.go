package cybersource

import (
	"net/url"
	"strings"

	"github.com/routepay/gatewaycore/internal/domain/payment"
	ierr "github.com/routepay/gatewaycore/internal/errors"
)

// PreProcessingSetupInput gathers what BuildPreProcessingSetupRequest needs
// for phase 1, Setup (§4.4.6 step 1): card payload only.
type PreProcessingSetupInput struct {
	Card payment.Card
}

// BuildPreProcessingSetupRequest implements §4.4.6 phase 1.
func BuildPreProcessingSetupRequest(in PreProcessingSetupInput) *CybersourcePreProcessingSetupRequest {
	return &CybersourcePreProcessingSetupRequest{
		PaymentInformation: buildCardPaymentInformation(in.Card, true),
	}
}

// PreProcessingEnrollmentInput gathers what
// BuildPreProcessingEnrollmentRequest needs for phase 2, Enrollment (§4.4.6
// step 2): a redirect-response carrying the reference_id minted by Setup.
type PreProcessingEnrollmentInput struct {
	PaymentMethodData payment.PaymentMethodData
	Amount            string
	Currency          string
	BillingAddress    *payment.Address
	TopLevelEmail     string
	ReturnURL         string
	ReferenceID       string
}

// ExtractEnrollmentReferenceID implements §4.4.6's "redirect-response
// carries params with a reference_id query component" detection.
func ExtractEnrollmentReferenceID(params string) (string, bool) {
	values, err := url.ParseQuery(params)
	if err != nil {
		return "", false
	}
	referenceID := values.Get("reference_id")
	return referenceID, referenceID != ""
}

// BuildPreProcessingEnrollmentRequest implements §4.4.6 phase 2.
func BuildPreProcessingEnrollmentRequest(in PreProcessingEnrollmentInput) (*CybersourcePreProcessingEnrollmentRequest, error) {
	paymentInfo, _, _, err := buildAuthorizePaymentInformation(AuthorizeInput{
		Attempt:            &payment.PaymentAttempt{},
		Intent:             &payment.PaymentIntent{},
		PaymentMethodData:  in.PaymentMethodData,
	})
	if err != nil {
		return nil, err
	}

	billTo, err := BuildBillTo(in.BillingAddress, in.TopLevelEmail)
	if err != nil {
		return nil, err
	}

	return &CybersourcePreProcessingEnrollmentRequest{
		PaymentInformation: paymentInfo,
		OrderInformation: OrderInformation{
			AmountDetails: AmountDetails{TotalAmount: in.Amount, Currency: in.Currency},
			BillTo:        billTo,
		},
		ConsumerAuthenticationInformation: ConsumerAuthenticationInformation{
			ReturnURL:   in.ReturnURL,
			ReferenceID: in.ReferenceID,
		},
	}, nil
}

// ExtractValidateTransactionID implements §4.4.6's "redirect-response
// carries a parsed payload with transaction_id" detection for phase 3.
func ExtractValidateTransactionID(parsedPayload map[string]any) (string, bool) {
	raw, ok := parsedPayload["transaction_id"]
	if !ok {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}

// BuildPreProcessingValidateRequest implements §4.4.6 phase 3, Validate.
func BuildPreProcessingValidateRequest(transactionID string) (*CybersourcePreProcessingValidateRequest, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, errMissingRequiredField("consumer_authentication_information.authentication_transaction_id", "A 3-DS transaction id is required")
	}
	return &CybersourcePreProcessingValidateRequest{
		ConsumerAuthenticationInformation: ConsumerAuthenticationInformation{
			AuthenticationTransactionID: transactionID,
		},
	}, nil
}

// errThreeDSMetadataMissing surfaces the InternalServerError-taxonomy case
// of §7: CompleteAuthorize invoked without the 3-DS metadata the
// Enrollment phase should have persisted.
var errThreeDSMetadataMissing = ierr.NewError("missing persisted 3-DS metadata").
	WithHint("Complete-authorize requires three_ds_data persisted by the pre-processing enrollment phase").
	Mark(ierr.ErrDependencyMissing)
