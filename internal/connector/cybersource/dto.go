package cybersource

// CybersourcePaymentsRequest is the top-level request document built for
// the Authorize, SetupMandate, CompleteAuthorize, and IncrementalAuthorization
// flows (§4.4.1).
type CybersourcePaymentsRequest struct {
	ProcessingInformation             ProcessingInformation              `json:"processingInformation"`
	PaymentInformation                PaymentInformation                 `json:"paymentInformation"`
	OrderInformation                  OrderInformation                   `json:"orderInformation"`
	ClientReferenceInformation        ClientReferenceInformation         `json:"clientReferenceInformation"`
	ConsumerAuthenticationInformation *ConsumerAuthenticationInformation `json:"consumerAuthenticationInformation,omitempty"`
	MerchantDefinedInformation        []MerchantDefinedInformationEntry  `json:"merchantDefinedInformation,omitempty"`
}

// ProcessingInformation carries the capture/mandate/authentication posture
// of the request (§4.4.1).
type ProcessingInformation struct {
	Capture               bool                   `json:"capture,omitempty"`
	CaptureOptions        *CaptureOptions        `json:"captureOptions,omitempty"`
	CommerceIndicator     string                 `json:"commerceIndicator,omitempty"`
	ActionList            []string               `json:"actionList,omitempty"`
	ActionTokenTypes      []string               `json:"actionTokenTypes,omitempty"`
	AuthorizationOptions  *AuthorizationOptions  `json:"authorizationOptions,omitempty"`
	PaymentSolution       string                 `json:"paymentSolution,omitempty"`
	BusinessApplicationID string                 `json:"businessApplicationId,omitempty"`
}

// CaptureOptions is set only on capture requests (§4.4.1, §4.4.3).
type CaptureOptions struct {
	CaptureSequenceNumber int  `json:"captureSequenceNumber"`
	TotalCaptureCount     int  `json:"totalCaptureCount"`
	IsFinal               bool `json:"isFinal,omitempty"`
}

// AuthorizationOptions is the mandate/recurring-setup surface of §4.4.1's
// actionList/actionTokenTypes/authorizationOptions table.
type AuthorizationOptions struct {
	Initiator                    *Initiator                    `json:"initiator,omitempty"`
	MerchantInitiatedTransaction *MerchantInitiatedTransaction `json:"merchantInitiatedTransaction,omitempty"`
	IgnoreAVSResult              bool                          `json:"ignoreAVSResult,omitempty"`
	IgnoreCVResult               bool                          `json:"ignoreCVResult,omitempty"`
}

// Initiator describes who started the transaction.
type Initiator struct {
	Type                   string `json:"type,omitempty"`
	CredentialStoredOnFile bool   `json:"credentialStoredOnFile,omitempty"`
	StoredCredentialUsed   bool   `json:"storedCredentialUsed,omitempty"`
}

// MerchantInitiatedTransaction carries the MIT-specific fields.
type MerchantInitiatedTransaction struct {
	Reason                  string `json:"reason,omitempty"`
	PreviousTransactionID   string `json:"previousTransactionId,omitempty"`
	OriginalAuthorizedAmount string `json:"originalAuthorizedAmount,omitempty"`
}

// PaymentInformation is the per-flow instrument document. Exactly one of
// Card / PaymentInstrument / FluidData / TokenizedCard is populated per
// request; which one depends on the dispatch in authorize.go and
// wallet.go (§4.4.1).
type PaymentInformation struct {
	Card              *CardPaymentInformation      `json:"card,omitempty"`
	PaymentInstrument *PaymentInstrumentReference  `json:"paymentInstrument,omitempty"`
	FluidData         *FluidData                   `json:"fluidData,omitempty"`
	TokenizedCard     *TokenizedCardPaymentInformation `json:"tokenizedCard,omitempty"`
}

// CardPaymentInformation carries PAN/expiry/CVC for a cardholder-present
// card, and also the PAN+cryptogram for a decrypted wallet blob (Apple Pay,
// Google Pay) since Cybersource folds both onto the same sub-document.
type CardPaymentInformation struct {
	Number          string `json:"number"`
	ExpirationMonth string `json:"expirationMonth"`
	ExpirationYear  string `json:"expirationYear"`
	SecurityCode    string `json:"securityCode,omitempty"`
	Type            string `json:"type,omitempty"`
	Cryptogram      string `json:"cryptogram,omitempty"`
}

// PaymentInstrumentReference carries an opaque gateway-side mandate token
// (§4.4.1 "MandatePayment variant").
type PaymentInstrumentReference struct {
	ID string `json:"id"`
}

// FluidData is the tokenized-wallet blob (ApplePayToken, GooglePayToken,
// SamsungPay) (§4.4.1, §6 "Fluid data").
type FluidData struct {
	Value      string `json:"value"`
	Descriptor string `json:"descriptor,omitempty"`
	Encoding   string `json:"encoding,omitempty"`
}

// TokenizedCardPaymentInformation carries a network token with its
// cryptogram (NetworkToken and Wallet::Paze variants) (§4.4.1).
type TokenizedCardPaymentInformation struct {
	Number          string `json:"number"`
	ExpirationMonth string `json:"expirationMonth"`
	ExpirationYear  string `json:"expirationYear"`
	Cryptogram      string `json:"cryptogram,omitempty"`
	TransactionType string `json:"transactionType,omitempty"`
}

// OrderInformation carries the amount and billing address.
type OrderInformation struct {
	AmountDetails AmountDetails `json:"amountDetails"`
	BillTo        *BillTo       `json:"billTo,omitempty"`
}

// AmountDetails is the major-unit amount document (§6 "Amount format").
type AmountDetails struct {
	TotalAmount      string `json:"totalAmount,omitempty"`
	AdditionalAmount string `json:"additionalAmount,omitempty"`
	Currency         string `json:"currency"`
}

// ClientReferenceInformation carries the caller-supplied idempotency key
// (§4.4.1 "clientReferenceInformation.code").
type ClientReferenceInformation struct {
	Code string `json:"code"`
}

// ConsumerAuthenticationInformation carries the 3-DS outcome (§4.4.1).
type ConsumerAuthenticationInformation struct {
	UcafCollectionIndicator      string `json:"ucafCollectionIndicator,omitempty"`
	UcafAuthenticationData       string `json:"ucafAuthenticationData,omitempty"`
	Cavv                         string `json:"cavv,omitempty"`
	Xid                          string `json:"xid,omitempty"`
	DirectoryServerTransactionID string `json:"directoryServerTransactionId,omitempty"`
	PaSpecificationVersion       string `json:"paSpecificationVersion,omitempty"`
	VeresEnrolled                string `json:"veresEnrolled,omitempty"`
	ReturnURL                    string `json:"returnUrl,omitempty"`
	ReferenceID                  string `json:"referenceId,omitempty"`
	AuthenticationTransactionID  string `json:"authenticationTransactionId,omitempty"`
}

// MerchantDefinedInformationEntry is one 1-based-index {key, value} pair
// the attempt's metadata is lowered into, sorted by key (§4.4.1).
type MerchantDefinedInformationEntry struct {
	Key   int    `json:"key"`
	Value string `json:"value"`
}

// ReversalInformation carries the caller-supplied cancellation reason for
// Void/PostCaptureVoid (§4.4.4).
type ReversalInformation struct {
	Reason        string        `json:"reason"`
	AmountDetails AmountDetails `json:"amountDetails"`
}

// CybersourceVoidRequest is the Void/PostCaptureVoid request body.
type CybersourceVoidRequest struct {
	ReversalInformation ReversalInformation `json:"reversalInformation"`
}

// CybersourceRefundRequest is the Refund request body (§4.4.5).
type CybersourceRefundRequest struct {
	OrderInformation           OrderInformation            `json:"orderInformation"`
	ClientReferenceInformation ClientReferenceInformation `json:"clientReferenceInformation"`
}

// CybersourceCaptureRequest is the Capture request body (§4.4.3).
type CybersourceCaptureRequest struct {
	ProcessingInformation ProcessingInformation `json:"processingInformation"`
	OrderInformation      OrderInformation      `json:"orderInformation"`
}

// CybersourcePayoutRequest is the feature-gated payout-fulfill request body
// (§4.4.9).
type CybersourcePayoutRequest struct {
	ClientReferenceInformation ClientReferenceInformation `json:"clientReferenceInformation"`
	OrderInformation           OrderInformation            `json:"orderInformation"`
	RecipientInformation       RecipientInformation        `json:"recipientInformation"`
	SenderInformation          SenderInformation           `json:"senderInformation"`
	ProcessingInformation      ProcessingInformation        `json:"processingInformation"`
	PaymentInformation         PaymentInformation           `json:"paymentInformation"`
}

// RecipientInformation is the payout recipient's billing + phone document.
type RecipientInformation struct {
	BillTo      BillTo `json:"billTo"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// SenderInformation identifies the payout's funding source.
type SenderInformation struct {
	ReferenceNumber string      `json:"referenceNumber"`
	Account         SenderAccount `json:"account"`
}

// SenderAccount carries the funds-source code (§4.4.9 'account.fundsSource="05"').
type SenderAccount struct {
	FundsSource string `json:"fundsSource"`
}

// CybersourcePreProcessingSetupRequest is the 3-DS Setup phase request body
// (§4.4.6 step 1): card payload only.
type CybersourcePreProcessingSetupRequest struct {
	PaymentInformation PaymentInformation `json:"paymentInformation"`
}

// CybersourcePreProcessingEnrollmentRequest is the 3-DS Enrollment phase
// request body (§4.4.6 step 2).
type CybersourcePreProcessingEnrollmentRequest struct {
	PaymentInformation                PaymentInformation                 `json:"paymentInformation"`
	OrderInformation                  OrderInformation                   `json:"orderInformation"`
	ConsumerAuthenticationInformation ConsumerAuthenticationInformation `json:"consumerAuthenticationInformation"`
}

// CybersourcePreProcessingValidateRequest is the 3-DS Validate phase request
// body (§4.4.6 step 3).
type CybersourcePreProcessingValidateRequest struct {
	ConsumerAuthenticationInformation ConsumerAuthenticationInformation `json:"consumerAuthenticationInformation"`
}

// --- Response DTOs (§4.5) ---

// CybersourcePaymentsResponse is the top-level response envelope.
type CybersourcePaymentsResponse struct {
	ID                          string                       `json:"id"`
	Status                      string                       `json:"status,omitempty"`
	ClientReferenceInformation  *ClientReferenceInformation  `json:"clientReferenceInformation,omitempty"`
	ProcessorInformation        *ProcessorInformation        `json:"processorInformation,omitempty"`
	RiskInformation             *RiskInformation             `json:"riskInformation,omitempty"`
	TokenInformation            *TokenInformation            `json:"tokenInformation,omitempty"`
	ErrorInformation            *ErrorInformation            `json:"errorInformation,omitempty"`
}

// ProcessorInformation carries the network-level decline detail.
type ProcessorInformation struct {
	NetworkTransactionID string `json:"networkTransactionId,omitempty"`
	ApprovalCode         string `json:"approvalCode,omitempty"`
}

// RiskInformation carries AVS/CVV rule outcomes consulted for the
// composite error reason (§4.5 "get_error_response").
type RiskInformation struct {
	Rules []RiskRule `json:"rules,omitempty"`
}

// RiskRule is one AVS/fraud rule result.
type RiskRule struct {
	Name string `json:"name"`
}

// TokenInformation carries the mandate/token the gateway minted.
type TokenInformation struct {
	PaymentInstrument *PaymentInstrumentReference `json:"paymentInstrument,omitempty"`
}

// ErrorInformation is the standard-error envelope body.
type ErrorInformation struct {
	Reason  string              `json:"reason,omitempty"`
	Message string              `json:"message,omitempty"`
	Details []ErrorInformationDetail `json:"details,omitempty"`
}

// ErrorInformationDetail is one field-level error detail (§4.5 "field:reason").
type ErrorInformationDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// CybersourcePreProcessingSetupResponse is the 3-DS Setup phase response
// (§4.4.6 step 1).
type CybersourcePreProcessingSetupResponse struct {
	AccessToken             string `json:"accessToken"`
	DeviceDataCollectionURL string `json:"deviceDataCollectionUrl"`
	ReferenceID             string `json:"referenceId"`
}

// ThreeDSData is the persisted 3-DS metadata consumed by CompleteAuthorize
// (§4.4.6 step 2, §4.4.7).
type ThreeDSData struct {
	Cavv                        string `json:"cavv,omitempty"`
	Xid                         string `json:"xid,omitempty"`
	ECI                         string `json:"eci,omitempty"`
	CardNetwork                 string `json:"card_network,omitempty"`
	DirectoryServerTransactionID string `json:"directory_server_transaction_id,omitempty"`
	MessageVersion              string `json:"message_version,omitempty"`
	Indicator                   string `json:"indicator,omitempty"`
}

// CybersourcePreProcessingEnrollmentResponse is the 3-DS Enrollment phase
// response: either a step-up challenge or a resolved three_ds_data.
type CybersourcePreProcessingEnrollmentResponse struct {
	Status        string       `json:"status,omitempty"`
	AccessToken   string       `json:"accessToken,omitempty"`
	StepUpURL     string       `json:"stepUpUrl,omitempty"`
	ThreeDSData   *ThreeDSData `json:"three_ds_data,omitempty"`
}

// CaptureSyncResponse is one element of a multi-capture sync response
// (§4.6.3).
type CaptureSyncResponse struct {
	ConnectorCaptureID           string `json:"connector_capture_id,omitempty"`
	ConnectorResponseReferenceID string `json:"connector_response_reference_id,omitempty"`
	AmountCaptured                *string `json:"amount_captured,omitempty"`
	Status                        string `json:"status"`
}

// IncrementalAuthorizationResponse is the response of the
// IncrementalAuthorization flow (§4.6.4).
type IncrementalAuthorizationResponse struct {
	Status                   string `json:"status"`
	ErrorCode                string `json:"error_code,omitempty"`
	ErrorMessage             string `json:"error_message,omitempty"`
	ConnectorAuthorizationID string `json:"connector_authorization_id,omitempty"`
}
