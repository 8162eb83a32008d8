package payment

// AttemptStatus is the mapped target status of one physical connector call.
// Transitions are one-way except where the gateway returns an intermediate
// Unresolved/Pending that may later resolve.
type AttemptStatus string

const (
	AttemptStatusStarted                    AttemptStatus = "started"
	AttemptStatusAuthenticationPending       AttemptStatus = "authentication_pending"
	AttemptStatusAuthenticationSuccessful    AttemptStatus = "authentication_successful"
	AttemptStatusAuthenticationFailed        AttemptStatus = "authentication_failed"
	AttemptStatusAuthorized                  AttemptStatus = "authorized"
	AttemptStatusPartiallyAuthorized         AttemptStatus = "partially_authorized"
	AttemptStatusCharged                     AttemptStatus = "charged"
	AttemptStatusPartialCharged              AttemptStatus = "partial_charged"
	AttemptStatusPartialChargedAndChargeable AttemptStatus = "partial_charged_and_chargeable"
	AttemptStatusAuthorizing                 AttemptStatus = "authorizing"
	AttemptStatusVoided                      AttemptStatus = "voided"
	AttemptStatusVoidedPostCharge            AttemptStatus = "voided_post_charge"
	AttemptStatusVoidFailed                  AttemptStatus = "void_failed"
	AttemptStatusCaptureInitiated            AttemptStatus = "capture_initiated"
	AttemptStatusCaptureFailed               AttemptStatus = "capture_failed"
	AttemptStatusPending                     AttemptStatus = "pending"
	AttemptStatusFailure                     AttemptStatus = "failure"
	AttemptStatusAutoRefunded                AttemptStatus = "auto_refunded"
	AttemptStatusUnresolved                  AttemptStatus = "unresolved"
	AttemptStatusConfirmationAwaited         AttemptStatus = "confirmation_awaited"
	AttemptStatusPaymentMethodAwaited        AttemptStatus = "payment_method_awaited"
	AttemptStatusDeviceDataCollectionPending AttemptStatus = "device_data_collection_pending"
	AttemptStatusIntegrityFailure            AttemptStatus = "integrity_failure"
	AttemptStatusExpired                     AttemptStatus = "expired"
	AttemptStatusRouterDeclined              AttemptStatus = "router_declined"
)

// IsTerminal reports whether the status will not change without a new
// connector call.
func (s AttemptStatus) IsTerminal() bool {
	switch s {
	case AttemptStatusCharged, AttemptStatusFailure, AttemptStatusVoided,
		AttemptStatusVoidedPostCharge, AttemptStatusAutoRefunded,
		AttemptStatusIntegrityFailure, AttemptStatusExpired, AttemptStatusRouterDeclined:
		return true
	default:
		return false
	}
}

// IsSuccessful reports whether the status represents a successfully
// authorized or charged attempt (§4.6.1 step 4, "SUCCESSFUL_PAYMENT counter").
func (s AttemptStatus) IsSuccessful() bool {
	switch s {
	case AttemptStatusCharged, AttemptStatusAuthorized, AttemptStatusPartiallyAuthorized:
		return true
	default:
		return false
	}
}

// IntentStatus is the merchant-scoped logical-payment status lattice.
type IntentStatus string

const (
	IntentStatusRequiresPaymentMethod           IntentStatus = "requires_payment_method"
	IntentStatusRequiresConfirmation            IntentStatus = "requires_confirmation"
	IntentStatusRequiresCustomerAction          IntentStatus = "requires_customer_action"
	IntentStatusProcessing                      IntentStatus = "processing"
	IntentStatusSucceeded                       IntentStatus = "succeeded"
	IntentStatusFailed                          IntentStatus = "failed"
	IntentStatusCancelled                       IntentStatus = "cancelled"
	IntentStatusRequiresCapture                 IntentStatus = "requires_capture"
	IntentStatusPartiallyCaptured               IntentStatus = "partially_captured"
	IntentStatusPartiallyCapturedAndCapturable  IntentStatus = "partially_captured_and_capturable"
)

// IsTerminal reports whether the intent will not receive further updates.
func (s IntentStatus) IsTerminal() bool {
	switch s {
	case IntentStatusSucceeded, IntentStatusFailed, IntentStatusCancelled:
		return true
	default:
		return false
	}
}

// ProjectAttemptStatus maps an AttemptStatus onto the IntentStatus lattice,
// used for PGStatusUpdate (§4.6.2) and the PaymentMethod status projection
// (§4.6.1 step 9).
func ProjectAttemptStatus(s AttemptStatus) IntentStatus {
	switch s {
	case AttemptStatusCharged:
		return IntentStatusSucceeded
	case AttemptStatusPartialCharged, AttemptStatusPartialChargedAndChargeable:
		return IntentStatusPartiallyCaptured
	case AttemptStatusAuthorized, AttemptStatusPartiallyAuthorized:
		return IntentStatusRequiresCapture
	case AttemptStatusVoided, AttemptStatusVoidedPostCharge:
		return IntentStatusCancelled
	case AttemptStatusAuthenticationPending, AttemptStatusDeviceDataCollectionPending,
		AttemptStatusConfirmationAwaited:
		return IntentStatusRequiresCustomerAction
	case AttemptStatusPaymentMethodAwaited:
		return IntentStatusRequiresPaymentMethod
	case AttemptStatusFailure, AttemptStatusExpired, AttemptStatusRouterDeclined,
		AttemptStatusVoidFailed, AttemptStatusCaptureFailed, AttemptStatusIntegrityFailure:
		return IntentStatusFailed
	default:
		return IntentStatusProcessing
	}
}

// ProjectToPaymentMethodStatus maps an AttemptStatus onto the
// PaymentMethodStatus lattice (§4.6.1 step 9: "update its status ... if not
// already equal to the attempt-status-projection-onto-PM-status-lattice").
func ProjectToPaymentMethodStatus(s AttemptStatus) PaymentMethodStatus {
	if s.IsSuccessful() {
		return PaymentMethodStatusActive
	}
	return PaymentMethodStatusInactive
}

// MandateStatus is the lifecycle of a stored-credential reference.
type MandateStatus string

const (
	MandateStatusActive   MandateStatus = "active"
	MandateStatusInactive MandateStatus = "inactive"
)

// PaymentMethodStatus is the lifecycle of a stored tokenization.
type PaymentMethodStatus string

const (
	PaymentMethodStatusActive   PaymentMethodStatus = "active"
	PaymentMethodStatusInactive PaymentMethodStatus = "inactive"
)

// SetupFutureUsage controls whether a successful payment should leave behind
// a reusable mandate/token.
type SetupFutureUsage string

const (
	SetupFutureUsageOffSession SetupFutureUsage = "off_session"
	SetupFutureUsageOnSession  SetupFutureUsage = "on_session"
	SetupFutureUsageNone       SetupFutureUsage = "none"
)

// CaptureMethod controls whether an authorization auto-captures.
type CaptureMethod string

const (
	CaptureMethodAutomatic CaptureMethod = "automatic"
	CaptureMethodManual    CaptureMethod = "manual"
)

// IsAutomatic reports whether the method defaults to auto-capture; an unset
// CaptureMethod is treated as Automatic (§4.4.1 "processingInformation.capture").
func (m CaptureMethod) IsAutomatic() bool {
	return m == "" || m == CaptureMethodAutomatic
}
