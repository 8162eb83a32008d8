package cybersource

// RedirectFormKind tags the RedirectForm union the 3-DS assembler produces
// (§4.7). The HTML rendering of these forms is out of scope; the core only
// produces the opaque, serializable variant the front end replays to the
// cardholder's browser.
type RedirectFormKind string

const (
	RedirectFormKindAuthSetup    RedirectFormKind = "cybersource_auth_setup"
	RedirectFormKindConsumerAuth RedirectFormKind = "cybersource_consumer_auth"
)

// RedirectForm is the sealed union of 3-DS redirection payloads this
// connector can produce.
type RedirectForm interface {
	RedirectFormKind() RedirectFormKind
}

// AuthSetupRedirectForm carries the device-data-collection form parameters
// produced by the Setup phase (§4.4.6 step 1, §4.7).
type AuthSetupRedirectForm struct {
	AccessToken             string
	DeviceDataCollectionURL string
	ReferenceID             string
}

func (AuthSetupRedirectForm) RedirectFormKind() RedirectFormKind { return RedirectFormKindAuthSetup }

// ConsumerAuthRedirectForm carries the step-up challenge form parameters
// produced by the Enrollment phase when the issuer requires interactive
// authentication (§4.4.6 step 2, §4.7).
type ConsumerAuthRedirectForm struct {
	AccessToken string
	StepUpURL   string
}

func (ConsumerAuthRedirectForm) RedirectFormKind() RedirectFormKind {
	return RedirectFormKindConsumerAuth
}

// BuildAuthSetupRedirectForm implements §4.7's Setup-phase assembly.
func BuildAuthSetupRedirectForm(resp CybersourcePreProcessingSetupResponse) *AuthSetupRedirectForm {
	return &AuthSetupRedirectForm{
		AccessToken:             resp.AccessToken,
		DeviceDataCollectionURL: resp.DeviceDataCollectionURL,
		ReferenceID:             resp.ReferenceID,
	}
}

// BuildConsumerAuthRedirectForm implements §4.7's Enrollment-phase step-up
// assembly, used only when the gateway demands an interactive challenge.
func BuildConsumerAuthRedirectForm(resp CybersourcePreProcessingEnrollmentResponse) *ConsumerAuthRedirectForm {
	return &ConsumerAuthRedirectForm{
		AccessToken: resp.AccessToken,
		StepUpURL:   resp.StepUpURL,
	}
}
