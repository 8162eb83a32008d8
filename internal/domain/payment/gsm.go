package payment

// GSMRecord (Gateway Status Mapping) normalizes a per-connector error code
// into a unified code/message the caller's UI and the merchant dashboard can
// render consistently (§4.6.1 step 4, GLOSSARY "GSM").
type GSMRecord struct {
	Connector          string
	Flow               string
	SubFlow            string
	ErrorCode          string
	ErrorMessage       string
	NetworkDeclineCode string
	CardNetwork        CardNetwork
	UnifiedCode        string
	UnifiedMessage     string
	StandardisedCode   string
	Description        string
	UserGuidance       string
	ErrorCategory      string
	// FeatureFlag, when set to "disable_code_mapping", forces the fixed
	// default fallback even though a record was found — a per-connector
	// override knob merchants use to temporarily bypass unified-code
	// mapping without deleting the underlying record.
	FeatureFlag string
}

const (
	// DefaultUnifiedErrorCode is used when no GSM record matches.
	DefaultUnifiedErrorCode = "UE_0000"
	// DefaultUnifiedErrorMessage is used when no GSM record matches.
	DefaultUnifiedErrorMessage = "Something went wrong"

	// GSMFeatureFlagDisableCodeMapping forces the default fallback even
	// when a matching GSMRecord exists.
	GSMFeatureFlagDisableCodeMapping = "disable_code_mapping"
)

// GSMKey is the lookup key into the GSM table.
type GSMKey struct {
	Connector          string
	Flow               string
	SubFlow            string
	ErrorCode          string
	ErrorMessage       string
	NetworkDeclineCode string
	CardNetwork        CardNetwork
}

// GSMRepository is the out-of-scope datastore collaborator; the core only
// defines the contract and the in-process cache in front of it (§5 "the GSM
// records are loaded from the datastore on each error").
type GSMRepository interface {
	Lookup(key GSMKey) (*GSMRecord, bool, error)
}

// MerchantAdviceCode enriches a merchant-initiated-transaction decline with
// the card network's recommended next action (§3 addendum, §4.6.1 step 4).
type MerchantAdviceCode struct {
	CardNetwork       CardNetwork
	NetworkAdviceCode string
	RecommendedAction string
}

// MerchantAdviceCodeKey is the lookup key into the merchant-advice-code
// table.
type MerchantAdviceCodeKey struct {
	CardNetwork       CardNetwork
	NetworkAdviceCode string
}

// MerchantAdviceCodeRepository is the config-backed collaborator consulted
// only for merchant-initiated transactions (§4.6.1 step 4).
type MerchantAdviceCodeRepository interface {
	Lookup(key MerchantAdviceCodeKey) (*MerchantAdviceCode, bool)
}

// UnifiedMessageTranslator is the i18n collaborator (§9 "Locale translation
// of unified messages"); on a miss it MUST return the original message, and
// an implementation must never fail the flow.
type UnifiedMessageTranslator interface {
	Translate(locale, unifiedMessage string) string
}
