package cybersource

import (
	"strings"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// usCanadaStateCodes maps every US state/territory and Canadian
// province/territory's spelled-out name (ISO 3166-2:US and ISO 3166-2:CA) to
// its 2-letter code; anything not in this set is assumed already coded and
// falls back to truncation.
var usCanadaStateCodes = map[string]string{
	// US states
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
	// US federal district and territories
	"district of columbia": "DC", "american samoa": "AS", "guam": "GU",
	"northern mariana islands": "MP", "puerto rico": "PR", "u.s. virgin islands": "VI",
	"armed forces americas": "AA", "armed forces europe": "AE", "armed forces pacific": "AP",
	// Canadian provinces and territories
	"alberta": "AB", "british columbia": "BC", "manitoba": "MB", "new brunswick": "NB",
	"newfoundland and labrador": "NL", "northwest territories": "NT", "nova scotia": "NS",
	"nunavut": "NU", "ontario": "ON", "prince edward island": "PE", "quebec": "QC",
	"saskatchewan": "SK", "yukon": "YT",
}

// stripNewlines replaces every newline in an address line with a single
// space (§4.4.1 "Every line may contain newlines that MUST be stripped").
func stripNewlines(s string) string {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return replacer.Replace(s)
}

// normalizeState truncates the administrative area to 20 characters and,
// for US/CA, maps a spelled-out name to its 2-letter code when the set
// above recognizes it (§4.4.1).
func normalizeState(state, country string) string {
	normalized := state
	if country == "US" || country == "CA" {
		if code, ok := usCanadaStateCodes[strings.ToLower(strings.TrimSpace(state))]; ok {
			normalized = code
		}
	}
	if len(normalized) > 20 {
		normalized = normalized[:20]
	}
	return normalized
}

// BillTo is the Cybersource orderInformation.billTo document.
type BillTo struct {
	FirstName           string `json:"firstName,omitempty"`
	LastName            string `json:"lastName,omitempty"`
	Address1            string `json:"address1,omitempty"`
	Address2            string `json:"address2,omitempty"`
	Locality            string `json:"locality,omitempty"`
	AdministrativeArea  string `json:"administrativeArea,omitempty"`
	PostalCode          string `json:"postalCode,omitempty"`
	Country             string `json:"country,omitempty"`
	Email               string `json:"email"`
	PhoneNumber         string `json:"phoneNumber,omitempty"`
}

// BuildBillTo implements the §4.4.1 billTo derivation: newline stripping,
// state normalization, and the mandatory-email fallback chain
// (billing.email, then the top-level request email, else fail).
func BuildBillTo(billing *payment.Address, topLevelEmail string) (*BillTo, error) {
	if billing == nil {
		email := topLevelEmail
		if email == "" {
			return nil, errMissingRequiredField("billing.email", "Email is required")
		}
		return &BillTo{Email: email}, nil
	}

	email := billing.Email
	if email == "" {
		email = topLevelEmail
	}
	if email == "" {
		return nil, errMissingRequiredField("billing.email", "Email is required")
	}

	return &BillTo{
		FirstName:          stripNewlines(billing.FirstName),
		LastName:           stripNewlines(billing.LastName),
		Address1:           stripNewlines(billing.Line1),
		Address2:           stripNewlines(billing.Line2),
		Locality:           stripNewlines(billing.City),
		AdministrativeArea: normalizeState(stripNewlines(billing.State), billing.Country),
		PostalCode:         billing.Zip,
		Country:            billing.Country,
		Email:              email,
		PhoneNumber:        billing.PhoneNumber,
	}, nil
}

// BuildPazeBillTo implements the §4.4.1 "Wallet::Paze" billTo derivation:
// the address lines still come from the order's billing address, but the
// name and administrative area are overridden from the Paze payload itself
// per §4.4.1 ("billing name must decompose by first space; US-state must
// be ISO-mapped") since Paze carries its own billing identity alongside
// the token.
func BuildPazeBillTo(data payment.PazeData, billing *payment.Address, topLevelEmail string) (*BillTo, error) {
	billTo, err := BuildBillTo(billing, topLevelEmail)
	if err != nil {
		return nil, err
	}
	first, last := splitBillingName(data.BillingFullName)
	billTo.FirstName = first
	billTo.LastName = last
	if data.BillingState != "" {
		billTo.AdministrativeArea = normalizeState(data.BillingState, data.BillingCountry)
	}
	return billTo, nil
}

// BuildRecipientBillTo implements the §4.4.9 payout recipientInformation
// billTo derivation: the same newline/state normalization as BuildBillTo,
// but without the mandatory-email rule, which is specific to
// orderInformation.billTo on cardholder-present flows.
func BuildRecipientBillTo(recipient payment.PayoutRecipient) *BillTo {
	billing := recipient.Address
	if billing == nil {
		return &BillTo{
			FirstName:   stripNewlines(recipient.FirstName),
			LastName:    stripNewlines(recipient.LastName),
			PhoneNumber: recipient.PhoneNumber,
		}
	}

	return &BillTo{
		FirstName:          stripNewlines(recipient.FirstName),
		LastName:           stripNewlines(recipient.LastName),
		Address1:           stripNewlines(billing.Line1),
		Address2:           stripNewlines(billing.Line2),
		Locality:           stripNewlines(billing.City),
		AdministrativeArea: normalizeState(stripNewlines(billing.State), billing.Country),
		PostalCode:         billing.Zip,
		Country:            billing.Country,
		Email:              billing.Email,
		PhoneNumber:        recipient.PhoneNumber,
	}
}
