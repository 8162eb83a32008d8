// Package requiredfields implements the static, declarative matrix that
// determines which fields the UI must collect before a request may be
// dispatched to a connector for a given (payment method, payment method
// type) pair (§4.3).
package requiredfields

// FieldKind enumerates the input affordances the UI can render for a
// required field (§4.3).
type FieldKind string

const (
	UserCardNumber               FieldKind = "user_card_number"
	UserCardCvc                  FieldKind = "user_card_cvc"
	UserCardExpiryMonth          FieldKind = "user_card_expiry_month"
	UserCardExpiryYear           FieldKind = "user_card_expiry_year"
	UserBillingName              FieldKind = "user_billing_name"
	UserFullName                 FieldKind = "user_full_name"
	UserEmailAddress             FieldKind = "user_email_address"
	UserPhoneNumber              FieldKind = "user_phone_number"
	UserPhoneNumberCountryCode   FieldKind = "user_phone_number_country_code"
	UserAddressLine1             FieldKind = "user_address_line1"
	UserAddressLine2             FieldKind = "user_address_line2"
	UserAddressCity              FieldKind = "user_address_city"
	UserAddressState             FieldKind = "user_address_state"
	UserAddressPincode           FieldKind = "user_address_pincode"
	UserAddressCountry           FieldKind = "user_address_country"
	UserBank                     FieldKind = "user_bank"
	UserBankOptions              FieldKind = "user_bank_options"
	UserBlikCode                 FieldKind = "user_blik_code"
	UserCryptoCurrencyNetwork    FieldKind = "user_crypto_currency_network"
	UserCurrency                 FieldKind = "user_currency"
	UserBankAccountNumber        FieldKind = "user_bank_account_number"
	UserBankRoutingNumber        FieldKind = "user_bank_routing_number"
	UserBankSortCode             FieldKind = "user_bank_sort_code"
	UserIban                     FieldKind = "user_iban"
	UserBsbNumber                FieldKind = "user_bsb_number"
	UserCnpj                     FieldKind = "user_cnpj"
	UserCpf                      FieldKind = "user_cpf"
	UserPixKey                   FieldKind = "user_pix_key"
	UserSourceBankAccountId      FieldKind = "user_source_bank_account_id"
	UserMsisdn                   FieldKind = "user_msisdn"
	UserClientIdentifier         FieldKind = "user_client_identifier"
	UserVpaId                    FieldKind = "user_vpa_id"
	UserSocialSecurityNumber     FieldKind = "user_social_security_number"
	UserDateOfBirth              FieldKind = "user_date_of_birth"
	LanguagePreference           FieldKind = "language_preference"
	OrderDetailsProductName      FieldKind = "order_details_product_name"
	Text                         FieldKind = "text"
)

// AllCountries is the sentinel allowlist meaning every ISO-3166-alpha2 code
// is accepted (§4.3 "Country lists are either [\"ALL\"] or an explicit
// allowlist").
var AllCountries = []string{"ALL"}

// FieldInfo describes one required field: the path the UI must populate,
// its display label, the input affordance, and an optional default.
type FieldInfo struct {
	RequiredPath string
	DisplayName  string
	FieldKind    FieldKind
	// Options lists the allowed values for fields that enumerate, e.g.
	// UserAddressCountry / UserBankOptions / UserCurrency /
	// LanguagePreference. Nil for fields with no fixed option set.
	Options []string
	Default string
}
