package requiredfields

// field is a small constructor to keep the composer bodies below terse.
func field(path, display string, kind FieldKind, options ...string) FieldInfo {
	return FieldInfo{RequiredPath: path, DisplayName: display, FieldKind: kind, Options: options}
}

// cardBasic returns the PAN/expiry/CVC fields every card flow needs.
func cardBasic(pathPrefix string) []FieldInfo {
	return []FieldInfo{
		field(pathPrefix+".card_number", "Card Number", UserCardNumber),
		field(pathPrefix+".card_exp_month", "Card Expiry Month", UserCardExpiryMonth),
		field(pathPrefix+".card_exp_year", "Card Expiry Year", UserCardExpiryYear),
		field(pathPrefix+".card_cvc", "Card CVC", UserCardCvc),
	}
}

// fullName returns a single combined cardholder/billing name field.
func fullName(path, display string) []FieldInfo {
	return []FieldInfo{field(path, display, UserFullName)}
}

// billingAddress returns the standard billing-address field set, mirroring
// the "Required-fields public surface" fixed map in §6.
func billingAddress() []FieldInfo {
	return []FieldInfo{
		field("billing.address.first_name", "Billing First Name", UserBillingName),
		field("billing.address.last_name", "Billing Last Name", UserBillingName),
		field("billing.address.line1", "Billing Address Line 1", UserAddressLine1),
		field("billing.address.line2", "Billing Address Line 2", UserAddressLine2),
		field("billing.address.city", "Billing City", UserAddressCity),
		field("billing.address.state", "Billing State", UserAddressState),
		field("billing.address.zip", "Billing Zip", UserAddressPincode),
		field("billing.address.country", "Billing Country", UserAddressCountry, AllCountries...),
	}
}

// billingEmailBillingNamePhone returns the contact-detail triple several
// redirect-based methods require in addition to the address.
func billingEmailBillingNamePhone() []FieldInfo {
	return []FieldInfo{
		field("billing.email", "Email", UserEmailAddress),
		field("billing.address.first_name", "Billing First Name", UserBillingName),
		field("billing.address.last_name", "Billing Last Name", UserBillingName),
		field("billing.phone.number", "Phone Number", UserPhoneNumber),
		field("billing.phone.country_code", "Phone Country Code", UserPhoneNumberCountryCode),
	}
}

// email returns the bare billing-email requirement, the one field every
// Cybersource flow needs regardless of payment method (§4.4.1 "Email is
// mandatory").
func email() []FieldInfo {
	return []FieldInfo{field("billing.email", "Email", UserEmailAddress)}
}
