package requiredfields

// BillingFields returns the fixed public-surface map for the standalone
// billing-fields endpoint (§6 "Billing fields endpoint yields the fixed
// map"), independent of the (payment method, connector) matrix above: it is
// the same field set regardless of which connector ultimately processes the
// payment, used by callers that need to prompt for billing details before a
// connector has even been selected.
func BillingFields() map[string]FieldInfo {
	return toMap(billingAddress(), billingPhone(), []FieldInfo{
		field("billing.email", "Email", UserEmailAddress),
	})
}

// ShippingFields returns the parallel structure for shipping details (§6
// "Shipping fields yields the parallel structure").
func ShippingFields() map[string]FieldInfo {
	return toMap(shippingAddress(), shippingPhone())
}

// billingPhone returns the billing phone number + country code pair used
// by BillingFields.
func billingPhone() []FieldInfo {
	return []FieldInfo{
		field("billing.phone.number", "Phone Number", UserPhoneNumber),
		field("billing.phone.country_code", "Phone Country Code", UserPhoneNumberCountryCode),
	}
}

// shippingAddress mirrors billingAddress under the shipping.* path prefix.
func shippingAddress() []FieldInfo {
	return []FieldInfo{
		field("shipping.address.first_name", "Shipping First Name", UserBillingName),
		field("shipping.address.last_name", "Shipping Last Name", UserBillingName),
		field("shipping.address.line1", "Shipping Address Line 1", UserAddressLine1),
		field("shipping.address.line2", "Shipping Address Line 2", UserAddressLine2),
		field("shipping.address.city", "Shipping City", UserAddressCity),
		field("shipping.address.state", "Shipping State", UserAddressState),
		field("shipping.address.zip", "Shipping Zip", UserAddressPincode),
		field("shipping.address.country", "Shipping Country", UserAddressCountry, AllCountries...),
	}
}

// shippingPhone mirrors billingPhone under the shipping.* path prefix.
func shippingPhone() []FieldInfo {
	return []FieldInfo{
		field("shipping.phone.number", "Phone Number", UserPhoneNumber),
		field("shipping.phone.country_code", "Phone Country Code", UserPhoneNumberCountryCode),
	}
}
