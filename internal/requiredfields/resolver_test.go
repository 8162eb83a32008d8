package requiredfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_AbsentCombinationIsDistinctFromEmptySet(t *testing.T) {
	_, found := Resolve("crypto", "bitcoin", "cybersource", false)
	assert.False(t, found, "crypto is not in the matrix at all")

	set, found := Resolve("card", "credit", "cybersource", true)
	assert.True(t, found)
	assert.Empty(t, set.Mandate, "mandate reuse needs no fresh card fields, but the combination IS registered")
}

func TestResolve_UnknownConnectorIsAbsent(t *testing.T) {
	_, found := Resolve("card", "credit", "some_other_gateway", false)
	assert.False(t, found)
}

func TestVisibleFields_UnionsCommonWithMandateOrNonMandate(t *testing.T) {
	set, found := Resolve("card", "credit", "cybersource", false)
	assert.True(t, found)

	nonMandateVisible := VisibleFields(set, false)
	_, hasCardNumber := nonMandateVisible["payment_method_data.card.card_number"]
	_, hasBillingCity := nonMandateVisible["billing.address.city"]
	assert.True(t, hasCardNumber)
	assert.True(t, hasBillingCity)

	mandateVisible := VisibleFields(set, true)
	_, hasBillingCityMandate := mandateVisible["billing.address.city"]
	assert.False(t, hasBillingCityMandate, "mandate reuse should not require a fresh billing address")
	_, hasCardNumberMandate := mandateVisible["payment_method_data.card.card_number"]
	assert.True(t, hasCardNumberMandate, "email/card-basic are common to both flows")
}

func TestRequiredFieldSet_MandateAndNonMandateAreDisjoint(t *testing.T) {
	// §8.1 property 5: non_mandate ∩ mandate = ∅ for every registered combination.
	paymentMethods := []struct {
		pm, pmt, connector string
	}{
		{"card", "credit", "cybersource"},
		{"card", "debit", "cybersource"},
		{"wallet", "apple_pay", "cybersource"},
		{"wallet", "google_pay", "cybersource"},
		{"wallet", "samsung_pay", "cybersource"},
		{"wallet", "paze", "cybersource"},
	}

	for _, pm := range paymentMethods {
		set, found := Resolve(pm.pm, pm.pmt, pm.connector, false)
		assert.True(t, found, "%s/%s/%s should be registered", pm.pm, pm.pmt, pm.connector)
		assert.True(t, mandateNonMandateDisjoint(set), "%s/%s/%s violates mandate/non-mandate disjointness", pm.pm, pm.pmt, pm.connector)
	}
}

func TestBillingFieldsAndShippingFields_FixedPublicSurface(t *testing.T) {
	billing := BillingFields()
	_, hasEmail := billing["billing.email"]
	_, hasCountry := billing["billing.address.country"]
	_, hasPhone := billing["billing.phone.number"]
	assert.True(t, hasEmail)
	assert.True(t, hasCountry)
	assert.True(t, hasPhone)

	shipping := ShippingFields()
	_, hasShippingCountry := shipping["shipping.address.country"]
	_, hasShippingPhone := shipping["shipping.phone.number"]
	assert.True(t, hasShippingCountry)
	assert.True(t, hasShippingPhone)
	_, leaked := shipping["billing.address.country"]
	assert.False(t, leaked, "shipping surface must not carry billing paths")
}
