package requiredfields

import "github.com/samber/lo"

// RequiredFieldSet partitions a (payment method, payment method type,
// connector) combination's fields into the mandate-only, non-mandate-only,
// and always-required buckets (§4.3).
type RequiredFieldSet struct {
	Mandate    map[string]FieldInfo
	NonMandate map[string]FieldInfo
	Common     map[string]FieldInfo
}

func toMap(fields ...[]FieldInfo) map[string]FieldInfo {
	out := make(map[string]FieldInfo)
	for _, group := range fields {
		for _, f := range group {
			out[f.RequiredPath] = f
		}
	}
	return out
}

// connectorMatrix is PaymentMethod -> PaymentMethodType -> Connector ->
// RequiredFieldSet. It is built once at package init and never mutated
// afterwards (§5 "the required-fields matrix is process-wide, read-only
// after initialization").
var connectorMatrix = map[string]map[string]map[string]RequiredFieldSet{
	"card": {
		"credit": {
			"cybersource": {
				Common:     toMap(cardBasic("payment_method_data.card"), email()),
				NonMandate: toMap(billingAddress()),
				Mandate:    toMap(), // mandate reuse needs no fresh card data
			},
		},
		"debit": {
			"cybersource": {
				Common:     toMap(cardBasic("payment_method_data.card"), email()),
				NonMandate: toMap(billingAddress()),
				Mandate:    toMap(),
			},
		},
	},
	"wallet": {
		"apple_pay": {
			"cybersource": {
				Common:     toMap(email()),
				NonMandate: toMap(),
				Mandate:    toMap(),
			},
		},
		"google_pay": {
			"cybersource": {
				Common:     toMap(email()),
				NonMandate: toMap(),
				Mandate:    toMap(),
			},
		},
		"samsung_pay": {
			"cybersource": {
				Common:     toMap(email()),
				NonMandate: toMap(),
				Mandate:    toMap(),
			},
		},
		"paze": {
			"cybersource": {
				Common:     toMap(fullName("payment_method_data.wallet.paze.billing_full_name", "Billing Name"), email()),
				NonMandate: toMap(billingAddress()),
				Mandate:    toMap(),
			},
		},
	},
}

// Resolve implements the §4.3 contract. found=false means the connector
// does not support this (payment method, payment method type) combination
// at all, distinct from found=true with an empty RequiredFieldSet.
func Resolve(paymentMethod, paymentMethodType, connector string, isMandateFlow bool) (RequiredFieldSet, bool) {
	byType, ok := connectorMatrix[paymentMethod]
	if !ok {
		return RequiredFieldSet{}, false
	}
	byConnector, ok := byType[paymentMethodType]
	if !ok {
		return RequiredFieldSet{}, false
	}
	set, ok := byConnector[connector]
	if !ok {
		return RequiredFieldSet{}, false
	}
	return set, true
}

// VisibleFields returns the caller-visible field set: common ∪ (mandate if
// is_mandate_flow else non_mandate) (§4.3, §8.1 property 5).
func VisibleFields(set RequiredFieldSet, isMandateFlow bool) map[string]FieldInfo {
	variant := set.NonMandate
	if isMandateFlow {
		variant = set.Mandate
	}
	merged := make(map[string]FieldInfo, len(set.Common)+len(variant))
	for k, v := range set.Common {
		merged[k] = v
	}
	for k, v := range variant {
		merged[k] = v
	}
	return merged
}

// mandateNonMandateDisjoint is the §8.1 property 5 invariant checker: for
// any registered combination, NonMandate and Mandate must not share a path.
func mandateNonMandateDisjoint(set RequiredFieldSet) bool {
	nonMandateKeys := lo.Keys(set.NonMandate)
	for _, k := range nonMandateKeys {
		if _, clash := set.Mandate[k]; clash {
			return false
		}
	}
	return true
}
