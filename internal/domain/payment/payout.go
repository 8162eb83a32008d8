package payment

// PayoutRecipient is the minimal recipient shape the feature-gated
// payout-fulfill flow needs (§4.4.9); it intentionally does not pull in a
// full payout domain since this core only builds the request document.
type PayoutRecipient struct {
	FirstName   string
	LastName    string
	Address     *Address
	PhoneNumber string
	CountryCode string
}

// PayoutMethodKind restricts payout-fulfill to the instruments Cybersource
// actually supports for payouts (§4.4.9: "Bank and Wallet payout types are
// explicitly unsupported").
type PayoutMethodKind string

const (
	PayoutMethodKindCard PayoutMethodKind = "card"
)
