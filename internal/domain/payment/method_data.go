package payment

import "github.com/routepay/gatewaycore/internal/secret"

// PaymentMethodDataKind tags the PaymentMethodData union. A connector
// builder that receives a variant it does not implement must hit an
// explicit default arm — never silently fall through.
type PaymentMethodDataKind string

const (
	PaymentMethodDataKindCard                              PaymentMethodDataKind = "card"
	PaymentMethodDataKindWallet                            PaymentMethodDataKind = "wallet"
	PaymentMethodDataKindBankRedirect                      PaymentMethodDataKind = "bank_redirect"
	PaymentMethodDataKindBankDebit                         PaymentMethodDataKind = "bank_debit"
	PaymentMethodDataKindBankTransfer                      PaymentMethodDataKind = "bank_transfer"
	PaymentMethodDataKindPayLater                          PaymentMethodDataKind = "pay_later"
	PaymentMethodDataKindMandatePayment                    PaymentMethodDataKind = "mandate_payment"
	PaymentMethodDataKindNetworkToken                      PaymentMethodDataKind = "network_token"
	PaymentMethodDataKindCardDetailsForNetworkTransactionId PaymentMethodDataKind = "card_details_for_network_transaction_id"
	PaymentMethodDataKindVoucher                           PaymentMethodDataKind = "voucher"
	PaymentMethodDataKindGiftCard                          PaymentMethodDataKind = "gift_card"
	PaymentMethodDataKindCrypto                            PaymentMethodDataKind = "crypto"
	PaymentMethodDataKindUpi                               PaymentMethodDataKind = "upi"
	PaymentMethodDataKindOpenBanking                       PaymentMethodDataKind = "open_banking"
	PaymentMethodDataKindCardRedirect                      PaymentMethodDataKind = "card_redirect"
	PaymentMethodDataKindCardToken                         PaymentMethodDataKind = "card_token"
)

// PaymentMethodData is the sealed union of every payment method shape the
// router can carry. Only Card, Wallet, NetworkToken,
// CardDetailsForNetworkTransactionId and MandatePayment have connector
// builder arms for Cybersource (§4.4.1); every other variant must resolve to
// ierr.ErrNotImplemented at the builder boundary, not silently no-op.
type PaymentMethodData interface {
	Kind() PaymentMethodDataKind
}

// CardNetwork is the scheme that issued the card, used both for the type-code
// table (§6) and the commerce-indicator matrix (§4.4.1).
type CardNetwork string

const (
	CardNetworkVisa          CardNetwork = "visa"
	CardNetworkMastercard    CardNetwork = "mastercard"
	CardNetworkAmex          CardNetwork = "amex"
	CardNetworkDiscover      CardNetwork = "discover"
	CardNetworkDinersClub    CardNetwork = "diners_club"
	CardNetworkCartesBancaires CardNetwork = "cartes_bancaires"
	CardNetworkJCB           CardNetwork = "jcb"
	CardNetworkUnionPay      CardNetwork = "union_pay"
	CardNetworkMaestro       CardNetwork = "maestro"
	CardNetworkUpi           CardNetwork = "upi"
)

// Card is a cardholder-present or card-on-file instrument.
type Card struct {
	Number                   secret.Masked[string]
	ExpiryMonth              string
	ExpiryYear               string
	CVC                      secret.Masked[string]
	CardNetwork              CardNetwork // explicit network, empty if unknown (BIN-derived fallback applies)
	CardHolderName           string
	NetworkTransactionID     string // presence suppresses CVC on MIT reuse (§4.4.1)
}

func (Card) Kind() PaymentMethodDataKind { return PaymentMethodDataKindCard }

// CardDetailsForNetworkTransactionId behaves like Card but never carries a
// CVC and never accepts an explicit network override — always BIN-derived
// (§4.4.1 "CardDetailsForNetworkTransactionId").
type CardDetailsForNetworkTransactionId struct {
	Number      secret.Masked[string]
	ExpiryMonth string
	ExpiryYear  string
}

func (CardDetailsForNetworkTransactionId) Kind() PaymentMethodDataKind {
	return PaymentMethodDataKindCardDetailsForNetworkTransactionId
}

// NetworkToken carries a network-tokenized PAN (e.g. Visa Token Service)
// with its own cryptogram, distinct from a wallet's tokenized blob.
type NetworkToken struct {
	TokenNumber secret.Masked[string]
	ExpiryMonth string
	ExpiryYear  string
	Cryptogram  secret.Masked[string]
	CardNetwork CardNetwork
}

func (NetworkToken) Kind() PaymentMethodDataKind { return PaymentMethodDataKindNetworkToken }

// MandatePayment signals that the attempt should draw on an existing
// mandate and carries no fresh instrument data.
type MandatePayment struct{}

func (MandatePayment) Kind() PaymentMethodDataKind { return PaymentMethodDataKindMandatePayment }

// Wallet wraps a WalletData variant.
type Wallet struct {
	Data WalletData
}

func (Wallet) Kind() PaymentMethodDataKind { return PaymentMethodDataKindWallet }

// The remaining variants have no Cybersource builder arm; they exist so the
// union is complete and the "NotImplemented" fallthrough (§9) is reached
// deliberately rather than by omission.

type BankRedirect struct{ ProviderName string }

func (BankRedirect) Kind() PaymentMethodDataKind { return PaymentMethodDataKindBankRedirect }

type BankDebit struct{ ProviderName string }

func (BankDebit) Kind() PaymentMethodDataKind { return PaymentMethodDataKindBankDebit }

type BankTransfer struct{ ProviderName string }

func (BankTransfer) Kind() PaymentMethodDataKind { return PaymentMethodDataKindBankTransfer }

type PayLater struct{ ProviderName string }

func (PayLater) Kind() PaymentMethodDataKind { return PaymentMethodDataKindPayLater }

type Voucher struct{ ProviderName string }

func (Voucher) Kind() PaymentMethodDataKind { return PaymentMethodDataKindVoucher }

type GiftCard struct{ Number secret.Masked[string] }

func (GiftCard) Kind() PaymentMethodDataKind { return PaymentMethodDataKindGiftCard }

type Crypto struct{ NetworkName string }

func (Crypto) Kind() PaymentMethodDataKind { return PaymentMethodDataKindCrypto }

type Upi struct{ VpaID string }

func (Upi) Kind() PaymentMethodDataKind { return PaymentMethodDataKindUpi }

type OpenBanking struct{ SourceBankAccountID string }

func (OpenBanking) Kind() PaymentMethodDataKind { return PaymentMethodDataKindOpenBanking }

type CardRedirect struct{ ProviderName string }

func (CardRedirect) Kind() PaymentMethodDataKind { return PaymentMethodDataKindCardRedirect }

type CardToken struct{ Token secret.Masked[string] }

func (CardToken) Kind() PaymentMethodDataKind { return PaymentMethodDataKindCardToken }

// WalletDataKind tags the WalletData union.
type WalletDataKind string

const (
	WalletDataKindApplePay   WalletDataKind = "apple_pay"
	WalletDataKindGooglePay  WalletDataKind = "google_pay"
	WalletDataKindSamsungPay WalletDataKind = "samsung_pay"
	WalletDataKindPaze       WalletDataKind = "paze"
	// WalletDataKindOther covers the remaining ~25 wallet variants
	// (AliPay, WeChatPay, Paypal, Swish, …) that carry no Cybersource
	// builder arm; the Name field preserves which one for logging.
	WalletDataKindOther WalletDataKind = "other"
)

// WalletData is the sealed union of wallet payment shapes.
type WalletData interface {
	WalletKind() WalletDataKind
}

// ApplePayData carries either a pre-decrypted blob or a tokenized
// "fluid data" blob; exactly one of DecryptedData / TokenizedData is set.
type ApplePayData struct {
	DecryptedData *ApplePayDecryptedData
	TokenizedData *ApplePayTokenizedData
}

func (ApplePayData) WalletKind() WalletDataKind { return WalletDataKindApplePay }

type ApplePayDecryptedData struct {
	PAN                     secret.Masked[string]
	ExpiryMonth             string
	ExpiryYear              string
	OnlinePaymentCryptogram secret.Masked[string]
	CardNetwork             CardNetwork
}

type ApplePayTokenizedData struct {
	TokenBlobBase64 string
	CardNetwork     CardNetwork
}

// GooglePayData mirrors ApplePayData's decrypted/tokenized split.
type GooglePayData struct {
	DecryptedData *GooglePayDecryptedData
	TokenizedData *GooglePayTokenizedData
}

func (GooglePayData) WalletKind() WalletDataKind { return WalletDataKindGooglePay }

type GooglePayDecryptedData struct {
	PAN         secret.Masked[string]
	ExpiryYear4 string // 4-digit year
	ExpiryMonth2 string // 2-digit month
	Cryptogram  secret.Masked[string]
	CardNetwork CardNetwork
}

type GooglePayTokenizedData struct {
	TokenBlobBase64 string
	CardNetwork     CardNetwork
}

// SamsungPayData carries the signed JWT the wallet returns; the `kid`
// header is extracted by the connector builder, not stored here. Version
// is echoed back verbatim from the wallet's own token payload, not a
// connector-side constant.
type SamsungPayData struct {
	PaymentCredentialJWT string
	Version              string
	CardNetwork          CardNetwork
}

func (SamsungPayData) WalletKind() WalletDataKind { return WalletDataKindSamsungPay }

// PazeData carries a network-token-shaped payload keyed by PAR
// (payment-account-reference) used as the cryptogram (§4.4.1).
type PazeData struct {
	TokenPAN                string
	ExpiryMonth             string
	ExpiryYear              string
	PaymentAccountReference string
	BillingFullName         string
	BillingState            string
	BillingCountry          string
}

func (PazeData) WalletKind() WalletDataKind { return WalletDataKindPaze }

// OtherWalletData is a catch-all for wallet variants with no Cybersource
// builder arm.
type OtherWalletData struct{ Name string }

func (OtherWalletData) WalletKind() WalletDataKind { return WalletDataKindOther }
