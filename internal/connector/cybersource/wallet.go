package cybersource

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	ierr "github.com/routepay/gatewaycore/internal/errors"
	"github.com/routepay/gatewaycore/internal/domain/payment"
	"github.com/golang-jwt/jwt/v4"
)

// buildApplePayPaymentInformation implements §4.4.1 "Wallet::ApplePay".
func buildApplePayPaymentInformation(data payment.ApplePayData) (PaymentInformation, string) {
	if data.DecryptedData != nil {
		d := data.DecryptedData
		return PaymentInformation{
			Card: &CardPaymentInformation{
				Number:          d.PAN.Peek(),
				ExpirationMonth: d.ExpiryMonth,
				ExpirationYear:  d.ExpiryYear,
				Cryptogram:      d.OnlinePaymentCryptogram.Peek(),
			},
		}, PaymentSolutionApplePay
	}

	return PaymentInformation{
		FluidData: &FluidData{
			Value:      data.TokenizedData.TokenBlobBase64,
			Descriptor: ApplePayFluidDataDescriptor,
		},
	}, PaymentSolutionApplePay
}

// applePayCardNetwork resolves the network carried by either the decrypted
// or tokenized branch, used for the Mastercard ucaf/commerce-indicator
// logic that applies to both (§4.4.1).
func applePayCardNetwork(data payment.ApplePayData) payment.CardNetwork {
	if data.DecryptedData != nil {
		return data.DecryptedData.CardNetwork
	}
	if data.TokenizedData != nil {
		return data.TokenizedData.CardNetwork
	}
	return ""
}

// buildGooglePayPaymentInformation implements §4.4.1 "Wallet::GooglePay".
func buildGooglePayPaymentInformation(data payment.GooglePayData) (PaymentInformation, string) {
	if data.DecryptedData != nil {
		d := data.DecryptedData
		return PaymentInformation{
			Card: &CardPaymentInformation{
				Number:          d.PAN.Peek(),
				ExpirationMonth: d.ExpiryMonth2,
				ExpirationYear:  d.ExpiryYear4,
				Cryptogram:      d.Cryptogram.Peek(),
			},
		}, PaymentSolutionGooglePay
	}

	return PaymentInformation{
		FluidData: &FluidData{
			Value: base64.StdEncoding.EncodeToString([]byte(data.TokenizedData.TokenBlobBase64)),
		},
	}, PaymentSolutionGooglePay
}

func googlePayCardNetwork(data payment.GooglePayData) payment.CardNetwork {
	if data.DecryptedData != nil {
		return data.DecryptedData.CardNetwork
	}
	if data.TokenizedData != nil {
		return data.TokenizedData.CardNetwork
	}
	return ""
}

// samsungPayFluidDataPayload is the inner JSON structure base64-encoded
// into FluidData.Value (§4.4.1 "Wallet::SamsungPay").
type samsungPayFluidDataPayload struct {
	PublicKeyHash string `json:"publicKeyHash"`
	Version       string `json:"version"`
	Data          string `json:"data"`
}

// samsungPayKidFromJWT decodes (without verifying) the Samsung Pay JWT
// header to extract `kid`, used as the publicKeyHash (§4.4.1).
func samsungPayKidFromJWT(credentialJWT string) (string, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(credentialJWT, jwt.MapClaims{})
	if err != nil {
		return "", ierr.NewError("failed to parse samsung pay jwt").
			WithHint("The Samsung Pay payment credential could not be decoded").
			Mark(ierr.ErrValidation)
	}
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return "", ierr.NewError("samsung pay jwt missing kid").
			Mark(ierr.ErrValidation)
	}
	return kid, nil
}

// buildSamsungPayPaymentInformation implements §4.4.1 "Wallet::SamsungPay".
func buildSamsungPayPaymentInformation(data payment.SamsungPayData) (PaymentInformation, error) {
	kid, err := samsungPayKidFromJWT(data.PaymentCredentialJWT)
	if err != nil {
		return PaymentInformation{}, err
	}

	payload := samsungPayFluidDataPayload{
		PublicKeyHash: kid,
		Version:       data.Version,
		Data:          base64.StdEncoding.EncodeToString([]byte(data.PaymentCredentialJWT)),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return PaymentInformation{}, ierr.Wrap(err, "ENCODE_ERROR", "failed to encode samsung pay fluid data")
	}

	descriptor := base64.StdEncoding.EncodeToString([]byte(SamsungPayFluidDataDescriptorPlain))

	return PaymentInformation{
		FluidData: &FluidData{
			Value:      base64.StdEncoding.EncodeToString(payloadJSON),
			Descriptor: descriptor,
		},
	}, nil
}

// buildPazePaymentInformation implements the payment-information part of
// §4.4.1 "Wallet::Paze": a tokenizedCard with the payment-account-reference
// carried as the cryptogram. The billing-name split and US-state mapping
// are done by BuildPazeBillTo in address.go.
func buildPazePaymentInformation(data payment.PazeData) PaymentInformation {
	return PaymentInformation{
		TokenizedCard: &TokenizedCardPaymentInformation{
			Number:          data.TokenPAN,
			ExpirationMonth: data.ExpiryMonth,
			ExpirationYear:  data.ExpiryYear,
			Cryptogram:      data.PaymentAccountReference,
			TransactionType: walletTransactionType,
		},
	}
}

// splitBillingName decomposes a Paze full name by its first space into
// (first, last), per §4.4.1.
func splitBillingName(fullName string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(fullName), " ", 2)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
