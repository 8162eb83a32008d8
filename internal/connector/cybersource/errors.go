package cybersource

import ierr "github.com/routepay/gatewaycore/internal/errors"

// errMissingRequiredField builds the InvalidRequest-taxonomy error for a
// field the builder could not resolve (§7 "InvalidRequest: missing
// required field").
func errMissingRequiredField(path, hint string) error {
	return ierr.NewError("missing required field").
		WithHintf("%s: %s", path, hint).
		WithReportableDetails(map[string]any{"field": path}).
		Mark(ierr.ErrValidation)
}

// errNotImplemented builds the error for a PaymentMethodData/WalletData
// variant with no Cybersource builder arm (§4.4.1 "All other variants →
// fail with NotImplemented", §9 "the fallthrough arm must be explicit").
func errNotImplemented(variant string) error {
	return ierr.NewError("payment method variant not implemented").
		WithHintf("cybersource does not support payment method variant %q", variant).
		WithReportableDetails(map[string]any{"variant": variant}).
		Mark(ierr.ErrNotImplemented)
}

// errUnsupportedCaptureMethod builds the error for a capture method this
// connector cannot honor.
func errUnsupportedCaptureMethod(method string) error {
	return ierr.NewError("unsupported capture method").
		WithHintf("cybersource does not support capture method %q", method).
		Mark(ierr.ErrValidation)
}
