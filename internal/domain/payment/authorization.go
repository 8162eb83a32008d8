package payment

import "time"

// AuthorizationStatus is the outcome of one incremental-authorization call.
type AuthorizationStatus string

const (
	AuthorizationStatusSuccess AuthorizationStatus = "success"
	AuthorizationStatusFailure AuthorizationStatus = "failure"
)

// Authorization is an append-only record of one incremental-authorization
// attempt against a PaymentAttempt (§3 addendum, §4.6.4).
type Authorization struct {
	ID                       string
	PaymentAttemptID         string
	Amount                   string
	Currency                 string
	Status                   AuthorizationStatus
	ErrorCode                string
	ErrorMessage             string
	ConnectorAuthorizationID string
	CreatedAt                time.Time
}
