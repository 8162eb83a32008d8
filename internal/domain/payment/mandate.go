package payment

import "github.com/shopspring/decimal"

// MandateReferenceIdKind tags the MandateReferenceId union.
type MandateReferenceIdKind string

const (
	MandateReferenceIdKindConnectorMandateId  MandateReferenceIdKind = "connector_mandate_id"
	MandateReferenceIdKindNetworkMandateId    MandateReferenceIdKind = "network_mandate_id"
	MandateReferenceIdKindNetworkTokenWithNTI MandateReferenceIdKind = "network_token_with_nti"
)

// MandateReferenceId is the sealed union describing how a stored-credential
// charge should be referenced on the wire.
type MandateReferenceId interface {
	MandateReferenceKind() MandateReferenceIdKind
}

// ConnectorMandateId references the gateway's own opaque mandate token.
type ConnectorMandateId struct {
	ConnectorMandateReferenceId ConnectorMandateReferenceId
}

func (ConnectorMandateId) MandateReferenceKind() MandateReferenceIdKind {
	return MandateReferenceIdKindConnectorMandateId
}

// ConnectorMandateReferenceId is the gateway-issued mandate identity plus
// the original authorization it was created from.
type ConnectorMandateReferenceId struct {
	ConnectorMandateId                string
	ConnectorMandateRequestReferenceId string
	OriginalPaymentAuthorizedAmount    *decimal.Decimal
	OriginalPaymentAuthorizedCurrency  string
}

// NetworkMandateId references a card-network mandate by a bare string id,
// used for scheme-level recurring (§4.4.1 "NetworkMandateId").
type NetworkMandateId struct {
	ID string
}

func (NetworkMandateId) MandateReferenceKind() MandateReferenceIdKind {
	return MandateReferenceIdKindNetworkMandateId
}

// NetworkTokenWithNTI pairs a network-token mandate with the network
// transaction id from the cardholder-initiated transaction (§GLOSSARY NTI).
type NetworkTokenWithNTI struct {
	NetworkTransactionID string
}

func (NetworkTokenWithNTI) MandateReferenceKind() MandateReferenceIdKind {
	return MandateReferenceIdKindNetworkTokenWithNTI
}

// RecurringMandatePaymentData is what NetworkMandateId/NetworkTokenWithNTI
// flows need alongside the reference (§4.4.1 "originalAuthorizedAmount"
// discover guard, §8.1 property 8).
type RecurringMandatePaymentData struct {
	OriginalAmount           *decimal.Decimal
	OriginalCurrency         string
	PreviousTransactionID    string
}

// Mandate is a customer-owned stored-credential authorization.
type Mandate struct {
	ID                                 string
	CustomerID                         string
	ConnectorMandateId                 string
	ConnectorMandateRequestReferenceId string
	OriginalPaymentAuthorizedAmount    *decimal.Decimal
	OriginalPaymentAuthorizedCurrency  string
	Status                             MandateStatus
	Metadata                           map[string]string
}

// ConnectorMandateDetail is the per-attempt projection of Mandate used by
// the post-update tracker (§4.6.5); it merges into the attempt, not the
// shared Mandate row, until the mandate collaborator reconciles them.
type ConnectorMandateDetail struct {
	ConnectorMandateId                 string
	ConnectorMandateRequestReferenceId string
	OriginalPaymentAuthorizedAmount    *decimal.Decimal
	OriginalPaymentAuthorizedCurrency  string
	Metadata                           map[string]string
}

// MergeConnectorMandateId implements §4.6.5: if a detail already exists,
// return an updated copy (existing is not mutated) that preserves the
// original amount/currency; otherwise start a
// fresh record with original amount/currency left nil until a subsequent
// Discover-style NTI flow asserts them.
func MergeConnectorMandateId(existing *ConnectorMandateDetail, newMandateId, newReferenceId string, metadata map[string]string) *ConnectorMandateDetail {
	if existing == nil {
		return &ConnectorMandateDetail{
			ConnectorMandateId:                 newMandateId,
			ConnectorMandateRequestReferenceId: newReferenceId,
			Metadata:                           metadata,
		}
	}
	updated := *existing
	updated.ConnectorMandateId = newMandateId
	updated.ConnectorMandateRequestReferenceId = newReferenceId
	updated.Metadata = metadata
	return &updated
}
