package payment

import "github.com/shopspring/decimal"

// CaptureStatus mirrors a capture's own lifecycle, distinct from the
// parent attempt's AttemptStatus.
type CaptureStatus string

const (
	CaptureStatusPending CaptureStatus = "pending"
	CaptureStatusCharged CaptureStatus = "charged"
	CaptureStatusFailed  CaptureStatus = "failed"
)

// Capture is one of possibly many captures against one authorization.
type Capture struct {
	ID                 string
	AttemptID          string
	SequenceNumber     int
	TotalCount         int
	IsFinal            bool
	Amount             decimal.Decimal
	Status             CaptureStatus
	ConnectorCaptureID string
}

// MultipleCaptureData tracks the set of Captures for one attempt and derives
// the attempt-level bookkeeping the tracker needs (§4.6.3).
type MultipleCaptureData struct {
	Captures []*Capture
}

// BlockedAmount sums the amounts of captures not yet known to have failed —
// "blocked" in the sense of still counting against amount_capturable.
func (m *MultipleCaptureData) BlockedAmount() decimal.Decimal {
	total := decimal.Zero
	if m == nil {
		return total
	}
	for _, c := range m.Captures {
		if c.Status != CaptureStatusFailed {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// GetAttemptStatus derives the attempt-level status from the capture set
// relative to the authorized amount (§4.6.3 "AmountToCaptureUpdate").
func (m *MultipleCaptureData) GetAttemptStatus(authorizedAmount decimal.Decimal) AttemptStatus {
	blocked := m.BlockedAmount()
	allFinal := true
	anyCharged := false
	for _, c := range m.Captures {
		if !c.IsFinal {
			allFinal = false
		}
		if c.Status == CaptureStatusCharged {
			anyCharged = true
		}
	}
	switch {
	case blocked.GreaterThanOrEqual(authorizedAmount) && allFinal:
		return AttemptStatusCharged
	case anyCharged && blocked.LessThan(authorizedAmount):
		if allFinal {
			return AttemptStatusPartialCharged
		}
		return AttemptStatusPartialChargedAndChargeable
	default:
		return AttemptStatusCaptureInitiated
	}
}

// FindByConnectorCaptureID implements §4.6.3 step 1.
func (m *MultipleCaptureData) FindByConnectorCaptureID(id string) *Capture {
	if m == nil || id == "" {
		return nil
	}
	for _, c := range m.Captures {
		if c.ConnectorCaptureID == id {
			return c
		}
	}
	return nil
}

// FindUnmatched implements §4.6.3 step 2: among captures with no
// connector_capture_id yet, find one whose capture_id matches the response's
// connector_response_reference_id, or whose amount matches amount_captured.
func (m *MultipleCaptureData) FindUnmatched(connectorResponseReferenceId string, amountCaptured *decimal.Decimal) *Capture {
	if m == nil {
		return nil
	}
	for _, c := range m.Captures {
		if c.ConnectorCaptureID != "" {
			continue
		}
		if connectorResponseReferenceId != "" && c.ID == connectorResponseReferenceId {
			return c
		}
		if amountCaptured != nil && c.Amount.Equal(*amountCaptured) {
			return c
		}
	}
	return nil
}
