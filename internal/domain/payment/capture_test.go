package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMultipleCaptureData_GetAttemptStatus(t *testing.T) {
	authorized := decimal.NewFromFloat(100)

	tests := []struct {
		name     string
		captures []*Capture
		want     AttemptStatus
	}{
		{
			name: "single final capture for full amount",
			captures: []*Capture{
				{Amount: decimal.NewFromFloat(100), Status: CaptureStatusCharged, IsFinal: true},
			},
			want: AttemptStatusCharged,
		},
		{
			name: "partial capture, more expected",
			captures: []*Capture{
				{Amount: decimal.NewFromFloat(40), Status: CaptureStatusCharged, IsFinal: false},
			},
			want: AttemptStatusPartialChargedAndChargeable,
		},
		{
			name: "partial capture, final",
			captures: []*Capture{
				{Amount: decimal.NewFromFloat(40), Status: CaptureStatusCharged, IsFinal: true},
			},
			want: AttemptStatusPartialCharged,
		},
		{
			name: "no captures charged yet",
			captures: []*Capture{
				{Amount: decimal.NewFromFloat(40), Status: CaptureStatusPending, IsFinal: false},
			},
			want: AttemptStatusCaptureInitiated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MultipleCaptureData{Captures: tt.captures}
			assert.Equal(t, tt.want, m.GetAttemptStatus(authorized))
		})
	}
}

func TestMultipleCaptureData_BlockedAmountExcludesFailed(t *testing.T) {
	m := &MultipleCaptureData{
		Captures: []*Capture{
			{Amount: decimal.NewFromFloat(40), Status: CaptureStatusCharged},
			{Amount: decimal.NewFromFloat(60), Status: CaptureStatusFailed},
		},
	}

	assert.True(t, m.BlockedAmount().Equal(decimal.NewFromFloat(40)))
}

func TestMultipleCaptureData_FindByConnectorCaptureID(t *testing.T) {
	target := &Capture{ID: "cap-1", ConnectorCaptureID: "conn-1"}
	m := &MultipleCaptureData{Captures: []*Capture{target, {ID: "cap-2", ConnectorCaptureID: "conn-2"}}}

	assert.Same(t, target, m.FindByConnectorCaptureID("conn-1"))
	assert.Nil(t, m.FindByConnectorCaptureID("unknown"))
}

func TestMultipleCaptureData_FindUnmatchedByAmountFallback(t *testing.T) {
	target := &Capture{ID: "cap-1", Amount: decimal.NewFromFloat(25)}
	m := &MultipleCaptureData{Captures: []*Capture{target}}

	amt := decimal.NewFromFloat(25)
	found := m.FindUnmatched("", &amt)
	assert.Same(t, target, found)
}
