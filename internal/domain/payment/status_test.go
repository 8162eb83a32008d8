package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectAttemptStatus(t *testing.T) {
	tests := []struct {
		in   AttemptStatus
		want IntentStatus
	}{
		{AttemptStatusCharged, IntentStatusSucceeded},
		{AttemptStatusAuthorized, IntentStatusRequiresCapture},
		{AttemptStatusVoided, IntentStatusCancelled},
		{AttemptStatusFailure, IntentStatusFailed},
		{AttemptStatusAuthenticationPending, IntentStatusRequiresCustomerAction},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProjectAttemptStatus(tt.in))
	}
}

func TestAttemptStatus_IsSuccessful(t *testing.T) {
	assert.True(t, AttemptStatusCharged.IsSuccessful())
	assert.True(t, AttemptStatusAuthorized.IsSuccessful())
	assert.True(t, AttemptStatusPartiallyAuthorized.IsSuccessful())
	assert.False(t, AttemptStatusFailure.IsSuccessful())
	assert.False(t, AttemptStatusPending.IsSuccessful())
}

func TestCaptureMethod_IsAutomatic(t *testing.T) {
	assert.True(t, CaptureMethod("").IsAutomatic())
	assert.True(t, CaptureMethodAutomatic.IsAutomatic())
	assert.False(t, CaptureMethodManual.IsAutomatic())
}
