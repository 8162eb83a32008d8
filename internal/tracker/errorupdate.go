package tracker

import "github.com/routepay/gatewaycore/internal/domain/payment"

// deriveErrorAttemptStatus implements §4.6.1 step 4's status-derivation
// table for the Err(ErrorResponse) case, consulted only when the error
// itself carries no explicit attempt_status.
func deriveErrorAttemptStatus(flow payment.Flow, httpStatusCode int, routerDataStatus payment.AttemptStatus) payment.AttemptStatus {
	is2xx := httpStatusCode >= 200 && httpStatusCode < 300
	is5xx := httpStatusCode >= 500 && httpStatusCode < 600

	switch flow {
	case payment.FlowSync:
		if is2xx {
			return payment.AttemptStatusFailure
		}
		return routerDataStatus
	case payment.FlowCapture:
		switch {
		case is5xx:
			return payment.AttemptStatusPending
		case httpStatusCode == 429:
			return routerDataStatus
		default:
			return payment.AttemptStatusFailure
		}
	case payment.FlowPostCaptureVoid:
		return routerDataStatus
	default:
		if is5xx {
			return payment.AttemptStatusPending
		}
		return payment.AttemptStatusFailure
	}
}

// buildErrorAttemptUpdate implements the remainder of §4.6.1 step 4: GSM
// lookup, i18n translation, merchant-advice-code enrichment, and the
// resulting PaymentAttemptUpdate::ErrorUpdate.
func (t *Tracker) buildErrorAttemptUpdate(in AuthorizeOrSyncInput, errResp *payment.ErrorResponse) payment.AttemptUpdate {
	status := errResp.AttemptStatus
	var resolvedStatus payment.AttemptStatus
	if status != nil {
		resolvedStatus = *status
	} else {
		resolvedStatus = deriveErrorAttemptStatus(in.Flow, in.ResponseStatusCode, in.RouterDataStatus)
	}

	unifiedCode := payment.DefaultUnifiedErrorCode
	unifiedMessage := payment.DefaultUnifiedErrorMessage

	var cardNetwork payment.CardNetwork
	if card, ok := in.Attempt.PaymentMethodData.(payment.Card); ok {
		cardNetwork = card.CardNetwork
	}

	if t.GSM != nil {
		key := payment.GSMKey{
			Connector:          in.Attempt.Connector,
			Flow:               "payment",
			SubFlow:            string(in.Flow),
			ErrorCode:          errResp.Code,
			ErrorMessage:       errResp.Message,
			NetworkDeclineCode: errResp.NetworkDeclineCode,
			CardNetwork:        cardNetwork,
		}
		if record, found, err := t.GSM.Lookup(key); err == nil && found && record.FeatureFlag != payment.GSMFeatureFlagDisableCodeMapping {
			unifiedCode = record.UnifiedCode
			unifiedMessage = record.UnifiedMessage
		}
	}

	if t.Translator != nil {
		unifiedMessage = t.Translator.Translate(in.Locale, unifiedMessage)
	}

	metadata := map[string]string{}
	if in.MerchantInitiated && t.MerchantAdvice != nil && errResp.NetworkAdviceCode != "" {
		key := payment.MerchantAdviceCodeKey{CardNetwork: cardNetwork, NetworkAdviceCode: errResp.NetworkAdviceCode}
		if advice, found := t.MerchantAdvice.Lookup(key); found {
			metadata["recommended_action"] = advice.RecommendedAction
		}
	}

	update := payment.AttemptUpdate{
		Status:         &resolvedStatus,
		ErrorCode:      &errResp.Code,
		ErrorMessage:   &errResp.Message,
		ErrorReason:    &errResp.Reason,
		UnifiedCode:    &unifiedCode,
		UnifiedMessage: &unifiedMessage,
	}
	if len(metadata) > 0 {
		update.Metadata = metadata
	}
	return update
}
