package blockfrost

import (
	"encoding/json"
	"strings"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
)

// The ledger's validation-error markers denoting the stale-input class:
// BadInputsUTxO means an input this transaction references was already
// spent; ValueNotConservedUTxO means consumed != produced because an input
// changed underneath the builder. Both are symptoms of the same race and
// both warrant a rebuild from a fresh selection.
var staleMarkers = map[string]domain.SubmitReason{
	"BadInputsUTxO":         domain.ReasonStaleInput,
	"ValueNotConservedUTxO": domain.ReasonValueNotConserved,
}

// classifySubmitError turns a rejection response into a structured
// *domain.SubmitError. Everything downstream matches on the Reason enum;
// this is the only place message text is inspected.
func classifySubmitError(status int, body []byte) *domain.SubmitError {
	msg := string(body)
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		msg = parsed.Message
	}

	for marker, reason := range staleMarkers {
		if strings.Contains(msg, marker) {
			return &domain.SubmitError{Reason: reason, Status: status, Message: msg}
		}
	}
	return &domain.SubmitError{Reason: domain.ReasonOther, Status: status, Message: msg}
}
