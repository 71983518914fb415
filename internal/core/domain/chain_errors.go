package domain

import (
	"errors"
	"fmt"
)

// SubmitReason classifies a ledger submission rejection. Classification
// happens once, in the chain adapter; everything downstream matches on the
// enum, never on message text.
type SubmitReason string

const (
	// ReasonStaleInput: an input this transaction references was already
	// spent by the time it reached the ledger.
	ReasonStaleInput SubmitReason = "STALE_INPUT"
	// ReasonValueNotConserved: consumed != produced, the other symptom of
	// an input changing underneath the builder.
	ReasonValueNotConserved SubmitReason = "VALUE_NOT_CONSERVED"
	// ReasonOther: any rejection outside the stale-input class.
	ReasonOther SubmitReason = "OTHER"
)

// SubmitError is a classified submission rejection from the ledger.
type SubmitError struct {
	Reason  SubmitReason
	Status  int
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit rejected (%s): %s", e.Reason, e.Message)
}

// Retryable reports whether the rejection is a stale-input race symptom
// worth a rebuild-and-resubmit cycle.
func (e *SubmitError) Retryable() bool {
	return e.Reason == ReasonStaleInput || e.Reason == ReasonValueNotConserved
}

// NoUsableOutputsError: the wallet has outputs, but none meets the
// per-output floor even after the authoritative re-query. Carries the
// diagnostics the caller needs without access to internal logs.
type NoUsableOutputsError struct {
	Address      string
	TotalOutputs int
	Usable       int
	KnownBalance uint64
	MinLovelace  uint64
}

func (e *NoUsableOutputsError) Error() string {
	return fmt.Sprintf(
		"no usable outputs at %s: %d of %d outputs >= %d lovelace (known balance %d)",
		e.Address, e.Usable, e.TotalOutputs, e.MinLovelace, e.KnownBalance,
	)
}

// BuildError: the transaction could not be balanced with the supplied
// outputs (fees exceed available change, output below minimum, ...).
// Treated like NoUsableOutputsError by the outer retry loop.
type BuildError struct {
	Msg string
	Err error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("build transaction: %s: %v", e.Msg, e.Err)
	}
	return "build transaction: " + e.Msg
}

func (e *BuildError) Unwrap() error { return e.Err }

// ErrNotFound is returned by read paths when the requested transaction
// metadata or asset does not exist on the ledger.
var ErrNotFound = errors.New("not found on ledger")

// IsRetryableOuter reports whether an error from the exclusive
// select-build-sign-submit section should be retried by the outer loop
// (output availability may change) as opposed to failing the mint.
func IsRetryableOuter(err error) bool {
	var noUsable *NoUsableOutputsError
	var build *BuildError
	return errors.As(err, &noUsable) || errors.As(err, &build)
}
