package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Minting (MINT) ----

// ErrInsufficientBalance: aggregate wallet balance below the hard floor.
// Surfaced immediately, never retried.
func ErrInsufficientBalance(balance, floor uint64) *AppError {
	return New("MINT_001",
		fmt.Sprintf("Wallet balance %d lovelace below required %d", balance, floor),
		http.StatusPaymentRequired)
}

// ErrNoUsableOutputs: outer retries exhausted without a usable output set.
func ErrNoUsableOutputs(attempts int, err error) *AppError {
	return Wrap("MINT_002",
		fmt.Sprintf("No usable outputs after %d attempts", attempts),
		http.StatusConflict, err)
}

// ErrMintBuildFailed: the transaction could not be balanced.
func ErrMintBuildFailed(attempts int, err error) *AppError {
	return Wrap("MINT_003",
		fmt.Sprintf("Could not build mint transaction after %d attempts", attempts),
		http.StatusConflict, err)
}

// ErrStaleInputExhausted: every submission attempt lost the input race.
func ErrStaleInputExhausted(attempts int, err error) *AppError {
	return Wrap("MINT_004",
		fmt.Sprintf("Submission rejected for stale inputs after %d attempts", attempts),
		http.StatusConflict, err)
}

// ErrSubmissionRejected: the ledger rejected the transaction for a
// non-retryable reason.
func ErrSubmissionRejected(err error) *AppError {
	return Wrap("MINT_005", "Ledger rejected the transaction", http.StatusBadGateway, err)
}

// ErrNotMintable: the inspection is not in an approved state.
func ErrNotMintable() *AppError {
	return New("MINT_006", "Inspection is not approved for minting", http.StatusUnprocessableEntity)
}

// ErrAlreadyMinted: a mint record already exists for the inspection.
func ErrAlreadyMinted() *AppError {
	return New("MINT_007", "Inspection has already been minted", http.StatusConflict)
}

// ---- Chain reads (CHAIN) ----

func ErrChainNotFound(entity string) *AppError {
	return New("CHAIN_001", fmt.Sprintf("%s not found on ledger", entity), http.StatusNotFound)
}

func ErrChainUnavailable(err error) *AppError {
	return Wrap("CHAIN_002", "Ledger provider unavailable", http.StatusBadGateway, err)
}

// ---- Inspections (INSP) ----

func ErrNotFound(entity string) *AppError {
	return New("INSP_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrDuplicateVehicle(vehicleNumber string) *AppError {
	return New("INSP_002",
		fmt.Sprintf("Inspection for vehicle %s already exists", vehicleNumber),
		http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrRateLimitExceeded() *AppError {
	return New("SYS_003", "Rate limit exceeded", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
