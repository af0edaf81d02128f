package apperror

import (
	"errors"
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

// CodeOf extracts the application error code, or "" for unknown errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Error codes, grouped by subsystem. Validation order inside each operation
// is fixed; tests assert on which code surfaces first.
const (
	CodeAlreadyInitialized   = "ADM_001"
	CodeNotInitialized       = "ADM_002"
	CodeUserNotFound         = "USR_001"
	CodeUserAlreadyExists    = "USR_002"
	CodePlanNotFound         = "PLN_001"
	CodePlanLocked           = "PLN_002"
	CodePlanAlreadyWithdrawn = "PLN_003"
	CodeInvalidGroupConfig   = "GRP_001"
	CodeGroupFull            = "GRP_002"
	CodeNotGroupMember       = "GRP_003"
	CodeInvalidAmount        = "LGR_001"
	CodeInsufficientBalance  = "LGR_002"
	CodeOverflow             = "LGR_003"
	CodeUnderflow            = "LGR_004"
	CodeSignatureInvalid     = "SEC_001"
	CodeSignatureExpired     = "SEC_002"
	CodeUnauthorized         = "SEC_003"
	CodeInvalidToken         = "SEC_004"
	CodeInternal             = "SYS_001"
)

// ---- Admin Registry (ADM) ----

func ErrAlreadyInitialized() *AppError {
	return New(CodeAlreadyInitialized, "Ledger is already initialized", http.StatusConflict)
}

func ErrNotInitialized() *AppError {
	return New(CodeNotInitialized, "Ledger is not initialized", http.StatusConflict)
}

// ---- Accounts (USR) ----

func ErrUserNotFound() *AppError {
	return New(CodeUserNotFound, "User not found", http.StatusNotFound)
}

func ErrUserAlreadyExists() *AppError {
	return New(CodeUserAlreadyExists, "User already exists", http.StatusConflict)
}

// ---- Savings plans (PLN) ----

func ErrPlanNotFound() *AppError {
	return New(CodePlanNotFound, "Savings plan not found", http.StatusNotFound)
}

func ErrPlanLocked() *AppError {
	return New(CodePlanLocked, "Plan is locked until its unlock time", http.StatusForbidden)
}

func ErrPlanAlreadyWithdrawn() *AppError {
	return New(CodePlanAlreadyWithdrawn, "Plan has already been withdrawn", http.StatusConflict)
}

// ---- Group savings (GRP) ----

func ErrInvalidGroupConfig() *AppError {
	return New(CodeInvalidGroupConfig, "Invalid group configuration", http.StatusBadRequest)
}

func ErrGroupFull() *AppError {
	return New(CodeGroupFull, "Group has reached maximum member capacity", http.StatusConflict)
}

func ErrNotGroupMember() *AppError {
	return New(CodeNotGroupMember, "User is not a member of this group", http.StatusForbidden)
}

// ---- Ledger arithmetic (LGR) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance", http.StatusPaymentRequired)
}

func ErrOverflow() *AppError {
	return New(CodeOverflow, "Balance arithmetic overflow", http.StatusUnprocessableEntity)
}

func ErrUnderflow() *AppError {
	return New(CodeUnderflow, "Balance arithmetic underflow", http.StatusUnprocessableEntity)
}

// ---- Security (SEC) ----

func ErrSignatureInvalid() *AppError {
	return New(CodeSignatureInvalid, "Invalid signature", http.StatusUnauthorized)
}

func ErrSignatureExpired() *AppError {
	return New(CodeSignatureExpired, "Signature has expired", http.StatusForbidden)
}

func ErrUnauthorized(principal string) *AppError {
	return New(CodeUnauthorized, fmt.Sprintf("Caller is not authorized as %s", principal), http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns an LGR_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}
