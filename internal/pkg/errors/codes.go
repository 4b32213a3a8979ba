package errors

import "net/http"

// Error code constants. Errors carry code + params; the frontend owns
// presentation. Backend logs are always in English.

// Approval-core error codes.
const (
	CodeEditLocked     = "EDIT_LOCKED"
	CodeLevelOverflow  = "LEVEL_OVERFLOW"
	CodeDuplicateLevel = "DUPLICATE_LEVEL"
	CodePolicyMismatch = "POLICY_MISMATCH"
	CodeBusy           = "REQUEST_BUSY"
)

// Purchase request error codes.
const (
	CodeRequestNotFound = "REQUEST_NOT_FOUND"
	CodeStepNotFound    = "APPROVAL_STEP_NOT_FOUND"
	CodeItemInvalid     = "ITEM_INVALID"
	CodeNoteNotFound    = "FINANCE_NOTE_NOT_FOUND"
)

// Policy administration error codes.
const (
	CodePolicyNotFound = "POLICY_NOT_FOUND"
	CodePolicyInvalid  = "POLICY_INVALID"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// EditLocked creates a 409 error for mutations blocked by a terminal or
// restricted-field request.
func EditLocked(message string) *AppError {
	return &AppError{
		Code:       CodeEditLocked,
		Message:    message,
		HTTPStatus: http.StatusConflict,
		Err:        ErrEditLocked,
	}
}

// LevelOverflow creates a 409 error for steps exceeding required levels.
func LevelOverflow(required int) *AppError {
	return (&AppError{
		Code:       CodeLevelOverflow,
		Message:    "approval step would exceed required levels",
		HTTPStatus: http.StatusConflict,
		Err:        ErrLevelOverflow,
	}).WithParams(map[string]interface{}{"required_levels": required})
}

// DuplicateLevel creates a 409 error for a unique-level constraint violation.
func DuplicateLevel(level int) *AppError {
	return (&AppError{
		Code:       CodeDuplicateLevel,
		Message:    "an approval step already exists at this level",
		HTTPStatus: http.StatusConflict,
		Err:        ErrDuplicateLevel,
	}).WithParams(map[string]interface{}{"level": level})
}

// Busy creates a 503 error for a per-request lock timeout. The client may
// retry; Retry-After semantics are left to the caller.
func Busy(requestID string) *AppError {
	return (&AppError{
		Code:       CodeBusy,
		Message:    "request is being modified by another operation",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        ErrBusy,
	}).WithParams(map[string]interface{}{"request_id": requestID})
}

// RequestNotFound creates a 404 error for a missing purchase request.
func RequestNotFound(requestID string) *AppError {
	return (&AppError{
		Code:       CodeRequestNotFound,
		Message:    "purchase request not found",
		HTTPStatus: http.StatusNotFound,
		Err:        ErrNotFound,
	}).WithParams(map[string]interface{}{"request_id": requestID})
}
