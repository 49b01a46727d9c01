package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to clients
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeInternalError         = "INTERNAL_ERROR"
	CodeCampaignNotFound      = "CAMPAIGN_NOT_FOUND"
	CodeCampaignNotEditable   = "CAMPAIGN_NOT_EDITABLE"
	CodeActionNotAllowed      = "ACTION_NOT_ALLOWED"
	CodeStatusConflict        = "STATUS_CONFLICT"
	CodeConfirmationRequired  = "CONFIRMATION_REQUIRED"
	CodeDecisionNotAllowed    = "DECISION_NOT_ALLOWED"
	CodeCommentRequired       = "COMMENT_REQUIRED"
	CodeSegmentNotFound       = "SEGMENT_NOT_FOUND"
	CodeSegmentInUse          = "SEGMENT_IN_USE"
	CodeReportNotFound        = "REPORT_NOT_FOUND"
	CodeRewardAccountNotFound = "REWARD_ACCOUNT_NOT_FOUND"
	CodeAccountNumberExists   = "ACCOUNT_NUMBER_EXISTS"
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeEmailExists           = "EMAIL_EXISTS"
	CodeRoleNotFound          = "ROLE_NOT_FOUND"
	CodeTaskNotFound          = "TASK_NOT_FOUND"
	CodeInvalidTableName      = "INVALID_TABLE_NAME"
	CodeUnsafeQuery           = "UNSAFE_QUERY"
	CodeTableExists           = "TABLE_EXISTS"
	CodeInvalidUpload         = "INVALID_UPLOAD"
	CodeBalanceReadOnly       = "BALANCE_READ_ONLY"
	CodePasswordMismatch      = "PASSWORD_MISMATCH"
	CodeCannotModifySelf      = "CANNOT_MODIFY_SELF"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeTokenExpired          = "TOKEN_EXPIRED"
	CodeRateLimited           = "RATE_LIMITED"
)

// APIError is an error with the HTTP status and client-facing code and
// message it renders as.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// WithDetails attaches a details payload to the response body.
func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

func newError(status int, code, message string) *APIError {
	return &APIError{StatusCode: status, Code: code, Message: message}
}

func BadRequest(code, message string) *APIError {
	return newError(http.StatusBadRequest, code, message)
}

func Unauthorized(message string) *APIError {
	return newError(http.StatusUnauthorized, CodeUnauthorized, message)
}

func Forbidden(code, message string) *APIError {
	return newError(http.StatusForbidden, code, message)
}

func NotFound(code, message string) *APIError {
	return newError(http.StatusNotFound, code, message)
}

func Conflict(code, message string) *APIError {
	return newError(http.StatusConflict, code, message)
}

func UnprocessableEntity(code, message string) *APIError {
	return newError(http.StatusUnprocessableEntity, code, message)
}

// PreconditionRequired is returned when the client must repeat the request
// with an explicit confirmation.
func PreconditionRequired(code, message string) *APIError {
	return newError(http.StatusPreconditionRequired, code, message)
}

func TooManyRequests(message string) *APIError {
	return newError(http.StatusTooManyRequests, CodeRateLimited, message)
}

// InternalError wraps err in a sanitized 500; err is logged, never sent.
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
