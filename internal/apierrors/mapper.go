package apierrors

import (
	"errors"
	"net/http"

	adminProcessor "engage-server/internal/admin/processor"
	authProcessor "engage-server/internal/auth/processor"
	"engage-server/internal/campaign/lifecycle"
	campaignProcessor "engage-server/internal/campaign/processor"
	courtIssueProcessor "engage-server/internal/courtissue/processor"
	reportsProcessor "engage-server/internal/reports/processor"
	rewardAccountsProcessor "engage-server/internal/rewardaccounts/processor"
	segmentsProcessor "engage-server/internal/segments/processor"
	"engage-server/internal/store"
	tablesProcessor "engage-server/internal/tables/processor"
	tasksProcessor "engage-server/internal/tasks/processor"
)

// detailer is implemented by errors that carry a details payload for the
// response body.
type detailer interface {
	Details() any
}

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	mapped := mapDomainError(err)
	if mapped.StatusCode < http.StatusInternalServerError {
		mapped.Err = err
	}
	var d detailer
	if errors.As(err, &d) {
		mapped.WithDetails(d.Details())
	}
	return mapped
}

func mapDomainError(err error) *APIError {
	// Map auth and admin errors
	switch {
	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return newError(http.StatusUnauthorized, CodeInvalidCredentials, "Invalid email or password")

	case errors.Is(err, authProcessor.ErrExpiredToken):
		return newError(http.StatusUnauthorized, CodeTokenExpired, "Session expired, please sign in again")

	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Invalid authentication token")

	case errors.Is(err, adminProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, adminProcessor.ErrEmailExists):
		return Conflict(CodeEmailExists, "Email already exists")

	case errors.Is(err, adminProcessor.ErrRoleNotFound):
		return UnprocessableEntity(CodeRoleNotFound, "Role does not exist")

	case errors.Is(err, adminProcessor.ErrPasswordMismatch):
		return BadRequest(CodePasswordMismatch, "Passwords do not match")

	case errors.Is(err, adminProcessor.ErrCannotModifySelf):
		return Conflict(CodeCannotModifySelf, "You cannot delete or deactivate your own account")

	case errors.Is(err, adminProcessor.ErrInvalidUser):
		return BadRequest(CodeInvalidInput, err.Error())
	}

	// Map campaign lifecycle and approval errors
	switch {
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrConfirmationRequired):
		return PreconditionRequired(CodeConfirmationRequired, "Confirmation required")

	case errors.Is(err, campaignProcessor.ErrCampaignNotEditable):
		return Conflict(CodeCampaignNotEditable, "Campaign can only be edited while in draft")

	case errors.Is(err, campaignProcessor.ErrActionNotAllowed),
		errors.Is(err, lifecycle.ErrActionNotAllowed):
		return Conflict(CodeActionNotAllowed, "Action not allowed in the campaign's current status")

	case errors.Is(err, campaignProcessor.ErrStatusConflict),
		errors.Is(err, store.ErrStatusConflict):
		return Conflict(CodeStatusConflict, "Campaign status changed, reload and try again")

	case errors.Is(err, campaignProcessor.ErrDecisionNotAllowed):
		return Conflict(CodeDecisionNotAllowed, "Campaign is not awaiting an approval decision")

	case errors.Is(err, campaignProcessor.ErrCommentRequired):
		return UnprocessableEntity(CodeCommentRequired, "A comment is required unless approving")

	case errors.Is(err, campaignProcessor.ErrCampaignIncomplete):
		return UnprocessableEntity(CodeValidationFailed, "Campaign needs at least one segment and one channel before submission")

	case errors.Is(err, campaignProcessor.ErrUnknownSegment):
		return UnprocessableEntity(CodeSegmentNotFound, "One or more segments do not exist")

	case errors.Is(err, campaignProcessor.ErrInvalidCampaign),
		errors.Is(err, campaignProcessor.ErrInvalidCampaignType),
		errors.Is(err, campaignProcessor.ErrInvalidCampaignStatus),
		errors.Is(err, campaignProcessor.ErrUnknownDecision),
		errors.Is(err, campaignProcessor.ErrInvalidApprovalState),
		errors.Is(err, lifecycle.ErrUnknownStatus),
		errors.Is(err, lifecycle.ErrUnknownAction):
		return BadRequest(CodeInvalidInput, err.Error())
	}

	// Map segment, report, reward account and task errors
	switch {
	case errors.Is(err, segmentsProcessor.ErrSegmentNotFound):
		return NotFound(CodeSegmentNotFound, "Segment not found")

	case errors.Is(err, segmentsProcessor.ErrSegmentInUse):
		return Conflict(CodeSegmentInUse, "Segment is targeted by an active campaign")

	case errors.Is(err, segmentsProcessor.ErrInvalidSegment),
		errors.Is(err, segmentsProcessor.ErrInvalidFilters):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, reportsProcessor.ErrReportNotFound):
		return NotFound(CodeReportNotFound, "Report not found")

	case errors.Is(err, reportsProcessor.ErrInvalidReport):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, rewardAccountsProcessor.ErrRewardAccountNotFound):
		return NotFound(CodeRewardAccountNotFound, "Reward account not found")

	case errors.Is(err, rewardAccountsProcessor.ErrAccountNumberExists):
		return Conflict(CodeAccountNumberExists, "Account number already registered")

	case errors.Is(err, rewardAccountsProcessor.ErrBalanceReadOnly):
		return UnprocessableEntity(CodeBalanceReadOnly, "Balance is owned by the payout system and cannot be edited")

	case errors.Is(err, rewardAccountsProcessor.ErrInvalidRewardAccount):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, tasksProcessor.ErrTaskNotFound):
		return NotFound(CodeTaskNotFound, "Task not found")

	case errors.Is(err, tasksProcessor.ErrInvalidTask):
		return BadRequest(CodeInvalidInput, err.Error())
	}

	// Map table preparation and court issue errors
	switch {
	case errors.Is(err, tablesProcessor.ErrInvalidTableName):
		return BadRequest(CodeInvalidTableName, err.Error())

	case errors.Is(err, tablesProcessor.ErrUnsafeQuery):
		return UnprocessableEntity(CodeUnsafeQuery, err.Error())

	case errors.Is(err, tablesProcessor.ErrTableExists):
		return Conflict(CodeTableExists, "A table with that name already exists")

	case errors.Is(err, tablesProcessor.ErrInvalidDateRange),
		errors.Is(err, courtIssueProcessor.ErrInvalidQuery):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, tablesProcessor.ErrInvalidUpload):
		return UnprocessableEntity(CodeInvalidUpload, err.Error())

	case errors.Is(err, store.ErrUnknownTemplate):
		return NotFound(CodeNotFound, "Unknown table template")
	}

	// Permission errors
	switch {
	case errors.Is(err, campaignProcessor.ErrForbidden),
		errors.Is(err, segmentsProcessor.ErrForbidden),
		errors.Is(err, reportsProcessor.ErrForbidden),
		errors.Is(err, rewardAccountsProcessor.ErrForbidden),
		errors.Is(err, adminProcessor.ErrForbidden),
		errors.Is(err, tablesProcessor.ErrForbidden),
		errors.Is(err, tasksProcessor.ErrForbidden),
		errors.Is(err, courtIssueProcessor.ErrForbidden):
		return Forbidden(CodeForbidden, "You do not have permission to perform this action")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrDuplicate):
		return Conflict(CodeConflict, "Resource already exists")
	}

	return InternalError(err)
}
