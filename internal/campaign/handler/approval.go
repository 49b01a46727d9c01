package handler

import (
	"net/http"

	"engage-server/internal/apierrors"
	"engage-server/internal/campaign/processor"
	"engage-server/internal/pagination"

	"github.com/gin-gonic/gin"
)

// DecisionRequest is an approver decision. Confirm must be true for the
// decision to be recorded; without it the response carries the text of the
// confirmation dialog.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Comment  string `json:"comment"`
	Confirm  bool   `json:"confirm"`
}

// HandleApprovalQueue lists campaigns by approval state. Without a state
// filter it returns the campaigns awaiting a decision.
func (h *Handler) HandleApprovalQueue(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}

	page := pagination.FromQuery(c)
	result, err := h.processor.ApprovalQueue(ctx, a, processor.ApprovalQueueParams{
		Page:     page.Page,
		PageSize: page.PageSize,
		State:    c.Query("state"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetApproval returns the approval view of a campaign
func (h *Handler) HandleGetApproval(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	view, err := h.processor.GetApproval(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// HandlePreviewDecision validates a decision and returns its confirmation
// summary without recording anything
func (h *Handler) HandlePreviewDecision(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	preview, err := processor.PrepareDecision(processor.DecisionInput{
		Decision: req.Decision,
		Comment:  req.Comment,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// HandleRecordDecision records an approver decision
func (h *Handler) HandleRecordDecision(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	view, err := h.processor.RecordDecision(ctx, a, campaignID, processor.DecisionInput{
		Decision: req.Decision,
		Comment:  req.Comment,
		Confirm:  req.Confirm,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// HandleResubmit sends a rejected or uncompleted draft back for review
func (h *Handler) HandleResubmit(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	view, err := h.processor.Resubmit(ctx, a, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
