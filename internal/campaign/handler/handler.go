package handler

import (
	"net/http"
	"strconv"
	"time"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/campaign/lifecycle"
	"engage-server/internal/campaign/processor"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ChannelRequest is one delivery channel in a campaign request
type ChannelRequest struct {
	Channel  string            `json:"channel" binding:"required,oneof=SMS USSD App Email"`
	Priority int               `json:"priority" binding:"required,min=1"`
	Messages map[string]string `json:"messages" binding:"required,min=1"`
	Cap      int64             `json:"cap" binding:"min=0"`
	Retry    bool              `json:"retry"`
}

// RewardConfigRequest is the reward block of a campaign request
type RewardConfigRequest struct {
	Type            string     `json:"type" binding:"omitempty,oneof=airtime data points cashback"`
	Amount          int64      `json:"amount" binding:"min=0"`
	PerCustomerCap  int64      `json:"per_customer_cap" binding:"min=0"`
	DailyCap        int64      `json:"daily_cap" binding:"min=0"`
	TotalBudget     int64      `json:"total_budget" binding:"min=0"`
	RewardAccountID *uuid.UUID `json:"reward_account_id,omitempty"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name         string               `json:"name" binding:"required,min=1,max=120"`
	Description  string               `json:"description"`
	Objective    string               `json:"objective" binding:"max=500"`
	OwnerID      *uuid.UUID           `json:"owner_id,omitempty"`
	Type         string               `json:"type" binding:"required"`
	SegmentIDs   []uuid.UUID          `json:"segment_ids"`
	Channels     []ChannelRequest     `json:"channels" binding:"dive"`
	TriggerType  string               `json:"trigger_type" binding:"omitempty,oneof=immediate scheduled recurring event"`
	StartAt      *time.Time           `json:"start_at,omitempty"`
	EndAt        *time.Time           `json:"end_at,omitempty"`
	FrequencyCap int                  `json:"frequency_cap" binding:"min=0"`
	RewardConfig *RewardConfigRequest `json:"reward_config,omitempty"`
}

// UpdateCampaignRequest represents the HTTP request for updating a draft
type UpdateCampaignRequest struct {
	Name         *string              `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Description  *string              `json:"description,omitempty"`
	Objective    *string              `json:"objective,omitempty" binding:"omitempty,max=500"`
	OwnerID      *uuid.UUID           `json:"owner_id,omitempty"`
	Type         *string              `json:"type,omitempty"`
	SegmentIDs   *[]uuid.UUID         `json:"segment_ids,omitempty"`
	Channels     *[]ChannelRequest    `json:"channels,omitempty" binding:"omitempty,dive"`
	TriggerType  *string              `json:"trigger_type,omitempty" binding:"omitempty,oneof=immediate scheduled recurring event"`
	StartAt      *time.Time           `json:"start_at,omitempty"`
	EndAt        *time.Time           `json:"end_at,omitempty"`
	FrequencyCap *int                 `json:"frequency_cap,omitempty" binding:"omitempty,min=0"`
	RewardConfig *RewardConfigRequest `json:"reward_config,omitempty"`
}

// ActionRequest carries the confirmation flag for gated actions
type ActionRequest struct {
	Confirm bool `json:"confirm"`
}

func convertChannels(in []ChannelRequest) []store.ChannelConfig {
	out := make([]store.ChannelConfig, 0, len(in))
	for _, ch := range in {
		out = append(out, store.ChannelConfig{
			Channel:  ch.Channel,
			Priority: ch.Priority,
			Messages: ch.Messages,
			Cap:      ch.Cap,
			Retry:    ch.Retry,
		})
	}
	return out
}

func convertReward(in *RewardConfigRequest) store.RewardConfig {
	if in == nil {
		return store.RewardConfig{}
	}
	return store.RewardConfig{
		Type:            in.Type,
		Amount:          in.Amount,
		PerCustomerCap:  in.PerCustomerCap,
		DailyCap:        in.DailyCap,
		TotalBudget:     in.TotalBudget,
		RewardAccountID: in.RewardAccountID,
	}
}

// HandleCreateCampaign creates a new draft campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_type", Value: req.Type})

	detail, err := h.processor.CreateCampaign(ctx, a, processor.CreateCampaignParams{
		Name:         req.Name,
		Description:  req.Description,
		Objective:    req.Objective,
		OwnerID:      req.OwnerID,
		Type:         req.Type,
		SegmentIDs:   req.SegmentIDs,
		Channels:     convertChannels(req.Channels),
		TriggerType:  req.TriggerType,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		FrequencyCap: req.FrequencyCap,
		RewardConfig: convertReward(req.RewardConfig),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// HandleListCampaigns lists campaigns with search, status and type filters
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	page := pagination.FromQuery(c)
	result, err := h.processor.ListCampaigns(ctx, processor.ListCampaignsParams{
		Page:     page.Page,
		PageSize: page.PageSize,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Type:     c.Query("type"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetCampaign returns a campaign with the actions, tabs and banner its
// status allows
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	detail, err := h.processor.GetCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// HandleUpdateCampaign updates a draft campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UpdateCampaignParams{
		Name:         req.Name,
		Description:  req.Description,
		Objective:    req.Objective,
		OwnerID:      req.OwnerID,
		Type:         req.Type,
		SegmentIDs:   req.SegmentIDs,
		TriggerType:  req.TriggerType,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		FrequencyCap: req.FrequencyCap,
	}
	if req.Channels != nil {
		channels := convertChannels(*req.Channels)
		params.Channels = &channels
	}
	if req.RewardConfig != nil {
		reward := convertReward(req.RewardConfig)
		params.RewardConfig = &reward
	}

	detail, err := h.processor.UpdateCampaign(ctx, a, campaignID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// HandleDeleteCampaign deletes a draft campaign. The delete action needs
// ?confirm=true.
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	confirm, _ := strconv.ParseBool(c.Query("confirm"))
	if err := h.processor.DeleteCampaign(ctx, a, campaignID, confirm); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandlePerformAction runs a lifecycle action named in the path
func (h *Handler) HandlePerformAction(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	action, err := lifecycle.ParseAction(c.Param("action"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req ActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "action", Value: string(action)})

	detail, err := h.processor.PerformAction(ctx, a, campaignID, action, req.Confirm)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if action == lifecycle.ActionDelete {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) getActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return actor.Actor{}, false
	}
	return a, true
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return uuid.UUID{}, false
	}
	return campaignID, true
}
