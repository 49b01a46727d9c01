package handler

import (
	"bytes"
	"net/http"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/rewardaccounts/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const exportFilename = "reward_accounts.csv"

type Handler struct {
	processor processor.RewardAccountProcessor
	logger    *observability.Logger
}

func New(processor processor.RewardAccountProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateRewardAccountRequest represents the HTTP request for registering a reward account
type CreateRewardAccountRequest struct {
	Name                string      `json:"name" binding:"required,min=1,max=120"`
	AccountNumber       string      `json:"account_number" binding:"required,max=64"`
	ExternalRef         string      `json:"external_ref"`
	RewardType          string      `json:"reward_type" binding:"required,oneof=airtime data points cashback"`
	Currency            string      `json:"currency" binding:"required,len=3"`
	Balance             int64       `json:"balance" binding:"min=0"`
	LowBalanceThreshold int64       `json:"low_balance_threshold" binding:"min=0"`
	Status              string      `json:"status" binding:"omitempty,oneof=active suspended closed"`
	AssignedCampaignIDs []uuid.UUID `json:"assigned_campaign_ids"`
}

// UpdateRewardAccountRequest represents the HTTP request for updating a reward account
type UpdateRewardAccountRequest struct {
	Name                *string      `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	ExternalRef         *string      `json:"external_ref,omitempty"`
	LowBalanceThreshold *int64       `json:"low_balance_threshold,omitempty" binding:"omitempty,min=0"`
	Status              *string      `json:"status,omitempty" binding:"omitempty,oneof=active suspended closed"`
	AssignedCampaignIDs *[]uuid.UUID `json:"assigned_campaign_ids,omitempty"`
	Balance             *int64       `json:"balance,omitempty"`
}

func listRequest(c *gin.Context) processor.ListRewardAccountsRequest {
	page := pagination.FromQuery(c)
	return processor.ListRewardAccountsRequest{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		RewardType: c.Query("reward_type"),
	}
}

// HandleCreateRewardAccount registers a reward account
func (h *Handler) HandleCreateRewardAccount(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}

	var req CreateRewardAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	account, err := h.processor.CreateRewardAccount(ctx, a, processor.CreateRewardAccountRequest{
		Name:                req.Name,
		AccountNumber:       req.AccountNumber,
		ExternalRef:         req.ExternalRef,
		RewardType:          req.RewardType,
		Currency:            req.Currency,
		Balance:             req.Balance,
		LowBalanceThreshold: req.LowBalanceThreshold,
		Status:              req.Status,
		AssignedCampaignIDs: req.AssignedCampaignIDs,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// HandleListRewardAccounts lists reward accounts with a balance summary
func (h *Handler) HandleListRewardAccounts(c *gin.Context) {
	result, err := h.processor.ListRewardAccounts(c.Request.Context(), listRequest(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleExportRewardAccounts downloads the filtered accounts as CSV
func (h *Handler) HandleExportRewardAccounts(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.processor.ExportRewardAccounts(c.Request.Context(), listRequest(c), &buf); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// HandleGetRewardAccount retrieves a reward account by ID
func (h *Handler) HandleGetRewardAccount(c *gin.Context) {
	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	account, err := h.processor.GetRewardAccount(c.Request.Context(), accountID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// HandleUpdateRewardAccount applies a partial update to a reward account
func (h *Handler) HandleUpdateRewardAccount(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	var req UpdateRewardAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	account, err := h.processor.UpdateRewardAccount(ctx, a, accountID, processor.UpdateRewardAccountRequest{
		Name:                req.Name,
		ExternalRef:         req.ExternalRef,
		LowBalanceThreshold: req.LowBalanceThreshold,
		Status:              req.Status,
		AssignedCampaignIDs: req.AssignedCampaignIDs,
		Balance:             req.Balance,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// HandleDeleteRewardAccount deletes a reward account
func (h *Handler) HandleDeleteRewardAccount(c *gin.Context) {
	a, ok := h.getActor(c)
	if !ok {
		return
	}
	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteRewardAccount(c.Request.Context(), a, accountID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return actor.Actor{}, false
	}
	return a, true
}

func (h *Handler) getAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.Param("account_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid reward account ID format"))
		return uuid.UUID{}, false
	}
	return accountID, true
}
