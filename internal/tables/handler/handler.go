package handler

import (
	"net/http"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/observability"
	"engage-server/internal/store"
	"engage-server/internal/tables/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor      processor.TableProcessor
	maxUploadBytes int64
	logger         *observability.Logger
}

func New(processor processor.TableProcessor, maxUploadBytes int64, logger *observability.Logger) Handler {
	return Handler{
		processor:      processor,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// TemplateTableRequest is the body of every template endpoint
type TemplateTableRequest struct {
	TableName  string     `json:"table_name" binding:"required"`
	DateFrom   string     `json:"date_from" binding:"required"`
	DateTo     string     `json:"date_to" binding:"required"`
	CampaignID *uuid.UUID `json:"campaign_id"`
}

type SQLTableRequest struct {
	TableName string `json:"table_name" binding:"required"`
	Query     string `json:"query" binding:"required"`
}

// respondFailure renders err as a failed TableResult so the console can show
// the message next to the form.
func respondFailure(c *gin.Context, tableName string, err error) {
	apiErr := apierrors.MapError(err)
	c.JSON(apiErr.StatusCode, processor.TableResult{
		Success:   false,
		TableName: tableName,
		Error:     apiErr.Message,
	})
}

// HandleCreateFromTemplate returns a handler bound to one working-table
// template
func (h *Handler) HandleCreateFromTemplate(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		a, ok := actor.FromGin(c)
		if !ok {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
			return
		}

		var req TemplateTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}

		result, err := h.processor.CreateFromTemplate(ctx, a, template, processor.TemplateRequest{
			TableName:  req.TableName,
			DateFrom:   req.DateFrom,
			DateTo:     req.DateTo,
			CampaignID: req.CampaignID,
		})
		if err != nil {
			respondFailure(c, req.TableName, err)
			return
		}

		c.JSON(http.StatusCreated, result)
	}
}

// HandleCreateFromSQL materializes a read-only query into a table
func (h *Handler) HandleCreateFromSQL(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req SQLTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.CreateFromSQL(ctx, a, req.TableName, req.Query)
	if err != nil {
		respondFailure(c, req.TableName, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleCreateFromFile loads a multipart CSV upload ("file") into table
// "table_name"
func (h *Handler) HandleCreateFromFile(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	tableName := c.PostForm("table_name")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondFailure(c, tableName, apierrors.BadRequest(apierrors.CodeInvalidInput, "A CSV file under the upload limit is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded file", err)
		respondFailure(c, tableName, err)
		return
	}
	defer file.Close()

	result, err := h.processor.CreateFromFile(ctx, a, tableName, file)
	if err != nil {
		respondFailure(c, tableName, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Templates maps each template route suffix to its store template.
var Templates = map[string]string{
	"create_active_customer_table":   store.TemplateActiveCustomers,
	"create_vlr_attached_table":      store.TemplateVLRAttached,
	"create_registered_mpesa_table":  store.TemplateRegisteredMpesa,
	"create_targeted_table":          store.TemplateTargeted,
	"create_rewarded_customer_table": store.TemplateRewardedCustomers,
}
