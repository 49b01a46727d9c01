package handler

import (
	"net/http"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/reports/processor"
	"engage-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReportProcessor
	logger    *observability.Logger
}

func New(processor processor.ReportProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateReportRequest represents the HTTP request for generating a report
type CreateReportRequest struct {
	Name         string      `json:"name" binding:"required,min=1,max=200"`
	Description  string      `json:"description"`
	SourceType   string      `json:"source_type" binding:"required,oneof=campaign segment reward transaction"`
	ExportFormat string      `json:"export_format" binding:"omitempty,oneof=csv xlsx pdf"`
	Parameters   store.JSONB `json:"parameters"`
}

// HandleCreateReport generates a report over one source
func (h *Handler) HandleCreateReport(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	report, err := h.processor.CreateReport(ctx, a, processor.CreateReportRequest{
		Name:         req.Name,
		Description:  req.Description,
		SourceType:   req.SourceType,
		ExportFormat: req.ExportFormat,
		Parameters:   req.Parameters,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// HandleListReports lists reports with per-source counts
func (h *Handler) HandleListReports(c *gin.Context) {
	ctx := c.Request.Context()

	page := pagination.FromQuery(c)
	result, err := h.processor.ListReports(ctx, processor.ListReportsRequest{
		Page:         page.Page,
		PageSize:     page.PageSize,
		Search:       c.Query("search"),
		SourceType:   c.Query("source_type"),
		ExportFormat: c.Query("export_format"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetReport retrieves a report by ID
func (h *Handler) HandleGetReport(c *gin.Context) {
	ctx := c.Request.Context()

	reportID, ok := getReportID(c)
	if !ok {
		return
	}

	report, err := h.processor.GetReport(ctx, reportID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleDeleteReport deletes a report
func (h *Handler) HandleDeleteReport(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}
	reportID, ok := getReportID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteReport(ctx, a, reportID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func getReportID(c *gin.Context) (uuid.UUID, bool) {
	reportID, err := uuid.Parse(c.Param("report_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid report ID format"))
		return uuid.UUID{}, false
	}
	return reportID, true
}
