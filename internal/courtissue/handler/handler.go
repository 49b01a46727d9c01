package handler

import (
	"net/http"
	"strings"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/courtissue/processor"
	"engage-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CourtIssueProcessor
	logger    *observability.Logger
}

func New(processor processor.CourtIssueProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CourtIssueRequest struct {
	MSISDN   string `json:"msisdn" binding:"required"`
	DataFrom string `json:"data_from" binding:"required"`
	DataTo   string `json:"data_to" binding:"required"`
	Page     int    `json:"page" binding:"omitempty,min=1"`
	PageSize int    `json:"page_size" binding:"omitempty,min=1,max=100"`
}

func (r CourtIssueRequest) toProcessor() processor.QueryRequest {
	return processor.QueryRequest{
		MSISDN:   r.MSISDN,
		DataFrom: r.DataFrom,
		DataTo:   r.DataTo,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// HandleQuery returns one page of a subscriber's transactions
func (h *Handler) HandleQuery(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req CourtIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	page, err := h.processor.QueryTransactions(ctx, a, req.toProcessor())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// csvAttachment sets the attachment headers on the first write. Errors
// returned before that still render as JSON.
type csvAttachment struct {
	c        *gin.Context
	filename string
	started  bool
}

func (w *csvAttachment) Write(p []byte) (int, error) {
	if !w.started {
		w.started = true
		w.c.Header("Content-Disposition", `attachment; filename="`+w.filename+`"`)
		w.c.Header("Content-Type", "text/csv; charset=utf-8")
		w.c.Status(http.StatusOK)
	}
	return w.c.Writer.Write(p)
}

// HandleExport streams every matching transaction as a CSV attachment
func (h *Handler) HandleExport(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req CourtIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	msisdn := strings.TrimPrefix(strings.TrimSpace(req.MSISDN), "+")
	w := &csvAttachment{c: c, filename: "court_issue_" + msisdn + ".csv"}
	if err := h.processor.ExportTransactions(ctx, a, req.toProcessor(), w); err != nil {
		if !w.started {
			apierrors.RespondWithError(c, err)
			return
		}
		h.logger.Error(ctx, "court issue export aborted mid-stream", err)
	}
}
