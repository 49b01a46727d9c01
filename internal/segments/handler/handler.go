package handler

import (
	"net/http"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/segments/processor"
	"engage-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.SegmentProcessor
	logger    *observability.Logger
}

func New(processor processor.SegmentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateSegmentRequest represents the HTTP request for creating a segment
type CreateSegmentRequest struct {
	Name        string               `json:"name" binding:"required,min=1,max=120"`
	Description string               `json:"description"`
	Type        string               `json:"type" binding:"omitempty,oneof=static dynamic"`
	Filters     store.SegmentFilters `json:"filters"`
	Logic       string               `json:"logic" binding:"omitempty,oneof=AND OR and or"`
}

// UpdateSegmentRequest represents the HTTP request for updating a segment
type UpdateSegmentRequest struct {
	Name        *string               `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Description *string               `json:"description,omitempty"`
	Type        *string               `json:"type,omitempty" binding:"omitempty,oneof=static dynamic"`
	Filters     *store.SegmentFilters `json:"filters,omitempty"`
	Logic       *string               `json:"logic,omitempty" binding:"omitempty,oneof=AND OR and or"`
	Status      *string               `json:"status,omitempty" binding:"omitempty,oneof=active archived"`
}

// PreviewSegmentRequest is an unsaved rule set to estimate
type PreviewSegmentRequest struct {
	Filters store.SegmentFilters `json:"filters"`
	Logic   string               `json:"logic"`
}

// HandleCreateSegment creates a new segment
func (h *Handler) HandleCreateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}

	var req CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	segment, err := h.processor.CreateSegment(ctx, a, processor.CreateSegmentRequest{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Filters:     req.Filters,
		Logic:       req.Logic,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, segment)
}

// HandleListSegments lists segments with search, type and status filters
func (h *Handler) HandleListSegments(c *gin.Context) {
	ctx := c.Request.Context()

	page := pagination.FromQuery(c)
	result, err := h.processor.ListSegments(ctx, processor.ListSegmentsRequest{
		Page:     page.Page,
		PageSize: page.PageSize,
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetSegment retrieves a segment by ID
func (h *Handler) HandleGetSegment(c *gin.Context) {
	ctx := c.Request.Context()

	segmentID, ok := h.getSegmentID(c)
	if !ok {
		return
	}

	segment, err := h.processor.GetSegment(ctx, segmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// HandleUpdateSegment applies a partial update to a segment
func (h *Handler) HandleUpdateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	segmentID, ok := h.getSegmentID(c)
	if !ok {
		return
	}

	var req UpdateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	segment, err := h.processor.UpdateSegment(ctx, a, segmentID, processor.UpdateSegmentRequest{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Filters:     req.Filters,
		Logic:       req.Logic,
		Status:      req.Status,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// HandleDeleteSegment deletes a segment no open campaign targets
func (h *Handler) HandleDeleteSegment(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	segmentID, ok := h.getSegmentID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteSegment(ctx, a, segmentID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandlePreviewSegment estimates a rule set before it is saved
func (h *Handler) HandlePreviewSegment(c *gin.Context) {
	ctx := c.Request.Context()

	var req PreviewSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	preview, err := h.processor.PreviewSegment(ctx, req.Filters, req.Logic)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// HandleRefreshSegment recomputes a segment's size estimate
func (h *Handler) HandleRefreshSegment(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := h.getActor(c)
	if !ok {
		return
	}
	segmentID, ok := h.getSegmentID(c)
	if !ok {
		return
	}

	segment, err := h.processor.RefreshSegmentEstimate(ctx, a, segmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

func (h *Handler) getActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return actor.Actor{}, false
	}
	return a, true
}

func (h *Handler) getSegmentID(c *gin.Context) (uuid.UUID, bool) {
	segmentID, err := uuid.Parse(c.Param("segment_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid segment ID format"))
		return uuid.UUID{}, false
	}
	return segmentID, true
}
