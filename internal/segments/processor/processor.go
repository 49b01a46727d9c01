package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/querycache"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

// SegmentStore defines the database operations required by SegmentProcessor
type SegmentStore interface {
	CreateSegment(ctx context.Context, params store.CreateSegmentParams, audit store.AuditEntry) (store.Segment, error)
	GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (store.Segment, error)
	ListSegments(ctx context.Context, params store.ListSegmentsParams) ([]store.Segment, store.SegmentSummary, error)
	UpdateSegment(ctx context.Context, segmentID uuid.UUID, params store.UpdateSegmentParams, audit store.AuditEntry) (store.Segment, error)
	DeleteSegment(ctx context.Context, segmentID uuid.UUID, audit store.AuditEntry) error
	EstimateSegmentSize(ctx context.Context, filters store.SegmentFilters, logic string) (int, error)
}

// ListCache caches list responses per resource.
type ListCache interface {
	Get(ctx context.Context, resource string, params any, dest any) (querycache.Slot, bool)
	Put(ctx context.Context, slot querycache.Slot, value any)
	InvalidateResource(ctx context.Context, resource string)
}

var (
	ErrSegmentNotFound = errors.New("segment not found")
	ErrInvalidSegment  = errors.New("invalid segment")
	ErrInvalidFilters  = errors.New("invalid filter criteria")
	ErrSegmentInUse    = errors.New("segment is targeted by an active campaign")
	ErrForbidden       = errors.New("not permitted to manage segments")
)

const (
	cacheResource        = "segments"
	maxSegmentNameLength = 120
)

type SegmentProcessor struct {
	store  SegmentStore
	cache  ListCache
	logger *observability.Logger
}

func New(store SegmentStore, cache ListCache, logger *observability.Logger) SegmentProcessor {
	return SegmentProcessor{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// CreateSegmentRequest represents a request to create a segment
type CreateSegmentRequest struct {
	Name        string
	Description string
	Type        string
	Filters     store.SegmentFilters
	Logic       string
}

// UpdateSegmentRequest represents a partial segment update
type UpdateSegmentRequest struct {
	Name        *string
	Description *string
	Type        *string
	Filters     *store.SegmentFilters
	Logic       *string
	Status      *string
}

type ListSegmentsRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

type SegmentList struct {
	Items      []store.Segment      `json:"items"`
	Pagination pagination.Info      `json:"pagination"`
	Summary    store.SegmentSummary `json:"summary"`
}

// SegmentPreview is the estimate shown before a segment is saved
type SegmentPreview struct {
	EstimatedSize int    `json:"estimated_size"`
	RuleSummary   string `json:"rule_summary"`
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidSegment)
	}
	if utf8.RuneCountInString(name) > maxSegmentNameLength {
		return "", fmt.Errorf("%w: name is too long", ErrInvalidSegment)
	}
	return name, nil
}

func validateType(t string) (string, error) {
	switch t {
	case "":
		return store.SegmentTypeDynamic, nil
	case store.SegmentTypeStatic, store.SegmentTypeDynamic:
		return t, nil
	}
	return "", fmt.Errorf("%w: type must be static or dynamic", ErrInvalidSegment)
}

func validateLogic(logic string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(logic)) {
	case "", store.SegmentLogicAnd:
		return store.SegmentLogicAnd, nil
	case store.SegmentLogicOr:
		return store.SegmentLogicOr, nil
	}
	return "", fmt.Errorf("%w: logic must be AND or OR", ErrInvalidSegment)
}

// estimate counts matching subscribers. A failed estimate is logged and
// reported as zero so the write still goes through.
func (p *SegmentProcessor) estimate(ctx context.Context, filters store.SegmentFilters, logic string) int {
	size, err := p.store.EstimateSegmentSize(ctx, filters, logic)
	if err != nil {
		p.logger.Error(ctx, "failed to estimate segment size", err)
		return 0
	}
	return size
}

// CreateSegment validates and stores a new active segment
func (p *SegmentProcessor) CreateSegment(ctx context.Context, a actor.Actor, req CreateSegmentRequest) (store.Segment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "actor_id", Value: a.ID.String()})

	if !a.CanManageCampaigns() {
		return store.Segment{}, ErrForbidden
	}
	name, err := validateName(req.Name)
	if err != nil {
		return store.Segment{}, err
	}
	segType, err := validateType(req.Type)
	if err != nil {
		return store.Segment{}, err
	}
	logic, err := validateLogic(req.Logic)
	if err != nil {
		return store.Segment{}, err
	}
	if err := validateFilters(req.Filters); err != nil {
		return store.Segment{}, err
	}

	summary := RuleSummary(req.Filters, logic)
	segment, err := p.store.CreateSegment(ctx, store.CreateSegmentParams{
		Name:          name,
		Description:   req.Description,
		Type:          segType,
		Filters:       req.Filters,
		Logic:         logic,
		RuleSummary:   summary,
		EstimatedSize: p.estimate(ctx, req.Filters, logic),
		Status:        store.SegmentStatusActive,
		CreatedBy:     a.ID,
	}, a.Audit("create", store.AuditResourceSegment, "", store.JSONB{"name": name, "rule_summary": summary}))
	if err != nil {
		p.logger.Error(ctx, "failed to create segment", err)
		return store.Segment{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "segment created successfully")
	return segment, nil
}

// GetSegment retrieves a segment by ID
func (p *SegmentProcessor) GetSegment(ctx context.Context, segmentID uuid.UUID) (store.Segment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "segment_id", Value: segmentID.String()})

	segment, err := p.store.GetSegmentByID(ctx, segmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to get segment", err)
		return store.Segment{}, err
	}
	return segment, nil
}

// ListSegments returns one page of segments plus status counts over the
// filtered set
func (p *SegmentProcessor) ListSegments(ctx context.Context, req ListSegmentsRequest) (SegmentList, error) {
	page := pagination.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	req.Page, req.PageSize = page.Page, page.PageSize

	if req.Type != "" {
		if _, err := validateType(req.Type); err != nil {
			return SegmentList{}, err
		}
	}

	var cached SegmentList
	slot, hit := p.cache.Get(ctx, cacheResource, req, &cached)
	if hit {
		return cached, nil
	}

	items, summary, err := p.store.ListSegments(ctx, store.ListSegmentsParams{
		Search: req.Search,
		Type:   req.Type,
		Status: req.Status,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list segments", err)
		return SegmentList{}, err
	}

	result := SegmentList{
		Items:      items,
		Pagination: pagination.NewInfo(summary.Total, page),
		Summary:    summary,
	}
	p.cache.Put(ctx, slot, result)
	return result, nil
}

// UpdateSegment applies a partial update. Changing filters or logic
// recomputes the rule summary and size estimate.
func (p *SegmentProcessor) UpdateSegment(ctx context.Context, a actor.Actor, segmentID uuid.UUID, req UpdateSegmentRequest) (store.Segment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "segment_id", Value: segmentID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !a.CanManageCampaigns() {
		return store.Segment{}, ErrForbidden
	}

	existing, err := p.GetSegment(ctx, segmentID)
	if err != nil {
		return store.Segment{}, err
	}

	params := store.UpdateSegmentParams{Description: req.Description}
	changes := store.JSONB{}

	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return store.Segment{}, err
		}
		params.Name = &name
		changes["name"] = name
	}
	if req.Type != nil {
		segType, err := validateType(*req.Type)
		if err != nil {
			return store.Segment{}, err
		}
		params.Type = &segType
		changes["type"] = segType
	}
	if req.Status != nil {
		if *req.Status != store.SegmentStatusActive && *req.Status != store.SegmentStatusArchived {
			return store.Segment{}, fmt.Errorf("%w: status must be active or archived", ErrInvalidSegment)
		}
		params.Status = req.Status
		changes["status"] = *req.Status
	}

	filters, logic := existing.Filters, existing.Logic
	if req.Filters != nil {
		if err := validateFilters(*req.Filters); err != nil {
			return store.Segment{}, err
		}
		filters = *req.Filters
		params.Filters = &filters
	}
	if req.Logic != nil {
		logic, err = validateLogic(*req.Logic)
		if err != nil {
			return store.Segment{}, err
		}
		params.Logic = &logic
	}
	if req.Filters != nil || req.Logic != nil {
		summary := RuleSummary(filters, logic)
		size := p.estimate(ctx, filters, logic)
		params.RuleSummary = &summary
		params.EstimatedSize = &size
		changes["rule_summary"] = summary
	}

	segment, err := p.store.UpdateSegment(ctx, segmentID, params, a.Audit("update", store.AuditResourceSegment, segmentID.String(), changes))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to update segment", err)
		return store.Segment{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "segment updated successfully")
	return segment, nil
}

// DeleteSegment hard-deletes a segment no open campaign targets
func (p *SegmentProcessor) DeleteSegment(ctx context.Context, a actor.Actor, segmentID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "segment_id", Value: segmentID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !a.CanManageCampaigns() {
		return ErrForbidden
	}

	err := p.store.DeleteSegment(ctx, segmentID, a.Audit("delete", store.AuditResourceSegment, segmentID.String(), nil))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrSegmentNotFound
		case errors.Is(err, store.ErrInUse):
			return ErrSegmentInUse
		}
		p.logger.Error(ctx, "failed to delete segment", err)
		return err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "segment deleted successfully")
	return nil
}

// PreviewSegment estimates a rule set without saving it
func (p *SegmentProcessor) PreviewSegment(ctx context.Context, filters store.SegmentFilters, logic string) (SegmentPreview, error) {
	logic, err := validateLogic(logic)
	if err != nil {
		return SegmentPreview{}, err
	}
	if err := validateFilters(filters); err != nil {
		return SegmentPreview{}, err
	}

	size, err := p.store.EstimateSegmentSize(ctx, filters, logic)
	if err != nil {
		p.logger.Error(ctx, "failed to estimate segment size", err)
		return SegmentPreview{}, err
	}
	return SegmentPreview{EstimatedSize: size, RuleSummary: RuleSummary(filters, logic)}, nil
}

// RefreshSegmentEstimate recomputes the stored size estimate
func (p *SegmentProcessor) RefreshSegmentEstimate(ctx context.Context, a actor.Actor, segmentID uuid.UUID) (store.Segment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "segment_id", Value: segmentID.String()})

	if !a.CanManageCampaigns() {
		return store.Segment{}, ErrForbidden
	}

	segment, err := p.GetSegment(ctx, segmentID)
	if err != nil {
		return store.Segment{}, err
	}

	size, err := p.store.EstimateSegmentSize(ctx, segment.Filters, segment.Logic)
	if err != nil {
		p.logger.Error(ctx, "failed to estimate segment size", err)
		return store.Segment{}, err
	}

	updated, err := p.store.UpdateSegment(ctx, segmentID, store.UpdateSegmentParams{EstimatedSize: &size},
		a.Audit("refresh_estimate", store.AuditResourceSegment, segmentID.String(), store.JSONB{"estimated_size": size}))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to update segment estimate", err)
		return store.Segment{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	return updated, nil
}
