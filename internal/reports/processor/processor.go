package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/querycache"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

// ReportStore defines the database operations required by ReportProcessor
type ReportStore interface {
	CreateReport(ctx context.Context, params store.CreateReportParams, audit store.AuditEntry) (store.Report, error)
	GetReportByID(ctx context.Context, reportID uuid.UUID) (store.Report, error)
	ListReports(ctx context.Context, params store.ListReportsParams) ([]store.Report, int, []store.ReportSourceCount, error)
	DeleteReport(ctx context.Context, reportID uuid.UUID, audit store.AuditEntry) error
	CountReportSourceRows(ctx context.Context, sourceType string) (int, error)
}

// ListCache caches list responses per resource.
type ListCache interface {
	Get(ctx context.Context, resource string, params any, dest any) (querycache.Slot, bool)
	Put(ctx context.Context, slot querycache.Slot, value any)
	InvalidateResource(ctx context.Context, resource string)
}

var (
	ErrReportNotFound = errors.New("report not found")
	ErrInvalidReport  = errors.New("invalid report")
	ErrForbidden      = errors.New("not permitted to manage reports")
)

const cacheResource = "reports"

type ReportProcessor struct {
	store  ReportStore
	cache  ListCache
	logger *observability.Logger
}

func New(store ReportStore, cache ListCache, logger *observability.Logger) ReportProcessor {
	return ReportProcessor{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// CreateReportRequest represents a request to generate a report
type CreateReportRequest struct {
	Name         string
	Description  string
	SourceType   string
	ExportFormat string
	Parameters   store.JSONB
}

type ListReportsRequest struct {
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
	Search       string `json:"search"`
	SourceType   string `json:"source_type"`
	ExportFormat string `json:"export_format"`
}

type ReportList struct {
	Items      []store.Report             `json:"items"`
	Pagination pagination.Info            `json:"pagination"`
	Summary    []store.ReportSourceCount `json:"summary"`
}

func validSourceType(s string) bool {
	switch s {
	case store.ReportSourceCampaign, store.ReportSourceSegment, store.ReportSourceReward, store.ReportSourceTransaction:
		return true
	}
	return false
}

func validExportFormat(f string) bool {
	switch f {
	case store.ReportFormatCSV, store.ReportFormatXLSX, store.ReportFormatPDF:
		return true
	}
	return false
}

// CreateReport records a report over one source. The row count is taken when
// the report is created; a failed count stores the report as failed.
func (p *ReportProcessor) CreateReport(ctx context.Context, a actor.Actor, req CreateReportRequest) (store.Report, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "source_type", Value: req.SourceType},
	)

	if !a.CanPrepareData() {
		return store.Report{}, ErrForbidden
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return store.Report{}, fmt.Errorf("%w: name is required", ErrInvalidReport)
	}
	if !validSourceType(req.SourceType) {
		return store.Report{}, fmt.Errorf("%w: unknown source type %q", ErrInvalidReport, req.SourceType)
	}
	if req.ExportFormat == "" {
		req.ExportFormat = store.ReportFormatCSV
	}
	if !validExportFormat(req.ExportFormat) {
		return store.Report{}, fmt.Errorf("%w: unknown export format %q", ErrInvalidReport, req.ExportFormat)
	}

	status := store.ReportStatusReady
	rows, err := p.store.CountReportSourceRows(ctx, req.SourceType)
	if err != nil {
		p.logger.Error(ctx, "failed to count report rows", err)
		status = store.ReportStatusFailed
	}

	report, err := p.store.CreateReport(ctx, store.CreateReportParams{
		Name:         name,
		Description:  req.Description,
		SourceType:   req.SourceType,
		ExportFormat: req.ExportFormat,
		Parameters:   req.Parameters,
		Status:       status,
		RowCount:     rows,
		GeneratedBy:  a.ID,
	}, a.Audit("create", store.AuditResourceReport, "", store.JSONB{"name": name, "source_type": req.SourceType}))
	if err != nil {
		p.logger.Error(ctx, "failed to create report", err)
		return store.Report{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "report created successfully")
	return report, nil
}

// GetReport retrieves a report by ID
func (p *ReportProcessor) GetReport(ctx context.Context, reportID uuid.UUID) (store.Report, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "report_id", Value: reportID.String()})

	report, err := p.store.GetReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Report{}, ErrReportNotFound
		}
		p.logger.Error(ctx, "failed to get report", err)
		return store.Report{}, err
	}
	return report, nil
}

// ListReports returns one page of reports and the per-source counts of the
// filtered set
func (p *ReportProcessor) ListReports(ctx context.Context, req ListReportsRequest) (ReportList, error) {
	page := pagination.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	req.Page, req.PageSize = page.Page, page.PageSize

	if req.SourceType != "" && !validSourceType(req.SourceType) {
		return ReportList{}, fmt.Errorf("%w: unknown source type %q", ErrInvalidReport, req.SourceType)
	}
	if req.ExportFormat != "" && !validExportFormat(req.ExportFormat) {
		return ReportList{}, fmt.Errorf("%w: unknown export format %q", ErrInvalidReport, req.ExportFormat)
	}

	var cached ReportList
	slot, hit := p.cache.Get(ctx, cacheResource, req, &cached)
	if hit {
		return cached, nil
	}

	items, total, counts, err := p.store.ListReports(ctx, store.ListReportsParams{
		Search:       req.Search,
		SourceType:   req.SourceType,
		ExportFormat: req.ExportFormat,
		Limit:        page.Limit(),
		Offset:       page.Offset(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list reports", err)
		return ReportList{}, err
	}

	result := ReportList{
		Items:      items,
		Pagination: pagination.NewInfo(total, page),
		Summary:    counts,
	}
	p.cache.Put(ctx, slot, result)
	return result, nil
}

// DeleteReport removes a report
func (p *ReportProcessor) DeleteReport(ctx context.Context, a actor.Actor, reportID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "report_id", Value: reportID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !a.CanPrepareData() {
		return ErrForbidden
	}

	err := p.store.DeleteReport(ctx, reportID, a.Audit("delete", store.AuditResourceReport, reportID.String(), nil))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrReportNotFound
		}
		p.logger.Error(ctx, "failed to delete report", err)
		return err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "report deleted successfully")
	return nil
}
