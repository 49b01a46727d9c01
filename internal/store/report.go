package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const reportColumns = `id, name, description, source_type, export_format, parameters, status, row_count, generated_by, created_at`

// CreateReportParams represents parameters for creating a report
type CreateReportParams struct {
	Name         string
	Description  string
	SourceType   string
	ExportFormat string
	Parameters   JSONB
	Status       string
	RowCount     int
	GeneratedBy  uuid.UUID
}

const sqlCreateReport = `
INSERT INTO reports (name, description, source_type, export_format, parameters, status, row_count, generated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + reportColumns

// CreateReport creates a new report
func (s *Store) CreateReport(ctx context.Context, params CreateReportParams, audit AuditEntry) (Report, error) {
	if params.Parameters == nil {
		params.Parameters = JSONB{}
	}
	var report Report
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &report, sqlCreateReport,
			params.Name,
			params.Description,
			params.SourceType,
			params.ExportFormat,
			params.Parameters,
			params.Status,
			params.RowCount,
			nullableUUID(params.GeneratedBy))
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		audit.ResourceID = report.ID.String()
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

const sqlGetReportByID = `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

// GetReportByID retrieves a report by ID
func (s *Store) GetReportByID(ctx context.Context, reportID uuid.UUID) (Report, error) {
	var report Report
	err := s.db.GetContext(ctx, &report, sqlGetReportByID, reportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// ListReportsParams filters the report listing
type ListReportsParams struct {
	Search       string
	SourceType   string
	ExportFormat string
	Limit        int
	Offset       int
}

// ReportSourceCount is the number of reports built from one source type.
type ReportSourceCount struct {
	SourceType string `db:"source_type" json:"source_type"`
	Count      int    `db:"count" json:"count"`
}

// ListReports returns one page of reports, the total matching and the
// per-source counts of the filtered set.
func (s *Store) ListReports(ctx context.Context, params ListReportsParams) ([]Report, int, []ReportSourceCount, error) {
	var f filter
	f.search(params.Search, "name", "description")
	if params.SourceType != "" {
		f.add("source_type = ?", params.SourceType)
	}
	if params.ExportFormat != "" {
		f.add("export_format = ?", params.ExportFormat)
	}

	counts := []ReportSourceCount{}
	countQuery := "SELECT source_type, COUNT(*) AS count FROM reports" + f.where() + " GROUP BY source_type ORDER BY source_type"
	if err := s.db.SelectContext(ctx, &counts, countQuery, f.args...); err != nil {
		return nil, 0, nil, fmt.Errorf("failed to count reports: %w", err)
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	pageClause, args := f.page(params.Limit, params.Offset)
	reports := []Report{}
	query := "SELECT " + reportColumns + " FROM reports" + f.where() + " ORDER BY created_at DESC, id" + pageClause
	if err := s.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, 0, nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, total, counts, nil
}

const sqlDeleteReport = `DELETE FROM reports WHERE id = $1`

// DeleteReport hard deletes a report
func (s *Store) DeleteReport(ctx context.Context, reportID uuid.UUID, audit AuditEntry) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlDeleteReport, reportID)
		if err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}
		return insertAuditLog(ctx, tx, audit)
	})
}

// reportSourceTables maps a report source to the table its row count comes from.
var reportSourceTables = map[string]string{
	ReportSourceCampaign:    "campaigns",
	ReportSourceSegment:     "segments",
	ReportSourceReward:      "reward_issuances",
	ReportSourceTransaction: "transactions",
}

// CountReportSourceRows counts the rows a report over sourceType covers.
func (s *Store) CountReportSourceRows(ctx context.Context, sourceType string) (int, error) {
	table, ok := reportSourceTables[sourceType]
	if !ok {
		return 0, fmt.Errorf("unknown report source %q", sourceType)
	}
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("failed to count report source rows: %w", err)
	}
	return count, nil
}
