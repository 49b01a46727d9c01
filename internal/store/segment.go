package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const segmentColumns = `id, name, description, type, filters, logic, rule_summary, estimated_size, status, created_by, created_at, updated_at`

// CreateSegmentParams represents parameters for creating a segment
type CreateSegmentParams struct {
	Name          string
	Description   string
	Type          string
	Filters       SegmentFilters
	Logic         string
	RuleSummary   string
	EstimatedSize int
	Status        string
	CreatedBy     uuid.UUID
}

const sqlCreateSegment = `
INSERT INTO segments (name, description, type, filters, logic, rule_summary, estimated_size, status, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + segmentColumns

// CreateSegment creates a new segment
func (s *Store) CreateSegment(ctx context.Context, params CreateSegmentParams, audit AuditEntry) (Segment, error) {
	var segment Segment
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &segment, sqlCreateSegment,
			params.Name,
			params.Description,
			params.Type,
			params.Filters,
			params.Logic,
			params.RuleSummary,
			params.EstimatedSize,
			params.Status,
			nullableUUID(params.CreatedBy))
		if err != nil {
			return fmt.Errorf("failed to create segment: %w", err)
		}
		audit.ResourceID = segment.ID.String()
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return Segment{}, err
	}
	return segment, nil
}

const sqlGetSegmentByID = `SELECT ` + segmentColumns + ` FROM segments WHERE id = $1`

// GetSegmentByID retrieves a segment by ID
func (s *Store) GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (Segment, error) {
	var segment Segment
	err := s.db.GetContext(ctx, &segment, sqlGetSegmentByID, segmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Segment{}, ErrNotFound
		}
		return Segment{}, fmt.Errorf("failed to get segment: %w", err)
	}
	return segment, nil
}

const sqlCountSegmentsByIDs = `SELECT COUNT(*) FROM segments WHERE id = ANY($1::uuid[])`

// CountSegmentsByIDs counts how many of ids exist.
func (s *Store) CountSegmentsByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	arr := make(StringArray, len(ids))
	for i, id := range ids {
		arr[i] = id.String()
	}
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountSegmentsByIDs, arr); err != nil {
		return 0, fmt.Errorf("failed to count segments: %w", err)
	}
	return count, nil
}

// ListSegmentsParams filters the segment listing
type ListSegmentsParams struct {
	Search string
	Type   string
	Status string
	Limit  int
	Offset int
}

// SegmentSummary counts segments by status across the filtered set.
type SegmentSummary struct {
	Total    int `db:"total" json:"total"`
	Active   int `db:"active" json:"active"`
	Archived int `db:"archived" json:"archived"`
}

// ListSegments returns one page of segments, newest first, and a summary of
// the whole filtered set.
func (s *Store) ListSegments(ctx context.Context, params ListSegmentsParams) ([]Segment, SegmentSummary, error) {
	var f filter
	f.search(params.Search, "name", "description")
	if params.Type != "" {
		f.add("type = ?", params.Type)
	}
	if params.Status != "" {
		f.add("status = ?", params.Status)
	}

	var summary SegmentSummary
	summaryQuery := `
SELECT COUNT(*) AS total,
       COUNT(*) FILTER (WHERE status = 'active') AS active,
       COUNT(*) FILTER (WHERE status = 'archived') AS archived
FROM segments` + f.where()
	if err := s.db.GetContext(ctx, &summary, summaryQuery, f.args...); err != nil {
		return nil, SegmentSummary{}, fmt.Errorf("failed to summarize segments: %w", err)
	}

	pageClause, args := f.page(params.Limit, params.Offset)
	segments := []Segment{}
	query := "SELECT " + segmentColumns + " FROM segments" + f.where() + " ORDER BY created_at DESC, id" + pageClause
	if err := s.db.SelectContext(ctx, &segments, query, args...); err != nil {
		return nil, SegmentSummary{}, fmt.Errorf("failed to list segments: %w", err)
	}
	return segments, summary, nil
}

// UpdateSegmentParams represents parameters for updating a segment
type UpdateSegmentParams struct {
	Name          *string
	Description   *string
	Type          *string
	Filters       *SegmentFilters
	Logic         *string
	RuleSummary   *string
	EstimatedSize *int
	Status        *string
}

const sqlUpdateSegment = `
UPDATE segments
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    type = COALESCE($4, type),
    filters = COALESCE($5, filters),
    logic = COALESCE($6, logic),
    rule_summary = COALESCE($7, rule_summary),
    estimated_size = COALESCE($8, estimated_size),
    status = COALESCE($9, status),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + segmentColumns

// UpdateSegment updates a segment
func (s *Store) UpdateSegment(ctx context.Context, segmentID uuid.UUID, params UpdateSegmentParams, audit AuditEntry) (Segment, error) {
	var segment Segment
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &segment, sqlUpdateSegment,
			segmentID,
			params.Name,
			params.Description,
			params.Type,
			params.Filters,
			params.Logic,
			params.RuleSummary,
			params.EstimatedSize,
			params.Status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update segment: %w", err)
		}
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return Segment{}, err
	}
	return segment, nil
}

const sqlDeleteSegment = `
DELETE FROM segments
WHERE id = $1
  AND NOT EXISTS (
      SELECT 1
      FROM campaigns
      WHERE $2 = ANY(segment_ids)
        AND status NOT IN ('Completed', 'Failed'))`

const sqlSegmentExists = `SELECT EXISTS (SELECT 1 FROM segments WHERE id = $1)`

// DeleteSegment hard deletes a segment that no open campaign targets. The
// usage check and the delete are one statement; ErrInUse means an open
// campaign still references it.
func (s *Store) DeleteSegment(ctx context.Context, segmentID uuid.UUID, audit AuditEntry) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlDeleteSegment, segmentID, segmentID.String())
		if err != nil {
			return fmt.Errorf("failed to delete segment: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			var exists bool
			if err := tx.GetContext(ctx, &exists, sqlSegmentExists, segmentID); err != nil {
				return fmt.Errorf("failed to check segment: %w", err)
			}
			if exists {
				return ErrInUse
			}
			return ErrNotFound
		}
		return insertAuditLog(ctx, tx, audit)
	})
}

// EstimateSegmentSize counts subscribers matching the warehouse-backed
// clauses of filters (region, recent activity, transaction count, spend),
// combined with logic. Demographic age/gender and value tier are not held
// in the warehouse and do not narrow the estimate.
func (s *Store) EstimateSegmentSize(ctx context.Context, filters SegmentFilters, logic string) (int, error) {
	var f filter
	if d := filters.Demographic; d != nil && len(d.Regions) > 0 {
		f.add("s.region = ANY(?::text[])", StringArray(d.Regions))
	}
	if b := filters.Behavioral; b != nil {
		if b.LastActivityDays != nil {
			f.add("s.last_activity_at >= NOW() - make_interval(days => ?)", *b.LastActivityDays)
		}
		if b.MinTransactions != nil {
			f.add("(SELECT COUNT(*) FROM transactions t WHERE t.msisdn = s.msisdn) >= ?", *b.MinTransactions)
		}
		if len(b.Channels) > 0 {
			f.add("EXISTS (SELECT 1 FROM transactions t WHERE t.msisdn = s.msisdn AND t.channel = ANY(?::text[]))", StringArray(b.Channels))
		}
	}
	if v := filters.ValueTier; v != nil && v.MinSpend != nil {
		f.add("(SELECT COALESCE(SUM(t.amount), 0) FROM transactions t WHERE t.msisdn = s.msisdn) >= ?", *v.MinSpend)
	}

	where := f.where()
	if logic == SegmentLogicOr && len(f.conds) > 1 {
		where = " WHERE " + strings.Join(f.conds, " OR ")
	}

	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subscribers s"+where, f.args...); err != nil {
		return 0, fmt.Errorf("failed to estimate segment size: %w", err)
	}
	return count, nil
}
