package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const campaignColumns = `id, name, description, objective, owner_id, type, status, segment_ids, channels, trigger_type, start_at, end_at, frequency_cap, reward_config, failure_reason, created_by, created_at, updated_at`

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name         string
	Description  string
	Objective    string
	OwnerID      *uuid.UUID
	Type         string
	Status       string
	SegmentIDs   StringArray
	Channels     ChannelConfigs
	TriggerType  string
	StartAt      *time.Time
	EndAt        *time.Time
	FrequencyCap int
	RewardConfig RewardConfig
	CreatedBy    uuid.UUID
}

const constraintCampaignOwner = "campaigns_owner_id_fkey"

const sqlCreateCampaign = `
INSERT INTO campaigns (name, description, type, status, segment_ids, channels, trigger_type, start_at, end_at, reward_config, created_by, objective, owner_id, frequency_cap)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + campaignColumns

// CreateCampaign inserts a campaign and its audit row in one transaction.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams, audit AuditEntry) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &campaign, sqlCreateCampaign,
			params.Name,
			params.Description,
			params.Type,
			params.Status,
			params.SegmentIDs,
			params.Channels,
			params.TriggerType,
			params.StartAt,
			params.EndAt,
			params.RewardConfig,
			nullableUUID(params.CreatedBy),
			params.Objective,
			params.OwnerID,
			params.FrequencyCap)
		if err != nil {
			if isForeignKeyViolation(err, constraintCampaignOwner) {
				return ErrUnknownOwner
			}
			return fmt.Errorf("failed to create campaign: %w", err)
		}
		audit.ResourceID = campaign.ID.String()
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// ListCampaignsParams filters the campaign listing
type ListCampaignsParams struct {
	Search   string
	Statuses []string
	Type     string
	Limit    int
	Offset   int
}

func (p ListCampaignsParams) filter() filter {
	var f filter
	f.search(p.Search, "name", "description")
	if len(p.Statuses) > 0 {
		f.add("status = ANY(?::text[])", StringArray(p.Statuses))
	}
	if p.Type != "" {
		f.add("type = ?", p.Type)
	}
	return f
}

// ListCampaigns returns one page of campaigns, newest first, and the total
// number matching.
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]Campaign, int, error) {
	f := params.filter()

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM campaigns"+f.where(), f.args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	pageClause, args := f.page(params.Limit, params.Offset)
	campaigns := []Campaign{}
	query := "SELECT " + campaignColumns + " FROM campaigns" + f.where() + " ORDER BY created_at DESC, id" + pageClause
	if err := s.db.SelectContext(ctx, &campaigns, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, total, nil
}

// ListAllCampaigns returns every campaign matching, unpaginated.
func (s *Store) ListAllCampaigns(ctx context.Context, params ListCampaignsParams) ([]Campaign, error) {
	f := params.filter()
	campaigns := []Campaign{}
	query := "SELECT " + campaignColumns + " FROM campaigns" + f.where() + " ORDER BY created_at DESC, id"
	if err := s.db.SelectContext(ctx, &campaigns, query, f.args...); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// UpdateCampaignParams holds the editable fields of a campaign. Nil leaves
// the column unchanged.
type UpdateCampaignParams struct {
	Name         *string
	Description  *string
	Objective    *string
	OwnerID      *uuid.UUID
	Type         *string
	SegmentIDs   *StringArray
	Channels     *ChannelConfigs
	TriggerType  *string
	StartAt      *time.Time
	EndAt        *time.Time
	FrequencyCap *int
	RewardConfig *RewardConfig
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = COALESCE($3, name),
    description = COALESCE($4, description),
    type = COALESCE($5, type),
    segment_ids = COALESCE($6, segment_ids),
    channels = COALESCE($7, channels),
    trigger_type = COALESCE($8, trigger_type),
    start_at = COALESCE($9, start_at),
    end_at = COALESCE($10, end_at),
    reward_config = COALESCE($11, reward_config),
    objective = COALESCE($12, objective),
    owner_id = COALESCE($13, owner_id),
    frequency_cap = COALESCE($14, frequency_cap),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $2
RETURNING ` + campaignColumns

// UpdateCampaign edits a campaign that is still in expectedStatus.
func (s *Store) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, expectedStatus string, params UpdateCampaignParams, audit AuditEntry) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &campaign, sqlUpdateCampaign,
			campaignID,
			expectedStatus,
			params.Name,
			params.Description,
			params.Type,
			params.SegmentIDs,
			params.Channels,
			params.TriggerType,
			params.StartAt,
			params.EndAt,
			params.RewardConfig,
			params.Objective,
			params.OwnerID,
			params.FrequencyCap)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return s.missingOrConflict(ctx, tx, campaignID)
			}
			if isForeignKeyViolation(err, constraintCampaignOwner) {
				return ErrUnknownOwner
			}
			return fmt.Errorf("failed to update campaign: %w", err)
		}
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

const sqlDeleteCampaign = `DELETE FROM campaigns WHERE id = $1 AND status = $2`

// DeleteCampaign hard deletes a campaign that is still in expectedStatus.
func (s *Store) DeleteCampaign(ctx context.Context, campaignID uuid.UUID, expectedStatus string, audit AuditEntry) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlDeleteCampaign, campaignID, expectedStatus)
		if err != nil {
			return fmt.Errorf("failed to delete campaign: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return s.missingOrConflict(ctx, tx, campaignID)
		}
		return insertAuditLog(ctx, tx, audit)
	})
}

// TransitionParams is a compare-and-set status change.
type TransitionParams struct {
	CampaignID    uuid.UUID
	From          string
	To            string
	FailureReason *string
	Audit         AuditEntry
}

const sqlTransitionCampaign = `
UPDATE campaigns
SET status = $3,
    failure_reason = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $2
RETURNING ` + campaignColumns

func transitionCampaign(ctx context.Context, tx *sqlx.Tx, p TransitionParams) (Campaign, error) {
	var campaign Campaign
	err := tx.GetContext(ctx, &campaign, sqlTransitionCampaign, p.CampaignID, p.From, p.To, p.FailureReason)
	return campaign, err
}

// TransitionCampaignStatus moves a campaign from p.From to p.To. It returns
// ErrStatusConflict when the campaign is no longer in p.From.
func (s *Store) TransitionCampaignStatus(ctx context.Context, p TransitionParams) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		campaign, err = transitionCampaign(ctx, tx, p)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return s.missingOrConflict(ctx, tx, p.CampaignID)
			}
			return fmt.Errorf("failed to transition campaign: %w", err)
		}
		return insertAuditLog(ctx, tx, p.Audit)
	})
	if err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

const sqlCampaignExists = `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`

func (s *Store) missingOrConflict(ctx context.Context, q sqlx.QueryerContext, campaignID uuid.UUID) error {
	var exists bool
	if err := sqlx.GetContext(ctx, q, &exists, sqlCampaignExists, campaignID); err != nil {
		return fmt.Errorf("failed to check campaign: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrStatusConflict
}

const sqlListDueCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE (status = 'Scheduled' AND (start_at IS NULL OR start_at <= $1))
   OR (status = 'Running' AND end_at IS NOT NULL AND end_at <= $1)
ORDER BY COALESCE(start_at, end_at)
LIMIT $2`

// ListDueCampaigns returns Scheduled campaigns whose start has passed (or
// that have no start) and Running campaigns whose end has passed.
func (s *Store) ListDueCampaigns(ctx context.Context, now time.Time, limit int) ([]Campaign, error) {
	campaigns := []Campaign{}
	if err := s.db.SelectContext(ctx, &campaigns, sqlListDueCampaigns, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due campaigns: %w", err)
	}
	return campaigns, nil
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
