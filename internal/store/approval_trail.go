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

// RecordDecisionParams appends one trail entry and moves the campaign
// from From to To atomically.
type RecordDecisionParams struct {
	CampaignID uuid.UUID
	ApproverID uuid.UUID
	Decision   string
	Comment    string
	DecidedAt  time.Time
	From       string
	To         string
	Audit      AuditEntry
}

const sqlInsertApprovalTrail = `
INSERT INTO approval_trail (campaign_id, approver_id, decision, comment, decided_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, campaign_id, approver_id, decision, comment, decided_at
`

// RecordApprovalDecision writes the decision, the status change and the
// audit row in one transaction. ErrStatusConflict means another approver
// got there first.
func (s *Store) RecordApprovalDecision(ctx context.Context, p RecordDecisionParams) (Campaign, ApprovalTrailEntry, error) {
	var (
		campaign Campaign
		entry    ApprovalTrailEntry
	)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		campaign, err = transitionCampaign(ctx, tx, TransitionParams{
			CampaignID: p.CampaignID,
			From:       p.From,
			To:         p.To,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return s.missingOrConflict(ctx, tx, p.CampaignID)
			}
			return fmt.Errorf("failed to transition campaign: %w", err)
		}

		err = tx.GetContext(ctx, &entry, sqlInsertApprovalTrail,
			p.CampaignID,
			nullableUUID(p.ApproverID),
			p.Decision,
			p.Comment,
			p.DecidedAt)
		if err != nil {
			return fmt.Errorf("failed to insert approval trail entry: %w", err)
		}
		return insertAuditLog(ctx, tx, p.Audit)
	})
	if err != nil {
		return Campaign{}, ApprovalTrailEntry{}, err
	}
	return campaign, entry, nil
}

const sqlGetApprovalTrail = `
SELECT id, campaign_id, approver_id, decision, comment, decided_at
FROM approval_trail
WHERE campaign_id = $1
ORDER BY decided_at, seq
`

// GetApprovalTrail returns a campaign's decisions in chronological order.
func (s *Store) GetApprovalTrail(ctx context.Context, campaignID uuid.UUID) ([]ApprovalTrailEntry, error) {
	trail := []ApprovalTrailEntry{}
	if err := s.db.SelectContext(ctx, &trail, sqlGetApprovalTrail, campaignID); err != nil {
		return nil, fmt.Errorf("failed to get approval trail: %w", err)
	}
	return trail, nil
}

const sqlGetApprovalTrails = `
SELECT id, campaign_id, approver_id, decision, comment, decided_at
FROM approval_trail
WHERE campaign_id = ANY($1::uuid[])
ORDER BY decided_at, seq
`

// GetApprovalTrails returns the trails of several campaigns keyed by campaign.
func (s *Store) GetApprovalTrails(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID][]ApprovalTrailEntry, error) {
	out := make(map[uuid.UUID][]ApprovalTrailEntry, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return out, nil
	}
	ids := make(StringArray, len(campaignIDs))
	for i, id := range campaignIDs {
		ids[i] = id.String()
	}

	var rows []ApprovalTrailEntry
	if err := s.db.SelectContext(ctx, &rows, sqlGetApprovalTrails, ids); err != nil {
		return nil, fmt.Errorf("failed to get approval trails: %w", err)
	}
	for _, r := range rows {
		out[r.CampaignID] = append(out[r.CampaignID], r)
	}
	return out, nil
}

