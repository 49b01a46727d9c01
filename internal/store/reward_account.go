package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const rewardAccountColumns = `id, name, account_number, external_ref, reward_type, currency, balance, low_balance_threshold, status, assigned_campaign_ids, created_at, updated_at`

// CreateRewardAccountParams represents parameters for registering a reward account
type CreateRewardAccountParams struct {
	Name                string
	AccountNumber       string
	ExternalRef         string
	RewardType          string
	Currency            string
	Balance             int64
	LowBalanceThreshold int64
	Status              string
	AssignedCampaignIDs StringArray
}

const sqlCreateRewardAccount = `
INSERT INTO reward_accounts (name, account_number, external_ref, reward_type, currency, balance, low_balance_threshold, status, assigned_campaign_ids)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + rewardAccountColumns

// CreateRewardAccount registers a reward account. A duplicate account
// number returns ErrDuplicate.
func (s *Store) CreateRewardAccount(ctx context.Context, params CreateRewardAccountParams, audit AuditEntry) (RewardAccount, error) {
	if params.AssignedCampaignIDs == nil {
		params.AssignedCampaignIDs = StringArray{}
	}
	var account RewardAccount
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &account, sqlCreateRewardAccount,
			params.Name,
			params.AccountNumber,
			params.ExternalRef,
			params.RewardType,
			params.Currency,
			params.Balance,
			params.LowBalanceThreshold,
			params.Status,
			params.AssignedCampaignIDs)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("failed to create reward account: %w", err)
		}
		audit.ResourceID = account.ID.String()
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return RewardAccount{}, err
	}
	return account, nil
}

const sqlGetRewardAccountByID = `SELECT ` + rewardAccountColumns + ` FROM reward_accounts WHERE id = $1`

// GetRewardAccountByID retrieves a reward account by ID
func (s *Store) GetRewardAccountByID(ctx context.Context, accountID uuid.UUID) (RewardAccount, error) {
	var account RewardAccount
	err := s.db.GetContext(ctx, &account, sqlGetRewardAccountByID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RewardAccount{}, ErrNotFound
		}
		return RewardAccount{}, fmt.Errorf("failed to get reward account: %w", err)
	}
	return account, nil
}

// ListRewardAccountsParams filters the reward account listing
type ListRewardAccountsParams struct {
	Search     string
	Status     string
	RewardType string
}

// ListRewardAccounts returns every account matching the filters. The
// listing is small enough to page and summarize in memory, and the CSV
// export needs the full filtered set anyway.
func (s *Store) ListRewardAccounts(ctx context.Context, params ListRewardAccountsParams) ([]RewardAccount, error) {
	var f filter
	f.search(params.Search, "name", "account_number", "external_ref")
	if params.Status != "" {
		f.add("status = ?", params.Status)
	}
	if params.RewardType != "" {
		f.add("reward_type = ?", params.RewardType)
	}

	accounts := []RewardAccount{}
	query := "SELECT " + rewardAccountColumns + " FROM reward_accounts" + f.where() + " ORDER BY name, id"
	if err := s.db.SelectContext(ctx, &accounts, query, f.args...); err != nil {
		return nil, fmt.Errorf("failed to list reward accounts: %w", err)
	}
	return accounts, nil
}

// UpdateRewardAccountParams holds the operator-editable fields. Balance is
// owned by the payout system and is not updatable here.
type UpdateRewardAccountParams struct {
	Name                *string
	ExternalRef         *string
	LowBalanceThreshold *int64
	Status              *string
	AssignedCampaignIDs *StringArray
}

const sqlUpdateRewardAccount = `
UPDATE reward_accounts
SET name = COALESCE($2, name),
    external_ref = COALESCE($3, external_ref),
    low_balance_threshold = COALESCE($4, low_balance_threshold),
    status = COALESCE($5, status),
    assigned_campaign_ids = COALESCE($6, assigned_campaign_ids),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + rewardAccountColumns

// UpdateRewardAccount updates a reward account
func (s *Store) UpdateRewardAccount(ctx context.Context, accountID uuid.UUID, params UpdateRewardAccountParams, audit AuditEntry) (RewardAccount, error) {
	var account RewardAccount
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &account, sqlUpdateRewardAccount,
			accountID,
			params.Name,
			params.ExternalRef,
			params.LowBalanceThreshold,
			params.Status,
			params.AssignedCampaignIDs)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update reward account: %w", err)
		}
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return RewardAccount{}, err
	}
	return account, nil
}

const sqlDeleteRewardAccount = `DELETE FROM reward_accounts WHERE id = $1`

// DeleteRewardAccount hard deletes a reward account
func (s *Store) DeleteRewardAccount(ctx context.Context, accountID uuid.UUID, audit AuditEntry) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlDeleteRewardAccount, accountID)
		if err != nil {
			return fmt.Errorf("failed to delete reward account: %w", err)
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
