package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

var (
	ErrTableExists     = errors.New("table already exists")
	ErrUnknownTemplate = errors.New("unknown table template")
)

// Working table templates
const (
	TemplateActiveCustomers   = "active_customer"
	TemplateVLRAttached       = "vlr_attached"
	TemplateRegisteredMpesa   = "registered_mpesa"
	TemplateTargeted          = "targeted"
	TemplateRewardedCustomers = "rewarded_customer"
)

type tableTemplate struct {
	columns      string
	insert       string
	usesCampaign bool
}

// Every insert reads $1 (inclusive start) and $2 (exclusive end); templates
// that use a campaign also read $3, which may be NULL for all campaigns.
var tableTemplates = map[string]tableTemplate{
	TemplateActiveCustomers: {
		columns: `msisdn TEXT PRIMARY KEY, last_transaction_at TIMESTAMPTZ NOT NULL, transaction_count INTEGER NOT NULL`,
		insert: `INSERT INTO %s (msisdn, last_transaction_at, transaction_count)
SELECT msisdn, MAX(occurred_at), COUNT(*)
FROM transactions
WHERE occurred_at >= $1 AND occurred_at < $2
GROUP BY msisdn`,
	},
	TemplateVLRAttached: {
		columns: `msisdn TEXT PRIMARY KEY, vlr_attached_at TIMESTAMPTZ NOT NULL`,
		insert: `INSERT INTO %s (msisdn, vlr_attached_at)
SELECT msisdn, vlr_attached_at
FROM subscribers
WHERE vlr_attached_at >= $1 AND vlr_attached_at < $2`,
	},
	TemplateRegisteredMpesa: {
		columns: `msisdn TEXT PRIMARY KEY, registered_at TIMESTAMPTZ NOT NULL`,
		insert: `INSERT INTO %s (msisdn, registered_at)
SELECT msisdn, registered_at
FROM subscribers
WHERE mpesa_registered AND registered_at >= $1 AND registered_at < $2`,
	},
	TemplateTargeted: {
		columns: `campaign_id UUID NOT NULL, msisdn TEXT NOT NULL, targeted_at TIMESTAMPTZ NOT NULL, PRIMARY KEY (campaign_id, msisdn)`,
		insert: `INSERT INTO %s (campaign_id, msisdn, targeted_at)
SELECT campaign_id, msisdn, targeted_at
FROM campaign_targets
WHERE targeted_at >= $1 AND targeted_at < $2
  AND ($3::uuid IS NULL OR campaign_id = $3::uuid)`,
		usesCampaign: true,
	},
	TemplateRewardedCustomers: {
		columns: `msisdn TEXT PRIMARY KEY, reward_count INTEGER NOT NULL, total_amount NUMERIC(14, 2) NOT NULL, last_rewarded_at TIMESTAMPTZ NOT NULL`,
		insert: `INSERT INTO %s (msisdn, reward_count, total_amount, last_rewarded_at)
SELECT msisdn, COUNT(*), SUM(amount), MAX(issued_at)
FROM reward_issuances
WHERE issued_at >= $1 AND issued_at < $2
  AND ($3::uuid IS NULL OR campaign_id = $3::uuid)
GROUP BY msisdn`,
		usesCampaign: true,
	},
}

// WorkingTableParams are the template inputs.
type WorkingTableParams struct {
	From       time.Time
	To         time.Time
	CampaignID *uuid.UUID
}

func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

const sqlTableExists = `
SELECT EXISTS (
    SELECT 1 FROM information_schema.tables
    WHERE table_schema = current_schema() AND table_name = $1
)`

// TableExists reports whether a table named name exists in the current schema.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlTableExists, name); err != nil {
		return false, fmt.Errorf("failed to check table: %w", err)
	}
	return exists, nil
}

// CreateWorkingTable builds table name from template and returns the number
// of rows inserted.
func (s *Store) CreateWorkingTable(ctx context.Context, template, name string, params WorkingTableParams) (int64, error) {
	tmpl, ok := tableTemplates[template]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTemplate, template)
	}

	var inserted int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := createTable(ctx, tx, name, tmpl.columns); err != nil {
			return err
		}

		args := []interface{}{params.From, params.To}
		if tmpl.usesCampaign {
			args = append(args, params.CampaignID)
		}
		res, err := tx.ExecContext(ctx, fmt.Sprintf(tmpl.insert, quoteIdent(name)), args...)
		if err != nil {
			return fmt.Errorf("failed to populate table: %w", err)
		}
		inserted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func createTable(ctx context.Context, tx *sqlx.Tx, name, columns string) error {
	var exists bool
	if err := tx.GetContext(ctx, &exists, sqlTableExists, name); err != nil {
		return fmt.Errorf("failed to check table: %w", err)
	}
	if exists {
		return ErrTableExists
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), columns)); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// CreateTableAsSelect materializes a caller-supplied SELECT into name and
// returns the number of rows created. The query must already be vetted as a
// single read-only statement.
func (s *Store) CreateTableAsSelect(ctx context.Context, name, query string, timeout time.Duration) (int64, error) {
	var created int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists, sqlTableExists, name); err != nil {
			return fmt.Errorf("failed to check table: %w", err)
		}
		if exists {
			return ErrTableExists
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", timeout.Milliseconds())); err != nil {
			return fmt.Errorf("failed to set statement timeout: %w", err)
		}
		res, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s AS %s", quoteIdent(name), query))
		if err != nil {
			return fmt.Errorf("failed to create table from query: %w", err)
		}
		created, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// CopyIntoNewTable creates name with one TEXT column per entry in columns
// and bulk-loads rows with COPY.
func (s *Store) CopyIntoNewTable(ctx context.Context, name string, columns []string, rows [][]any) (int64, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	defs := ""
	for i, c := range columns {
		if i > 0 {
			defs += ", "
		}
		defs += quoteIdent(c) + " TEXT"
	}

	var copied int64
	err = conn.Raw(func(driverConn any) error {
		pgxConn := driverConn.(*stdlib.Conn).Conn()
		return pgx.BeginFunc(ctx, pgxConn, func(tx pgx.Tx) error {
			var exists bool
			if err := tx.QueryRow(ctx, sqlTableExists, name).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check table: %w", err)
			}
			if exists {
				return ErrTableExists
			}
			if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), defs)); err != nil {
				return fmt.Errorf("failed to create table: %w", err)
			}
			n, err := tx.CopyFrom(ctx, pgx.Identifier{name}, columns, pgx.CopyFromRows(rows))
			if err != nil {
				return fmt.Errorf("failed to copy rows: %w", err)
			}
			copied = n
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return copied, nil
}

const sqlTableColumns = `
SELECT column_name, data_type
FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = $1
ORDER BY ordinal_position`

// TableColumns describes the columns of table name
func (s *Store) TableColumns(ctx context.Context, name string) ([]ColumnInfo, error) {
	cols := []ColumnInfo{}
	if err := s.db.SelectContext(ctx, &cols, sqlTableColumns, name); err != nil {
		return nil, fmt.Errorf("failed to describe table: %w", err)
	}
	return cols, nil
}

// CountTableRows counts the rows of table name
func (s *Store) CountTableRows(ctx context.Context, name string) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+quoteIdent(name)); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}
