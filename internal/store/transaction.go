package store

import (
	"context"
	"fmt"
	"time"
)

const transactionColumns = `id, msisdn, transaction_type, channel, amount, reference, occurred_at`

// TransactionQuery selects one subscriber's transactions in [From, To).
type TransactionQuery struct {
	MSISDN string
	From   time.Time
	To     time.Time
}

const sqlCountTransactions = `
SELECT COUNT(*) FROM transactions
WHERE msisdn = $1 AND occurred_at >= $2 AND occurred_at < $3`

const sqlListTransactions = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE msisdn = $1 AND occurred_at >= $2 AND occurred_at < $3
ORDER BY occurred_at, id
LIMIT $4 OFFSET $5`

// ListTransactions returns one page of a subscriber's transactions and the
// total in range.
func (s *Store) ListTransactions(ctx context.Context, q TransactionQuery, limit, offset int) ([]Transaction, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountTransactions, q.MSISDN, q.From, q.To); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	txns := []Transaction{}
	if err := s.db.SelectContext(ctx, &txns, sqlListTransactions, q.MSISDN, q.From, q.To, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, total, nil
}

// StreamTransactions calls fn for every transaction in range, in order,
// without loading the full result into memory.
func (s *Store) StreamTransactions(ctx context.Context, q TransactionQuery, fn func(Transaction) error) error {
	rows, err := s.db.QueryxContext(ctx, `
SELECT `+transactionColumns+`
FROM transactions
WHERE msisdn = $1 AND occurred_at >= $2 AND occurred_at < $3
ORDER BY occurred_at, id`, q.MSISDN, q.From, q.To)
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t Transaction
		if err := rows.StructScan(&t); err != nil {
			return fmt.Errorf("failed to scan transaction: %w", err)
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return rows.Err()
}
