package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/store"
)

// TransactionStore defines the database operations required by
// CourtIssueProcessor
type TransactionStore interface {
	ListTransactions(ctx context.Context, q store.TransactionQuery, limit, offset int) ([]store.Transaction, int, error)
	StreamTransactions(ctx context.Context, q store.TransactionQuery, fn func(store.Transaction) error) error
}

var (
	ErrInvalidQuery = errors.New("invalid court issue query")
	ErrForbidden    = errors.New("not permitted to query subscriber transactions")
)

const dateLayout = "2006-01-02"

var msisdnPattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

var exportHeader = []string{"id", "msisdn", "transaction_type", "channel", "amount", "reference", "occurred_at"}

type CourtIssueProcessor struct {
	store  TransactionStore
	logger *observability.Logger
}

func New(store TransactionStore, logger *observability.Logger) CourtIssueProcessor {
	return CourtIssueProcessor{
		store:  store,
		logger: logger,
	}
}

// QueryRequest selects one subscriber's transactions over inclusive dates.
type QueryRequest struct {
	MSISDN   string
	DataFrom string
	DataTo   string
	Page     int
	PageSize int
}

type TransactionPage struct {
	Items      []store.Transaction `json:"items"`
	Pagination pagination.Info     `json:"pagination"`
}

// BuildQuery validates req and converts its inclusive dates into the
// half-open range the store expects.
func BuildQuery(req QueryRequest) (store.TransactionQuery, error) {
	msisdn := strings.TrimSpace(req.MSISDN)
	if !msisdnPattern.MatchString(msisdn) {
		return store.TransactionQuery{}, fmt.Errorf("%w: msisdn must be 9 to 15 digits", ErrInvalidQuery)
	}
	from, err := time.Parse(dateLayout, strings.TrimSpace(req.DataFrom))
	if err != nil {
		return store.TransactionQuery{}, fmt.Errorf("%w: data_from must be YYYY-MM-DD", ErrInvalidQuery)
	}
	to, err := time.Parse(dateLayout, strings.TrimSpace(req.DataTo))
	if err != nil {
		return store.TransactionQuery{}, fmt.Errorf("%w: data_to must be YYYY-MM-DD", ErrInvalidQuery)
	}
	if to.Before(from) {
		return store.TransactionQuery{}, fmt.Errorf("%w: data_to is before data_from", ErrInvalidQuery)
	}
	return store.TransactionQuery{
		MSISDN: strings.TrimPrefix(msisdn, "+"),
		From:   from,
		To:     to.AddDate(0, 0, 1),
	}, nil
}

func canQuery(a actor.Actor) bool {
	return a.CanPrepareData() || a.CanApprove()
}

// QueryTransactions returns one page of a subscriber's transactions
func (p *CourtIssueProcessor) QueryTransactions(ctx context.Context, a actor.Actor, req QueryRequest) (TransactionPage, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "actor_id", Value: a.ID.String()})

	if !canQuery(a) {
		return TransactionPage{}, ErrForbidden
	}
	q, err := BuildQuery(req)
	if err != nil {
		return TransactionPage{}, err
	}

	page := pagination.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	items, total, err := p.store.ListTransactions(ctx, q, page.Limit(), page.Offset())
	if err != nil {
		p.logger.Error(ctx, "failed to query transactions", err)
		return TransactionPage{}, err
	}

	p.logger.Info(ctx, fmt.Sprintf("court issue query returned %d of %d transactions", len(items), total))
	return TransactionPage{Items: items, Pagination: pagination.NewInfo(total, page)}, nil
}

func transactionRecord(t store.Transaction) []string {
	return []string{
		strconv.FormatInt(t.ID, 10),
		t.MSISDN,
		t.TransactionType,
		t.Channel,
		strconv.FormatFloat(t.Amount, 'f', 2, 64),
		t.Reference,
		t.OccurredAt.UTC().Format(time.RFC3339),
	}
}

// ExportTransactions writes every matching transaction as CSV, ignoring
// paging.
func (p *CourtIssueProcessor) ExportTransactions(ctx context.Context, a actor.Actor, req QueryRequest, w io.Writer) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "actor_id", Value: a.ID.String()})

	if !canQuery(a) {
		return ErrForbidden
	}
	q, err := BuildQuery(req)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	rows := 0
	err = p.store.StreamTransactions(ctx, q, func(t store.Transaction) error {
		rows++
		return cw.Write(transactionRecord(t))
	})
	if err != nil {
		p.logger.Error(ctx, "failed to export transactions", err)
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	p.logger.Info(ctx, fmt.Sprintf("exported %d transactions", rows))
	return nil
}
