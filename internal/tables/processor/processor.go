package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

// TableStore defines the database operations required by TableProcessor
type TableStore interface {
	CreateWorkingTable(ctx context.Context, template, name string, params store.WorkingTableParams) (int64, error)
	CreateTableAsSelect(ctx context.Context, name, query string, timeout time.Duration) (int64, error)
	CopyIntoNewTable(ctx context.Context, name string, columns []string, rows [][]any) (int64, error)
	TableColumns(ctx context.Context, name string) ([]store.ColumnInfo, error)
	CreateAuditLog(ctx context.Context, entry store.AuditEntry) error
}

var (
	ErrInvalidTableName = errors.New("invalid table name")
	ErrUnsafeQuery      = errors.New("query is not a single read-only SELECT")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidUpload    = errors.New("invalid CSV upload")
	ErrTableExists      = store.ErrTableExists
	ErrForbidden        = errors.New("not permitted to prepare tables")
)

const dateLayout = "2006-01-02"

type TableProcessor struct {
	store        TableStore
	queryTimeout time.Duration
	logger       *observability.Logger
	now          func() time.Time
}

func New(store TableStore, queryTimeout time.Duration, logger *observability.Logger) TableProcessor {
	return TableProcessor{
		store:        store,
		queryTimeout: queryTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// TemplateRequest builds a working table from a fixed template over an
// inclusive date range.
type TemplateRequest struct {
	TableName  string
	DateFrom   string
	DateTo     string
	CampaignID *uuid.UUID
}

// TableResult is the outcome of every table-building call. Exactly one of
// the row counters is set on success.
type TableResult struct {
	Success              bool               `json:"success"`
	TableName            string             `json:"table_name"`
	Columns              []store.ColumnInfo `json:"columns,omitempty"`
	RowCount             *int64             `json:"row_count,omitempty"`
	RowsInserted         *int64             `json:"rows_inserted,omitempty"`
	RowsCreated          *int64             `json:"rows_created,omitempty"`
	ExecutionTimeSeconds float64            `json:"execution_time_seconds"`
	Error                string             `json:"error,omitempty"`
}

// ParseDateRange turns inclusive calendar dates into a half-open interval.
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(from))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_from must be YYYY-MM-DD", ErrInvalidDateRange)
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(to))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_to must be YYYY-MM-DD", ErrInvalidDateRange)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_to is before date_from", ErrInvalidDateRange)
	}
	return start, end.AddDate(0, 0, 1), nil
}

func (p *TableProcessor) finish(ctx context.Context, a actor.Actor, name, source string, started time.Time, rows int64, result *TableResult) {
	result.Success = true
	result.TableName = name
	result.ExecutionTimeSeconds = p.now().Sub(started).Seconds()

	cols, err := p.store.TableColumns(ctx, name)
	if err != nil {
		p.logger.Error(ctx, "failed to describe prepared table", err)
	}
	result.Columns = cols

	audit := a.Audit("create", store.AuditResourceTable, name, store.JSONB{"source": source, "rows": rows})
	if err := p.store.CreateAuditLog(ctx, audit); err != nil {
		p.logger.Error(ctx, "failed to write table audit log", err)
	}
	p.logger.Info(ctx, fmt.Sprintf("prepared table with %d rows", rows))
}

// CreateFromTemplate builds table req.TableName from one of the fixed
// templates
func (p *TableProcessor) CreateFromTemplate(ctx context.Context, a actor.Actor, template string, req TemplateRequest) (TableResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "table_name", Value: req.TableName},
		observability.Field{Key: "template", Value: template},
	)

	if !a.CanPrepareData() {
		return TableResult{}, ErrForbidden
	}
	if err := ValidateTableName(req.TableName); err != nil {
		return TableResult{}, err
	}
	from, to, err := ParseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return TableResult{}, err
	}

	started := p.now()
	rows, err := p.store.CreateWorkingTable(ctx, template, req.TableName, store.WorkingTableParams{
		From:       from,
		To:         to,
		CampaignID: req.CampaignID,
	})
	if err != nil {
		if !errors.Is(err, store.ErrTableExists) {
			p.logger.Error(ctx, "failed to create working table", err)
		}
		return TableResult{}, err
	}

	result := TableResult{RowCount: &rows}
	p.finish(ctx, a, req.TableName, template, started, rows, &result)
	return result, nil
}

// CreateFromSQL materializes one vetted SELECT into a new table
func (p *TableProcessor) CreateFromSQL(ctx context.Context, a actor.Actor, tableName, query string) (TableResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "table_name", Value: tableName},
	)

	if !a.CanPrepareData() {
		return TableResult{}, ErrForbidden
	}
	if err := ValidateTableName(tableName); err != nil {
		return TableResult{}, err
	}
	vetted, err := VetSelect(query)
	if err != nil {
		p.logger.Warn(ctx, "rejected table query: "+err.Error())
		return TableResult{}, err
	}

	started := p.now()
	rows, err := p.store.CreateTableAsSelect(ctx, tableName, vetted, p.queryTimeout)
	if err != nil {
		if !errors.Is(err, store.ErrTableExists) {
			p.logger.Error(ctx, "failed to create table from query", err)
		}
		return TableResult{}, err
	}

	result := TableResult{RowsCreated: &rows}
	p.finish(ctx, a, tableName, "sql", started, rows, &result)
	return result, nil
}

// normalizeColumn folds a CSV header into a lowercase identifier.
func normalizeColumn(h string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	name := strings.TrimRight(b.String(), "_")
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "c_" + name
	}
	if len(name) > 63 {
		name = name[:63]
	}
	return name
}

// ReadCSV parses an upload into column names and rows. Headers are
// normalized to identifiers and must be unique.
func ReadCSV(r io.Reader) ([]string, [][]any, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: file is empty", ErrInvalidUpload)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		col := normalizeColumn(h)
		if seen[col] {
			return nil, nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidUpload, col)
		}
		seen[col] = true
		columns[i] = col
	}

	var rows [][]any
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
		}
		row := make([]any, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

// CreateFromFile loads a CSV upload into a new table of TEXT columns
func (p *TableProcessor) CreateFromFile(ctx context.Context, a actor.Actor, tableName string, file io.Reader) (TableResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "table_name", Value: tableName},
	)

	if !a.CanPrepareData() {
		return TableResult{}, ErrForbidden
	}
	if err := ValidateTableName(tableName); err != nil {
		return TableResult{}, err
	}
	columns, rows, err := ReadCSV(file)
	if err != nil {
		return TableResult{}, err
	}

	started := p.now()
	inserted, err := p.store.CopyIntoNewTable(ctx, tableName, columns, rows)
	if err != nil {
		if !errors.Is(err, store.ErrTableExists) {
			p.logger.Error(ctx, "failed to load uploaded table", err)
		}
		return TableResult{}, err
	}

	result := TableResult{RowsInserted: &inserted}
	p.finish(ctx, a, tableName, "file", started, inserted, &result)
	return result, nil
}
