package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVetSelect(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{name: "plain select", query: "SELECT msisdn FROM transactions;", want: "SELECT msisdn FROM transactions"},
		{name: "lowercase with", query: "with t as (select 1 as n) select n from t", want: "with t as (select 1 as n) select n from t"},
		{name: "literal keeps semicolon and keyword", query: "SELECT 'drop table; x' AS note", want: "SELECT 'drop table; x' AS note"},
		{name: "quoted identifier named like a keyword", query: `SELECT "update" FROM audit_copy`, want: `SELECT "update" FROM audit_copy`},
		{name: "trailing comment dropped", query: "SELECT 1 -- trailing; comment", want: "SELECT 1"},
		{name: "keyword inside identifier", query: "SELECT last_update FROM t", want: "SELECT last_update FROM t"},
		{name: "stacked statement", query: "SELECT 1; DROP TABLE users", wantErr: true},
		{name: "not a select", query: "DELETE FROM users", wantErr: true},
		{name: "data-modifying cte", query: "WITH d AS (DELETE FROM users RETURNING *) SELECT * FROM d", wantErr: true},
		{name: "select into", query: "SELECT * INTO stash FROM users", wantErr: true},
		{name: "dollar quoting", query: "SELECT $$x$$", wantErr: true},
		{name: "unterminated comment", query: "SELECT 1 /* open", wantErr: true},
		{name: "unterminated literal", query: "SELECT 'open", wantErr: true},
		{name: "empty", query: " ; ", wantErr: true},
		{name: "comment hides nothing", query: "/* SELECT */ DROP TABLE users", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VetSelect(tt.query)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsafeQuery)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTableName(t *testing.T) {
	valid := []string{"a", "active_customers_2026", "x1_"}
	invalid := []string{"", "1abc", "Active", "has-dash", "has space", strings.Repeat("a", 64)}

	for _, name := range valid {
		assert.NoError(t, ValidateTableName(name), name)
	}
	for _, name := range invalid {
		assert.ErrorIs(t, ValidateTableName(name), ErrInvalidTableName, name)
	}
}
