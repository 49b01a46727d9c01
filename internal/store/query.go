package store

import (
	"fmt"
	"strings"
)

// filter accumulates AND-ed WHERE conditions with positional arguments.
type filter struct {
	conds []string
	args  []interface{}
}

// add appends a condition; each "?" in cond becomes the next placeholder.
func (f *filter) add(cond string, args ...interface{}) {
	for _, a := range args {
		f.args = append(f.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(f.args)), 1)
	}
	f.conds = append(f.conds, cond)
}

// search matches term case-insensitively against any of cols.
func (f *filter) search(term string, cols ...string) {
	if term == "" {
		return
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE ?"
	}
	args := make([]interface{}, len(cols))
	pattern := "%" + escapeLike(term) + "%"
	for i := range args {
		args[i] = pattern
	}
	f.add("("+strings.Join(parts, " OR ")+")", args...)
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the clause and args.
func (f *filter) page(limit, offset int) (string, []interface{}) {
	args := append(append([]interface{}{}, f.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(f.args)+1, len(f.args)+2), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
