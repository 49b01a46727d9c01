package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Placeholders(t *testing.T) {
	var f filter
	f.add("status = ?", "Draft")
	f.search("spring_sale", "name", "description")
	f.add("created_at BETWEEN ? AND ?", 1, 2)

	assert.Equal(t, " WHERE status = $1 AND (name ILIKE $2 OR description ILIKE $3) AND created_at BETWEEN $4 AND $5", f.where())
	assert.Equal(t, []interface{}{"Draft", `%spring\_sale%`, `%spring\_sale%`, 1, 2}, f.args)

	clause, args := f.page(10, 20)
	assert.Equal(t, " LIMIT $6 OFFSET $7", clause)
	assert.Len(t, args, 7)
	assert.Len(t, f.args, 5)
}

func TestFilter_Empty(t *testing.T) {
	var f filter
	f.search("")
	assert.Equal(t, "", f.where())
	clause, _ := f.page(5, 0)
	assert.Equal(t, " LIMIT $1 OFFSET $2", clause)
}

func TestStringArray_ScanQuoted(t *testing.T) {
	var a StringArray
	assert.NoError(t, a.Scan(`{abc,"d e"}`))
	assert.Equal(t, StringArray{"abc", "d e"}, a)

	assert.NoError(t, a.Scan([]byte("{}")))
	assert.Empty(t, a)
}
