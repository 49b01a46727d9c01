package querycache

import (
	"context"
	"testing"
	"time"

	"engage-server/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listParams struct {
	Page   int    `json:"page"`
	Search string `json:"search"`
}

type listResult struct {
	Items []string `json:"items"`
}

func newTestCache() (*Cache, *MemoryBackend) {
	backend := NewMemoryBackend()
	return NewWithBackend(backend, time.Minute, observability.NewNopLogger()), backend
}

// fill stores value for resource/params the way a processor does after a miss.
func fill(t *testing.T, c *Cache, resource string, params listParams, value listResult) {
	t.Helper()
	var got listResult
	slot, ok := c.Get(context.Background(), resource, params, &got)
	require.False(t, ok)
	c.Put(context.Background(), slot, value)
}

func lookup(c *Cache, resource string, params listParams) (listResult, bool) {
	var got listResult
	_, ok := c.Get(context.Background(), resource, params, &got)
	return got, ok
}

func TestCache_PutGet(t *testing.T) {
	c, _ := newTestCache()

	fill(t, c, "segments", listParams{Page: 1}, listResult{Items: []string{"a"}})

	got, ok := lookup(c, "segments", listParams{Page: 1})
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, got.Items)

	_, ok = lookup(c, "segments", listParams{Page: 2})
	assert.False(t, ok)
	_, ok = lookup(c, "reports", listParams{Page: 1})
	assert.False(t, ok)
}

func TestCache_InvalidateResource(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()

	fill(t, c, "segments", listParams{Page: 1}, listResult{Items: []string{"a"}})
	fill(t, c, "segments", listParams{Page: 2, Search: "x"}, listResult{Items: []string{"b"}})
	fill(t, c, "reports", listParams{Page: 1}, listResult{Items: []string{"r"}})

	c.InvalidateResource(ctx, "segments")

	_, ok := lookup(c, "segments", listParams{Page: 1})
	assert.False(t, ok)
	_, ok = lookup(c, "segments", listParams{Page: 2, Search: "x"})
	assert.False(t, ok)
	_, ok = lookup(c, "reports", listParams{Page: 1})
	assert.True(t, ok)
}

func TestCache_PutAfterInvalidationIsNotServed(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()

	var got listResult
	slot, ok := c.Get(ctx, "segments", listParams{Page: 1}, &got)
	require.False(t, ok)

	// A mutation commits while the reader is still loading from the store.
	c.InvalidateResource(ctx, "segments")
	c.Put(ctx, slot, listResult{Items: []string{"old"}})

	_, ok = lookup(c, "segments", listParams{Page: 1})
	assert.False(t, ok)

	fill(t, c, "segments", listParams{Page: 1}, listResult{Items: []string{"new"}})
	got, ok = lookup(c, "segments", listParams{Page: 1})
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, got.Items)
}

func TestCache_PutEmptySlotIgnored(t *testing.T) {
	c, backend := newTestCache()
	c.Put(context.Background(), Slot{}, listResult{Items: []string{"x"}})
	assert.Empty(t, backend.data)
}

func TestMemoryBackend_Expiry(t *testing.T) {
	backend := NewMemoryBackend()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	backend.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "k", []byte("v"), time.Second))
	_, err := backend.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = backend.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestKey_Stable(t *testing.T) {
	k1, err := Key("segments", map[string]any{"b": 1, "a": "x"})
	require.NoError(t, err)
	k2, err := Key("segments", map[string]any{"a": "x", "b": 1})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}
