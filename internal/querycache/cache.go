// Package querycache caches list responses keyed by resource and request
// parameters. Mutations never touch cached entries directly: they bump the
// resource generation after the write has succeeded, which orphans every
// cached page of that resource at once.
package querycache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	redisclient "engage-server/internal/clients/redis"
	"engage-server/internal/observability"
)

var ErrMiss = errors.New("querycache: miss")

// Backend is the key/value store behind the cache.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}

// Cache is the list cache shared by the CRUD processors.
type Cache struct {
	backend Backend
	ttl     time.Duration
	logger  *observability.Logger
}

// New picks Redis when the client is enabled and process memory otherwise.
func New(client *redisclient.Client, ttl time.Duration, logger *observability.Logger) *Cache {
	if client.IsEnabled() {
		return NewWithBackend(redisBackend{client: client}, ttl, logger)
	}
	return NewWithBackend(NewMemoryBackend(), ttl, logger)
}

// NewWithBackend builds a cache over an explicit backend.
func NewWithBackend(backend Backend, ttl time.Duration, logger *observability.Logger) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{backend: backend, ttl: ttl, logger: logger}
}

// Key derives the cache key for a resource listing with the given
// parameters. params must be JSON-serializable; map keys are sorted by
// encoding/json so equal parameter sets hash equally.
func Key(resource string, params any) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache params: %w", err)
	}
	sum := sha1.Sum(raw)
	return resource + ":" + hex.EncodeToString(sum[:]), nil
}

func generationKey(resource string) string {
	return "querycache:gen:" + resource
}

func (c *Cache) generation(ctx context.Context, resource string) (string, error) {
	raw, err := c.backend.Get(ctx, generationKey(resource))
	if err != nil {
		if errors.Is(err, ErrMiss) || errors.Is(err, redisclient.ErrNil) {
			return "0", nil
		}
		return "", err
	}
	return string(raw), nil
}

func (c *Cache) entryKey(ctx context.Context, resource string, params any) (string, error) {
	gen, err := c.generation(ctx, resource)
	if err != nil {
		return "", err
	}
	key, err := Key(resource, params)
	if err != nil {
		return "", err
	}
	return "querycache:" + gen + ":" + key, nil
}

// Slot is the location a lookup resolved to. It pins the resource
// generation seen by Get, so a value computed before an invalidation is
// written into the orphaned keyspace and never served.
type Slot struct {
	key string
}

// Get loads a cached value into dest and returns the slot a later Put must
// write to. Any backend failure is reported as a miss so the caller falls
// through to the store.
func (c *Cache) Get(ctx context.Context, resource string, params any, dest any) (Slot, bool) {
	key, err := c.entryKey(ctx, resource, params)
	if err != nil {
		c.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "cache_error", Value: err.Error()}), "query cache lookup failed")
		return Slot{}, false
	}
	slot := Slot{key: key}
	raw, err := c.backend.Get(ctx, key)
	if err != nil {
		return slot, false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return slot, false
	}
	return slot, true
}

// Put stores value in slot. An empty slot is ignored. Failures are logged,
// not returned.
func (c *Cache) Put(ctx context.Context, slot Slot, value any) {
	if slot.key == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Error(ctx, "failed to encode cached value", err)
		return
	}
	if err := c.backend.Set(ctx, slot.key, raw, c.ttl); err != nil {
		c.logger.Error(ctx, "failed to store cached value", err)
	}
}

// InvalidateResource drops every cached listing of resource.
func (c *Cache) InvalidateResource(ctx context.Context, resource string) {
	if _, err := c.backend.Incr(ctx, generationKey(resource)); err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "resource", Value: resource})
		c.logger.Error(ctx, "failed to invalidate query cache", err)
	}
}

type redisBackend struct {
	client *redisclient.Client
}

func (r redisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return r.client.Get(ctx, key)
}

func (r redisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl)
}

func (r redisBackend) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key)
}

// MemoryBackend is the single-process fallback.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string]memoryEntry
	now  func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return nil, ErrMiss
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		delete(m.data, key)
		return nil, ErrMiss
	}
	return entry.value, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryBackend) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	if entry, ok := m.data[key]; ok {
		parsed, err := strconv.ParseInt(string(entry.value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value at %s is not a counter: %w", key, err)
		}
		n = parsed
	}
	n++
	m.data[key] = memoryEntry{value: []byte(strconv.FormatInt(n, 10))}
	return n, nil
}
