package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	redisClient "engage-server/internal/clients/redis"
	"engage-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Result represents the result of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits requests per key over a sliding window. It uses Redis
// sorted sets when Redis is enabled and process memory otherwise.
type Service struct {
	redis  *redisClient.Client
	limit  int
	window time.Duration
	logger *observability.Logger
	now    func() time.Time

	mu        sync.Mutex
	memory    map[string][]time.Time
	lastSweep time.Time
}

// NewService creates a rate limiter allowing limit requests per window.
func NewService(redis *redisClient.Client, limit int, window time.Duration, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  limit,
		window: window,
		logger: logger,
		now:    time.Now,
		memory: make(map[string][]time.Time),
	}
}

// Check records one request under key and reports whether it is allowed.
func (s *Service) Check(ctx context.Context, key string) (Result, error) {
	if s.limit <= 0 {
		return Result{Allowed: true}, nil
	}
	if s.redis.IsEnabled() {
		result, err := s.checkRedis(ctx, key)
		if err != nil {
			s.logger.Warn(ctx, "Redis rate limit check failed, falling back to memory: "+err.Error())
			return s.checkMemory(key), nil
		}
		return result, nil
	}
	return s.checkMemory(key), nil
}

func (s *Service) denied(oldest, now time.Time) Result {
	reset := oldest.Add(s.window)
	retry := reset.Sub(now)
	if retry < 0 {
		retry = 0
	}
	return Result{
		Allowed:      false,
		Limit:        s.limit,
		Remaining:    0,
		ResetAt:      reset,
		RetryAfterMs: int(retry.Milliseconds()),
	}
}

// checkRedis keeps one sorted set per key, scored by request time in ms.
func (s *Service) checkRedis(ctx context.Context, key string) (Result, error) {
	client := s.redis.GetClient()
	redisKey := "rl:" + key
	now := s.now()
	windowStart := now.Add(-s.window)

	if err := client.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart.UnixMilli(), 10)).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		oldest, err := client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return s.denied(now, now), nil
		}
		return s.denied(time.UnixMilli(int64(oldest[0].Score)), now), nil
	}

	_, err = client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMilli()), Member: uuid.NewString()})
		pipe.Expire(ctx, redisKey, s.window)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(s.window),
	}, nil
}

func (s *Service) checkMemory(key string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	windowStart := now.Add(-s.window)
	if now.Sub(s.lastSweep) >= s.window {
		s.sweep(windowStart)
		s.lastSweep = now
	}

	hits := s.memory[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= s.limit {
		s.memory[key] = kept
		return s.denied(kept[0], now)
	}

	kept = append(kept, now)
	s.memory[key] = kept
	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - len(kept),
		ResetAt:   kept[0].Add(s.window),
	}
}

// sweep drops keys whose newest hit fell out of the window.
func (s *Service) sweep(windowStart time.Time) {
	for key, hits := range s.memory {
		if len(hits) == 0 || !hits[len(hits)-1].After(windowStart) {
			delete(s.memory, key)
		}
	}
}
