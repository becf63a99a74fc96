package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/segyhp/gym-backoffice/internal/config"
	"github.com/segyhp/gym-backoffice/internal/domain"
)

// SummaryCache stores computed monthly summaries.
type SummaryCache interface {
	// Get returns the cached summary and true, or nil and false on a miss.
	Get(ctx context.Context, year int, month time.Month) (*domain.FinancialSummary, bool, error)
	Set(ctx context.Context, summary *domain.FinancialSummary) error
	Delete(ctx context.Context, periods ...Period) error
}

// Period names one cached month.
type Period struct {
	Year  int
	Month time.Month
}

// Key returns the redis key of a month's summary, e.g. finance:summary:2024-06.
func Key(year int, month time.Month) string {
	return fmt.Sprintf("finance:summary:%04d-%02d", year, int(month))
}

// NewRedisClient connects to redis. An empty address disables caching and
// returns a nil client.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		slog.Warn("REDIS_ADDR not set, summary caching disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	return client, nil
}

type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache returns a redis backed cache, or a no-op cache when client is nil.
func NewSummaryCache(client *redis.Client, ttl time.Duration) SummaryCache {
	if client == nil {
		return Disabled{}
	}
	return &redisSummaryCache{client: client, ttl: ttl}
}

func (c *redisSummaryCache) Get(ctx context.Context, year int, month time.Month) (*domain.FinancialSummary, bool, error) {
	data, err := c.client.Get(ctx, Key(year, month)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var summary domain.FinancialSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, false, fmt.Errorf("decode cached summary: %w", err)
	}

	return &summary, true, nil
}

func (c *redisSummaryCache) Set(ctx context.Context, summary *domain.FinancialSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	if err := c.client.Set(ctx, Key(summary.Year, summary.Month), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *redisSummaryCache) Delete(ctx context.Context, periods ...Period) error {
	if len(periods) == 0 {
		return nil
	}

	keys := make([]string, 0, len(periods))
	for _, p := range periods {
		keys = append(keys, Key(p.Year, p.Month))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Disabled is the cache used when redis is not configured. Every Get misses.
type Disabled struct{}

func (Disabled) Get(context.Context, int, time.Month) (*domain.FinancialSummary, bool, error) {
	return nil, false, nil
}

func (Disabled) Set(context.Context, *domain.FinancialSummary) error { return nil }

func (Disabled) Delete(context.Context, ...Period) error { return nil }
