// Package redis caches per-user effective action catalogs in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/config"
	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

const (
	keyPrefix = "moreminutes:catalog:"
	genPrefix = "moreminutes:catalog-gen:"
)

// kv is the subset of the go-redis client the cache uses.
type kv interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Incr(ctx context.Context, key string) *goredis.IntCmd
}

// CatalogCache stores effective catalogs as JSON with a TTL. Entries are
// keyed by a per-user generation counter that Invalidate increments; the
// counter itself has no TTL.
type CatalogCache struct {
	rdb kv
	ttl time.Duration
}

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewCatalogCache creates a cache over client.
func NewCatalogCache(client kv, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: client, ttl: ttl}
}

func key(userID uuid.UUID, gen int64) string {
	return keyPrefix + userID.String() + ":" + strconv.FormatInt(gen, 10)
}

func genKey(userID uuid.UUID) string { return genPrefix + userID.String() }

// Generation returns the current cache generation of the user, 0 if unset.
func (c *CatalogCache) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	gen, err := c.rdb.Get(ctx, genKey(userID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get catalog generation: %w", err)
	}
	return gen, nil
}

// Get returns the catalog cached for gen or domain.ErrNotFound on a miss.
func (c *CatalogCache) Get(ctx context.Context, userID uuid.UUID, gen int64) ([]domain.ActionDefinition, error) {
	raw, err := c.rdb.Get(ctx, key(userID, gen)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get catalog: %w", err)
	}

	var entries []cachedAction
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode cached catalog: %w", err)
	}

	defs := make([]domain.ActionDefinition, 0, len(entries))
	for _, e := range entries {
		defs = append(defs, e.toDomain())
	}
	return defs, nil
}

// Set stores defs under gen for the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, userID uuid.UUID, gen int64, defs []domain.ActionDefinition) error {
	entries := make([]cachedAction, 0, len(defs))
	for _, d := range defs {
		entries = append(entries, fromDomain(d))
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := c.rdb.Set(ctx, key(userID, gen), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set catalog: %w", err)
	}
	return nil
}

// Invalidate moves the user to the next generation and drops the entry of
// the previous one.
func (c *CatalogCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	gen, err := c.rdb.Incr(ctx, genKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("redis incr catalog generation: %w", err)
	}
	if err := c.rdb.Del(ctx, key(userID, gen-1)).Err(); err != nil {
		return fmt.Errorf("redis del catalog: %w", err)
	}
	return nil
}

// NoopCache never stores anything. It is used when Redis is not configured.
type NoopCache struct{}

func (NoopCache) Generation(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (NoopCache) Get(context.Context, uuid.UUID, int64) ([]domain.ActionDefinition, error) {
	return nil, domain.ErrNotFound
}

func (NoopCache) Set(context.Context, uuid.UUID, int64, []domain.ActionDefinition) error { return nil }

func (NoopCache) Invalidate(context.Context, uuid.UUID) error { return nil }
