package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

// LookupCache remembers successful remote lookups by query. Misses are never stored.
type LookupCache interface {
	Get(ctx context.Context, key string) (models.FoodRecord, bool)
	Set(ctx context.Context, key string, rec models.FoodRecord)
}

// MemoryCache is a bounded in-process LRU
type MemoryCache struct {
	entries *lru.Cache[string, models.FoodRecord]
}

func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = 1024
	}
	entries, err := lru.New[string, models.FoodRecord](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}
	return &MemoryCache{entries: entries}, nil
}

func (c *MemoryCache) Get(_ context.Context, key string) (models.FoodRecord, bool) {
	return c.entries.Get(key)
}

func (c *MemoryCache) Set(_ context.Context, key string, rec models.FoodRecord) {
	c.entries.Add(key, rec)
}

func (c *MemoryCache) Len() int {
	return c.entries.Len()
}

// RedisCache shares remote lookups between processes. Failures degrade to a miss.
type RedisCache struct {
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
	log    *logger.Logger
}

// RedisConfig holds the connection settings of the shared cache
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// OpenRedisCache dials and pings redis
func OpenRedisCache(cfg RedisConfig, log *logger.Logger) (*RedisCache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisCache(rdb, cfg.TTL, log), nil
}

func NewRedisCache(rdb goredis.UniversalClient, ttl time.Duration, log *logger.Logger) *RedisCache {
	return &RedisCache{
		rdb:    rdb,
		prefix: "calboost:usda:",
		ttl:    ttl,
		log:    log.With("service", "RedisLookupCache"),
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (models.FoodRecord, bool) {
	raw, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return models.FoodRecord{}, false
	}
	if err != nil {
		c.log.Warn("redis cache get failed", "key", key, "error", err)
		return models.FoodRecord{}, false
	}
	var rec models.FoodRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		c.log.Warn("redis cache entry unreadable", "key", key, "error", err)
		return models.FoodRecord{}, false
	}
	return rec, true
}

func (c *RedisCache) Set(ctx context.Context, key string, rec models.FoodRecord) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("redis cache set failed", "key", key, "error", err)
	}
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
