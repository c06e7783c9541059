package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

func TestMemoryCacheEvictsOldest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := NewMemoryCache(2)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	c.Set(ctx, "arroz", models.FoodRecord{Name: "rice"})
	c.Set(ctx, "frango", models.FoodRecord{Name: "chicken"})
	if _, ok := c.Get(ctx, "arroz"); !ok {
		t.Fatalf("arroz should be cached")
	}
	c.Set(ctx, "batata", models.FoodRecord{Name: "potato"})

	if _, ok := c.Get(ctx, "frango"); ok {
		t.Fatalf("least recently used entry should be evicted")
	}
	if rec, ok := c.Get(ctx, "batata"); !ok || rec.Name != "potato" {
		t.Fatalf("newest entry missing: %+v %v", rec, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("cache should stay bounded, len=%d", c.Len())
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	c, err := OpenRedisCache(RedisConfig{Addr: addr, TTL: time.Minute}, logger.Nop())
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	key := "test-" + time.Now().Format(time.RFC3339Nano)
	if _, ok := c.Get(ctx, key); ok {
		t.Fatalf("fresh key should miss")
	}
	want := models.FoodRecord{ID: "usda-1", Name: "rice", CaloriesPer100: 130, Source: models.SourceRemote}
	c.Set(ctx, key, want)
	got, ok := c.Get(ctx, key)
	if !ok || got != want {
		t.Fatalf("Get = %+v %v, want %+v", got, ok, want)
	}
}
