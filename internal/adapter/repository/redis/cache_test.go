package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "company:info", `{"Name":"Coop"}`, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "company:info")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != `{"Name":"Coop"}` {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestCacheGetMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)

	val, err := cache.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if val != "" {
		t.Fatalf("expected empty value on miss, got %s", val)
	}
}

func TestCacheExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "company:info", "stale", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	val, err := cache.Get(ctx, "company:info")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != "" {
		t.Fatalf("expected expired entry to read empty, got %s", val)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "company:info", "value", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "company:info"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	val, err := cache.Get(ctx, "company:info")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != "" {
		t.Fatalf("expected empty value after delete, got %s", val)
	}
}
