package memory

import (
	"context"
	"bytes"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "key1", []byte("value1"), time.Minute)
	if err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, []byte("value1")) {
		t.Errorf("Get = %q, want value1", got)
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache()

	_, err := cache.Get(context.Background(), "absent")

	if err == nil {
		t.Error("Get should return error for missing key")
	}
}

func TestMemoryCache_ExpiredEntryBehavesAsMiss(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); err == nil {
		t.Error("expired entry must behave as a miss")
	}
}

func TestMemoryCache_UpsertSameKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "k", []byte("first"), time.Minute)
	_ = cache.Set(ctx, "k", []byte("second"), time.Minute)

	got, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %q, want last write to win", got)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "k", []byte("v"), time.Minute)
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("Get should miss after Delete")
	}
}

func TestMemoryCache_DeleteMissingKeyIsNil(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "k", []byte("abc"), time.Minute)

	got, _ := cache.Get(ctx, "k")
	got[0] = 'z'

	again, _ := cache.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("cached value mutated through returned slice: %q", again)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("Get should fail with cancelled context")
	}
	if err := cache.Set(ctx, "k", []byte("v"), time.Minute); err == nil {
		t.Error("Set should fail with cancelled context")
	}
}
