package social

import (
	"context"
	"sync"
	"time"

	"crisiswatch-api/core/domain"
)

// mockSearchClient returns a canned result or error and counts calls
type mockSearchClient struct {
	mu       sync.Mutex
	posts    []domain.RawSocialPost
	err      error
	requests []domain.SocialSearchRequest
}

func (m *mockSearchClient) SearchPosts(ctx context.Context, req domain.SocialSearchRequest) ([]domain.RawSocialPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.posts, nil
}

func (m *mockSearchClient) Authenticated() bool { return false }

func (m *mockSearchClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockSearchClient) lastRequest() domain.SocialSearchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.SocialSearchRequest{}
	}
	return m.requests[len(m.requests)-1]
}

// memCache is an in-memory Cache that records the TTL of each write
type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
	ttls  map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{
		items: make(map[string][]byte),
		ttls:  make(map[string]time.Duration),
	}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	return nil, errMiss
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	delete(c.ttls, key)
	return nil
}

func (c *memCache) ttlOf(key string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ttl, ok := c.ttls[key]
	return ttl, ok
}

func (c *memCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

type missError struct{}

func (missError) Error() string { return "key not found" }

var errMiss = missError{}

// mockLogger records warnings for assertions
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) warningCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warnings)
}
