package updates

import (
	"context"
	"sync"
	"time"

	"crisiswatch-api/core/domain"
)

// mockIngestor returns canned batches per source URL and counts fetches
type mockIngestor struct {
	mu      sync.Mutex
	batches map[string][]domain.UpdateItem
	fetches int
}

func (m *mockIngestor) Fetch(ctx context.Context, source domain.FeedSource) []domain.UpdateItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches++
	return m.batches[source.URL]
}

func (m *mockIngestor) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

// memCache is a simple in-memory Cache for aggregation tests
type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string][]byte)}
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
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
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
