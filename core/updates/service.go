// ABOUTME: OfficialUpdatesAggregator merges, classifies, filters and paginates feed items
// ABOUTME: Cache-aside per query; feed failures degrade to partial or empty results

package updates

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"crisiswatch-api/core/domain"
	"crisiswatch-api/core/interfaces"
)

const (
	updatesTTL = time.Hour
	statsTTL   = 2 * time.Hour
	statsKey   = "official_updates:stats"

	// statsSampleSize is the "large count" used when recomputing
	// statistics over the merged feeds.
	statsSampleSize = 200
)

// Ingestor fetches one feed. Implemented by core/ingest.
type Ingestor interface {
	Fetch(ctx context.Context, source domain.FeedSource) []domain.UpdateItem
}

// Service aggregates official updates across the configured feeds
type Service struct {
	deps     interfaces.Dependencies
	ingestor Ingestor
	sources  []domain.FeedSource
}

// NewService creates a new updates aggregation service
func NewService(deps interfaces.Dependencies, ingestor Ingestor, sources []domain.FeedSource) *Service {
	return &Service{
		deps:     deps,
		ingestor: ingestor,
		sources:  sources,
	}
}

// GetLatest returns the newest items across all feeds with no filters.
func (s *Service) GetLatest(ctx context.Context, count int) []domain.UpdateItem {
	return s.GetUpdates(ctx, domain.UpdateQuery{Count: count})
}

// GetUpdates returns items matching the query. It never fails: a cold
// cache with all feeds down yields an empty slice.
func (s *Service) GetUpdates(ctx context.Context, query domain.UpdateQuery) []domain.UpdateItem {
	key := query.CacheKey()
	if cached := s.getCachedItems(ctx, key); cached != nil {
		return cached
	}

	merged := s.ingestAll(ctx)
	if len(merged) == 0 {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("No data from any configured feed", map[string]interface{}{
				"sources": len(s.sources),
			})
		}
		return []domain.UpdateItem{}
	}

	filtered := applyFilters(merged, query)

	// Newest first; unparsable dates already carry the ingestion time.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
	})

	if count := query.EffectiveCount(); len(filtered) > count {
		filtered = filtered[:count]
	}

	s.cacheItems(ctx, key, filtered, updatesTTL)

	return filtered
}

// GetStats derives per-disaster-type aggregates from the merged feeds.
func (s *Service) GetStats(ctx context.Context) *domain.DisasterStats {
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, statsKey); err == nil && data != nil {
			var stats domain.DisasterStats
			if err := json.Unmarshal(data, &stats); err == nil {
				return &stats
			}
		}
	}

	items := s.GetUpdates(ctx, domain.UpdateQuery{Count: statsSampleSize})

	stats := reduceStats(items)

	if s.deps.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.deps.Cache.Set(ctx, statsKey, data, statsTTL); err != nil && s.deps.Logger != nil {
				s.deps.Logger.Warn("Stats cache write failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return stats
}

// reduceStats counts taxonomy matches per type. An item matching the
// synonyms of several types counts toward each of them.
func reduceStats(items []domain.UpdateItem) *domain.DisasterStats {
	types := make(map[domain.DisasterType]domain.TypeStat, len(domain.DisasterTypes()))
	active := 0

	for _, dt := range domain.DisasterTypes() {
		stat := domain.TypeStat{}
		for _, item := range items {
			if !domain.MatchesDisasterType(item.SearchText(), dt) {
				continue
			}
			stat.Count++
			if item.PublishedAt.After(stat.LatestDate) {
				stat.LatestDate = item.PublishedAt
			}
		}
		if stat.Count > 0 {
			active++
		}
		types[dt] = stat
	}

	return &domain.DisasterStats{
		Types: types,
		Metadata: domain.StatsMetadata{
			TotalItems:  len(items),
			ActiveTypes: active,
			GeneratedAt: time.Now(),
		},
	}
}

// ingestAll fetches every configured feed concurrently and merges the
// results after all fetches settle. A failing feed contributes zero
// items without delaying the others beyond its own timeout.
func (s *Service) ingestAll(ctx context.Context) []domain.UpdateItem {
	results := make([][]domain.UpdateItem, len(s.sources))
	var wg sync.WaitGroup

	for i, source := range s.sources {
		wg.Add(1)
		go func(i int, source domain.FeedSource) {
			defer wg.Done()
			results[i] = s.ingestor.Fetch(ctx, source)
		}(i, source)
	}

	wg.Wait()

	merged := make([]domain.UpdateItem, 0)
	for _, batch := range results {
		merged = append(merged, batch...)
	}

	return merged
}

// applyFilters applies the query filters in their fixed order. The
// filters AND together; each filter's own keyword set is an OR.
func applyFilters(items []domain.UpdateItem, query domain.UpdateQuery) []domain.UpdateItem {
	filtered := make([]domain.UpdateItem, 0, len(items))

	for _, item := range items {
		if !matchesDisasterTypes(item, query.DisasterTypes) {
			continue
		}
		if !matchesAnyKeyword(item, query.FreeKeywords) {
			continue
		}
		if !matchesAnyKeyword(item, query.States) {
			continue
		}
		if !query.DateFrom.IsZero() && item.PublishedAt.Before(query.DateFrom) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

func matchesDisasterTypes(item domain.UpdateItem, types []domain.DisasterType) bool {
	if len(types) == 0 {
		return true
	}
	for _, dt := range types {
		if domain.MatchesDisasterType(item.SearchText(), dt) {
			return true
		}
	}
	return false
}

func matchesAnyKeyword(item domain.UpdateItem, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	text := strings.ToLower(item.SearchText())
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// getCachedItems returns the cached result for a key, or nil on any
// miss or cache failure.
func (s *Service) getCachedItems(ctx context.Context, key string) []domain.UpdateItem {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var items []domain.UpdateItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	return items
}

// cacheItems stores a query result. Write failures log and are
// otherwise ignored; a successful aggregation never blocks on them.
func (s *Service) cacheItems(ctx context.Context, key string, items []domain.UpdateItem, ttl time.Duration) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, ttl); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Updates cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
