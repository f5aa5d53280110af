// ABOUTME: Feed ingestion service fetches and normalizes one official syndication feed
// ABOUTME: Failures never propagate; a broken feed contributes zero items

package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"crisiswatch-api/core/domain"
	"crisiswatch-api/core/interfaces"
	htmlutil "crisiswatch-api/pkg/utils/html"
	timeutil "crisiswatch-api/pkg/utils/time"
	"github.com/mmcdole/gofeed"
)

// syndicationAccept advertises both RSS and Atom to upstreams that
// negotiate content types.
const syndicationAccept = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8"

// fetchTimeout bounds one feed fetch so a stalled upstream cannot
// stall the merge.
const fetchTimeout = 10 * time.Second

// Per-feed cache TTLs. Declaration feeds change slowly; press releases
// are a bit fresher.
var feedTTLs = map[domain.FeedType]time.Duration{
	domain.FeedTypeDisasters:     30 * time.Minute,
	domain.FeedTypePressReleases: time.Hour,
}

const defaultFeedTTL = 30 * time.Minute

// Service fetches and normalizes official feeds
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new feed ingestion service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Fetch retrieves one feed and returns its normalized items. Any
// transport, status, or parse failure logs and returns an empty
// slice so aggregation of the other feeds continues.
func (s *Service) Fetch(ctx context.Context, source domain.FeedSource) []domain.UpdateItem {
	if cached := s.getCached(ctx, source); cached != nil {
		return cached
	}

	items := s.fetchLive(ctx, source)
	if len(items) > 0 {
		s.cache(ctx, source, items)
	}

	return items
}

// fetchLive performs the HTTP fetch and normalization for one feed.
func (s *Service) fetchLive(ctx context.Context, source domain.FeedSource) []domain.UpdateItem {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, source.URL, map[string]string{
		"Accept": syndicationAccept,
	})
	if err != nil {
		s.logFailure(source, "fetch failed", err.Error())
		return []domain.UpdateItem{}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		s.logFailure(source, "non-success status", fmt.Sprintf("status %d", resp.StatusCode()))
		return []domain.UpdateItem{}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.logFailure(source, "read failed", err.Error())
		return []domain.UpdateItem{}
	}

	// gofeed auto-detects RSS (rss.channel.item) and Atom (feed.entry)
	// and normalizes link/link.href and pubDate/published/updated.
	parsed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		s.logFailure(source, "parse failed", err.Error())
		return []domain.UpdateItem{}
	}

	ingestedAt := time.Now()
	items := make([]domain.UpdateItem, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		items = append(items, normalizeItem(item, source, i, ingestedAt))
	}

	return items
}

// normalizeItem converts a gofeed item into the uniform update shape.
func normalizeItem(item *gofeed.Item, source domain.FeedSource, index int, ingestedAt time.Time) domain.UpdateItem {
	update := domain.UpdateItem{
		ID:          item.GUID,
		Title:       htmlutil.StripHTML(item.Title),
		Description: htmlutil.StripHTML(item.Description),
		Link:        item.Link,
		SourceLabel: source.Label,
		FeedType:    source.Type,
		IngestedAt:  ingestedAt,
	}

	// Batch-unique synthetic id when the source provides none.
	if update.ID == "" {
		update.ID = fmt.Sprintf("%s-%d-%d", source.Type, index, ingestedAt.UnixNano())
	}

	// Unparsable or missing dates coerce to ingestion time; the item
	// is never dropped.
	switch {
	case item.PublishedParsed != nil:
		update.PublishedAt = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		update.PublishedAt = *item.UpdatedParsed
	default:
		update.PublishedAt = timeutil.ParseWithDefault(item.Published, ingestedAt)
	}

	return update
}

func (s *Service) logFailure(source domain.FeedSource, msg, detail string) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn("Feed ingestion failed", map[string]interface{}{
			"url":    source.URL,
			"type":   string(source.Type),
			"reason": msg,
			"detail": detail,
		})
	}
}

func cacheKey(source domain.FeedSource) string {
	return "feed:" + source.URL
}

// getCached returns the cached batch for a source, or nil on any miss
// or cache failure.
func (s *Service) getCached(ctx context.Context, source domain.FeedSource) []domain.UpdateItem {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(source))
	if err != nil || data == nil {
		return nil
	}

	var items []domain.UpdateItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	return items
}

// cache stores a batch with the TTL policy for the feed type. Write
// failures log and are otherwise ignored.
func (s *Service) cache(ctx context.Context, source domain.FeedSource, items []domain.UpdateItem) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}

	ttl, ok := feedTTLs[source.Type]
	if !ok {
		ttl = defaultFeedTTL
	}

	if err := s.deps.Cache.Set(ctx, cacheKey(source), data, ttl); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Feed cache write failed", map[string]interface{}{
			"url":   source.URL,
			"error": err.Error(),
		})
	}
}
