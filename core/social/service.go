// ABOUTME: SocialMediaAggregator searches the social upstream and ranks results by relevance
// ABOUTME: Upstream failure or an empty result degrades to short-lived synthetic data

package social

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"crisiswatch-api/core/domain"
	"crisiswatch-api/core/interfaces"
)

// Platform is the constant tag for the upstream social platform.
const Platform = "bluesky"

const (
	// apiResultCeiling is the upstream API's hard limit per request.
	apiResultCeiling = 100

	// resultCap bounds the returned sequence regardless of the
	// requested maximum.
	resultCap = 25

	// liveTTL caches genuine results; fallbackTTL is deliberately
	// short so a degraded state retries the live source soon.
	liveTTL     = 3 * time.Minute
	fallbackTTL = time.Minute
)

// SearchOptions tunes one search call.
type SearchOptions struct {
	// MaxResults caps the upstream fetch. Zero means the API ceiling.
	MaxResults int

	// Sort is domain.SocialSortLatest (default) or domain.SocialSortTop.
	Sort string

	// Lang optionally restricts results to a language tag.
	Lang string
}

// Service aggregates social posts for disaster keywords
type Service struct {
	deps   interfaces.Dependencies
	client interfaces.SocialSearchClient
}

// NewService creates a new social aggregation service
func NewService(deps interfaces.Dependencies, client interfaces.SocialSearchClient) *Service {
	return &Service{
		deps:   deps,
		client: client,
	}
}

// Search returns relevance-ranked posts for the keywords. It never
// fails: upstream errors and empty results yield synthetic fallback
// posts flagged IsSynthetic.
func (s *Service) Search(ctx context.Context, keywords []string, opts SearchOptions) []domain.SocialPost {
	if opts.Sort == "" {
		opts.Sort = domain.SocialSortLatest
	}

	key := searchCacheKey(keywords, opts)
	if cached := s.getCachedPosts(ctx, key); cached != nil {
		return cached
	}

	posts, ok := s.searchLive(ctx, keywords, opts)
	if !ok {
		posts = syntheticPosts(keywords)
		s.cachePosts(ctx, key, posts, fallbackTTL)
		return posts
	}

	s.cachePosts(ctx, key, posts, liveTTL)
	return posts
}

// searchLive queries the upstream and normalizes the results. The
// second return value is false when the caller should fall back.
func (s *Service) searchLive(ctx context.Context, keywords []string, opts SearchOptions) ([]domain.SocialPost, bool) {
	limit := opts.MaxResults
	if limit <= 0 || limit > apiResultCeiling {
		limit = apiResultCeiling
	}

	raw, err := s.client.SearchPosts(ctx, domain.SocialSearchRequest{
		Query: buildQuery(keywords),
		Limit: limit,
		Sort:  opts.Sort,
		Lang:  opts.Lang,
	})
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Social search failed, using fallback data", map[string]interface{}{
				"keywords": strings.Join(keywords, ","),
				"error":    err.Error(),
			})
		}
		return nil, false
	}

	posts := normalize(raw, keywords)
	if len(posts) == 0 {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Social search returned no usable posts, using fallback data", map[string]interface{}{
				"keywords": strings.Join(keywords, ","),
			})
		}
		return nil, false
	}

	return posts, true
}

// normalize scores, ranks, and trims raw upstream results. Posts
// without a text body are discarded.
func normalize(raw []domain.RawSocialPost, keywords []string) []domain.SocialPost {
	posts := make([]domain.SocialPost, 0, len(raw))

	for _, r := range raw {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}

		posts = append(posts, domain.SocialPost{
			ID:                r.ID,
			Text:              r.Text,
			AuthorHandle:      r.AuthorHandle,
			AuthorDisplayName: r.AuthorDisplayName,
			AuthorAvatarURL:   r.AuthorAvatarURL,
			PostedAt:          r.PostedAt,
			Engagement: domain.Engagement{
				Likes:   nonNegative(r.Likes),
				Reposts: nonNegative(r.Reposts),
				Replies: nonNegative(r.Replies),
			},
			RelevanceScore: relevanceScore(r.Text, keywords),
			Platform:       Platform,
			URL:            r.URL,
		})
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].RelevanceScore > posts[j].RelevanceScore
	})

	if len(posts) > resultCap {
		posts = posts[:resultCap]
	}

	return posts
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// searchCacheKey builds the namespaced cache key for a search.
func searchCacheKey(keywords []string, opts SearchOptions) string {
	return "social_search:" + strings.ToLower(strings.Join(keywords, "+")) + ":" + opts.Sort + ":" + opts.Lang
}

func (s *Service) getCachedPosts(ctx context.Context, key string) []domain.SocialPost {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var posts []domain.SocialPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil
	}

	return posts
}

func (s *Service) cachePosts(ctx context.Context, key string, posts []domain.SocialPost, ttl time.Duration) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, ttl); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Social cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
