// ABOUTME: Social domain models for search-driven social media aggregation
// ABOUTME: Covers normalized posts, raw upstream records, and search requests

package domain

import "time"

// SocialSortLatest and SocialSortTop are the sort modes accepted by the
// upstream search API.
const (
	SocialSortLatest = "latest"
	SocialSortTop    = "top"
)

// Engagement holds the non-negative interaction counters of a post.
type Engagement struct {
	Likes   int `json:"likes"`
	Reposts int `json:"reposts"`
	Replies int `json:"replies"`
}

// SocialPost is a normalized, relevance-scored social media post.
type SocialPost struct {
	// ID is the upstream record identifier.
	ID string `json:"id"`

	// Text is the post body.
	Text string `json:"text"`

	// AuthorHandle is the author's handle on the platform.
	AuthorHandle string `json:"authorHandle"`

	// AuthorDisplayName is the author's display name.
	AuthorDisplayName string `json:"authorDisplayName"`

	// AuthorAvatarURL is optional.
	AuthorAvatarURL string `json:"authorAvatarUrl,omitempty"`

	// PostedAt is when the post was created upstream.
	PostedAt time.Time `json:"postedAt"`

	// Engagement carries like/repost/reply counts, defaulting to zero.
	Engagement Engagement `json:"engagement"`

	// RelevanceScore is always clamped to [0,100].
	RelevanceScore int `json:"relevanceScore"`

	// Platform is a constant tag naming the upstream platform.
	Platform string `json:"platform"`

	// URL links to the post.
	URL string `json:"url"`

	// IsSynthetic is true only for fallback data fabricated when the
	// live source is unavailable or empty.
	IsSynthetic bool `json:"isSynthetic"`
}

// RawSocialPost is an unscored search result as returned by the
// upstream client, before normalization.
type RawSocialPost struct {
	ID                string
	Text              string
	AuthorHandle      string
	AuthorDisplayName string
	AuthorAvatarURL   string
	PostedAt          time.Time
	Likes             int
	Reposts           int
	Replies           int
	URL               string
}

// SocialSearchRequest is the query handed to the upstream search API.
type SocialSearchRequest struct {
	// Query is the constructed search expression.
	Query string

	// Limit caps the number of upstream results.
	Limit int

	// Sort is SocialSortLatest or SocialSortTop.
	Sort string

	// Lang optionally restricts results to a language tag.
	Lang string
}
