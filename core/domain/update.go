// ABOUTME: UpdateItem domain model represents one normalized entry from an official feed
// ABOUTME: Items from different feeds merge into a single sequence ordered by publish date

package domain

import "time"

// FeedType identifies which class of official feed an item came from.
type FeedType string

const (
	// FeedTypeDisasters is the disaster-declaration feed.
	FeedTypeDisasters FeedType = "disasters"

	// FeedTypePressReleases is the press-release feed.
	FeedTypePressReleases FeedType = "pressReleases"
)

// FeedSource is one configured syndication endpoint.
type FeedSource struct {
	// URL is the feed endpoint.
	URL string

	// Label is the human-readable source attribution.
	Label string

	// Type classifies the feed for TTL policy and item tagging.
	Type FeedType
}

// UpdateItem represents an individual normalized item from an official feed.
type UpdateItem struct {
	// ID is unique within one ingestion source+batch. When the source
	// provides no GUID, a synthetic id is assigned during ingestion.
	ID string `json:"id"`

	// Title is the item's headline.
	Title string `json:"title"`

	// Description is the item's summary with all markup stripped.
	Description string `json:"description"`

	// Link is the URL to the full announcement.
	Link string `json:"link"`

	// PublishedAt is the parsed publication time. When the source omits
	// or mangles the date this falls back to the ingestion time.
	PublishedAt time.Time `json:"publishedAt"`

	// SourceLabel attributes the item to its feed.
	SourceLabel string `json:"sourceLabel"`

	// FeedType records which feed class produced the item.
	FeedType FeedType `json:"feedType"`

	// IngestedAt is when this batch was fetched.
	IngestedAt time.Time `json:"ingestedAt"`
}

// SearchText returns the text the keyword filters match against.
func (u *UpdateItem) SearchText() string {
	return u.Title + " " + u.Description
}
