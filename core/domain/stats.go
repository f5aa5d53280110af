// ABOUTME: Aggregate statistics derived from official update classification
// ABOUTME: Per-type counts with the most recent publish date seen per type

package domain

import "time"

// TypeStat is the per-disaster-type aggregate.
type TypeStat struct {
	// Count is how many items matched the type. An item matching the
	// synonyms of several types counts toward each of them.
	Count int `json:"count"`

	// LatestDate is the maximum PublishedAt seen among matches.
	LatestDate time.Time `json:"latestDate"`
}

// StatsMetadata summarizes a statistics computation.
type StatsMetadata struct {
	// TotalItems is the number of items the reduction ran over.
	TotalItems int `json:"totalItems"`

	// ActiveTypes is the number of disaster types with a nonzero count.
	ActiveTypes int `json:"activeTypes"`

	// GeneratedAt is when the reduction was computed.
	GeneratedAt time.Time `json:"generatedAt"`
}

// DisasterStats is the full statistics payload.
type DisasterStats struct {
	Types    map[DisasterType]TypeStat `json:"types"`
	Metadata StatsMetadata             `json:"metadata"`
}
