// ABOUTME: Response DTOs for the official updates endpoints
// ABOUTME: Wire-level shapes decoupled from the domain models

package responses

import "time"

// UpdateItemResponse is one aggregated update on the wire.
type UpdateItemResponse struct {
	ID          string    `json:"id" doc:"Unique item identifier"`
	Title       string    `json:"title" doc:"Item headline"`
	Description string    `json:"description" doc:"Plain-text summary"`
	Link        string    `json:"link" doc:"URL to the full announcement"`
	PublishedAt time.Time `json:"publishedAt" doc:"Publication time"`
	Source      string    `json:"source" doc:"Feed attribution label"`
	FeedType    string    `json:"feedType" doc:"Feed class the item came from"`
}

// UpdatesResponse is the payload for the updates endpoints.
type UpdatesResponse struct {
	Updates []UpdateItemResponse `json:"updates" doc:"Aggregated updates, newest first"`
	Count   int                  `json:"count" doc:"Number of returned updates"`
}

// TypeStatResponse is the per-disaster-type aggregate on the wire.
type TypeStatResponse struct {
	Count      int        `json:"count" doc:"Items matching the type"`
	LatestDate *time.Time `json:"latestDate,omitempty" doc:"Most recent publish date among matches"`
}

// StatsResponse is the payload for the statistics endpoint.
type StatsResponse struct {
	Types       map[string]TypeStatResponse `json:"types" doc:"Per-type aggregates"`
	TotalItems  int                         `json:"totalItems" doc:"Items the reduction ran over"`
	ActiveTypes int                         `json:"activeTypes" doc:"Types with a nonzero count"`
	GeneratedAt time.Time                   `json:"generatedAt" doc:"When the statistics were computed"`
}
