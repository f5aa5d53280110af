// ABOUTME: Mappers converting updates domain models to response DTOs
// ABOUTME: Pure functions with no side effects

package mappers

import (
	"crisiswatch-api/api/dto/responses"
	"crisiswatch-api/core/domain"
)

// ToUpdatesResponse converts aggregated items to the wire shape.
func ToUpdatesResponse(items []domain.UpdateItem) responses.UpdatesResponse {
	updates := make([]responses.UpdateItemResponse, 0, len(items))
	for _, item := range items {
		updates = append(updates, responses.UpdateItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			PublishedAt: item.PublishedAt,
			Source:      item.SourceLabel,
			FeedType:    string(item.FeedType),
		})
	}

	return responses.UpdatesResponse{
		Updates: updates,
		Count:   len(updates),
	}
}

// ToStatsResponse converts the statistics payload to the wire shape.
// Types with no matches carry a zero count and omit the date.
func ToStatsResponse(stats *domain.DisasterStats) responses.StatsResponse {
	types := make(map[string]responses.TypeStatResponse, len(stats.Types))
	for dt, stat := range stats.Types {
		entry := responses.TypeStatResponse{Count: stat.Count}
		if !stat.LatestDate.IsZero() {
			latest := stat.LatestDate
			entry.LatestDate = &latest
		}
		types[string(dt)] = entry
	}

	return responses.StatsResponse{
		Types:       types,
		TotalItems:  stats.Metadata.TotalItems,
		ActiveTypes: stats.Metadata.ActiveTypes,
		GeneratedAt: stats.Metadata.GeneratedAt,
	}
}
