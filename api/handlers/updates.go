// ABOUTME: Official updates handlers for the Huma API
// ABOUTME: Read-only endpoints over the aggregation and statistics operations

package handlers

import (
	"context"
	"net/http"

	"crisiswatch-api/api/dto/mappers"
	"crisiswatch-api/api/dto/requests"
	"crisiswatch-api/api/dto/responses"
	"crisiswatch-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// UpdatesService defines the methods needed from the updates aggregator
type UpdatesService interface {
	GetUpdates(ctx context.Context, query domain.UpdateQuery) []domain.UpdateItem
	GetLatest(ctx context.Context, count int) []domain.UpdateItem
	GetStats(ctx context.Context) *domain.DisasterStats
}

// UpdatesHandler handles official update HTTP requests
type UpdatesHandler struct {
	service UpdatesService
}

// NewUpdatesHandler creates a new updates handler
func NewUpdatesHandler(service UpdatesService) *UpdatesHandler {
	return &UpdatesHandler{service: service}
}

// RegisterRoutes registers all updates-related routes
func (h *UpdatesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listUpdates",
		Method:      http.MethodGet,
		Path:        "/api/updates",
		Summary:     "List official disaster updates",
		Description: "Returns aggregated updates across the configured official feeds, filtered and sorted newest first",
		Tags:        []string{"Updates"},
	}, h.ListUpdates)

	huma.Register(api, huma.Operation{
		OperationID: "latestUpdates",
		Method:      http.MethodGet,
		Path:        "/api/updates/latest",
		Summary:     "Latest official disaster updates",
		Description: "Returns the newest updates across all feeds with no filters applied",
		Tags:        []string{"Updates"},
	}, h.LatestUpdates)

	huma.Register(api, huma.Operation{
		OperationID: "updateStats",
		Method:      http.MethodGet,
		Path:        "/api/updates/stats",
		Summary:     "Disaster statistics",
		Description: "Returns per-disaster-type counts and latest activity derived from the aggregated feeds",
		Tags:        []string{"Updates"},
	}, h.UpdateStats)
}

// ListUpdatesInput defines the query parameters for ListUpdates
type ListUpdatesInput struct {
	Count    int    `query:"count" minimum:"1" maximum:"100" required:"false" doc:"Maximum number of items to return"`
	Types    string `query:"types" required:"false" doc:"Comma-separated disaster types (e.g. flood,hurricane)"`
	Keywords string `query:"keywords" required:"false" doc:"Comma-separated free-text keywords"`
	States   string `query:"states" required:"false" doc:"Comma-separated state names"`
	Since    string `query:"since" required:"false" doc:"RFC 3339 lower bound on the publish date"`
}

// ListUpdatesOutput defines the output for ListUpdates
type ListUpdatesOutput struct {
	Body responses.UpdatesResponse
}

// ListUpdates handles GET /api/updates
func (h *UpdatesHandler) ListUpdates(ctx context.Context, input *ListUpdatesInput) (*ListUpdatesOutput, error) {
	req := requests.UpdatesRequest{
		Count:    input.Count,
		Types:    input.Types,
		Keywords: input.Keywords,
		States:   input.States,
		Since:    input.Since,
	}

	query, err := req.ToQuery()
	if err != nil {
		return nil, toHumaError(err)
	}

	items := h.service.GetUpdates(ctx, query)

	return &ListUpdatesOutput{Body: mappers.ToUpdatesResponse(items)}, nil
}

// LatestUpdatesInput defines the query parameters for LatestUpdates
type LatestUpdatesInput struct {
	Count int `query:"count" minimum:"1" maximum:"100" required:"false" doc:"Maximum number of items to return"`
}

// LatestUpdates handles GET /api/updates/latest
func (h *UpdatesHandler) LatestUpdates(ctx context.Context, input *LatestUpdatesInput) (*ListUpdatesOutput, error) {
	items := h.service.GetLatest(ctx, input.Count)

	return &ListUpdatesOutput{Body: mappers.ToUpdatesResponse(items)}, nil
}

// UpdateStatsOutput defines the output for UpdateStats
type UpdateStatsOutput struct {
	Body responses.StatsResponse
}

// UpdateStats handles GET /api/updates/stats
func (h *UpdatesHandler) UpdateStats(ctx context.Context, _ *struct{}) (*UpdateStatsOutput, error) {
	stats := h.service.GetStats(ctx)

	return &UpdateStatsOutput{Body: mappers.ToStatsResponse(stats)}, nil
}
