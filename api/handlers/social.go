// ABOUTME: Social search handler for the Huma API
// ABOUTME: Exposes relevance-ranked social posts for disaster keywords

package handlers

import (
	"context"
	"net/http"
	"strings"

	"crisiswatch-api/api/dto/mappers"
	"crisiswatch-api/api/dto/responses"
	"crisiswatch-api/core/domain"
	"crisiswatch-api/core/social"
	"github.com/danielgtaylor/huma/v2"
)

// SocialService defines the methods needed from the social aggregator
type SocialService interface {
	Search(ctx context.Context, keywords []string, opts social.SearchOptions) []domain.SocialPost
}

// SocialHandler handles social search HTTP requests
type SocialHandler struct {
	service SocialService
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(service SocialService) *SocialHandler {
	return &SocialHandler{service: service}
}

// RegisterRoutes registers social search routes
func (h *SocialHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchSocial",
		Method:      http.MethodGet,
		Path:        "/api/social/search",
		Summary:     "Search social media for disaster signals",
		Description: "Returns relevance-ranked posts from the social upstream; degrades to clearly-flagged synthetic data when the upstream is unavailable",
		Tags:        []string{"Social"},
	}, h.SearchSocial)
}

// SearchSocialInput defines the query parameters for SearchSocial
type SearchSocialInput struct {
	Query string `query:"q" required:"true" minLength:"1" doc:"Comma-separated search keywords"`
	Sort  string `query:"sort" required:"false" enum:"latest,top" doc:"Result ordering requested from the upstream"`
	Lang  string `query:"lang" required:"false" doc:"Language tag restriction"`
	Max   int    `query:"max" minimum:"1" maximum:"100" required:"false" doc:"Maximum number of posts to fetch upstream"`
}

// SearchSocialOutput defines the output for SearchSocial
type SearchSocialOutput struct {
	Body responses.SocialSearchResponse
}

// SearchSocial handles GET /api/social/search
func (h *SocialHandler) SearchSocial(ctx context.Context, input *SearchSocialInput) (*SearchSocialOutput, error) {
	keywords := splitKeywords(input.Query)
	if len(keywords) == 0 {
		return nil, huma.Error400BadRequest("No search keywords provided")
	}

	posts := h.service.Search(ctx, keywords, social.SearchOptions{
		MaxResults: input.Max,
		Sort:       input.Sort,
		Lang:       input.Lang,
	})

	return &SearchSocialOutput{Body: mappers.ToSocialSearchResponse(posts)}, nil
}

func splitKeywords(q string) []string {
	parts := strings.Split(q, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keywords = append(keywords, p)
		}
	}
	return keywords
}
