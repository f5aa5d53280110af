// ABOUTME: Discover handler for finding syndication feed URLs on agency websites
// ABOUTME: Aids feed source configuration by autodiscovering RSS/Atom links in HTML pages

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"

	"crisiswatch-api/core/interfaces"
	"github.com/PuerkitoBio/goquery"
	"github.com/danielgtaylor/huma/v2"
)

// DiscoverHandler handles feed autodiscovery
type DiscoverHandler struct {
	httpClient interfaces.HTTPClient
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(httpClient interfaces.HTTPClient) *DiscoverHandler {
	return &DiscoverHandler{
		httpClient: httpClient,
	}
}

// RegisterRoutes registers discover routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverFeeds",
		Method:      http.MethodPost,
		Path:        "/api/discover",
		Summary:     "Discover syndication feeds on websites",
		Description: "Attempts to discover RSS/Atom feed URLs on the submitted pages, e.g. state emergency-management sites",
		Tags:        []string{"Discovery"},
	}, h.DiscoverFeeds)
}

// DiscoverFeedsInput defines the input for feed discovery
type DiscoverFeedsInput struct {
	Body struct {
		URLs []string `json:"urls" minItems:"1" doc:"Website URLs to discover feeds on"`
	}
}

// FeedDiscoveryResult represents a single discovery result
type FeedDiscoveryResult struct {
	URL      string `json:"url" doc:"Original URL that was checked"`
	Status   string `json:"status" doc:"Discovery status: 'ok' or 'error'"`
	FeedLink string `json:"feedLink,omitempty" doc:"Discovered feed URL"`
	Error    string `json:"error,omitempty" doc:"Error message if discovery failed"`
}

// DiscoverFeedsOutput defines the output for feed discovery
type DiscoverFeedsOutput struct {
	Body struct {
		Feeds []FeedDiscoveryResult `json:"feeds" doc:"Discovery results for each URL"`
	}
}

// DiscoverFeeds handles the POST /api/discover endpoint
func (h *DiscoverHandler) DiscoverFeeds(ctx context.Context, input *DiscoverFeedsInput) (*DiscoverFeedsOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	var wg sync.WaitGroup
	results := make([]FeedDiscoveryResult, len(input.Body.URLs))

	for i, u := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, siteURL string) {
			defer wg.Done()

			feedURL, err := h.discoverFeedURL(ctx, siteURL)
			if err != nil {
				results[idx] = FeedDiscoveryResult{
					URL:    siteURL,
					Status: "error",
					Error:  err.Error(),
				}
				return
			}
			results[idx] = FeedDiscoveryResult{
				URL:      siteURL,
				Status:   "ok",
				FeedLink: feedURL,
			}
		}(i, u)
	}

	wg.Wait()

	output := &DiscoverFeedsOutput{}
	output.Body.Feeds = results
	return output, nil
}

// discoverFeedURL fetches a page and looks for RSS/Atom link elements
func (h *DiscoverHandler) discoverFeedURL(ctx context.Context, siteURL string) (string, error) {
	resp, err := h.httpClient.Get(ctx, siteURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", errors.New("failed to fetch page")
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", err
	}

	var feedURL string
	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Each(func(i int, s *goquery.Selection) {
		if href, exists := s.Attr("href"); exists && feedURL == "" {
			feedURL = href
		}
	})

	if feedURL == "" {
		return "", errors.New("no syndication feed found")
	}

	return ensureAbsoluteURL(siteURL, feedURL)
}

// ensureAbsoluteURL converts relative URLs to absolute ones
func ensureAbsoluteURL(baseURL, ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}

	if u.IsAbs() {
		return ref, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(u).String(), nil
}
