// ABOUTME: Cached decorator over the image-authenticity collaborator
// ABOUTME: Verdicts are cached by source URL; analyzer failures propagate to the caller

package imagecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"crisiswatch-api/core/domain"
	coreerrors "crisiswatch-api/core/errors"
	"crisiswatch-api/core/interfaces"
)

const (
	// verdictTTL keeps verdicts for a long window; the analysis is
	// expensive and the answer for a given image does not change.
	verdictTTL = 6 * time.Hour

	// maxImageBytes bounds the download size.
	maxImageBytes = 10 << 20
)

// Service fetches an image and runs it through the injected analyzer,
// caching the verdict by source URL.
type Service struct {
	deps     interfaces.Dependencies
	analyzer interfaces.ImageAnalyzer
}

// NewService creates a new image check service
func NewService(deps interfaces.Dependencies, analyzer interfaces.ImageAnalyzer) *Service {
	return &Service{
		deps:     deps,
		analyzer: analyzer,
	}
}

// CheckImage returns the authenticity verdict for the image at
// sourceURL. Unlike the aggregation services, fetch and analyzer
// errors are returned to the caller.
func (s *Service) CheckImage(ctx context.Context, sourceURL string) (*domain.ImageVerdict, error) {
	if sourceURL == "" {
		return nil, fmt.Errorf("image check: empty source URL")
	}

	key := "image_check:" + sourceURL
	if cached := s.getCachedVerdict(ctx, key); cached != nil {
		return cached, nil
	}

	image, mimeType, err := s.fetchImage(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("image check: fetching %s: %w", sourceURL, err)
	}

	verdict, err := s.analyzer.Analyze(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("image check: analyzing %s: %w", sourceURL, err)
	}

	s.cacheVerdict(ctx, key, verdict)
	return verdict, nil
}

func (s *Service) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        "image fetch",
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxImageBytes))
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return data, mimeType, nil
}

func (s *Service) getCachedVerdict(ctx context.Context, key string) *domain.ImageVerdict {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var verdict domain.ImageVerdict
	if err := json.Unmarshal(data, &verdict); err != nil {
		return nil
	}

	return &verdict
}

func (s *Service) cacheVerdict(ctx context.Context, key string, verdict *domain.ImageVerdict) {
	if s.deps.Cache == nil || verdict == nil {
		return
	}

	data, err := json.Marshal(verdict)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, verdictTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Image verdict cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
