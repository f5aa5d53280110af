// ABOUTME: Service-level contracts consumed by the aggregation core
// ABOUTME: External collaborators are injected through these interfaces

package interfaces

import (
	"context"

	"crisiswatch-api/core/domain"
)

// SocialSearchClient is the contract for the external social-network
// search API. Implementations report upstream failures as errors; the
// social aggregator converts them into synthetic fallback data.
type SocialSearchClient interface {
	// SearchPosts runs a full-text search against the upstream platform.
	SearchPosts(ctx context.Context, req domain.SocialSearchRequest) ([]domain.RawSocialPost, error)

	// Authenticated reports whether the client holds an authenticated
	// session or is running against the anonymous public endpoint.
	Authenticated() bool
}

// ImageAnalyzer is the opaque image-authenticity collaborator. It is
// consumed through the same cache pattern as everything else but its
// algorithm is not part of this core.
type ImageAnalyzer interface {
	// Analyze inspects raw image bytes and returns a structured verdict.
	Analyze(ctx context.Context, image []byte, mimeType string) (*domain.ImageVerdict, error)
}
