// ABOUTME: Structured verdict returned by the image-authenticity collaborator
// ABOUTME: The analysis itself is opaque; only the result shape is modeled here

package domain

// ImageVerdict is the structured result of an image-authenticity check.
type ImageVerdict struct {
	// Authentic is the collaborator's authenticity flag.
	Authentic bool `json:"authentic"`

	// Description is contextual detail about the image content.
	Description string `json:"description"`

	// Confidence is the collaborator's confidence in [0,1].
	Confidence float64 `json:"confidence"`

	// Reasoning is the raw reasoning text.
	Reasoning string `json:"reasoning"`
}
