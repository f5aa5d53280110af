// ABOUTME: Request DTOs for the official updates endpoints
// ABOUTME: Translates raw query parameters into a domain UpdateQuery

package requests

import (
	"strings"
	"time"

	"crisiswatch-api/core/domain"
	coreerrors "crisiswatch-api/core/errors"
)

// UpdatesRequest carries the raw query parameters of GET /api/updates.
// List parameters are comma-separated.
type UpdatesRequest struct {
	Count    int
	Types    string
	Keywords string
	States   string
	Since    string
}

// ToQuery validates the request and converts it to a domain query.
func (r UpdatesRequest) ToQuery() (domain.UpdateQuery, error) {
	query := domain.UpdateQuery{
		Count:        r.Count,
		FreeKeywords: splitList(r.Keywords),
		States:       splitList(r.States),
	}

	for _, raw := range splitList(r.Types) {
		dt := domain.DisasterType(strings.ToLower(raw))
		if _, ok := domain.KeywordsFor(dt); !ok {
			return domain.UpdateQuery{}, &coreerrors.ValidationError{
				Field:   "types",
				Message: "unknown disaster type: " + raw,
			}
		}
		query.DisasterTypes = append(query.DisasterTypes, dt)
	}

	if r.Since != "" {
		since, err := time.Parse(time.RFC3339, r.Since)
		if err != nil {
			return domain.UpdateQuery{}, &coreerrors.ValidationError{
				Field:   "since",
				Message: "must be an RFC 3339 timestamp",
			}
		}
		query.DateFrom = since
	}

	return query, nil
}

// splitList splits a comma-separated parameter, dropping blank entries.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
