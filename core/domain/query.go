// ABOUTME: UpdateQuery is the caller-supplied filter set for official updates
// ABOUTME: Its canonical string form doubles as the cache key for the query

package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultUpdateCount is the result cap applied when a query does not
// specify one.
const DefaultUpdateCount = 10

// UpdateQuery describes the filters applied to aggregated updates.
// All filters are conjunctive; the keyword set inside each filter is
// a disjunction.
type UpdateQuery struct {
	// Count caps the number of returned items. Zero means the default.
	Count int

	// DisasterTypes restricts results to items matching any synonym of
	// any listed taxonomy key.
	DisasterTypes []DisasterType

	// FreeKeywords restricts results to items containing any of these
	// terms as a case-insensitive substring.
	FreeKeywords []string

	// States restricts results to items mentioning any of these states.
	States []string

	// DateFrom is an inclusive lower bound on PublishedAt. Zero means
	// no bound.
	DateFrom time.Time
}

// EffectiveCount returns the result cap with the default applied.
func (q UpdateQuery) EffectiveCount() int {
	if q.Count <= 0 {
		return DefaultUpdateCount
	}
	return q.Count
}

// CacheKey returns the canonical serialization of the query. Queries
// that differ only in field ordering inside a slice produce different
// keys on purpose: callers are expected to pass ordered filter sets,
// and a computed value is fungible only per exact input.
func (q UpdateQuery) CacheKey() string {
	types := make([]string, 0, len(q.DisasterTypes))
	for _, t := range q.DisasterTypes {
		types = append(types, string(t))
	}

	from := ""
	if !q.DateFrom.IsZero() {
		from = q.DateFrom.UTC().Format(time.RFC3339)
	}

	return fmt.Sprintf("official_updates:%d:%s:%s:%s:%s",
		q.EffectiveCount(),
		strings.ToLower(strings.Join(types, ",")),
		strings.ToLower(strings.Join(q.FreeKeywords, ",")),
		strings.ToLower(strings.Join(q.States, ",")),
		from,
	)
}
