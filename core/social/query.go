// ABOUTME: Search query construction for the upstream social platform
// ABOUTME: Hashtag and full-text search have different recall, so the query ORs both forms

package social

import "strings"

// buildQuery constructs the upstream search expression. For multiple
// keywords the exact joined phrase is preferred, OR'd with each
// keyword as a hashtag; a single keyword ORs its hashtag form with
// the bare word. The broad OR maximizes recall; downstream scoring
// re-ranks for precision.
func buildQuery(keywords []string) string {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			cleaned = append(cleaned, kw)
		}
	}

	switch len(cleaned) {
	case 0:
		return ""
	case 1:
		return "#" + cleaned[0] + " OR " + cleaned[0]
	default:
		parts := []string{`"` + strings.Join(cleaned, " ") + `"`}
		for _, kw := range cleaned {
			parts = append(parts, "#"+kw)
		}
		return strings.Join(parts, " OR ")
	}
}
