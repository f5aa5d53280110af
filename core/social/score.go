// ABOUTME: Relevance scoring for social posts based on keyword and indicator-term matches
// ABOUTME: Scores are bounded to [0,100] for any input text and keyword set

package social

import (
	"regexp"
	"strings"
)

// Score weights. Keywords are matched as plain substrings; indicator
// terms are matched on word boundaries so that e.g. "at" does not
// fire inside "chatting". A term present once counts once.
const (
	keywordWeight  = 20
	hashtagWeight  = 10
	urgencyWeight  = 15
	locationWeight = 10
	resourceWeight = 8

	maxScore = 100
)

var (
	emergencyTerms = []string{"urgent", "emergency", "help", "sos", "evacuation", "shelter", "relief", "rescue"}
	locationTerms  = []string{"at", "near", "location", "address", "street", "building"}
	resourceTerms  = []string{"available", "offering", "need", "looking for", "contact"}
)

var (
	emergencyPatterns = compileTermPatterns(emergencyTerms)
	locationPatterns  = compileTermPatterns(locationTerms)
	resourcePatterns  = compileTermPatterns(resourceTerms)
)

func compileTermPatterns(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return patterns
}

// relevanceScore computes the bounded relevance of a post text for the
// given keywords. Empty text scores zero; an empty keyword list still
// scores on the indicator terms alone.
func relevanceScore(text string, keywords []string) int {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)
	score := 0

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(lower, kw) {
			score += keywordWeight
		}
		if strings.Contains(lower, "#"+kw) {
			score += hashtagWeight
		}
	}

	for _, p := range emergencyPatterns {
		if p.MatchString(lower) {
			score += urgencyWeight
		}
	}
	for _, p := range locationPatterns {
		if p.MatchString(lower) {
			score += locationWeight
		}
	}
	for _, p := range resourcePatterns {
		if p.MatchString(lower) {
			score += resourceWeight
		}
	}

	if score > maxScore {
		return maxScore
	}
	return score
}
