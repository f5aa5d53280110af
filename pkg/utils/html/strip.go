// ABOUTME: HTML utilities for stripping markup from feed and post text
// ABOUTME: Uses the x/net tokenizer so malformed upstream HTML cannot leak tags

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes all markup from a string and returns the text
// content with collapsed whitespace. Script and style bodies are
// dropped entirely. Entities are decoded by the tokenizer.
func StripHTML(input string) string {
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))

	var b strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return collapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

// isSkippedTag reports whether a tag's text content should be dropped.
func isSkippedTag(name string) bool {
	return name == "script" || name == "style"
}

// collapseWhitespace trims the string and folds runs of whitespace
// into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
