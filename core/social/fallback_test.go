package social

import (
	"strings"
	"testing"
)

func TestSyntheticPosts_CountWithinBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		posts := syntheticPosts([]string{"flood"})
		if len(posts) < fallbackMin || len(posts) > fallbackMax {
			t.Fatalf("got %d posts, want between %d and %d", len(posts), fallbackMin, fallbackMax)
		}
	}
}

func TestSyntheticPosts_AllFlaggedSynthetic(t *testing.T) {
	for _, p := range syntheticPosts([]string{"flood"}) {
		if !p.IsSynthetic {
			t.Errorf("post %s not flagged synthetic", p.ID)
		}
	}
}

func TestSyntheticPosts_InterpolatesPrimaryKeyword(t *testing.T) {
	for _, p := range syntheticPosts([]string{"flood"}) {
		if !strings.Contains(p.Text, "flood") {
			t.Errorf("post text missing keyword: %q", p.Text)
		}
	}
}

func TestSyntheticPosts_InterpolatesSecondaryKeyword(t *testing.T) {
	for _, p := range syntheticPosts([]string{"flood", "houston"}) {
		if !strings.Contains(p.Text, "#houston") {
			t.Errorf("post text missing secondary hashtag: %q", p.Text)
		}
	}
}

func TestSyntheticPosts_DefaultsWithoutKeywords(t *testing.T) {
	posts := syntheticPosts(nil)

	if len(posts) < fallbackMin {
		t.Fatalf("got %d posts, want at least %d", len(posts), fallbackMin)
	}
	for _, p := range posts {
		if !strings.Contains(p.Text, "emergency") {
			t.Errorf("post text missing default keyword: %q", p.Text)
		}
	}
}

func TestSyntheticPosts_DistinctScenarios(t *testing.T) {
	posts := syntheticPosts([]string{"fire"})

	seen := make(map[string]bool)
	for _, p := range posts {
		if seen[p.Text] {
			t.Errorf("scenario repeated: %q", p.Text)
		}
		seen[p.Text] = true
	}
}

func TestSyntheticPosts_ScoredAndTagged(t *testing.T) {
	for _, p := range syntheticPosts([]string{"flood"}) {
		if p.RelevanceScore < 0 || p.RelevanceScore > 100 {
			t.Errorf("score %d out of bounds", p.RelevanceScore)
		}
		if p.Platform != Platform {
			t.Errorf("platform = %q, want %q", p.Platform, Platform)
		}
		if p.PostedAt.IsZero() {
			t.Error("posted-at not set")
		}
	}
}
