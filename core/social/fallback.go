// ABOUTME: Synthetic fallback posts produced when the live social source fails or is empty
// ABOUTME: A randomized 3-5 subset of a fixed catalog, interpolated with the supplied keywords

package social

import (
	"fmt"
	"math/rand"
	"time"

	"crisiswatch-api/core/domain"
)

// fallbackScenario is one canned post template. Primary and secondary
// slots are filled by the first and second supplied keywords.
type fallbackScenario struct {
	text    string // fmt template with two %s slots: primary, secondary
	handle  string
	display string
	likes   int
	reposts int
	replies int
}

// fallbackScenarios is the fixed catalog. Order matters only for id
// assignment; the returned subset is randomized.
var fallbackScenarios = []fallbackScenario{
	{
		text:    "URGENT: %s situation developing in the area. Emergency crews on scene. Follow official channels for evacuation info. #%s",
		handle:  "communityalerts.bsky.social",
		display: "Community Alerts",
		likes:   42, reposts: 18, replies: 7,
	},
	{
		text:    "Shelter available near the fairgrounds for anyone displaced by the %s. Hot meals and blankets on hand. #%s #relief",
		handle:  "mutualaidnet.bsky.social",
		display: "Mutual Aid Network",
		likes:   31, reposts: 25, replies: 4,
	},
	{
		text:    "Offering rides out of the %s zone, room for four plus pets. Contact me here. #%s",
		handle:  "goodneighbor.bsky.social",
		display: "Good Neighbor",
		likes:   12, reposts: 9, replies: 11,
	},
	{
		text:    "Road closures reported around the %s area. Avoid the river crossing if you can. Updates as we get them. #%s",
		handle:  "localtraffic.bsky.social",
		display: "Local Traffic Watch",
		likes:   19, reposts: 14, replies: 2,
	},
	{
		text:    "Volunteers needed at the community center for %s response. Looking for help sorting donations this afternoon. #%s",
		handle:  "volunteerhub.bsky.social",
		display: "Volunteer Hub",
		likes:   23, reposts: 16, replies: 6,
	},
	{
		text:    "Power restored to most neighborhoods after the %s. Crews still working near the east side. Stay clear of downed lines. #%s",
		handle:  "utilitywatch.bsky.social",
		display: "Utility Watch",
		likes:   55, reposts: 21, replies: 9,
	},
}

const (
	fallbackMin = 3
	fallbackMax = 5
)

// syntheticPosts fabricates a randomized subset of the catalog. The
// interpolation is deterministic for the same ordered keywords; only
// the subset selection varies.
func syntheticPosts(keywords []string) []domain.SocialPost {
	primary := "emergency"
	if len(keywords) > 0 && keywords[0] != "" {
		primary = keywords[0]
	}
	secondary := primary
	if len(keywords) > 1 && keywords[1] != "" {
		secondary = keywords[1]
	}

	count := fallbackMin + rand.Intn(fallbackMax-fallbackMin+1)
	order := rand.Perm(len(fallbackScenarios))

	now := time.Now()
	posts := make([]domain.SocialPost, 0, count)
	for i := 0; i < count; i++ {
		idx := order[i]
		scenario := fallbackScenarios[idx]
		text := fmt.Sprintf(scenario.text, primary, secondary)

		posts = append(posts, domain.SocialPost{
			ID:                fmt.Sprintf("synthetic-%d-%d", idx, now.UnixNano()),
			Text:              text,
			AuthorHandle:      scenario.handle,
			AuthorDisplayName: scenario.display,
			PostedAt:          now.Add(-time.Duration(i*7+3) * time.Minute),
			Engagement: domain.Engagement{
				Likes:   scenario.likes,
				Reposts: scenario.reposts,
				Replies: scenario.replies,
			},
			RelevanceScore: relevanceScore(text, keywords),
			Platform:       Platform,
			IsSynthetic:    true,
		})
	}

	return posts
}
