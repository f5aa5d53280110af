// ABOUTME: Response DTOs for the social search endpoint
// ABOUTME: Wire-level shapes for relevance-ranked social posts

package responses

import "time"

// EngagementResponse carries a post's interaction counters.
type EngagementResponse struct {
	Likes   int `json:"likes"`
	Reposts int `json:"reposts"`
	Replies int `json:"replies"`
}

// SocialPostResponse is one ranked social post on the wire.
type SocialPostResponse struct {
	ID             string             `json:"id" doc:"Upstream record identifier"`
	Text           string             `json:"text" doc:"Post body"`
	Author         string             `json:"author" doc:"Author display name"`
	AuthorHandle   string             `json:"authorHandle" doc:"Author handle on the platform"`
	AvatarURL      string             `json:"avatarUrl,omitempty" doc:"Author avatar URL"`
	PostedAt       time.Time          `json:"postedAt" doc:"When the post was created"`
	Engagement     EngagementResponse `json:"engagement"`
	RelevanceScore int                `json:"relevanceScore" doc:"Relevance in [0,100]"`
	Platform       string             `json:"platform" doc:"Upstream platform tag"`
	URL            string             `json:"url,omitempty" doc:"Permalink to the post"`
	IsSynthetic    bool               `json:"isSynthetic" doc:"True for fallback data"`
}

// SocialSearchResponse is the payload for GET /api/social/search.
type SocialSearchResponse struct {
	Posts     []SocialPostResponse `json:"posts" doc:"Posts ranked by relevance"`
	Count     int                  `json:"count" doc:"Number of returned posts"`
	Synthetic bool                 `json:"synthetic" doc:"True when the result is fallback data"`
}
