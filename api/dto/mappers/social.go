// ABOUTME: Mappers converting social domain models to response DTOs
// ABOUTME: Pure functions with no side effects

package mappers

import (
	"crisiswatch-api/api/dto/responses"
	"crisiswatch-api/core/domain"
)

// ToSocialSearchResponse converts ranked posts to the wire shape. The
// result is marked synthetic when every post is fallback data.
func ToSocialSearchResponse(posts []domain.SocialPost) responses.SocialSearchResponse {
	out := make([]responses.SocialPostResponse, 0, len(posts))
	synthetic := len(posts) > 0

	for _, p := range posts {
		if !p.IsSynthetic {
			synthetic = false
		}
		out = append(out, responses.SocialPostResponse{
			ID:           p.ID,
			Text:         p.Text,
			Author:       p.AuthorDisplayName,
			AuthorHandle: p.AuthorHandle,
			AvatarURL:    p.AuthorAvatarURL,
			PostedAt:     p.PostedAt,
			Engagement: responses.EngagementResponse{
				Likes:   p.Engagement.Likes,
				Reposts: p.Engagement.Reposts,
				Replies: p.Engagement.Replies,
			},
			RelevanceScore: p.RelevanceScore,
			Platform:       p.Platform,
			URL:            p.URL,
			IsSynthetic:    p.IsSynthetic,
		})
	}

	return responses.SocialSearchResponse{
		Posts:     out,
		Count:     len(out),
		Synthetic: synthetic,
	}
}
