// ABOUTME: Wire types for the app.bsky.feed.searchPosts response shape
// ABOUTME: Only the fields the aggregator consumes are modeled

package bluesky

import "time"

type searchResponse struct {
	Posts []postView `json:"posts"`
}

type postView struct {
	URI         string     `json:"uri"`
	CID         string     `json:"cid"`
	Author      authorView `json:"author"`
	Record      postRecord `json:"record"`
	ReplyCount  int        `json:"replyCount"`
	RepostCount int        `json:"repostCount"`
	LikeCount   int        `json:"likeCount"`
}

type authorView struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

type postRecord struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
