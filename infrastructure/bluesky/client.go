// ABOUTME: Bluesky search client implementing the SocialSearchClient interface
// ABOUTME: Lazily establishes an authenticated session, degrading to the anonymous endpoint

package bluesky

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"crisiswatch-api/core/domain"
	"crisiswatch-api/core/interfaces"
	"crisiswatch-api/pkg/config"
)

const (
	searchEndpoint  = "/xrpc/app.bsky.feed.searchPosts"
	sessionEndpoint = "/xrpc/com.atproto.server.createSession"
)

// Client talks to a Bluesky AppView. With credentials configured it
// creates a session on first use; without them (or when login fails)
// it runs anonymously against the public endpoint.
type Client struct {
	cfg  config.SocialConfig
	deps interfaces.Dependencies

	mu           sync.Mutex
	accessJWT    string
	sessionTried bool
}

// NewClient creates a Bluesky search client. No network calls happen
// here; session establishment is deferred to the first search.
func NewClient(cfg config.SocialConfig, deps interfaces.Dependencies) *Client {
	return &Client{
		cfg:  cfg,
		deps: deps,
	}
}

// Authenticated reports whether the client holds a session token.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessJWT != ""
}

// SearchPosts runs app.bsky.feed.searchPosts with the given request.
func (c *Client) SearchPosts(ctx context.Context, req domain.SocialSearchRequest) ([]domain.RawSocialPost, error) {
	token := c.ensureSession(ctx)

	params := url.Values{}
	params.Set("q", req.Query)
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Sort != "" {
		params.Set("sort", req.Sort)
	}
	if req.Lang != "" {
		params.Set("lang", req.Lang)
	}

	endpoint := strings.TrimRight(c.cfg.ServiceURL, "/") + searchEndpoint + "?" + params.Encode()

	headers := map[string]string{"Accept": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	resp, err := c.deps.HTTPClient.GetWithHeaders(ctx, endpoint, headers)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	posts := make([]domain.RawSocialPost, 0, len(payload.Posts))
	for _, p := range payload.Posts {
		posts = append(posts, domain.RawSocialPost{
			ID:                p.URI,
			Text:              p.Record.Text,
			AuthorHandle:      p.Author.Handle,
			AuthorDisplayName: p.Author.DisplayName,
			AuthorAvatarURL:   p.Author.Avatar,
			PostedAt:          p.Record.CreatedAt,
			Likes:             p.LikeCount,
			Reposts:           p.RepostCount,
			Replies:           p.ReplyCount,
			URL:               postWebURL(p.Author.Handle, p.URI),
		})
	}

	return posts, nil
}

// ensureSession performs the one-time login attempt when credentials
// are configured. Login failure logs and leaves the client anonymous;
// it is never retried within the process.
func (c *Client) ensureSession(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionTried || c.cfg.Identifier == "" {
		return c.accessJWT
	}
	c.sessionTried = true

	reqBody, _ := json.Marshal(map[string]string{
		"identifier": c.cfg.Identifier,
		"password":   c.cfg.Password,
	})

	endpoint := strings.TrimRight(c.cfg.ServiceURL, "/") + sessionEndpoint
	resp, err := c.deps.HTTPClient.Post(ctx, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		c.logSessionFailure(err.Error())
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		c.logSessionFailure(fmt.Sprintf("status %d", resp.StatusCode()))
		return ""
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		c.logSessionFailure(err.Error())
		return ""
	}

	var session struct {
		AccessJwt string `json:"accessJwt"`
		Handle    string `json:"handle"`
	}
	if err := json.Unmarshal(body, &session); err != nil || session.AccessJwt == "" {
		c.logSessionFailure("malformed session response")
		return ""
	}

	c.accessJWT = session.AccessJwt
	if c.deps.Logger != nil {
		c.deps.Logger.Info("Bluesky session established", map[string]interface{}{
			"handle": session.Handle,
		})
	}

	return c.accessJWT
}

func (c *Client) logSessionFailure(reason string) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn("Bluesky login failed, continuing anonymously", map[string]interface{}{
			"reason": reason,
		})
	}
}

// postWebURL converts an AT-URI into a bsky.app permalink. The record
// key is the last path segment of the URI.
func postWebURL(handle, uri string) string {
	idx := strings.LastIndex(uri, "/")
	if handle == "" || idx < 0 || idx == len(uri)-1 {
		return ""
	}
	return fmt.Sprintf("https://bsky.app/profile/%s/post/%s", handle, uri[idx+1:])
}
