package bluesky

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"crisiswatch-api/core/domain"
	"crisiswatch-api/core/interfaces"
	"crisiswatch-api/pkg/config"
)

const searchBody = `{
	"posts": [
		{
			"uri": "at://did:plc:abc/app.bsky.feed.post/3l3qo2vuowo2b",
			"cid": "bafy123",
			"author": {"did": "did:plc:abc", "handle": "reporter.bsky.social", "displayName": "Reporter", "avatar": "https://cdn.example/avatar.jpg"},
			"record": {"text": "Flooding near the river", "createdAt": "2024-06-01T12:00:00Z"},
			"replyCount": 1,
			"repostCount": 2,
			"likeCount": 3
		}
	]
}`

func anonymousClient(httpClient interfaces.HTTPClient) *Client {
	return NewClient(
		config.SocialConfig{ServiceURL: "https://public.api.bsky.app"},
		interfaces.Dependencies{HTTPClient: httpClient},
	)
}

func TestSearchPosts_BuildsQueryURL(t *testing.T) {
	var gotURL string
	mock := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			gotURL = url
			return &mockResponse{statusCode: 200, body: `{"posts":[]}`}, nil
		},
	}
	client := anonymousClient(mock)

	_, err := client.SearchPosts(context.Background(), domain.SocialSearchRequest{
		Query: "#flood OR flood",
		Limit: 50,
		Sort:  domain.SocialSortLatest,
		Lang:  "en",
	})
	if err != nil {
		t.Fatalf("SearchPosts returned error: %v", err)
	}

	if !strings.Contains(gotURL, "app.bsky.feed.searchPosts") {
		t.Errorf("URL = %q, missing endpoint", gotURL)
	}
	for _, want := range []string{"limit=50", "sort=latest", "lang=en"} {
		if !strings.Contains(gotURL, want) {
			t.Errorf("URL = %q, missing %q", gotURL, want)
		}
	}
}

func TestSearchPosts_NormalizesPosts(t *testing.T) {
	mock := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: searchBody}, nil
		},
	}
	client := anonymousClient(mock)

	posts, err := client.SearchPosts(context.Background(), domain.SocialSearchRequest{Query: "flood"})
	if err != nil {
		t.Fatalf("SearchPosts returned error: %v", err)
	}

	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	p := posts[0]
	if p.Text != "Flooding near the river" {
		t.Errorf("Text = %q", p.Text)
	}
	if p.AuthorHandle != "reporter.bsky.social" {
		t.Errorf("AuthorHandle = %q", p.AuthorHandle)
	}
	if p.Likes != 3 || p.Reposts != 2 || p.Replies != 1 {
		t.Errorf("engagement = %d/%d/%d, want 3/2/1", p.Likes, p.Reposts, p.Replies)
	}
	if p.URL != "https://bsky.app/profile/reporter.bsky.social/post/3l3qo2vuowo2b" {
		t.Errorf("URL = %q", p.URL)
	}
}

func TestSearchPosts_NonSuccessStatusIsError(t *testing.T) {
	mock := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 502, body: "bad gateway"}, nil
		},
	}
	client := anonymousClient(mock)

	if _, err := client.SearchPosts(context.Background(), domain.SocialSearchRequest{Query: "flood"}); err == nil {
		t.Error("SearchPosts should surface non-success status as error")
	}
}

func TestSearchPosts_AnonymousWithoutCredentials(t *testing.T) {
	postCalled := false
	mock := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if _, ok := headers["Authorization"]; ok {
				t.Error("anonymous client must not send Authorization header")
			}
			return &mockResponse{statusCode: 200, body: `{"posts":[]}`}, nil
		},
		postFunc: func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
			postCalled = true
			return nil, errors.New("should not be called")
		},
	}
	client := anonymousClient(mock)

	_, _ = client.SearchPosts(context.Background(), domain.SocialSearchRequest{Query: "flood"})

	if postCalled {
		t.Error("no session call should happen without credentials")
	}
	if client.Authenticated() {
		t.Error("client without credentials must report unauthenticated")
	}
}

func TestSearchPosts_SessionEstablishedOnce(t *testing.T) {
	sessionCalls := 0
	mock := &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
			sessionCalls++
			if !strings.Contains(url, "com.atproto.server.createSession") {
				t.Errorf("session URL = %q", url)
			}
			return &mockResponse{statusCode: 200, body: `{"accessJwt":"jwt-token","handle":"alerts.example.com"}`}, nil
		},
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if headers["Authorization"] != "Bearer jwt-token" {
				t.Errorf("Authorization = %q, want Bearer jwt-token", headers["Authorization"])
			}
			return &mockResponse{statusCode: 200, body: `{"posts":[]}`}, nil
		},
	}
	client := NewClient(
		config.SocialConfig{ServiceURL: "https://bsky.social", Identifier: "alerts.example.com", Password: "app-pass"},
		interfaces.Dependencies{HTTPClient: mock},
	)

	_, _ = client.SearchPosts(context.Background(), domain.SocialSearchRequest{Query: "flood"})
	_, _ = client.SearchPosts(context.Background(), domain.SocialSearchRequest{Query: "fire"})

	if sessionCalls != 1 {
		t.Errorf("session created %d times, want 1", sessionCalls)
	}
	if !client.Authenticated() {
		t.Error("client should report authenticated after session")
	}
}

func TestSearchPosts_LoginFailureDegradesToAnonymous(t *testing.T) {
	mock := &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
			return &mockResponse{statusCode: 401, body: `{"error":"AuthenticationRequired"}`}, nil
		},
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if _, ok := headers["Authorization"]; ok {
				t.Error("failed login must not leave an Authorization header")
			}
			return &mockResponse{statusCode: 200, body: searchBody}, nil
		},
	}
	client := NewClient(
		config.SocialConfig{ServiceURL: "https://bsky.social", Identifier: "alerts.example.com", Password: "wrong"},
		interfaces.Dependencies{HTTPClient: mock},
	)

	posts, err := client.SearchPosts(context.Background(), domain.SocialSearchRequest{Query: "flood"})
	if err != nil {
		t.Fatalf("SearchPosts returned error: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("got %d posts, want 1 from anonymous search", len(posts))
	}
	if client.Authenticated() {
		t.Error("client should remain unauthenticated after failed login")
	}
}
