package social

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/xrpc"

	"go-shorewatch/types"
)

const (
	feedMethod       = "app.bsky.feed.getFeed"
	blueskyPublicAPI = "https://public.api.bsky.app"
	defaultFeedLimit = 25
)

// FeedParams selects which Bluesky feed to pull and how many posts.
type FeedParams struct {
	URI   string
	Limit int
}

// FetchFeed fetches a hydrated feed from the public Bluesky API.
func FetchFeed(ctx context.Context, p FeedParams) (types.FeedResponse, error) {
	client := &xrpc.Client{
		Client: &http.Client{Timeout: 10 * time.Second},
		Host:   blueskyPublicAPI,
	}

	limit := defaultFeedLimit
	if p.Limit != 0 {
		limit = p.Limit
	}

	params := map[string]interface{}{
		"feed":  p.URI,
		"limit": limit,
	}

	var out types.FeedResponse
	if err := client.Do(ctx, xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		return types.FeedResponse{}, fmt.Errorf("fetch bluesky feed: %w", err)
	}
	return out, nil
}

// PostsFromFeed converts feed entries into the neutral SocialPost shape the
// scorer consumes. Engagement is the sum of likes, reposts, replies and quotes.
func PostsFromFeed(out types.FeedResponse) []types.SocialPost {
	posts := make([]types.SocialPost, 0, len(out.Feed))
	for _, entry := range out.Feed {
		if entry.Post.URI == "" {
			continue
		}
		posts = append(posts, types.SocialPost{
			Platform:    "bluesky",
			Content:     entry.Post.Record.Text,
			Handle:      entry.Post.Author.Handle,
			DisplayName: entry.Post.Author.DisplayName,
			Avatar:      entry.Post.Author.Avatar,
			UID:         entry.Post.URI,
			Engagement:  entry.Post.LikeCount + entry.Post.RepostCount + entry.Post.ReplyCount + entry.Post.QuoteCount,
			Timestamp:   parsePostTime(entry.Post.Record.CreatedAt),
		})
	}
	return posts
}

// parsePostTime parses a post timestamp, tolerating missing fractional seconds.
// Unparseable timestamps come back zero rather than failing the whole feed.
func parsePostTime(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05Z", ts); err == nil {
		return t
	}
	return time.Time{}
}
