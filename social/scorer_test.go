package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shorewatch/nlp"
	"go-shorewatch/types"
)

func TestScoreFormula(t *testing.T) {
	post := types.SocialPost{
		Content:    "urgent flooding near the harbor",
		Engagement: 50,
	}

	analysis := nlp.Analyze(post.Content)
	want := analysis.Confidence * (1 + 50.0/100.0) * (analysis.UrgencyLevel + 0.5)

	assert.InDelta(t, want, Score(post), 1e-9)
	assert.Greater(t, Score(post), 0.0)
}

func TestScoreZeroEngagement(t *testing.T) {
	post := types.SocialPost{Content: "flooding downtown"}

	analysis := nlp.Analyze(post.Content)
	want := analysis.Confidence * 1.0 * (analysis.UrgencyLevel + 0.5)

	assert.InDelta(t, want, Score(post), 1e-9)
}

func TestProcessManyConfidenceGate(t *testing.T) {
	posts := []types.SocialPost{
		{UID: "weak", Content: "nice day at the beach", Engagement: 900},
		{UID: "single-keyword", Content: "the road is submerged", Engagement: 10}, // confidence 0.2, gated
		{UID: "strong", Content: "flood flooding submerged near the port", Engagement: 5},
	}

	scored := ProcessMany(posts)

	require.Len(t, scored, 1)
	assert.Equal(t, "strong", scored[0].Post.UID)
	assert.Greater(t, scored[0].Analysis.Confidence, 0.3)
	assert.Greater(t, scored[0].Relevance, 0.0)
}

func TestProcessManyKeepsLowRelevanceHighConfidence(t *testing.T) {
	// The gate is on confidence only; a confident post with no urgency and no
	// engagement stays in even though its relevance is small.
	posts := []types.SocialPost{
		{UID: "calm", Content: "flood flooding waterlogged streets today"},
	}

	scored := ProcessMany(posts)

	require.Len(t, scored, 1)
	assert.Equal(t, 0.0, scored[0].Analysis.UrgencyLevel)
	assert.Greater(t, scored[0].Relevance, 0.0)
}

func TestPostsFromFeed(t *testing.T) {
	out := types.FeedResponse{
		Feed: []types.FeedEntry{
			{Post: types.BskyPost{
				URI:         "at://did:plc:x/post/1",
				LikeCount:   10,
				RepostCount: 3,
				ReplyCount:  2,
				QuoteCount:  1,
				Author:      types.BskyAuthor{Handle: "report.bsky.social", DisplayName: "Reporter"},
				Record:      types.BskyRecord{Text: "flooding at the dock", CreatedAt: "2025-06-15T10:00:00.123Z"},
			}},
			{Post: types.BskyPost{}}, // no URI, dropped
		},
	}

	posts := PostsFromFeed(out)

	require.Len(t, posts, 1)
	assert.Equal(t, "bluesky", posts[0].Platform)
	assert.Equal(t, 16, posts[0].Engagement)
	assert.Equal(t, "flooding at the dock", posts[0].Content)
	assert.False(t, posts[0].Timestamp.IsZero())
}
