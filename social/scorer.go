package social

import (
	"go-shorewatch/nlp"
	"go-shorewatch/types"
)

const (
	// Posts at or below this confidence are dropped as too weak to be
	// hazard-related. This gates on precision, not relevance: a retained post
	// can still carry a low relevance score.
	confidenceGate = 0.3

	engagementDivisor = 100.0
	urgencyOffset     = 0.5
)

// Score runs the text classifier over a post and combines the result with its
// engagement into a single relevance score.
func Score(post types.SocialPost) float64 {
	return relevance(nlp.Analyze(post.Content), post.Engagement)
}

func relevance(analysis types.TextAnalysis, engagement int) float64 {
	return analysis.Confidence *
		(1 + float64(engagement)/engagementDivisor) *
		(analysis.UrgencyLevel + urgencyOffset)
}

// ProcessMany scores a batch of posts and keeps only those that clear the
// confidence gate, pairing each with its analysis and relevance score.
func ProcessMany(posts []types.SocialPost) []types.ScoredPost {
	scored := make([]types.ScoredPost, 0, len(posts))
	for _, post := range posts {
		analysis := nlp.Analyze(post.Content)
		if analysis.Confidence <= confidenceGate {
			continue
		}
		scored = append(scored, types.ScoredPost{
			Post:      post,
			Analysis:  analysis,
			Relevance: relevance(analysis, post.Engagement),
		})
	}
	return scored
}
