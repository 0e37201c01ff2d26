package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-shorewatch/types"
)

func TestAnalyzeEmptyText(t *testing.T) {
	analysis := Analyze("")

	assert.Equal(t, types.NoHazard, analysis.HazardType)
	assert.Equal(t, 0.0, analysis.Confidence)
	assert.Equal(t, 0.0, analysis.UrgencyLevel)
	assert.Equal(t, types.Neutral, analysis.Sentiment)
	assert.Empty(t, analysis.MatchedKeywords)
}

func TestAnalyzeFloodKeyword(t *testing.T) {
	analysis := Analyze("severe flooding near the river bank")

	assert.Equal(t, types.Flood, analysis.HazardType)
	assert.Greater(t, analysis.Confidence, 0.0)
	assert.Contains(t, analysis.MatchedKeywords, "flooding")
}

func TestAnalyzeCategoryOrderTieBreak(t *testing.T) {
	// "flood" and "fire" both match, but flood is evaluated first, so it wins
	// even though the fire category could match just as well.
	analysis := Analyze("flood waters reached the fire station")

	assert.Equal(t, types.Flood, analysis.HazardType)
	// Both matching categories still contribute to confidence.
	assert.InDelta(t, 0.4, analysis.Confidence, 1e-9)
}

func TestAnalyzeLaterCategoryWhenEarlierAbsent(t *testing.T) {
	analysis := Analyze("boat capsized after a collision near the harbor")

	assert.Equal(t, types.Accident, analysis.HazardType)
	assert.InDelta(t, 0.4, analysis.Confidence, 1e-9)
}

func TestAnalyzeUrgency(t *testing.T) {
	t.Run("two urgency keywords", func(t *testing.T) {
		analysis := Analyze("urgent emergency at the pier")
		assert.InDelta(t, 0.6, analysis.UrgencyLevel, 1e-9)
	})

	t.Run("capped at one", func(t *testing.T) {
		analysis := Analyze("urgent emergency help danger evacuate sos rescue")
		assert.Equal(t, 1.0, analysis.UrgencyLevel)
	})

	t.Run("repetition does not add", func(t *testing.T) {
		// Urgency counts keyword presence, not frequency.
		analysis := Analyze("urgent urgent urgent urgent")
		assert.InDelta(t, 0.3, analysis.UrgencyLevel, 1e-9)
	})
}

func TestAnalyzeConfidenceClamped(t *testing.T) {
	// Enough distinct keywords to exceed 1.0 before clamping.
	analysis := Analyze("flood flooding submerged waterlogged storm cyclone gale fire smoke tremor")

	assert.LessOrEqual(t, analysis.Confidence, 1.0)
	assert.GreaterOrEqual(t, analysis.Confidence, 0.0)
	assert.LessOrEqual(t, analysis.UrgencyLevel, 1.0)
}

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.SentimentLabel
	}{
		{"negative outweighs", "terrible damage everywhere, people injured and dead", types.Negative},
		{"positive outweighs", "everyone is safe, crew rescued and recovered", types.Positive},
		{"tie is neutral", "dangerous but everyone safe", types.Neutral},
		{"no sentiment words", "water rising near the dock", types.Neutral},
		{"frequency counted", "safe safe safe but dangerous", types.Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).Sentiment)
		})
	}
}

func TestAnalyzeWordInBothSets(t *testing.T) {
	// "critical" sits in the urgency set and can appear alongside hazard
	// keywords; each signal accumulates independently.
	analysis := Analyze("critical flood situation")

	assert.Equal(t, types.Flood, analysis.HazardType)
	assert.InDelta(t, 0.3, analysis.UrgencyLevel, 1e-9)
	assert.InDelta(t, 0.2, analysis.Confidence, 1e-9)
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "urgent flood emergency near the coast"
	first := Analyze(text)
	second := Analyze(text)

	assert.Equal(t, first, second)
}

func TestAnalyzeBoundsProperty(t *testing.T) {
	// Arbitrary keyword-dense garbage must stay inside [0,1] on both axes.
	junk := strings.Repeat("flood storm fire urgent emergency danger ", 50)
	analysis := Analyze(junk)

	assert.GreaterOrEqual(t, analysis.Confidence, 0.0)
	assert.LessOrEqual(t, analysis.Confidence, 1.0)
	assert.GreaterOrEqual(t, analysis.UrgencyLevel, 0.0)
	assert.LessOrEqual(t, analysis.UrgencyLevel, 1.0)
}
