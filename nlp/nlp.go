package nlp

import (
	"strings"
	"unicode"

	"go-shorewatch/types"
)

const (
	// Each matched hazard keyword adds this much confidence.
	keywordConfidenceWeight = 0.2
	// Each present urgency keyword adds this much urgency, capped at 1.
	urgencyKeywordWeight = 0.3
)

// hazardCategoryOrder fixes the evaluation order. The first category with at
// least one matching keyword determines HazardType, even if a later category
// matches more keywords. Do not reorder.
var hazardCategoryOrder = []types.HazardCategory{
	types.Flood,
	types.Storm,
	types.Fire,
	types.Earthquake,
	types.Tsunami,
	types.Accident,
}

var hazardKeywords = map[types.HazardCategory][]string{
	types.Flood:      {"flood", "flooding", "inundation", "water level", "submerged", "waterlogged", "overflow"},
	types.Storm:      {"storm", "cyclone", "hurricane", "thunderstorm", "gale", "squall", "heavy rain"},
	types.Fire:       {"fire", "blaze", "burning", "flames", "smoke"},
	types.Earthquake: {"earthquake", "tremor", "quake", "seismic", "aftershock"},
	types.Tsunami:    {"tsunami", "tidal wave", "sea surge", "high waves"},
	types.Accident:   {"accident", "collision", "capsized", "crash", "drowning", "stranded"},
}

var urgencyKeywords = []string{
	"urgent", "emergency", "immediately", "help", "danger",
	"evacuate", "sos", "rescue", "trapped", "critical",
}

var negativeWords = []string{
	"dangerous", "scary", "terrible", "destroyed", "damage", "damaged",
	"death", "dead", "injured", "devastating", "panic", "fear", "worst",
}

var positiveWords = []string{
	"safe", "rescued", "saved", "relief", "recovered", "calm", "helped", "stable",
}

// Analyze runs the rule-based hazard classifier over free text. It is pure and
// total: empty or garbage input yields the zero-signal result, never an error.
func Analyze(text string) types.TextAnalysis {
	analysis := types.TextAnalysis{
		HazardType:      types.NoHazard,
		Sentiment:       types.Neutral,
		MatchedKeywords: []string{},
	}
	if text == "" {
		return analysis
	}

	lower := strings.ToLower(text)

	for _, category := range hazardCategoryOrder {
		matched := 0
		for _, kw := range hazardKeywords[category] {
			if strings.Contains(lower, kw) {
				matched++
				analysis.MatchedKeywords = append(analysis.MatchedKeywords, kw)
			}
		}
		if matched == 0 {
			continue
		}
		if analysis.HazardType == types.NoHazard {
			analysis.HazardType = category
		}
		analysis.Confidence += float64(matched) * keywordConfidenceWeight
	}

	urgentCount := 0
	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			urgentCount++
		}
	}
	analysis.UrgencyLevel = float64(urgentCount) * urgencyKeywordWeight
	if analysis.UrgencyLevel > 1 {
		analysis.UrgencyLevel = 1
	}

	analysis.Sentiment = scoreSentiment(lower)

	if analysis.Confidence > 1 {
		analysis.Confidence = 1
	}

	return analysis
}

// scoreSentiment counts whole-word occurrences of the negative and positive
// word lists; the larger count wins, a tie is neutral.
func scoreSentiment(lower string) types.SentimentLabel {
	freq := make(map[string]int)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		freq[w]++
	}

	negCount, posCount := 0, 0
	for _, w := range negativeWords {
		negCount += freq[w]
	}
	for _, w := range positiveWords {
		posCount += freq[w]
	}

	switch {
	case negCount > posCount:
		return types.Negative
	case posCount > negCount:
		return types.Positive
	default:
		return types.Neutral
	}
}
