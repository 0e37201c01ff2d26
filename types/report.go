package types

import "time"

type Severity string

const (
	Low      Severity = "low"
	Medium   Severity = "medium"
	High     Severity = "high"
	Critical Severity = "critical"
)

type HazardCategory string

const (
	Flood      HazardCategory = "flood"
	Storm      HazardCategory = "storm"
	Fire       HazardCategory = "fire"
	Earthquake HazardCategory = "earthquake"
	Tsunami    HazardCategory = "tsunami"
	Accident   HazardCategory = "accident"
	NoHazard   HazardCategory = "none"
)

type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Negative SentimentLabel = "negative"
	Neutral  SentimentLabel = "neutral"
)

// TextAnalysis is attached to a report when it is created and never recomputed.
type TextAnalysis struct {
	HazardType      HazardCategory `firestore:"hazardType" json:"hazardType"`
	UrgencyLevel    float64        `firestore:"urgencyLevel" json:"urgencyLevel"`
	Sentiment       SentimentLabel `firestore:"sentiment" json:"sentiment"`
	Confidence      float64        `firestore:"confidence" json:"confidence"`
	MatchedKeywords []string       `firestore:"matchedKeywords" json:"matchedKeywords"`
}

// Report is a citizen hazard report. Immutable after creation except for the
// Verified flag, which moderation flips.
type Report struct {
	ID             string         `firestore:"-" json:"id"`
	Description    string         `firestore:"description" json:"description"`
	Type           HazardCategory `firestore:"type,omitempty" json:"type,omitempty"` // claimed by the reporter, unverified
	Severity       Severity       `firestore:"severity" json:"severity"`
	Lat            float64        `firestore:"lat" json:"lat"`
	Long           float64        `firestore:"long" json:"long"`
	PlaceName      string         `firestore:"placeName,omitempty" json:"placeName,omitempty"`
	PeopleAffected int            `firestore:"peopleAffected" json:"peopleAffected"`
	Timestamp      time.Time      `firestore:"timestamp" json:"timestamp"`
	Verified       bool           `firestore:"verified" json:"verified"`
	Analysis       TextAnalysis   `firestore:"analysis" json:"analysis"`
}
