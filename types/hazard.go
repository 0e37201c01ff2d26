package types

import "time"

// HazardKind is an environmental hazard class produced by weather ingestion.
type HazardKind string

const (
	StormHazard      HazardKind = "storm"
	WaveHazard       HazardKind = "waves"
	VisibilityHazard HazardKind = "visibility"
	WindHazard       HazardKind = "wind"
)

// Hazard is one active environmental condition at a monitored station. The
// full hazard list is replaced wholesale on every weather ingestion cycle,
// never merged.
type Hazard struct {
	Type      HazardKind `json:"type"`
	Severity  Severity   `json:"severity"` // medium or high
	Lat       float64    `json:"lat"`
	Long      float64    `json:"long"`
	Station   string     `json:"station"`
	Timestamp time.Time  `json:"timestamp"`
}
