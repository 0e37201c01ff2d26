package types

import "time"

// Hotspot is a cluster of recent reports that fell into the same coarse grid
// cell. Every field is recomputed from the current member set on each
// aggregation pass; hotspots are never updated incrementally.
type Hotspot struct {
	ID             string           `firestore:"-" json:"id"`
	CellKey        string           `firestore:"cellKey" json:"cellKey"`
	Lat            float64          `firestore:"lat" json:"lat"`   // centroid latitude
	Long           float64          `firestore:"long" json:"long"` // centroid longitude
	ReportCount    int              `firestore:"reportCount" json:"reportCount"`
	Severity       Severity         `firestore:"severity" json:"severity"`
	SeverityScore  int              `firestore:"severityScore" json:"severityScore"`
	HazardTypes    []HazardCategory `firestore:"hazardTypes" json:"hazardTypes"`
	LastUpdate     time.Time        `firestore:"lastUpdate" json:"lastUpdate"`
	AffectedPeople int              `firestore:"affectedPeople" json:"affectedPeople"`
	Summary        string           `firestore:"summary,omitempty" json:"summary,omitempty"` // filled in later by the LLM
}
