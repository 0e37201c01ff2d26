package types

import "time"

// Warning is the record handed to the dispatch channel when a report trips the
// early-warning policy. Dispatch is fire-and-forget: one attempt, no retry.
type Warning struct {
	ID             string         `json:"id"`
	Severity       Severity       `json:"severity"`
	HazardType     HazardCategory `json:"hazardType"`
	Lat            float64        `json:"lat"`
	Long           float64        `json:"long"`
	Message        string         `json:"message"`
	SourceReportID string         `json:"sourceReportId"`
	Timestamp      time.Time      `json:"timestamp"`
}
