package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-shorewatch/alerts"
	"go-shorewatch/cronjobs"
	"go-shorewatch/db"
	"go-shorewatch/geocode"
	"go-shorewatch/nlp"
	"go-shorewatch/observability"
	"go-shorewatch/types"
)

// SubmitReportRequest is the raw ingestion payload. PeopleAffected is typed
// loosely because clients send it as a number, a numeric string, or not at all.
type SubmitReportRequest struct {
	Description    string  `json:"description"`
	Type           string  `json:"type"`
	Severity       string  `json:"severity"`
	Lat            float64 `json:"lat"`
	Long           float64 `json:"long"`
	PlaceName      string  `json:"placeName"`
	PeopleAffected any     `json:"peopleAffected"`
	Timestamp      string  `json:"timestamp"`
}

var validSeverities = map[types.Severity]bool{
	types.Low:      true,
	types.Medium:   true,
	types.High:     true,
	types.Critical: true,
}

// SubmitReport ingests a citizen report: analyze the description, persist the
// report, and evaluate the early-warning policy.
func SubmitReport(
	c *gin.Context,
	firestoreClient *firestore.Client,
	dispatcher alerts.Dispatcher,
	refresher *cronjobs.Refresher,
	metrics *observability.Metrics,
) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	severity := types.Severity(req.Severity)
	if !validSeverities[severity] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "severity must be one of low, medium, high, critical"})
		return
	}

	lat, long := req.Lat, req.Long
	placeName := req.PlaceName
	if lat == 0 && long == 0 && placeName != "" {
		gLat, gLong, formatted, err := geocode.ResolvePlace(c.Request.Context(), placeName)
		if err != nil {
			log.Printf("Geocoding failed for %q: %v", placeName, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not resolve placeName to coordinates"})
			return
		}
		lat, long, placeName = gLat, gLong, formatted
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = parsed.UTC()
		}
	}

	report := types.Report{
		ID:             uuid.NewString(),
		Description:    req.Description,
		Type:           types.HazardCategory(req.Type),
		Severity:       severity,
		Lat:            lat,
		Long:           long,
		PlaceName:      placeName,
		PeopleAffected: coercePeopleAffected(req.PeopleAffected),
		Timestamp:      timestamp,
		Verified:       false,
		Analysis:       nlp.Analyze(req.Description),
	}

	if err := db.SaveReport(firestoreClient, report); err != nil {
		log.Printf("Error saving report %s: %v", report.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}
	metrics.ReportsIngested.Inc()

	triggered := alerts.ShouldTriggerEarlyWarning(report)
	if triggered {
		warning := alerts.BuildWarning(report, time.Now().UTC())
		metrics.AlertsTriggered.Inc()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := dispatcher.Dispatch(ctx, warning); err != nil {
				log.Printf("Error dispatching warning %s: %v", warning.ID, err)
				metrics.AlertDispatchErrors.Inc()
			}
		}()
	}

	// Refresh hotspots in the background so the new report shows up without
	// waiting for the next cron cycle.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if hotspots, err := refresher.RefreshOnce(ctx); err != nil {
			log.Printf("Error refreshing hotspots after report %s: %v", report.ID, err)
		} else if err := db.ReplaceHotspots(firestoreClient, hotspots); err != nil {
			log.Printf("Error persisting hotspots after report %s: %v", report.ID, err)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{
		"report":           report,
		"warningTriggered": triggered,
	})
}

// coercePeopleAffected accepts a number, a numeric string, or nothing.
// Anything else, and any negative value, counts as zero.
func coercePeopleAffected(v any) int {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n)
		}
	case string:
		if parsed, err := strconv.Atoi(n); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 0
}

// ListReports returns reports from the last N hours, optionally filtered by
// severity and hazard type.
func ListReports(c *gin.Context, firestoreClient *firestore.Client) {
	hours := 24
	if h := c.Query("hours"); h != "" {
		parsed, err := strconv.Atoi(h)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be a positive integer"})
			return
		}
		hours = parsed
	}

	severity := types.Severity(c.Query("severity"))
	if severity != "" && !validSeverities[severity] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown severity"})
		return
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	reports, err := db.GetReportsFiltered(firestoreClient, since, severity, types.HazardCategory(c.Query("type")))
	if err != nil {
		log.Printf("Error listing reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(reports),
		"reports": reports,
	})
}

// VerifyReport flips the moderation flag on a report.
func VerifyReport(c *gin.Context, firestoreClient *firestore.Client) {
	reportID := c.Param("id")
	if reportID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report id is required"})
		return
	}

	var body struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := db.SetReportVerified(firestoreClient, reportID, body.Verified); err != nil {
		log.Printf("Error verifying report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": reportID, "verified": body.Verified})
}
