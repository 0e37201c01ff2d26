package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-shorewatch/types"
)

func TestShouldTriggerEarlyWarning(t *testing.T) {
	tests := []struct {
		name     string
		severity types.Severity
		urgency  float64
		want     bool
	}{
		{"critical severity always fires", types.Critical, 0, true},
		{"high urgency fires", types.Medium, 0.9, true},
		{"urgency exactly at threshold does not fire", types.Medium, 0.7, false},
		{"low severity low urgency", types.Low, 0.3, false},
		{"critical with high urgency", types.Critical, 0.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := types.Report{
				Severity: tt.severity,
				Analysis: types.TextAnalysis{UrgencyLevel: tt.urgency},
			}
			assert.Equal(t, tt.want, ShouldTriggerEarlyWarning(report))
		})
	}
}

func TestBuildWarning(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	report := types.Report{
		ID:       "rep-1",
		Severity: types.Critical,
		Lat:      19.0,
		Long:     72.8,
		Analysis: types.TextAnalysis{HazardType: types.Flood, UrgencyLevel: 0.6},
	}

	warning := BuildWarning(report, now)

	assert.NotEmpty(t, warning.ID)
	assert.Equal(t, types.Critical, warning.Severity)
	assert.Equal(t, types.Flood, warning.HazardType)
	assert.Equal(t, "rep-1", warning.SourceReportID)
	assert.Equal(t, now, warning.Timestamp)
	assert.Contains(t, warning.Message, "flood")
}

func TestBuildWarningFallsBackToReportedType(t *testing.T) {
	report := types.Report{
		ID:       "rep-2",
		Type:     types.Tsunami,
		Severity: types.Critical,
		Analysis: types.TextAnalysis{HazardType: types.NoHazard},
	}

	warning := BuildWarning(report, time.Now())

	assert.Equal(t, types.Tsunami, warning.HazardType)
}
