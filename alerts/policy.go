package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"go-shorewatch/types"
)

// Reports whose analyzed urgency exceeds this trigger a warning even when the
// reporter did not mark them critical.
const urgencyTriggerThreshold = 0.7

// ShouldTriggerEarlyWarning decides whether a single report warrants an
// early-warning dispatch.
func ShouldTriggerEarlyWarning(report types.Report) bool {
	return report.Severity == types.Critical ||
		report.Analysis.UrgencyLevel > urgencyTriggerThreshold
}

// BuildWarning constructs the warning record for a triggering report.
func BuildWarning(report types.Report, now time.Time) types.Warning {
	hazardType := report.Analysis.HazardType
	if hazardType == types.NoHazard && report.Type != "" {
		hazardType = report.Type
	}

	return types.Warning{
		ID:             uuid.NewString(),
		Severity:       report.Severity,
		HazardType:     hazardType,
		Lat:            report.Lat,
		Long:           report.Long,
		Message:        fmt.Sprintf("Early warning: %s report (%s severity) near %.4f, %.4f", hazardType, report.Severity, report.Lat, report.Long),
		SourceReportID: report.ID,
		Timestamp:      now,
	}
}
