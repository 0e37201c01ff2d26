package detection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shorewatch/types"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func makeReport(id string, lat, long float64, sev types.Severity, age time.Duration) types.Report {
	return types.Report{
		ID:        id,
		Lat:       lat,
		Long:      long,
		Severity:  sev,
		Timestamp: testNow.Add(-age),
	}
}

func TestGenerateHotspotsIsolatedReportIgnored(t *testing.T) {
	reports := []types.Report{
		makeReport("r1", 19.01, 72.85, types.Critical, time.Hour),
	}

	hotspots := GenerateHotspots(reports, DefaultWindow, testNow)

	assert.Empty(t, hotspots)
}

func TestGenerateHotspotsTwoCriticalSameCell(t *testing.T) {
	reports := []types.Report{
		makeReport("r1", 19.01, 72.85, types.Critical, time.Hour),
		makeReport("r2", 19.01, 72.85, types.Critical, 2*time.Hour),
	}

	hotspots := GenerateHotspots(reports, DefaultWindow, testNow)

	require.Len(t, hotspots, 1)
	// 4 + 4 = 8 is above the high cutoff but not above the critical one.
	assert.Equal(t, 8, hotspots[0].SeverityScore)
	assert.Equal(t, types.High, hotspots[0].Severity)
	assert.Equal(t, 2, hotspots[0].ReportCount)
}

func TestGenerateHotspotsCriticalThreshold(t *testing.T) {
	reports := []types.Report{
		makeReport("r1", 19.01, 72.85, types.Critical, time.Hour),
		makeReport("r2", 19.01, 72.85, types.Critical, time.Hour),
		makeReport("r3", 19.01, 72.85, types.High, time.Hour),
	}

	hotspots := GenerateHotspots(reports, DefaultWindow, testNow)

	require.Len(t, hotspots, 1)
	// 4 + 4 + 3 = 11 > 10
	assert.Equal(t, types.Critical, hotspots[0].Severity)
}

func TestGenerateHotspotsWindowFilter(t *testing.T) {
	reports := []types.Report{
		makeReport("fresh1", 19.01, 72.85, types.Medium, time.Hour),
		makeReport("fresh2", 19.01, 72.85, types.Medium, 2*time.Hour),
		makeReport("stale", 19.01, 72.85, types.Critical, 25*time.Hour),
	}

	hotspots := GenerateHotspots(reports, DefaultWindow, testNow)

	require.Len(t, hotspots, 1)
	assert.Equal(t, 2, hotspots[0].ReportCount)
	assert.Equal(t, 4, hotspots[0].SeverityScore)
}

func TestGenerateHotspotsCentroidAndRollups(t *testing.T) {
	r1 := makeReport("r1", 19.00, 72.80, types.High, time.Hour)
	r1.Type = types.Flood
	r1.PeopleAffected = 40
	r2 := makeReport("r2", 19.04, 72.84, types.Medium, 30*time.Minute)
	r2.Type = types.Storm
	r2.PeopleAffected = 10
	r3 := makeReport("r3", 19.02, 72.82, "", 3*time.Hour) // unknown severity
	r3.Type = types.Flood

	hotspots := GenerateHotspots([]types.Report{r1, r2, r3}, DefaultWindow, testNow)

	require.Len(t, hotspots, 1)
	h := hotspots[0]
	assert.InDelta(t, 19.02, h.Lat, 1e-9)
	assert.InDelta(t, 72.82, h.Long, 1e-9)
	// high 3 + medium 2 + unknown 1
	assert.Equal(t, 6, h.SeverityScore)
	assert.Equal(t, types.Medium, h.Severity)
	assert.Equal(t, []types.HazardCategory{types.Flood, types.Storm}, h.HazardTypes)
	assert.Equal(t, 50, h.AffectedPeople)
	assert.Equal(t, r2.Timestamp, h.LastUpdate)
}

func TestGenerateHotspotsSeparateCells(t *testing.T) {
	reports := []types.Report{
		makeReport("a1", 19.01, 72.85, types.Medium, time.Hour),
		makeReport("a2", 19.02, 72.86, types.Medium, time.Hour),
		makeReport("b1", 13.05, 80.25, types.Medium, time.Hour),
		makeReport("b2", 13.06, 80.26, types.Medium, time.Hour),
	}

	hotspots := GenerateHotspots(reports, DefaultWindow, testNow)

	require.Len(t, hotspots, 2)
	assert.NotEqual(t, hotspots[0].CellKey, hotspots[1].CellKey)
}

func TestGenerateHotspotsIdempotent(t *testing.T) {
	reports := []types.Report{
		makeReport("r1", 19.01, 72.85, types.Critical, time.Hour),
		makeReport("r2", 19.02, 72.86, types.High, 2*time.Hour),
		makeReport("r3", 13.05, 80.25, types.Medium, 3*time.Hour),
		makeReport("r4", 13.06, 80.26, types.Low, 4*time.Hour),
	}

	first := GenerateHotspots(reports, DefaultWindow, testNow)
	second := GenerateHotspots(reports, DefaultWindow, testNow)

	assert.Equal(t, first, second)
}

func TestCellKeyTruncation(t *testing.T) {
	assert.Equal(t, "190_728", CellKey(19.01, 72.85))
	assert.Equal(t, "190_728", CellKey(19.09, 72.89))
	assert.Equal(t, "-190_-728", CellKey(-19.01, -72.85))
	assert.Equal(t, "0_0", CellKey(0.05, -0.05))
}
