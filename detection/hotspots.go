package detection

import (
	"fmt"
	"sort"
	"time"

	"go-shorewatch/types"
)

const (
	// DefaultWindow is the recency window for hotspot aggregation.
	DefaultWindow = 24 * time.Hour

	// Cells with fewer members than this never become hotspots.
	minCellReports = 2

	// Coordinates are multiplied by cellScale and truncated to form the grid
	// key, giving roughly 0.1 x 0.1 degree cells (~11km at the equator). This
	// is a coarse rectangular approximation, not radius-based clustering.
	cellScale = 10

	// --- Severity Thresholds ---
	critScoreThreshold = 10
	highScoreThreshold = 6
)

var severityWeights = map[types.Severity]int{
	types.Critical: 4,
	types.High:     3,
	types.Medium:   2,
	types.Low:      1,
}

// GenerateHotspots buckets in-window reports into grid cells and rolls each
// cell with two or more members up into a hotspot. It is a full recompute:
// output is a pure function of the input set, so running it twice on the same
// snapshot yields identical results and a stale run can simply be discarded.
func GenerateHotspots(reports []types.Report, window time.Duration, now time.Time) []types.Hotspot {
	cells := make(map[string][]types.Report)
	for _, r := range reports {
		if now.Sub(r.Timestamp) >= window {
			continue
		}
		key := CellKey(r.Lat, r.Long)
		cells[key] = append(cells[key], r)
	}

	keys := make([]string, 0, len(cells))
	for key, members := range cells {
		if len(members) < minCellReports {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	hotspots := make([]types.Hotspot, 0, len(keys))
	for _, key := range keys {
		hotspots = append(hotspots, buildHotspot(key, cells[key]))
	}
	return hotspots
}

// CellKey maps a coordinate onto its grid cell identifier.
func CellKey(lat, long float64) string {
	return fmt.Sprintf("%d_%d", int(lat*cellScale), int(long*cellScale))
}

// buildHotspot rolls a cell's member reports up into a single hotspot.
func buildHotspot(key string, members []types.Report) types.Hotspot {
	hotspot := types.Hotspot{
		ID:          "hotspot-" + key,
		CellKey:     key,
		ReportCount: len(members),
	}

	var sumLat, sumLong float64
	seenTypes := make(map[types.HazardCategory]bool)

	for _, r := range members {
		sumLat += r.Lat
		sumLong += r.Long

		weight, ok := severityWeights[r.Severity]
		if !ok {
			weight = 1
		}
		hotspot.SeverityScore += weight

		if r.Type != "" && !seenTypes[r.Type] {
			seenTypes[r.Type] = true
			hotspot.HazardTypes = append(hotspot.HazardTypes, r.Type)
		}

		if r.Timestamp.After(hotspot.LastUpdate) {
			hotspot.LastUpdate = r.Timestamp
		}

		if r.PeopleAffected > 0 {
			hotspot.AffectedPeople += r.PeopleAffected
		}
	}

	count := float64(len(members))
	hotspot.Lat = sumLat / count
	hotspot.Long = sumLong / count

	sort.Slice(hotspot.HazardTypes, func(i, j int) bool {
		return hotspot.HazardTypes[i] < hotspot.HazardTypes[j]
	})

	switch {
	case hotspot.SeverityScore > critScoreThreshold:
		hotspot.Severity = types.Critical
	case hotspot.SeverityScore > highScoreThreshold:
		hotspot.Severity = types.High
	default:
		hotspot.Severity = types.Medium
	}

	return hotspot
}
