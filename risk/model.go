package risk

import (
	"math"

	"go-shorewatch/types"
)

const (
	earthRadiusKM = 6371.0

	// Proximity decays linearly from 1 at the hazard to 0 at this distance;
	// hazards farther away contribute nothing.
	decayRadiusKM = 100.0

	// --- Factor Weights ---
	stormWeightHigh = 0.8
	stormWeight     = 0.5
	waveWeightHigh  = 0.7
	waveWeight      = 0.4
	windWeight      = 0.3 // severity-independent
	visWeight       = 0.2 // severity-independent

	// --- Risk Level Thresholds ---
	highRiskThreshold   = 0.7
	mediumRiskThreshold = 0.4
)

// Location is a query point for a risk assessment.
type Location struct {
	Lat  float64
	Long float64
}

var highRiskRecommendations = []string{
	"Avoid all coastal and small-craft activity until conditions improve.",
	"Follow evacuation or restriction orders from local authorities.",
	"Keep emergency contacts and supplies within reach.",
}

var mediumRiskRecommendations = []string{
	"Exercise caution near the shoreline and in open water.",
	"Check official advisories before heading out.",
	"Postpone non-essential trips in small vessels.",
}

var lowRiskRecommendations = []string{
	"Conditions are near normal for this area.",
	"Stay aware of official forecasts.",
}

// AssessRisk scores a location against the currently active hazard snapshot.
// Each hazard contributes its factor weight scaled by proximity; the four
// factor totals sum into the overall risk, capped at 1. An empty hazard list
// yields zero risk, not an error.
//
// timeframeHours is accepted for interface compatibility but does not affect
// scoring yet.
func AssessRisk(loc Location, hazards []types.Hazard, timeframeHours int) types.RiskAssessment {
	_ = timeframeHours

	factors := map[string]float64{
		string(types.StormHazard):      0,
		string(types.WaveHazard):       0,
		string(types.WindHazard):       0,
		string(types.VisibilityHazard): 0,
	}

	for _, h := range hazards {
		distance := Haversine(loc.Lat, loc.Long, h.Lat, h.Long)
		proximity := 1 - distance/decayRadiusKM
		if proximity < 0 {
			proximity = 0
		}

		// TODO: decide whether hazard kinds outside the four factors should
		// surface in the response instead of silently contributing nothing.
		switch h.Type {
		case types.StormHazard:
			if h.Severity == types.High {
				factors[string(types.StormHazard)] += proximity * stormWeightHigh
			} else {
				factors[string(types.StormHazard)] += proximity * stormWeight
			}
		case types.WaveHazard:
			if h.Severity == types.High {
				factors[string(types.WaveHazard)] += proximity * waveWeightHigh
			} else {
				factors[string(types.WaveHazard)] += proximity * waveWeight
			}
		case types.WindHazard:
			factors[string(types.WindHazard)] += proximity * windWeight
		case types.VisibilityHazard:
			factors[string(types.VisibilityHazard)] += proximity * visWeight
		}
	}

	var overall float64
	for _, v := range factors {
		overall += v
	}
	if overall > 1 {
		overall = 1
	}

	assessment := types.RiskAssessment{
		OverallRisk: overall,
		Factors:     factors,
	}

	switch {
	case overall > highRiskThreshold:
		assessment.RiskLevel = types.RiskHigh
		assessment.Recommendations = highRiskRecommendations
	case overall > mediumRiskThreshold:
		assessment.RiskLevel = types.RiskMedium
		assessment.Recommendations = mediumRiskRecommendations
	default:
		assessment.RiskLevel = types.RiskLow
		assessment.Recommendations = lowRiskRecommendations
	}

	return assessment
}

// Haversine calculates the great-circle distance in kilometers between two
// points specified in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180

	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
