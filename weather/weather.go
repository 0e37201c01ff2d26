package weather

import (
	"time"

	"go-shorewatch/types"
)

// Station is a monitored coastal location. The list is fixed at build time,
// the same way the ingestion feeds are.
type Station struct {
	Name string
	Lat  float64
	Long float64
}

var DefaultStations = []Station{
	{Name: "Mumbai", Lat: 19.08, Long: 72.88},
	{Name: "Chennai", Lat: 13.08, Long: 80.27},
	{Name: "Visakhapatnam", Lat: 17.69, Long: 83.22},
	{Name: "Kochi", Lat: 9.93, Long: 76.27},
}

// Observation is one marine-weather reading at a station.
type Observation struct {
	WindSpeedKmh float64
	WaveHeightM  float64
	VisibilityKm float64
	WeatherCode  int
}

const (
	// Wind thresholds follow the near-gale/gale boundaries.
	windMediumKmh = 40.0
	windHighKmh   = 62.0

	waveMediumM = 2.0
	waveHighM   = 4.0

	visMediumKm = 4.0
	visHighKm   = 1.0

	// WMO weather codes 95-99 are thunderstorms; 96+ include hail.
	thunderstormCode     = 95
	severeThunderstormGT = 95
)

// HazardsFromObservation maps a reading onto zero or more active hazards.
// Calm readings produce nothing; each exceeded threshold produces one hazard
// at medium or high severity.
func HazardsFromObservation(st Station, obs Observation, now time.Time) []types.Hazard {
	base := types.Hazard{
		Lat:       st.Lat,
		Long:      st.Long,
		Station:   st.Name,
		Timestamp: now,
	}

	var hazards []types.Hazard

	if obs.WeatherCode >= thunderstormCode {
		h := base
		h.Type = types.StormHazard
		h.Severity = types.Medium
		if obs.WeatherCode > severeThunderstormGT {
			h.Severity = types.High
		}
		hazards = append(hazards, h)
	}

	if obs.WaveHeightM >= waveMediumM {
		h := base
		h.Type = types.WaveHazard
		h.Severity = types.Medium
		if obs.WaveHeightM >= waveHighM {
			h.Severity = types.High
		}
		hazards = append(hazards, h)
	}

	if obs.WindSpeedKmh >= windMediumKmh {
		h := base
		h.Type = types.WindHazard
		h.Severity = types.Medium
		if obs.WindSpeedKmh >= windHighKmh {
			h.Severity = types.High
		}
		hazards = append(hazards, h)
	}

	if obs.VisibilityKm > 0 && obs.VisibilityKm <= visMediumKm {
		h := base
		h.Type = types.VisibilityHazard
		h.Severity = types.Medium
		if obs.VisibilityKm <= visHighKm {
			h.Severity = types.High
		}
		hazards = append(hazards, h)
	}

	return hazards
}
