package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shorewatch/types"
)

var (
	testStation = Station{Name: "Mumbai", Lat: 19.08, Long: 72.88}
	testNow     = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
)

func kindsOf(hazards []types.Hazard) []types.HazardKind {
	kinds := make([]types.HazardKind, 0, len(hazards))
	for _, h := range hazards {
		kinds = append(kinds, h.Type)
	}
	return kinds
}

func TestHazardsFromObservationCalm(t *testing.T) {
	obs := Observation{WindSpeedKmh: 12, WaveHeightM: 0.5, VisibilityKm: 20, WeatherCode: 2}

	assert.Empty(t, HazardsFromObservation(testStation, obs, testNow))
}

func TestHazardsFromObservationThresholds(t *testing.T) {
	tests := []struct {
		name     string
		obs      Observation
		wantKind types.HazardKind
		wantSev  types.Severity
	}{
		{"moderate wind", Observation{WindSpeedKmh: 45, VisibilityKm: 20}, types.WindHazard, types.Medium},
		{"gale wind", Observation{WindSpeedKmh: 70, VisibilityKm: 20}, types.WindHazard, types.High},
		{"moderate waves", Observation{WaveHeightM: 2.5, VisibilityKm: 20}, types.WaveHazard, types.Medium},
		{"high waves", Observation{WaveHeightM: 4.5, VisibilityKm: 20}, types.WaveHazard, types.High},
		{"reduced visibility", Observation{VisibilityKm: 3}, types.VisibilityHazard, types.Medium},
		{"dense fog", Observation{VisibilityKm: 0.5}, types.VisibilityHazard, types.High},
		{"thunderstorm", Observation{WeatherCode: 95, VisibilityKm: 20}, types.StormHazard, types.Medium},
		{"thunderstorm with hail", Observation{WeatherCode: 96, VisibilityKm: 20}, types.StormHazard, types.High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hazards := HazardsFromObservation(testStation, tt.obs, testNow)

			require.Len(t, hazards, 1)
			assert.Equal(t, tt.wantKind, hazards[0].Type)
			assert.Equal(t, tt.wantSev, hazards[0].Severity)
			assert.Equal(t, testStation.Name, hazards[0].Station)
			assert.Equal(t, testStation.Lat, hazards[0].Lat)
			assert.Equal(t, testNow, hazards[0].Timestamp)
		})
	}
}

func TestHazardsFromObservationCompound(t *testing.T) {
	// A cyclone-like reading trips every factor at once.
	obs := Observation{WindSpeedKmh: 90, WaveHeightM: 6, VisibilityKm: 0.8, WeatherCode: 99}

	hazards := HazardsFromObservation(testStation, obs, testNow)

	require.Len(t, hazards, 4)
	assert.ElementsMatch(t,
		[]types.HazardKind{types.StormHazard, types.WaveHazard, types.WindHazard, types.VisibilityHazard},
		kindsOf(hazards))
	for _, h := range hazards {
		assert.Equal(t, types.High, h.Severity)
	}
}

func TestHazardsFromObservationZeroVisibilityReading(t *testing.T) {
	// A missing visibility reading decodes as 0 and must not fabricate a fog
	// hazard.
	obs := Observation{VisibilityKm: 0}

	assert.Empty(t, HazardsFromObservation(testStation, obs, testNow))
}
