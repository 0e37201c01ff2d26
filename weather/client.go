package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"go-shorewatch/types"
)

const (
	forecastURL = "https://api.open-meteo.com/v1/forecast"
	marineURL   = "https://marine-api.open-meteo.com/v1/marine"
)

type forecastResponse struct {
	Current struct {
		WindSpeed10m float64 `json:"wind_speed_10m"`
		Visibility   float64 `json:"visibility"` // meters
		WeatherCode  int     `json:"weather_code"`
	} `json:"current"`
}

type marineResponse struct {
	Current struct {
		WaveHeight float64 `json:"wave_height"`
	} `json:"current"`
}

// FetchObservation pulls the current conditions for one station from the
// Open-Meteo forecast and marine APIs.
func FetchObservation(ctx context.Context, st Station) (Observation, error) {
	var obs Observation

	var forecast forecastResponse
	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=wind_speed_10m,visibility,weather_code", forecastURL, st.Lat, st.Long)
	if err := getJSON(ctx, url, &forecast); err != nil {
		return obs, fmt.Errorf("forecast fetch for %s: %w", st.Name, err)
	}

	var marine marineResponse
	url = fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=wave_height", marineURL, st.Lat, st.Long)
	if err := getJSON(ctx, url, &marine); err != nil {
		return obs, fmt.Errorf("marine fetch for %s: %w", st.Name, err)
	}

	obs.WindSpeedKmh = forecast.Current.WindSpeed10m
	obs.VisibilityKm = forecast.Current.Visibility / 1000
	obs.WeatherCode = forecast.Current.WeatherCode
	obs.WaveHeightM = marine.Current.WaveHeight
	return obs, nil
}

// IngestAll builds the full replacement hazard list for one cycle. A station
// whose fetch fails is skipped with a log line; one bad station must not lose
// the whole cycle.
func IngestAll(ctx context.Context, stations []Station, now time.Time) []types.Hazard {
	hazards := []types.Hazard{}
	for _, st := range stations {
		obs, err := FetchObservation(ctx, st)
		if err != nil {
			log.Printf("Weather ingestion: skipping station %s: %v", st.Name, err)
			continue
		}
		hazards = append(hazards, HazardsFromObservation(st, obs, now)...)
	}
	return hazards
}

func getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("weather API returned status: " + resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
