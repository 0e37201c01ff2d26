package geocode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// initMapsClient initializes and returns a singleton Google Maps client.
func initMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			clientErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, clientErr
}

// ResolvePlace forward-geocodes a free-text place name into coordinates and a
// formatted address. Used for reports submitted without coordinates.
func ResolvePlace(ctx context.Context, placeName string) (lat, long float64, formatted string, err error) {
	client, err := initMapsClient()
	if err != nil {
		return 0, 0, "", err
	}

	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: placeName})
	if err != nil {
		return 0, 0, "", fmt.Errorf("geocode %q: %w", placeName, err)
	}
	if len(results) == 0 {
		return 0, 0, "", fmt.Errorf("no geocode results for %q", placeName)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, results[0].FormattedAddress, nil
}
