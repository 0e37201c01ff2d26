package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-shorewatch/observability"
	"go-shorewatch/risk"
	"go-shorewatch/state"
)

// GetRisk assesses the risk at a queried location against the active hazard
// snapshot. lat and lng are required; hours defaults to 24.
func GetRisk(c *gin.Context, hazards *state.HazardSnapshot, metrics *observability.Metrics) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat/lng out of range"})
		return
	}

	hours := 24
	if h := c.Query("hours"); h != "" {
		parsed, err := strconv.Atoi(h)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be a positive integer"})
			return
		}
		hours = parsed
	}

	assessment := risk.AssessRisk(risk.Location{Lat: lat, Long: lng}, hazards.Get(), hours)
	metrics.RiskQueries.Inc()

	c.JSON(http.StatusOK, gin.H{
		"location":   gin.H{"lat": lat, "lng": lng},
		"hours":      hours,
		"assessment": assessment,
		"hazardsAt":  hazards.UpdatedAt(),
	})
}
