package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-shorewatch/state"
)

// GetHotspots serves the current hotspot snapshot. Reads never touch
// Firestore; the cron refresher keeps the snapshot current.
func GetHotspots(c *gin.Context, snapshot *state.HotspotSnapshot) {
	hotspots := snapshot.Get()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(hotspots),
		"updatedAt": snapshot.UpdatedAt(),
		"hotspots":  hotspots,
	})
}
