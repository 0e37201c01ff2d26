package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-shorewatch/alerts"
	"go-shorewatch/cronjobs"
	"go-shorewatch/handlers"
	"go-shorewatch/observability"
	"go-shorewatch/state"
)

// Deps holds everything the handlers need. Wired once in main.
type Deps struct {
	Firestore  *firestore.Client
	Dispatcher alerts.Dispatcher
	Refresher  *cronjobs.Refresher
	Hotspots   *state.HotspotSnapshot
	Hazards    *state.HazardSnapshot
	Metrics    *observability.Metrics
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Shorewatch!",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/shorewatch")
	{
		api.POST("/reports", func(c *gin.Context) {
			handlers.SubmitReport(c, deps.Firestore, deps.Dispatcher, deps.Refresher, deps.Metrics)
		})
		api.GET("/reports", func(c *gin.Context) {
			handlers.ListReports(c, deps.Firestore)
		})
		api.PATCH("/reports/:id/verify", func(c *gin.Context) {
			handlers.VerifyReport(c, deps.Firestore)
		})

		api.GET("/hotspots", func(c *gin.Context) {
			handlers.GetHotspots(c, deps.Hotspots)
		})

		api.GET("/risk", func(c *gin.Context) {
			handlers.GetRisk(c, deps.Hazards, deps.Metrics)
		})

		api.GET("/social", func(c *gin.Context) {
			handlers.ListSocial(c, deps.Firestore)
		})
		api.POST("/social/pull", func(c *gin.Context) {
			handlers.PullSocialFeed(c, deps.Firestore, deps.Metrics)
		})

		api.POST("/classify", handlers.ClassifyText)
	}

	return r
}
