package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report-to-warning pipeline.
type Metrics struct {
	ReportsIngested     prometheus.Counter
	AlertsTriggered     prometheus.Counter
	AlertDispatchErrors prometheus.Counter
	RiskQueries         prometheus.Counter

	HotspotsActive          prometheus.Gauge
	HotspotRecomputeSeconds prometheus.Histogram

	SocialPostsScored   prometheus.Counter
	SocialPostsRetained prometheus.Counter
	WeatherIngestCycles prometheus.Counter
	ActiveHazards       prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsIngested,
		m.AlertsTriggered,
		m.AlertDispatchErrors,
		m.RiskQueries,
		m.HotspotsActive,
		m.HotspotRecomputeSeconds,
		m.SocialPostsScored,
		m.SocialPostsRetained,
		m.WeatherIngestCycles,
		m.ActiveHazards,
	)
	return m
}

// NewMetricsForTesting creates Metrics without touching the default registry,
// avoiding "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shorewatch",
			Name:      "reports_ingested_total",
			Help:      "Total hazard reports accepted for storage.",
		}),
		AlertsTriggered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shorewatch",
			Name:      "alerts_triggered_total",
			Help:      "Total reports that tripped the early-warning policy.",
		}),
		AlertDispatchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shorewatch",
			Name:      "alert_dispatch_errors_total",
			Help:      "Warning dispatches that failed; dispatch is never retried.",
		}),
		RiskQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shorewatch",
			Name:      "risk_queries_total",
			Help:      "Total risk assessment queries served.",
		}),
		HotspotsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shorewatch",
			Name:      "hotspots_active",
			Help:      "Hotspots in the latest aggregation snapshot.",
		}),
		HotspotRecomputeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shorewatch",
			Name:      "hotspot_recompute_duration_seconds",
			Help:      "Duration of a full hotspot recompute pass.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		SocialPostsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shorewatch",
			Name:      "social_posts_scored_total",
			Help:      "Social posts run through the relevance scorer.",
		}),
		SocialPostsRetained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shorewatch",
			Name:      "social_posts_retained_total",
			Help:      "Social posts that cleared the confidence gate.",
		}),
		WeatherIngestCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shorewatch",
			Name:      "weather_ingest_cycles_total",
			Help:      "Completed weather ingestion cycles.",
		}),
		ActiveHazards: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shorewatch",
			Name:      "active_hazards",
			Help:      "Hazards in the latest weather snapshot.",
		}),
	}
}
