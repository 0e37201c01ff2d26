package cronjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"go-shorewatch/detection"
	"go-shorewatch/observability"
	"go-shorewatch/state"
	"go-shorewatch/types"
)

// ReportSource supplies the report snapshot one aggregation pass runs over.
// The snapshot must be stable for the duration of the pass.
type ReportSource interface {
	ReportsSince(ctx context.Context, since time.Time) ([]types.Report, error)
}

// Refresher recomputes the hotspot snapshot from the current report window.
// It is the single writer of the hotspot snapshot.
type Refresher struct {
	clock    clockwork.Clock
	source   ReportSource
	snapshot *state.HotspotSnapshot
	window   time.Duration
	metrics  *observability.Metrics
}

func NewRefresher(clock clockwork.Clock, source ReportSource, snapshot *state.HotspotSnapshot, window time.Duration, metrics *observability.Metrics) *Refresher {
	if window <= 0 {
		window = detection.DefaultWindow
	}
	return &Refresher{
		clock:    clock,
		source:   source,
		snapshot: snapshot,
		window:   window,
		metrics:  metrics,
	}
}

// RefreshOnce runs one full recompute and swaps the snapshot. Recomputes are
// idempotent, so a stale result that loses the swap race is harmless.
func (r *Refresher) RefreshOnce(ctx context.Context) ([]types.Hotspot, error) {
	now := r.clock.Now()
	start := time.Now()

	reports, err := r.source.ReportsSince(ctx, now.Add(-r.window))
	if err != nil {
		return nil, fmt.Errorf("load report window: %w", err)
	}

	hotspots := detection.GenerateHotspots(reports, r.window, now)
	r.snapshot.Replace(hotspots, now)

	if r.metrics != nil {
		r.metrics.HotspotsActive.Set(float64(len(hotspots)))
		r.metrics.HotspotRecomputeSeconds.Observe(time.Since(start).Seconds())
	}

	return hotspots, nil
}
