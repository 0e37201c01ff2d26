package cronjobs

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"github.com/sashabaranov/go-openai"

	"go-shorewatch/db"
	"go-shorewatch/observability"
	"go-shorewatch/social"
	"go-shorewatch/state"
	"go-shorewatch/summarization"
	"go-shorewatch/types"
	"go-shorewatch/weather"
)

const reportRetention = 30 * 24 * time.Hour

// Bluesky feeds polled for hazard chatter.
var feedURIs = []string{
	"at://did:plc:qiknc4t5rq7yngvz7g4aezq7/app.bsky.feed.generator/aaaejwgffwqky", // storm/hurricane feed
	"at://did:plc:qiknc4t5rq7yngvz7g4aezq7/app.bsky.feed.generator/aaaejxlobe474", // earthquake feed
}

// FirestoreReports adapts the db package to the ReportSource interface.
type FirestoreReports struct {
	Client *firestore.Client
}

func (f FirestoreReports) ReportsSince(_ context.Context, since time.Time) ([]types.Report, error) {
	return db.GetReportsSince(f.Client, since)
}

// InitCronJobs schedules the periodic pipeline work: hotspot refresh, weather
// ingestion, social feed polling, hotspot summaries, and retention cleanup.
func InitCronJobs(
	firestoreClient *firestore.Client,
	refresher *Refresher,
	hazardSnapshot *state.HazardSnapshot,
	openaiClient *openai.Client,
	metrics *observability.Metrics,
) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Hotspot refresh: every 10 minutes, plus persistence of the result.
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Hotspot Refresh Running")
		ctx := context.Background()
		hotspots, err := refresher.RefreshOnce(ctx)
		if err != nil {
			log.Printf("Hotspot refresh failed: %v", err)
			return
		}
		if err := db.ReplaceHotspots(firestoreClient, hotspots); err != nil {
			log.Printf("Hotspot persistence failed: %v", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling Hotspot Refresh:", err)
	}

	// Weather ingestion: every 30 minutes, replaces the hazard list wholesale.
	_, err = c.AddFunc("*/30 * * * *", func() {
		log.Println("\nCronJob: Weather Ingestion Running")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		now := time.Now().UTC()
		hazards := weather.IngestAll(ctx, weather.DefaultStations, now)
		hazardSnapshot.Replace(hazards, now)
		metrics.WeatherIngestCycles.Inc()
		metrics.ActiveHazards.Set(float64(len(hazards)))
		log.Printf("Weather ingestion complete: %d active hazards", len(hazards))
	})
	if err != nil {
		log.Println("Error scheduling Weather Ingestion:", err)
	}

	// Social feeds: every 10 minutes at the 2 minute mark.
	_, err = c.AddFunc("2-59/10 * * * *", func() {
		log.Println("\nCronJob: Social Feed Polling Running")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		for _, uri := range feedURIs {
			out, err := social.FetchFeed(ctx, social.FeedParams{URI: uri, Limit: 25})
			if err != nil {
				log.Printf("Error fetching feed %s: %v", uri, err)
				continue
			}

			posts := social.PostsFromFeed(out)
			scored := social.ProcessMany(posts)
			metrics.SocialPostsScored.Add(float64(len(posts)))
			metrics.SocialPostsRetained.Add(float64(len(scored)))

			saved, err := db.SaveScoredPosts(firestoreClient, scored)
			if err != nil {
				log.Printf("Error saving scored posts from %s: %v", uri, err)
				continue
			}
			log.Printf("Feed %s: %d posts, %d relevant, %d saved", uri, len(posts), len(scored), saved)
		}
	})
	if err != nil {
		log.Println("Error scheduling Social Feed Polling:", err)
	}

	// Hotspot summaries: hourly, only when an OpenAI client is configured.
	if openaiClient != nil {
		_, err = c.AddFunc("15 * * * *", func() {
			log.Println("\nCronJob: Hotspot Summaries Running")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			hotspots, err := db.GetAllHotspots(firestoreClient)
			if err != nil {
				log.Printf("Error loading hotspots for summaries: %v", err)
				return
			}
			if err := summarization.GenerateSummaries(ctx, hotspots, firestoreClient, openaiClient); err != nil {
				log.Printf("Error generating hotspot summaries: %v", err)
			}
		})
		if err != nil {
			log.Println("Error scheduling Hotspot Summaries:", err)
		}
	}

	// Retention cleanup: nightly at 03:00.
	_, err = c.AddFunc("0 3 * * *", func() {
		log.Println("\nCronJob: Retention Cleanup Running")
		cutoff := time.Now().UTC().Add(-reportRetention)
		if _, err := db.DeleteReportsBefore(firestoreClient, cutoff); err != nil {
			log.Printf("Retention cleanup failed: %v", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling Retention Cleanup:", err)
	}

	c.Start()
}
