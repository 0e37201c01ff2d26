package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	openai "github.com/sashabaranov/go-openai"

	"go-shorewatch/alerts"
	"go-shorewatch/cronjobs"
	"go-shorewatch/db"
	"go-shorewatch/detection"
	"go-shorewatch/observability"
	"go-shorewatch/routes"
	"go-shorewatch/state"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	metrics := observability.NewMetrics()

	// Warnings go out over NATS when configured, otherwise just the log.
	var dispatcher alerts.Dispatcher = alerts.LogDispatcher{}
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		conn, err := nats.Connect(natsURL, nats.Timeout(5*time.Second))
		if err != nil {
			log.Fatalf("Failed to connect to NATS at %s: %v", natsURL, err)
		}
		defer conn.Drain()
		dispatcher = alerts.NewNATSDispatcher(conn, alerts.DefaultSubject)
		fmt.Println("NATS dispatcher connected")
	} else {
		fmt.Println("NATS_URL not set, warnings go to the log only")
	}

	// Hotspot summaries are optional; skipped without an API key.
	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		openaiClient = openai.NewClient(apiKey)
		fmt.Println("OPENAI_API_KEY loaded")
	}

	hotspotSnapshot := state.NewHotspotSnapshot()
	hazardSnapshot := state.NewHazardSnapshot()

	refresher := cronjobs.NewRefresher(
		clockwork.NewRealClock(),
		cronjobs.FirestoreReports{Client: firestoreClient},
		hotspotSnapshot,
		detection.DefaultWindow,
		metrics,
	)

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient, refresher, hazardSnapshot, openaiClient, metrics)

	r := routes.SetupRouter(routes.Deps{
		Firestore:  firestoreClient,
		Dispatcher: dispatcher,
		Refresher:  refresher,
		Hotspots:   hotspotSnapshot,
		Hazards:    hazardSnapshot,
		Metrics:    metrics,
	})
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
