package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-shorewatch/types"
)

const hotspotsCollection = "hotspots"

// ReplaceHotspots overwrites the hotspots collection with the result of one
// aggregation pass. Hotspots are fully derived, so the stored set is always a
// wholesale replacement, never an incremental update.
func ReplaceHotspots(client *firestore.Client, hotspots []types.Hotspot) error {
	ctx := context.Background()
	collectionRef := client.Collection(hotspotsCollection)

	existing, err := collectionRef.Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("list existing hotspots: %w", err)
	}

	keep := make(map[string]bool, len(hotspots))
	for _, h := range hotspots {
		keep[h.ID] = true
	}

	bw := client.BulkWriter(ctx)

	for _, doc := range existing {
		if keep[doc.Ref.ID] {
			continue
		}
		if _, err := bw.Delete(doc.Ref); err != nil {
			log.Printf("Error enqueueing hotspot delete %s: %v", doc.Ref.ID, err)
		}
	}

	saved := 0
	for i := range hotspots {
		hotspot := hotspots[i]
		if hotspot.ID == "" {
			log.Printf("Warning: skipping hotspot with empty ID: %+v", hotspot)
			continue
		}
		if _, err := bw.Set(collectionRef.Doc(hotspot.ID), hotspot); err != nil {
			log.Printf("Error enqueueing hotspot %s for save: %v", hotspot.ID, err)
			continue
		}
		saved++
	}

	bw.Flush()
	log.Printf("Replaced hotspot collection: %d saved, %d previously stored", saved, len(existing))
	return nil
}

// GetAllHotspots retrieves every stored hotspot.
func GetAllHotspots(client *firestore.Client) ([]types.Hotspot, error) {
	ctx := context.Background()
	hotspots := []types.Hotspot{}

	iter := client.Collection(hotspotsCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate hotspots: %w", err)
		}

		var hotspot types.Hotspot
		if err := doc.DataTo(&hotspot); err != nil {
			log.Printf("Warning: skipping malformed hotspot %s: %v", doc.Ref.ID, err)
			continue
		}
		hotspot.ID = doc.Ref.ID
		hotspots = append(hotspots, hotspot)
	}

	return hotspots, nil
}

// UpdateHotspotSummary writes an LLM-generated summary onto a stored hotspot.
func UpdateHotspotSummary(client *firestore.Client, hotspotID, summary string) error {
	ctx := context.Background()
	_, err := client.Collection(hotspotsCollection).Doc(hotspotID).Update(ctx, []firestore.Update{
		{Path: "summary", Value: summary},
	})
	if err != nil {
		return fmt.Errorf("update summary on hotspot %s: %w", hotspotID, err)
	}
	return nil
}
