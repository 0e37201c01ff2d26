package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-shorewatch/types"
)

const reportsCollection = "reports"

// SaveReport persists a new report. The analysis must already be attached;
// reports are immutable after this write except for the verified flag.
func SaveReport(client *firestore.Client, report types.Report) error {
	if report.ID == "" {
		return fmt.Errorf("report missing ID")
	}

	ctx := context.Background()
	_, err := client.Collection(reportsCollection).Doc(report.ID).Set(ctx, report)
	if err != nil {
		return fmt.Errorf("save report %s: %w", report.ID, err)
	}
	return nil
}

// GetReportsSince returns all reports with a timestamp at or after the cutoff.
func GetReportsSince(client *firestore.Client, since time.Time) ([]types.Report, error) {
	return GetReportsFiltered(client, since, "", "")
}

// GetReportsFiltered returns in-window reports, optionally narrowed by
// severity and hazard type. A report that fails struct conversion is skipped
// with a warning rather than failing the whole query.
func GetReportsFiltered(client *firestore.Client, since time.Time, severity types.Severity, hazardType types.HazardCategory) ([]types.Report, error) {
	ctx := context.Background()

	query := client.Collection(reportsCollection).Where("timestamp", ">=", since)
	if severity != "" {
		query = query.Where("severity", "==", string(severity))
	}
	if hazardType != "" {
		query = query.Where("type", "==", string(hazardType))
	}

	reports := []types.Report{}
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate reports: %w", err)
		}

		var report types.Report
		if err := doc.DataTo(&report); err != nil {
			log.Printf("Warning: skipping malformed report %s: %v", doc.Ref.ID, err)
			continue
		}
		report.ID = doc.Ref.ID
		reports = append(reports, report)
	}

	return reports, nil
}

// SetReportVerified flips the moderation flag on a stored report. This is the
// only mutation a report supports after creation.
func SetReportVerified(client *firestore.Client, reportID string, verified bool) error {
	ctx := context.Background()
	_, err := client.Collection(reportsCollection).Doc(reportID).Update(ctx, []firestore.Update{
		{Path: "verified", Value: verified},
	})
	if err != nil {
		return fmt.Errorf("set verified on report %s: %w", reportID, err)
	}
	return nil
}

// DeleteReportsBefore removes reports older than the cutoff. Retention cleanup
// is the only path that destroys reports.
func DeleteReportsBefore(client *firestore.Client, cutoff time.Time) (int, error) {
	ctx := context.Background()

	docs, err := client.Collection(reportsCollection).
		Where("timestamp", "<", cutoff).
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, fmt.Errorf("query expired reports: %w", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	bw := client.BulkWriter(ctx)
	deleted := 0
	for _, doc := range docs {
		if _, err := bw.Delete(doc.Ref); err != nil {
			log.Printf("Error enqueueing delete for report %s: %v", doc.Ref.ID, err)
			continue
		}
		deleted++
	}
	bw.Flush()

	log.Printf("Retention cleanup removed %d reports older than %s", deleted, cutoff.Format(time.RFC3339))
	return deleted, nil
}
