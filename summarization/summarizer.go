package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/sashabaranov/go-openai"

	"go-shorewatch/db"
	"go-shorewatch/detection"
	"go-shorewatch/types"
)

const maxReportsForSummary = 40
const maxPromptLength = 15000 // rough character limit for prompt

// GenerateSummaries fetches the member reports for each hotspot and asks
// OpenAI for a short situation summary. It modifies the input slice directly
// and persists each summary; a failed hotspot is skipped, not fatal.
func GenerateSummaries(
	ctx context.Context,
	hotspots []types.Hotspot,
	firestoreClient *firestore.Client,
	openaiClient *openai.Client,
) error {
	log.Printf("Starting summary generation for %d hotspots...", len(hotspots))

	var wg sync.WaitGroup

	for i := range hotspots {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hotspot := &hotspots[idx]

			combined, err := fetchReportTextForHotspot(hotspot, firestoreClient)
			if err != nil {
				log.Printf("Error fetching reports for hotspot %s: %v. Skipping summary.", hotspot.ID, err)
				return
			}
			if combined == "" {
				log.Printf("No report text for hotspot %s. Skipping summary.", hotspot.ID)
				return
			}

			summary, err := callOpenAISummary(ctx, combined, hotspot.HazardTypes, openaiClient)
			if err != nil {
				log.Printf("Error getting summary for hotspot %s: %v. Skipping summary.", hotspot.ID, err)
				return
			}

			hotspot.Summary = summary
			if err := db.UpdateHotspotSummary(firestoreClient, hotspot.ID, summary); err != nil {
				log.Printf("Error persisting summary for hotspot %s: %v", hotspot.ID, err)
			}
		}(i)
	}

	wg.Wait()
	log.Println("Summary generation finished.")
	return nil
}

// fetchReportTextForHotspot collects the descriptions of the hotspot's member
// reports, capped to keep the prompt bounded.
func fetchReportTextForHotspot(hotspot *types.Hotspot, firestoreClient *firestore.Client) (string, error) {
	since := hotspot.LastUpdate.Add(-detection.DefaultWindow)
	reports, err := db.GetReportsSince(firestoreClient, since)
	if err != nil {
		return "", err
	}

	var descriptions []string
	for _, r := range reports {
		if len(descriptions) >= maxReportsForSummary {
			break
		}
		if r.Description == "" {
			continue
		}
		if detection.CellKey(r.Lat, r.Long) != hotspot.CellKey {
			continue
		}
		descriptions = append(descriptions, r.Description)
	}

	return CombineReportText(descriptions), nil
}

// CombineReportText joins report descriptions into one prompt body, truncating
// past the prompt length limit.
func CombineReportText(descriptions []string) string {
	if len(descriptions) == 0 {
		return ""
	}
	combined := strings.Join(descriptions, "\n---\n")
	if len(combined) > maxPromptLength {
		combined = combined[:maxPromptLength]
	}
	return combined
}

// callOpenAISummary sends the combined report text to OpenAI for a summary.
func callOpenAISummary(
	ctx context.Context,
	reportText string,
	hazardTypes []types.HazardCategory,
	client *openai.Client,
) (string, error) {
	kinds := make([]string, 0, len(hazardTypes))
	for _, ht := range hazardTypes {
		kinds = append(kinds, string(ht))
	}
	kindText := strings.Join(kinds, ", ")
	if kindText == "" {
		kindText = "unspecified hazard"
	}

	prompt := fmt.Sprintf("Summarize the following citizen hazard reports about a potential %s situation. Focus on key impacts, places mentioned, and the overall situation. Disregard reports that do not fit the hazard type. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", kindText, reportText)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes citizen hazard reports concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
