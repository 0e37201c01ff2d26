package handlers

import (
	"log"
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-shorewatch/db"
	"go-shorewatch/observability"
	"go-shorewatch/social"
)

// PullSocialFeed fetches one Bluesky feed on demand, scores the posts, and
// stores everything above the confidence gate. The cron poller does the same
// on a schedule; this endpoint exists for manual refreshes.
func PullSocialFeed(c *gin.Context, firestoreClient *firestore.Client, metrics *observability.Metrics) {
	feedURI := c.Query("feed")
	if feedURI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feed query parameter is required"})
		return
	}

	limit := 25
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	out, err := social.FetchFeed(c.Request.Context(), social.FeedParams{URI: feedURI, Limit: limit})
	if err != nil {
		log.Printf("Error fetching feed %s: %v", feedURI, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch feed"})
		return
	}

	posts := social.PostsFromFeed(out)
	scored := social.ProcessMany(posts)
	metrics.SocialPostsScored.Add(float64(len(posts)))
	metrics.SocialPostsRetained.Add(float64(len(scored)))

	saved, err := db.SaveScoredPosts(firestoreClient, scored)
	if err != nil {
		log.Printf("Error saving scored posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save scored posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fetched":  len(posts),
		"retained": len(scored),
		"saved":    saved,
	})
}

// ListSocial returns the most recently stored scored posts.
func ListSocial(c *gin.Context, firestoreClient *firestore.Client) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	posts, err := db.GetRecentScoredPosts(firestoreClient, limit)
	if err != nil {
		log.Printf("Error fetching scored posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scored posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(posts),
		"posts": posts,
	})
}
