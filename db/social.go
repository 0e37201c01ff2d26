package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-shorewatch/types"
)

const socialPostsCollection = "socialPosts"

// SaveScoredPosts stores posts that cleared the relevance gate. Document IDs
// are hashed from the post URI, so re-saving the same post is an idempotent
// overwrite rather than a duplicate.
func SaveScoredPosts(client *firestore.Client, posts []types.ScoredPost) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	ctx := context.Background()
	bw := client.BulkWriter(ctx)
	collectionRef := client.Collection(socialPostsCollection)

	saved := 0
	for i := range posts {
		post := posts[i]
		if post.Post.UID == "" {
			log.Printf("Warning: skipping scored post with empty UID")
			continue
		}
		docRef := collectionRef.Doc(HashString(post.Post.UID))
		if _, err := bw.Set(docRef, post); err != nil {
			log.Printf("Error enqueueing scored post %s: %v", post.Post.UID, err)
			continue
		}
		saved++
	}

	bw.Flush()
	return saved, nil
}

// GetRecentScoredPosts returns the most recently posted relevant posts.
func GetRecentScoredPosts(client *firestore.Client, limit int) ([]types.ScoredPost, error) {
	ctx := context.Background()

	if limit <= 0 {
		limit = 50
	}

	posts := []types.ScoredPost{}
	iter := client.Collection(socialPostsCollection).
		OrderBy("post.timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate social posts: %w", err)
		}

		var post types.ScoredPost
		if err := doc.DataTo(&post); err != nil {
			log.Printf("Warning: skipping malformed social post %s: %v", doc.Ref.ID, err)
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}
