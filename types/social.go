package types

import "time"

// SocialPost is a raw post pulled from a social feed collaborator.
type SocialPost struct {
	Platform    string    `firestore:"platform" json:"platform"`
	Content     string    `firestore:"content" json:"content"`
	Handle      string    `firestore:"handle" json:"handle"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	Avatar      string    `firestore:"avatar" json:"avatar"`
	UID         string    `firestore:"uid" json:"uid"`
	Engagement  int       `firestore:"engagement" json:"engagement"`
	Timestamp   time.Time `firestore:"timestamp" json:"timestamp"`
}

// ScoredPost pairs a post with its analysis and relevance score. Only posts
// that cleared the confidence gate are kept.
type ScoredPost struct {
	Post      SocialPost   `firestore:"post" json:"post"`
	Analysis  TextAnalysis `firestore:"analysis" json:"analysis"`
	Relevance float64      `firestore:"relevance" json:"relevance"`
}
