package types

// Trimmed view of the Bluesky getFeed response; only the fields the feed
// poller reads are decoded.

// FeedResponse represents the root structure of the API response.
type FeedResponse struct {
	Cursor string      `json:"cursor"`
	Feed   []FeedEntry `json:"feed"`
}

// FeedEntry represents each post in the feed.
type FeedEntry struct {
	Post BskyPost `json:"post"`
}

// BskyPost represents the structure of an individual post.
type BskyPost struct {
	Author      BskyAuthor `json:"author"`
	LikeCount   int        `json:"likeCount"`
	QuoteCount  int        `json:"quoteCount"`
	ReplyCount  int        `json:"replyCount"`
	RepostCount int        `json:"repostCount"`
	Record      BskyRecord `json:"record"`
	URI         string     `json:"uri"`
}

// BskyAuthor represents the author of a post.
type BskyAuthor struct {
	Avatar      string `json:"avatar"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

// BskyRecord represents the content of a post.
type BskyRecord struct {
	CreatedAt string `json:"createdAt"`
	Text      string `json:"text"`
}
