package models

import "time"

// ForumPost is a single community post served by GET /api/forum-posts.
// Posts are grouped by Topic on the client; the server returns a flat list.
type ForumPost struct {
	ID       string    `json:"id"`
	Topic    string    `json:"topic"`
	Author   string    `json:"author"`
	Title    string    `json:"title"`
	Body     string    `json:"body,omitempty"`
	PostedAt time.Time `json:"posted_at,omitzero"`
}

// ForumPostList is the response body of GET /api/forum-posts.
type ForumPostList struct {
	Posts  []ForumPost `json:"posts"`
	Length int         `json:"length,omitempty"`
}
