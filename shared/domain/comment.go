package domain

import "time"

// Comment lives inside exactly one Post and is never edited after creation.
type Comment struct {
	Id        CommentId `json:"id"`
	Who       string    `json:"who"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
