package domain

import (
	"time"
)

// Post is the persisted board entry. Field names follow the stored JSON
// layout, so renaming a field here is a breaking change for existing data.
type Post struct {
	Id          PostId    `json:"id"`
	Type        PostType  `json:"type"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Contact     string    `json:"contact"`
	Tags        []string  `json:"tags"`
	Expires     *Date     `json:"expires,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	Comments    []Comment `json:"comments"`
	Status      Status    `json:"status"`
}

// LikedByActor reports whether actor already counts toward Likes.
func (p *Post) LikedByActor(actor ActorId) bool {
	for _, a := range p.LikedBy {
		if a == actor {
			return true
		}
	}
	return false
}

// Expired reports whether the post's expiry day lies strictly before the
// calendar day containing now. Posts without an expiry never expire.
func (p *Post) Expired(now time.Time) bool {
	return p.Expires != nil && p.Expires.BeforeDay(now)
}
