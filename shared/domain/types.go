package domain

type (
	PostId    = string
	CommentId = string
	ActorId   = string
)

// PostType classifies what a post is asking for.
type PostType string

const (
	TypeRequest PostType = "request"
	TypeOffer   PostType = "offer"
	TypeForSale PostType = "for-sale"
)

// Status tracks whether a post still needs attention.
type Status string

const (
	StatusOpen      Status = "open"
	StatusFulfilled Status = "fulfilled"
)

// Toggle flips between the two states. Any unknown value becomes open.
func (s Status) Toggle() Status {
	if s == StatusOpen {
		return StatusFulfilled
	}
	return StatusOpen
}
