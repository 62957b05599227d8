// Package view turns posts into display elements. The pure step builds
// PostCard view models; applying them to a display is the Surface
// implementation's job, which keeps the pure step unit-testable.
package view

import (
	"fmt"
	"html/template"
	"time"

	"github.com/nhb-dev/helpboard/shared/domain"
)

// CommentCard is the view model for one comment.
type CommentCard struct {
	Id      string
	Who     string
	Text    template.HTML
	TimeAgo string
}

// PostCard is the view model for one post, computed for a specific
// viewing actor and instant.
type PostCard struct {
	Id           string
	Type         string
	Category     string
	Title        string
	Description  template.HTML
	Location     string
	Contact      string
	Tags         []string
	TimeAgo      string
	Likes        int
	Liked        bool
	CommentCount int
	Comments     []CommentCard
	Fulfilled    bool
}

// Builder computes view models for a fixed viewing actor.
type Builder struct {
	tp    *TextProcessor
	actor domain.ActorId
}

func NewBuilder(actor domain.ActorId) *Builder {
	return &Builder{tp: NewTextProcessor(), actor: actor}
}

func (b *Builder) Card(p domain.Post, now time.Time) PostCard {
	comments := make([]CommentCard, len(p.Comments))
	for i, c := range p.Comments {
		comments[i] = CommentCard{
			Id:      c.Id,
			Who:     c.Who,
			Text:    b.tp.Render(c.Text),
			TimeAgo: timeAgo(c.CreatedAt, now),
		}
	}

	return PostCard{
		Id:           p.Id,
		Type:         string(p.Type),
		Category:     p.Category,
		Title:        p.Title,
		Description:  b.tp.Render(p.Description),
		Location:     p.Location,
		Contact:      p.Contact,
		Tags:         p.Tags,
		TimeAgo:      timeAgo(p.CreatedAt, now),
		Likes:        p.Likes,
		Liked:        p.LikedByActor(b.actor),
		CommentCount: len(p.Comments),
		Comments:     comments,
		Fulfilled:    p.Status == domain.StatusFulfilled,
	}
}

func (b *Builder) Cards(posts []domain.Post, now time.Time) []PostCard {
	cards := make([]PostCard, len(posts))
	for i, p := range posts {
		cards[i] = b.Card(p, now)
	}
	return cards
}

var timeAgoUnits = []struct {
	suffix string
	secs   int64
}{
	{"y", 31536000},
	{"mo", 2592000},
	{"w", 604800},
	{"d", 86400},
	{"h", 3600},
	{"m", 60},
	{"s", 1},
}

func timeAgo(t, now time.Time) string {
	diff := int64(now.Sub(t).Seconds())
	if diff < 10 {
		return "just now"
	}
	for _, u := range timeAgoUnits {
		if v := diff / u.secs; v > 0 {
			return fmt.Sprintf("%d%s ago", v, u.suffix)
		}
	}
	return "just now"
}
