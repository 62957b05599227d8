package view

import (
	"bytes"
	"fmt"
	"html/template"
)

// cardTemplate is the HTML fragment for one post card. Surfaces that
// speak HTML can feed Renderer output straight into their container.
const cardTemplate = `<article class="post card" data-id="{{.Id}}">
  <div class="badges"><span class="badge">{{.Type}}</span> <span class="badge">{{.Category}}</span>{{range .Tags}} <span class="badge">#{{.}}</span>{{end}}</div>
  <h3>{{.Title}}</h3>
  <div class="meta small"><span>{{.TimeAgo}}</span> &bull; <span>{{.Location}}</span>{{if .Contact}} &bull; <span>{{.Contact}}</span>{{end}}</div>
  <div class="post-body">{{.Description}}</div>
  <div class="post-actions">
    <button class="icon-btn like-btn{{if .Liked}} liked{{end}}" data-action="like"><span class="count">{{.Likes}}</span></button>
    <button class="icon-btn comment-toggle" data-action="comment"><span class="count">{{.CommentCount}}</span></button>
    <button class="icon-btn small-muted" data-action="toggle-status">{{if .Fulfilled}}Reopen{{else}}Mark Fulfilled{{end}}</button>
    <button class="icon-btn" data-action="delete">Delete</button>
  </div>
  <div class="comment-list">{{range .Comments}}<div class="comment" data-id="{{.Id}}"><div class="who">{{.Who}}</div><div class="text">{{.Text}}</div><div class="time small-muted">{{.TimeAgo}}</div></div>{{end}}</div>
</article>`

const emptyTemplate = `<div class="empty small-muted">No posts match your filters.</div>`

// Renderer produces HTML fragments from view models, render-to-buffer
// so a template error never leaves a half-written element behind.
type Renderer struct {
	card *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{card: template.Must(template.New("card").Parse(cardTemplate))}
}

func (r *Renderer) Card(card PostCard) (template.HTML, error) {
	buf := new(bytes.Buffer)
	if err := r.card.Execute(buf, card); err != nil {
		return "", fmt.Errorf("failed to render card %s: %w", card.Id, err)
	}
	return template.HTML(buf.String()), nil
}

// Empty returns the "no results" fragment.
func (r *Renderer) Empty() template.HTML {
	return emptyTemplate
}
