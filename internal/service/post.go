// Package service implements the board's mutation handlers. Every
// handler re-reads the current record through the repository before
// computing its change, so rapid interactions on the same post within a
// session cannot act on stale state.
package service

import (
	"strings"

	"github.com/nhb-dev/helpboard/internal/metrics"
	"github.com/nhb-dev/helpboard/shared/domain"
	"github.com/nhb-dev/helpboard/shared/errors"
	"github.com/nhb-dev/helpboard/shared/logger"
)

type Repository interface {
	List() []domain.Post
	Add(post domain.Post) (domain.Post, error)
	UpdateById(id domain.PostId, patch domain.PostPatch) (domain.Post, error)
	RemoveById(id domain.PostId) (bool, error)
}

type PostValidator interface {
	Post(postType, title string) error
}

type CommentValidator interface {
	Text(text string) error
}

// PostInput carries the raw form field values for a new post. The
// service owns trimming and tag splitting; collecting the values is the
// caller's concern.
type PostInput struct {
	Type        string
	Category    string
	Title       string
	Description string
	Location    string
	Contact     string
	Tags        string
	Expires     string
}

type Posts struct {
	repo      Repository
	clock     Clock
	ids       IdGenerator
	confirmer Confirmer
	posts     PostValidator
	comments  CommentValidator
}

func NewPosts(repo Repository, clock Clock, ids IdGenerator, confirmer Confirmer, posts PostValidator, comments CommentValidator) *Posts {
	return &Posts{repo, clock, ids, confirmer, posts, comments}
}

// List returns the stored collection unfiltered, in storage order.
func (s *Posts) List() []domain.Post {
	return s.repo.List()
}

// Create validates and stores a new post built from raw form input.
// Nothing is persisted when validation fails.
func (s *Posts) Create(in PostInput) (domain.Post, error) {
	postType := strings.TrimSpace(in.Type)
	title := strings.TrimSpace(in.Title)
	if err := s.posts.Post(postType, title); err != nil {
		return domain.Post{}, err
	}

	var expires *domain.Date
	if raw := strings.TrimSpace(in.Expires); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			return domain.Post{}, &errors.ValidationError{Message: "expiry date must be YYYY-MM-DD"}
		}
		expires = &d
	}

	post := domain.Post{
		Id:          s.ids.NewId(),
		Type:        domain.PostType(postType),
		Category:    strings.TrimSpace(in.Category),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Contact:     strings.TrimSpace(in.Contact),
		Tags:        splitTags(in.Tags),
		Expires:     expires,
		CreatedAt:   s.clock.Now(),
		Likes:       0,
		LikedBy:     []string{},
		Comments:    []domain.Comment{},
		Status:      domain.StatusOpen,
	}

	created, err := s.repo.Add(post)
	if err != nil {
		return domain.Post{}, err
	}
	metrics.PostsCreated.Inc()
	return created, nil
}

// ToggleLike adds actor to the post's likers, or removes them if already
// present. Checking current membership instead of blindly incrementing
// makes a rapid double-invocation restore the original state.
func (s *Posts) ToggleLike(id domain.PostId, actor domain.ActorId) (domain.Post, error) {
	current, err := s.find(id)
	if err != nil {
		return domain.Post{}, err
	}

	direction := "like"
	if current.LikedByActor(actor) {
		kept := make([]string, 0, len(current.LikedBy))
		for _, a := range current.LikedBy {
			if a != actor {
				kept = append(kept, a)
			}
		}
		current.LikedBy = kept
		if current.Likes > 0 {
			current.Likes--
		}
		direction = "unlike"
	} else {
		current.LikedBy = append(current.LikedBy, actor)
		current.Likes++
	}

	updated, err := s.repo.UpdateById(id, current.AsPatch())
	if err != nil {
		return domain.Post{}, err
	}
	metrics.LikesToggled.WithLabelValues(direction).Inc()
	return updated, nil
}

// AddComment appends a comment to the post. Blank text is rejected
// before anything is persisted; a blank name becomes "Anonymous".
func (s *Posts) AddComment(id domain.PostId, who, text string) (domain.Post, error) {
	text = strings.TrimSpace(text)
	if err := s.comments.Text(text); err != nil {
		return domain.Post{}, err
	}
	who = strings.TrimSpace(who)
	if who == "" {
		who = "Anonymous"
	}

	current, err := s.find(id)
	if err != nil {
		return domain.Post{}, err
	}

	comments := make([]domain.Comment, 0, len(current.Comments)+1)
	comments = append(comments, current.Comments...)
	comments = append(comments, domain.Comment{
		Id:        s.ids.NewId(),
		Who:       who,
		Text:      text,
		CreatedAt: s.clock.Now(),
	})

	updated, err := s.repo.UpdateById(id, domain.PostPatch{Comments: &comments})
	if err != nil {
		return domain.Post{}, err
	}
	metrics.CommentsAdded.Inc()
	return updated, nil
}

// ToggleStatus flips the post between open and fulfilled.
func (s *Posts) ToggleStatus(id domain.PostId) (domain.Post, error) {
	current, err := s.find(id)
	if err != nil {
		return domain.Post{}, err
	}
	next := current.Status.Toggle()
	return s.repo.UpdateById(id, domain.PostPatch{Status: &next})
}

// Delete removes the post after the user confirms. It reports whether a
// removal actually happened so callers know if the view needs updating.
func (s *Posts) Delete(id domain.PostId) (bool, error) {
	if !s.confirmer.Confirm("Delete this post?") {
		logger.Log.Debug("delete declined", "post", id)
		return false, nil
	}
	removed, err := s.repo.RemoveById(id)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.PostsDeleted.Inc()
	}
	return removed, nil
}

func (s *Posts) find(id domain.PostId) (domain.Post, error) {
	for _, p := range s.repo.List() {
		if p.Id == id {
			return p, nil
		}
	}
	return domain.Post{}, errors.NotFound
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
