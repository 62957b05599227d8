// Package helpboard is a client-side community bulletin board: posts,
// likes, comments and fulfillment status, persisted locally by an
// injected Store and rendered onto an injected Surface. There is no
// server; one process owns the whole data lifecycle.
package helpboard

import (
	"sync"

	"github.com/nhb-dev/helpboard/internal/filter"
	"github.com/nhb-dev/helpboard/internal/repository"
	"github.com/nhb-dev/helpboard/internal/service"
	"github.com/nhb-dev/helpboard/internal/view"
	"github.com/nhb-dev/helpboard/shared/config"
	"github.com/nhb-dev/helpboard/shared/domain"
	"github.com/nhb-dev/helpboard/shared/errors"
	"github.com/nhb-dev/helpboard/shared/logger"
	"github.com/nhb-dev/helpboard/shared/storage"
	"github.com/nhb-dev/helpboard/shared/storage/file"
	"github.com/nhb-dev/helpboard/shared/validation"
)

// Re-exported collaborator types, so embedders only import this package.
type (
	Config    = config.Config
	Criteria  = filter.Criteria
	Surface   = view.Surface
	PostCard  = view.PostCard
	PostInput = service.PostInput
	Confirmer = service.Confirmer
	Clock     = service.Clock
	Store     = storage.Store
)

// Board wires store, repository, mutation handlers and reconciler into
// the five user interactions plus filter input. The debounced filter
// callback fires on a timer goroutine, so every entry point takes the
// board mutex; handlers never interleave partway through each other.
type Board struct {
	actor    domain.ActorId
	posts    *service.Posts
	rec      *view.Reconciler
	debounce *view.Debouncer

	// mu serializes all store, reconciler and surface access, including
	// the debounce callback.
	mu      sync.Mutex
	pending filter.Criteria
}

// Options overrides the default collaborators. Zero values keep the
// production defaults (system clock, uuid ids).
type Options struct {
	Clock service.Clock
	Ids   service.IdGenerator
}

// New builds a Board over the given store and surface. The confirmer
// gates deletes; cfg supplies the actor identity and debounce window.
func New(cfg *config.Config, store storage.Store, surface view.Surface, confirmer service.Confirmer, opts Options) (*Board, error) {
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	clock := opts.Clock
	if clock == nil {
		clock = service.SystemClock{}
	}
	var ids service.IdGenerator = opts.Ids
	if ids == nil {
		ids = service.UuidGenerator{}
	}

	if err := storage.SeedIfEmpty(store, clock.Now(), ids.NewId); err != nil {
		return nil, err
	}

	repo := repository.New(store)
	posts := service.NewPosts(repo, clock, ids, confirmer, validation.NewPostValidator(), validation.NewCommentValidator())
	rec := view.NewReconciler(repo, clock, view.NewBuilder(cfg.ActorId), surface)

	b := &Board{
		actor: cfg.ActorId,
		posts: posts,
		rec:   rec,
	}
	b.debounce = view.NewDebouncer(cfg.Debounce(), b.applyPendingCriteria)

	rec.Refresh()
	return b, nil
}

// Open is the convenience constructor for the common case: file-backed
// storage at the configured path.
func Open(cfg *config.Config, surface view.Surface, confirmer service.Confirmer) (*Board, error) {
	store, err := file.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	return New(cfg, store, surface, confirmer, Options{})
}

// SubmitPost stores a new post from raw form input and re-renders the
// list. Validation failures are returned for form feedback; nothing is
// persisted in that case.
func (b *Board) SubmitPost(in service.PostInput) (domain.Post, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	created, err := b.posts.Create(in)
	if err != nil {
		return domain.Post{}, err
	}
	b.rec.Refresh()
	return created, nil
}

// Like toggles the configured actor's like on the post.
func (b *Board) Like(id domain.PostId) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.posts.ToggleLike(id, b.actor); err != nil {
		b.swallow("like", id, err)
		return
	}
	b.rec.Patch(id)
}

// Comment appends a comment to the post. A blank text is rejected and
// returned for form feedback.
func (b *Board) Comment(id domain.PostId, who, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.posts.AddComment(id, who, text); err != nil {
		if errors.IsValidation(err) {
			return err
		}
		b.swallow("comment", id, err)
		return nil
	}
	b.rec.Patch(id)
	return nil
}

// ToggleStatus flips the post between open and fulfilled.
func (b *Board) ToggleStatus(id domain.PostId) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.posts.ToggleStatus(id); err != nil {
		b.swallow("toggle status", id, err)
		return
	}
	b.rec.Patch(id)
}

// Delete removes the post after user confirmation.
func (b *Board) Delete(id domain.PostId) {
	b.mu.Lock()
	defer b.mu.Unlock()

	deleted, err := b.posts.Delete(id)
	if err != nil {
		b.swallow("delete", id, err)
		return
	}
	if deleted {
		b.rec.Patch(id)
	}
}

// FilterChanged records new filter input. Rapid calls are debounced into
// one re-render; the last criteria win. The mutex is released before
// arming the timer because a zero debounce runs the callback inline.
func (b *Board) FilterChanged(c filter.Criteria) {
	b.mu.Lock()
	b.pending = c
	b.mu.Unlock()
	b.debounce.Trigger()
}

// Refresh re-renders the current filtered view.
func (b *Board) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rec.Refresh()
}

// Posts returns the unfiltered stored collection, storage order.
func (b *Board) Posts() []domain.Post {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.posts.List()
}

// Close cancels any pending debounced render.
func (b *Board) Close() {
	b.debounce.Stop()
}

// applyPendingCriteria runs on the debounce timer goroutine; the mutex
// keeps it from interleaving with an in-flight handler.
func (b *Board) applyPendingCriteria() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rec.SetCriteria(b.pending)
}

// Unknown ids are benign: the post vanished between render and click.
func (b *Board) swallow(action string, id domain.PostId, err error) {
	logger.Log.Debug("interaction ignored", "action", action, "post", id, "error", err)
}
