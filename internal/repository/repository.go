// Package repository provides typed CRUD over the stored post
// collection. Every operation re-reads the store, so there is no cache
// to fall out of sync within a session.
package repository

import (
	"github.com/nhb-dev/helpboard/shared/domain"
	"github.com/nhb-dev/helpboard/shared/errors"
	"github.com/nhb-dev/helpboard/shared/storage"
)

type Repository struct {
	store storage.Store
}

func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

// List returns all posts in storage order, newest first because Add
// prepends.
func (r *Repository) List() []domain.Post {
	return r.store.LoadAll()
}

// Add prepends post to the collection and persists it. The caller
// supplies a fully formed post including id and creation time.
func (r *Repository) Add(post domain.Post) (domain.Post, error) {
	posts := r.store.LoadAll()
	posts = append([]domain.Post{post}, posts...)
	if err := r.store.SaveAll(posts); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// UpdateById merges patch over the post with the given id and persists
// the collection. A missing id returns errors.NotFound and leaves the
// store untouched.
func (r *Repository) UpdateById(id domain.PostId, patch domain.PostPatch) (domain.Post, error) {
	posts := r.store.LoadAll()
	for i := range posts {
		if posts[i].Id != id {
			continue
		}
		posts[i] = patch.Apply(posts[i])
		if err := r.store.SaveAll(posts); err != nil {
			return domain.Post{}, err
		}
		return posts[i], nil
	}
	return domain.Post{}, errors.NotFound
}

// RemoveById deletes the post with the given id and reports whether a
// post was actually removed. An absent id is a silent no-op, so a
// double-fired delete cannot fail.
func (r *Repository) RemoveById(id domain.PostId) (bool, error) {
	posts := r.store.LoadAll()
	kept := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return false, nil
	}
	if err := r.store.SaveAll(kept); err != nil {
		return false, err
	}
	return true, nil
}
