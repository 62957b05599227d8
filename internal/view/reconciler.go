package view

import (
	"time"

	"github.com/nhb-dev/helpboard/internal/filter"
	"github.com/nhb-dev/helpboard/shared/domain"
)

type Repository interface {
	List() []domain.Post
}

type Clock interface {
	Now() time.Time
}

// Reconciler keeps the surface consistent with the stored collection.
// Single-post mutations go through Patch, which touches one element;
// criteria changes and insertions rebuild the list.
type Reconciler struct {
	repo     Repository
	clock    Clock
	builder  *Builder
	surface  Surface
	criteria filter.Criteria
}

func NewReconciler(repo Repository, clock Clock, builder *Builder, surface Surface) *Reconciler {
	return &Reconciler{repo: repo, clock: clock, builder: builder, surface: surface}
}

// Refresh re-renders the whole filtered list, or the empty state when
// nothing matches.
func (r *Reconciler) Refresh() {
	now := r.clock.Now()
	posts := filter.Apply(r.repo.List(), r.criteria, now)
	if len(posts) == 0 {
		r.surface.ShowEmpty()
		return
	}
	r.surface.SetCards(r.builder.Cards(posts, now))
}

// SetCriteria replaces the active filter and re-renders.
func (r *Reconciler) SetCriteria(c filter.Criteria) {
	r.criteria = c
	r.Refresh()
}

// Criteria returns the active filter.
func (r *Reconciler) Criteria() filter.Criteria {
	return r.criteria
}

// Patch refreshes the single element for the given post. A post that no
// longer passes the filter (or was deleted) is removed instead; if that
// leaves the view empty, the empty state is shown.
func (r *Reconciler) Patch(id domain.PostId) {
	now := r.clock.Now()
	posts := filter.Apply(r.repo.List(), r.criteria, now)
	for _, p := range posts {
		if p.Id == id {
			r.surface.ReplaceCard(id, r.builder.Card(p, now))
			return
		}
	}
	r.surface.RemoveCard(id)
	if len(posts) == 0 {
		r.surface.ShowEmpty()
	}
}
