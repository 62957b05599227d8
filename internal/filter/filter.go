// Package filter computes the displayed view of the post collection.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/nhb-dev/helpboard/shared/domain"
)

// Criteria narrows the displayed post list. Zero-valued fields impose no
// constraint. Location and Query match case-insensitive substrings;
// Query searches title, description, location and tags together.
type Criteria struct {
	Type     domain.PostType
	Category string
	Status   domain.Status
	Location string
	Query    string
}

// Apply returns the posts matching every non-empty criterion, sorted by
// creation time descending (ties keep their original relative order).
// Posts whose expiry day lies before the day containing now are always
// excluded, whatever the criteria. The input slice is not modified.
func Apply(posts []domain.Post, c Criteria, now time.Time) []domain.Post {
	sorted := make([]domain.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	out := make([]domain.Post, 0, len(sorted))
	for _, p := range sorted {
		if matches(&p, c, now) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *domain.Post, c Criteria, now time.Time) bool {
	if c.Type != "" && p.Type != c.Type {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if c.Location != "" && !containsFold(p.Location, c.Location) {
		return false
	}
	if c.Query != "" {
		parts := append([]string{p.Title, p.Description, p.Location}, p.Tags...)
		if !containsFold(strings.Join(parts, " "), c.Query) {
			return false
		}
	}
	return !p.Expired(now)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
