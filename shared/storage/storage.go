// Package storage defines the persistence contract for the post
// collection: one durable entry holding the whole JSON-serialized array.
package storage

import (
	"time"

	"github.com/nhb-dev/helpboard/shared/domain"
)

// Store persists the complete post collection. Implementations are
// expected to fail soft on reads: corrupt or missing data comes back as
// an empty collection, never as an error the caller has to handle.
type Store interface {
	// LoadAll returns the persisted collection in storage order.
	LoadAll() []domain.Post

	// SaveAll replaces the persisted collection with posts.
	SaveAll(posts []domain.Post) error
}

// SeedIfEmpty populates an empty store with the example posts a fresh
// board shows on first run. A store that already holds data is left
// untouched, so the call is idempotent.
func SeedIfEmpty(st Store, now time.Time, newId func() domain.PostId) error {
	if len(st.LoadAll()) > 0 {
		return nil
	}

	samples := []domain.Post{
		{
			Type:        domain.TypeRequest,
			Category:    "items",
			Title:       "Need Type-C charger for 1 hour",
			Description: "Phone low during group study. Will return in an hour.",
			Location:    "Library, Floor 2",
			Contact:     "@samuel",
			Tags:        []string{"charger", "urgent"},
		},
		{
			Type:        domain.TypeOffer,
			Category:    "study",
			Title:       "Free Math tutoring (Algebra)",
			Description: "Evenings 6-8pm. Can help prep for tests.",
			Location:    "Hostel A common room",
			Contact:     "0803-000-0000",
			Tags:        []string{"tutoring"},
		},
		{
			Type:        domain.TypeForSale,
			Category:    "for-sale",
			Title:       "Selling used PHY101 textbook",
			Description: "Clean copy, little highlights.",
			Location:    "Science block",
			Contact:     "Ada 0812...",
			Tags:        []string{"book", "phy101"},
		},
	}
	for i := range samples {
		samples[i].Id = newId()
		samples[i].CreatedAt = now
		samples[i].LikedBy = []string{}
		samples[i].Comments = []domain.Comment{}
		samples[i].Status = domain.StatusOpen
	}
	return st.SaveAll(samples)
}
