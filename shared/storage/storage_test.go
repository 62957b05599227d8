package storage_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nhb-dev/helpboard/shared/domain"
	"github.com/nhb-dev/helpboard/shared/storage"
	"github.com/nhb-dev/helpboard/shared/storage/memory"
)

func sequentialIds() func() domain.PostId {
	n := 0
	return func() domain.PostId {
		n++
		return fmt.Sprintf("seed-%d", n)
	}
}

func TestSeedIfEmptyPopulatesFreshStore(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, storage.SeedIfEmpty(st, now, sequentialIds()))

	posts := st.LoadAll()
	require.Len(t, posts, 3)

	types := []domain.PostType{posts[0].Type, posts[1].Type, posts[2].Type}
	require.Equal(t, []domain.PostType{domain.TypeRequest, domain.TypeOffer, domain.TypeForSale}, types)

	for _, p := range posts {
		require.NotEmpty(t, p.Id)
		require.NotEmpty(t, p.Title)
		require.Equal(t, domain.StatusOpen, p.Status)
		require.Zero(t, p.Likes)
		require.Empty(t, p.LikedBy)
		require.Empty(t, p.Comments)
		require.True(t, p.CreatedAt.Equal(now))
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	st := memory.New()
	now := time.Now()
	ids := sequentialIds()

	require.NoError(t, storage.SeedIfEmpty(st, now, ids))
	first := st.LoadAll()

	require.NoError(t, storage.SeedIfEmpty(st, now, ids))
	require.Equal(t, first, st.LoadAll())
}

func TestSeedIfEmptyLeavesExistingDataAlone(t *testing.T) {
	st := memory.New()
	existing := []domain.Post{{Id: "p1", Type: domain.TypeOffer, Title: "Tutoring", Status: domain.StatusOpen}}
	require.NoError(t, st.SaveAll(existing))

	require.NoError(t, storage.SeedIfEmpty(st, time.Now(), sequentialIds()))
	require.Equal(t, existing, st.LoadAll())
}
