package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nhb-dev/helpboard/shared/domain"
)

func TestRendererCard(t *testing.T) {
	b := NewBuilder("me")
	r := NewRenderer()

	post := domain.Post{
		Id:        "p1",
		Type:      domain.TypeRequest,
		Category:  "items",
		Title:     "Need <Type-C> charger",
		Location:  "Library",
		Tags:      []string{"charger"},
		CreatedAt: time.Now().Add(-time.Hour),
		Likes:     1,
		LikedBy:   []string{"me"},
		Status:    domain.StatusOpen,
	}

	html, err := r.Card(b.Card(post, time.Now()))
	require.NoError(t, err)

	s := string(html)
	require.Contains(t, s, `data-id="p1"`)
	// Title is escaped, not interpreted.
	require.Contains(t, s, "Need &lt;Type-C&gt; charger")
	require.Contains(t, s, "#charger")
	require.Contains(t, s, "liked")
	require.Contains(t, s, "Mark Fulfilled")
	require.NotContains(t, s, "Reopen")
}

func TestRendererFulfilledCard(t *testing.T) {
	b := NewBuilder("me")
	r := NewRenderer()

	post := domain.Post{Id: "p2", Title: "Done", CreatedAt: time.Now(), Status: domain.StatusFulfilled}

	html, err := r.Card(b.Card(post, time.Now()))
	require.NoError(t, err)
	require.Contains(t, string(html), "Reopen")
}

func TestRendererEmpty(t *testing.T) {
	r := NewRenderer()
	require.True(t, strings.Contains(string(r.Empty()), "No posts"))
}
