package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func samplePost() Post {
	expires := NewDate(2025, time.June, 1)
	return Post{
		Id:          "p1",
		Type:        TypeRequest,
		Category:    "items",
		Title:       "Need charger",
		Description: "for an hour",
		Location:    "Library",
		Contact:     "@sam",
		Tags:        []string{"charger", "urgent"},
		Expires:     &expires,
		CreatedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		Likes:       2,
		LikedBy:     []string{"me", "ada"},
		Comments:    []Comment{{Id: "c1", Who: "Ada", Text: "hi", CreatedAt: time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)}},
		Status:      StatusOpen,
	}
}

func TestPatchApplyTouchesOnlySuppliedFields(t *testing.T) {
	original := samplePost()
	fulfilled := StatusFulfilled

	merged := PostPatch{Status: &fulfilled}.Apply(original)

	require.Equal(t, StatusFulfilled, merged.Status)

	// Everything else must be untouched.
	merged.Status = original.Status
	require.Equal(t, original, merged)
}

func TestPatchApplyReplacesSlicesWholesale(t *testing.T) {
	original := samplePost()
	comments := []Comment{{Id: "c9", Who: "Bo", Text: "new thread"}}

	merged := PostPatch{Comments: &comments}.Apply(original)

	require.Equal(t, comments, merged.Comments)
	require.Equal(t, original.Tags, merged.Tags)
}

func TestAsPatchRoundTrips(t *testing.T) {
	original := samplePost()
	original.Likes = 3
	original.LikedBy = []string{"me", "ada", "bo"}

	merged := original.AsPatch().Apply(samplePost())
	require.Equal(t, original, merged)
}

func TestStatusToggle(t *testing.T) {
	require.Equal(t, StatusFulfilled, StatusOpen.Toggle())
	require.Equal(t, StatusOpen, StatusFulfilled.Toggle())
	require.Equal(t, StatusOpen, Status("bogus").Toggle())
}

func TestLikedByActor(t *testing.T) {
	p := samplePost()
	require.True(t, p.LikedByActor("me"))
	require.False(t, p.LikedByActor("stranger"))
}
