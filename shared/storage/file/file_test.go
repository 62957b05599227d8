package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nhb-dev/helpboard/shared/domain"
)

func testPosts() []domain.Post {
	expires := domain.NewDate(2025, time.July, 1)
	return []domain.Post{
		{
			Id:        "p2",
			Type:      domain.TypeOffer,
			Category:  "study",
			Title:     "Tutoring",
			Tags:      []string{"tutoring"},
			CreatedAt: time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC),
			Likes:     1,
			LikedBy:   []string{"me"},
			Comments:  []domain.Comment{{Id: "c1", Who: "Ada", Text: "still available?", CreatedAt: time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)}},
			Status:    domain.StatusOpen,
		},
		{
			Id:        "p1",
			Type:      domain.TypeRequest,
			Category:  "items",
			Title:     "Need charger",
			Tags:      []string{},
			Expires:   &expires,
			CreatedAt: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
			LikedBy:   []string{},
			Comments:  []domain.Comment{},
			Status:    domain.StatusFulfilled,
		},
	}
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	posts := testPosts()
	require.NoError(t, st.SaveAll(posts))
	require.Equal(t, posts, st.LoadAll())
}

func TestLoadAllMissingFileIsEmpty(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	require.Empty(t, st.LoadAll())
}

func TestLoadAllCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("{definitely not an array"), 0o644))

	st, err := New(path)
	require.NoError(t, err)
	require.Empty(t, st.LoadAll())
}

func TestLoadAllWrongShapeIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"p1"}`), 0o644))

	st, err := New(path)
	require.NoError(t, err)
	require.Empty(t, st.LoadAll())
}

func TestSaveAllReplacesPriorContents(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	require.NoError(t, st.SaveAll(testPosts()))
	require.NoError(t, st.SaveAll([]domain.Post{}))
	require.Empty(t, st.LoadAll())
}

func TestNewCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "board.json")
	st, err := New(path)
	require.NoError(t, err)

	require.NoError(t, st.SaveAll(testPosts()))
	require.Len(t, st.LoadAll(), 2)
}
