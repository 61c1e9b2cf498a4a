package breadcrumb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/query"
)

func testRoots() []*models.CategoryNode {
	return []*models.CategoryNode{
		{
			ID: "photos", Path: []string{"photos"}, Title: "Fotky", Icon: "📷",
			Subcategories: []*models.CategoryNode{
				{ID: "churches", Path: []string{"photos", "churches"}, Title: "Kostely"},
			},
		},
	}
}

func TestProjectResolvesTitles(t *testing.T) {
	segments := Project([]string{"photos", "churches"}, testRoots())

	require.Len(t, segments, 2)
	assert.Equal(t, Segment{ID: "photos", Title: "Fotky", Icon: "📷", Level: 0}, segments[0])
	assert.Equal(t, Segment{ID: "churches", Title: "Kostely", Level: 1}, segments[1])
}

func TestProjectStaleSegmentDegradesToRawID(t *testing.T) {
	segments := Project([]string{"photos", "removed", "below"}, testRoots())

	require.Len(t, segments, 3)
	assert.Equal(t, "Fotky", segments[0].Title)
	assert.Equal(t, "removed", segments[1].Title)
	assert.Equal(t, "below", segments[2].Title)
	assert.Equal(t, 2, segments[2].Level)
}

func TestProjectLegacyDerivedRoots(t *testing.T) {
	c := &models.Catalog{
		IsLegacy: true,
		Items: []*models.Item{
			{Path: "m.jpg", Title: "Mapa", Categories: []string{"maps"}},
		},
	}

	segments := Project([]string{"maps"}, query.LegacyCategories(c))

	require.Len(t, segments, 1)
	// A resolved node carries its icon; the stale-id fallback has none.
	assert.Equal(t, models.FolderIcon, segments[0].Icon)
	assert.Equal(t, "maps", segments[0].Title)
}

func TestProjectEmptyPath(t *testing.T) {
	assert.Nil(t, Project(nil, testRoots()))
}
