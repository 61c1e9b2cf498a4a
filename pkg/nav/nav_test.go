package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhorak/kiosek/pkg/models"
)

func testCatalog() *models.Catalog {
	return &models.Catalog{
		Categories: []*models.CategoryNode{
			{
				ID: "photos", Path: []string{"photos"}, Title: "Fotky",
				Subcategories: []*models.CategoryNode{
					{ID: "churches", Path: []string{"photos", "churches"}, Title: "Kostely"},
				},
			},
			{ID: "maps", Path: []string{"maps"}, Title: "Mapy"},
		},
		Items: []*models.Item{
			{Path: "photos/naves.jpg", Type: models.TypeImage, Title: "Náves", CategoryID: "photos"},
			{Path: "photos/churches/kostel.jpg", Type: models.TypeImage, Title: "Kostel", Keywords: []string{"stavba"}, CategoryID: "photos/churches"},
			{Path: "photos/churches/kronika.txt", Type: models.TypeText, Title: "Kronika", CategoryID: "photos/churches"},
			{Path: "photos/churches/zvon.jpg", Type: models.TypeImage, Title: "Zvon", CategoryID: "photos/churches"},
			{Path: "maps/mapa.pdf", Type: models.TypeDocument, Title: "Mapa obce", CategoryID: "maps"},
		},
	}
}

func TestNewStartsAtHome(t *testing.T) {
	s := New(testCatalog())

	assert.Equal(t, Home, s.View())
	assert.Empty(t, s.CategoryPath())
	assert.Empty(t, s.SearchQuery())
	assert.Nil(t, s.CurrentItem())
	assert.Len(t, s.Categories(), 2)
}

func TestEnterCategoryMixedListing(t *testing.T) {
	s := New(testCatalog())

	// photos has a subcategory and its own direct items: both are shown.
	s.EnterCategory("photos")

	assert.Equal(t, Category, s.View())
	assert.Equal(t, []string{"photos"}, s.CategoryPath())
	require.Len(t, s.Categories(), 1)
	assert.Equal(t, "churches", s.Categories()[0].ID)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Náves", s.Items()[0].Title)
}

func TestEnterCategoryWithSubcategoriesOnly(t *testing.T) {
	c := testCatalog()
	// Drop photos' direct item; only the subcategory listing remains.
	c.Items = c.Items[1:]
	s := New(c)

	s.EnterCategory("photos")

	require.Len(t, s.Categories(), 1)
	assert.Empty(t, s.Items())
}

func TestEnterLeafCategoryShowsItemsOnly(t *testing.T) {
	s := New(testCatalog())

	s.EnterCategory("photos")
	s.EnterCategory("churches")

	assert.Equal(t, []string{"photos", "churches"}, s.CategoryPath())
	assert.Empty(t, s.Categories())
	assert.Len(t, s.Items(), 3)
}

func TestEnterUnknownCategoryIsNoOp(t *testing.T) {
	s := New(testCatalog())

	s.EnterCategory("nonexistent")

	assert.Equal(t, Home, s.View())
	assert.Empty(t, s.CategoryPath())
}

func TestNavigateUpTwiceFromTwoLevelsReachesHome(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")
	s.EnterCategory("churches")

	s.NavigateUp()
	assert.Equal(t, Category, s.View())
	assert.Equal(t, []string{"photos"}, s.CategoryPath())

	s.NavigateUp()
	assert.Equal(t, Home, s.View())
	assert.Empty(t, s.CategoryPath())
}

func TestNavigateToBreadcrumbLevel(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")
	s.EnterCategory("churches")

	s.NavigateToBreadcrumbLevel(0)

	assert.Equal(t, Category, s.View())
	assert.Equal(t, []string{"photos"}, s.CategoryPath())
	// Mixed listing re-resolved as EnterCategory would.
	require.Len(t, s.Categories(), 1)
	require.Len(t, s.Items(), 1)
}

func TestNavigateToBreadcrumbLevelClosesViewer(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")
	s.EnterCategory("churches")
	s.OpenItem(s.Items()[0], 0)
	require.Equal(t, Viewer, s.View())

	s.NavigateToBreadcrumbLevel(0)

	assert.Nil(t, s.CurrentItem())
	assert.Equal(t, Category, s.View())
}

func TestNavigateToBreadcrumbLevelOutOfRangeIsNoOp(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")

	s.NavigateToBreadcrumbLevel(-1)
	assert.Equal(t, []string{"photos"}, s.CategoryPath())

	s.NavigateToBreadcrumbLevel(1)
	assert.Equal(t, []string{"photos"}, s.CategoryPath())
}

func TestSearchClearsCategoryPath(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")

	s.SetSearch("kostel")

	assert.Equal(t, Search, s.View())
	assert.Empty(t, s.CategoryPath())
	assert.Equal(t, "kostel", s.SearchQuery())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Kostel", s.Items()[0].Title)
}

func TestSearchBlankQueryGoesHome(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")

	s.SetSearch("   ")

	assert.Equal(t, Home, s.View())
	assert.Empty(t, s.SearchQuery())
	assert.Empty(t, s.CategoryPath())
}

func TestEnterCategoryClearsSearch(t *testing.T) {
	s := New(testCatalog())
	s.SetSearch("kostel")
	s.GoHome()

	s.EnterCategory("maps")
	assert.Empty(t, s.SearchQuery())
	assert.Equal(t, []string{"maps"}, s.CategoryPath())
}

func TestOpenAndCloseViewerFromCategory(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")
	s.EnterCategory("churches")

	s.OpenItem(s.Items()[0], 0)
	assert.Equal(t, Viewer, s.View())
	assert.NotNil(t, s.CurrentItem())
	// Category context survives the viewer.
	assert.Equal(t, []string{"photos", "churches"}, s.CategoryPath())

	s.CloseViewer()
	assert.Equal(t, Category, s.View())
	assert.Nil(t, s.CurrentItem())
	assert.Equal(t, -1, s.CurrentIndex())
}

func TestCloseViewerFromSearch(t *testing.T) {
	s := New(testCatalog())
	s.SetSearch("kostel")
	s.OpenItem(s.Items()[0], 0)

	s.CloseViewer()
	assert.Equal(t, Search, s.View())
	assert.Equal(t, "kostel", s.SearchQuery())
}

func TestCloseViewerWithoutContextGoesHome(t *testing.T) {
	s := New(testCatalog())
	s.OpenItem(testCatalog().Items[0], 0)

	s.CloseViewer()
	assert.Equal(t, Home, s.View())
}

func TestImageNavigationSkipsNonImages(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")
	s.EnterCategory("churches")
	// Items: Kostel (image), Kronika (text), Zvon (image).
	s.OpenItem(s.Items()[0], 0)

	s.NextItem()
	assert.Equal(t, "Zvon", s.CurrentItem().Title)
	assert.Equal(t, 2, s.CurrentIndex())

	// No wraparound at the end.
	s.NextItem()
	assert.Equal(t, "Zvon", s.CurrentItem().Title)

	s.PrevItem()
	assert.Equal(t, "Kostel", s.CurrentItem().Title)

	// No wraparound at the start.
	s.PrevItem()
	assert.Equal(t, "Kostel", s.CurrentItem().Title)
}

func TestImageNavigationIgnoredForNonImageViewer(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")
	s.EnterCategory("churches")
	s.OpenItem(s.Items()[1], 1) // text item

	s.NextItem()
	assert.Equal(t, "Kronika", s.CurrentItem().Title)
	assert.Equal(t, 1, s.CurrentIndex())
}

func TestLegacyNavigation(t *testing.T) {
	catalog := &models.Catalog{
		IsLegacy: true,
		Items: []*models.Item{
			{Path: "m1.jpg", Type: models.TypeImage, Title: "Mapa 1", Categories: []string{"maps"}},
			{Path: "m2.jpg", Type: models.TypeImage, Title: "Mapa 2", Categories: []string{"maps", "old"}},
		},
	}
	s := New(catalog)

	// Home shows the derived flat tag list, also exposed as the root forest
	// for breadcrumb resolution.
	require.Len(t, s.Categories(), 2)
	assert.Equal(t, s.Categories(), s.Roots())

	s.EnterCategory("maps")
	assert.Equal(t, Category, s.View())
	// Tag membership, not hierarchy: both items match.
	assert.Len(t, s.Items(), 2)
}

func TestGoHomeResetsEverything(t *testing.T) {
	s := New(testCatalog())
	s.EnterCategory("photos")
	s.EnterCategory("churches")
	s.OpenItem(s.Items()[0], 0)

	s.GoHome()

	assert.Equal(t, Home, s.View())
	assert.Empty(t, s.CategoryPath())
	assert.Empty(t, s.SearchQuery())
	assert.Nil(t, s.CurrentItem())
	assert.Len(t, s.Categories(), 2)
}
