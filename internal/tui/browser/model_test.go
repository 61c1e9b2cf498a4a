package browser

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/nav"
	"github.com/mhorak/kiosek/pkg/prefs"
)

type fakeSource struct {
	catalog *models.Catalog
	text    string
}

func (f *fakeSource) Load(context.Context) (*models.Catalog, error) { return f.catalog, nil }
func (f *fakeSource) Text(context.Context, string) (string, error)  { return f.text, nil }
func (f *fakeSource) TextSize(context.Context) (string, error)      { return prefs.TextSizeMedium, nil }
func (f *fakeSource) SetTextSize(context.Context, string) error     { return nil }

func browserCatalog() *models.Catalog {
	return &models.Catalog{
		Categories: []*models.CategoryNode{
			{
				ID: "photos", Path: []string{"photos"}, Title: "Fotky", Icon: "📁",
				Subcategories: []*models.CategoryNode{
					{ID: "churches", Path: []string{"photos", "churches"}, Title: "Kostely", Icon: "📁"},
				},
			},
		},
		Items: []*models.Item{
			{Path: "photos/churches/kostel.jpg", Type: models.TypeImage, Title: "Kostel", CategoryID: "photos/churches"},
		},
	}
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := New(&fakeSource{catalog: browserCatalog()})
	updated, _ := m.Update(catalogLoadedMsg{catalog: browserCatalog()})
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func TestCatalogLoadBuildsRows(t *testing.T) {
	m := loadedModel(t)

	require.NotNil(t, m.state)
	assert.False(t, m.loading)
	require.Len(t, m.rows, 1)
	assert.Equal(t, "photos", m.rows[0].category.ID)
}

func TestEnterKeyDescendsIntoCategory(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, nav.Category, m.state.View())
	require.Len(t, m.rows, 1)
	assert.Equal(t, "churches", m.rows[0].category.ID)
}

func TestStaleSearchTickIsIgnored(t *testing.T) {
	m := loadedModel(t)
	m.searchInput.SetValue("kostel")
	m.searchSeq = 5

	updated, _ := m.Update(searchTickMsg{seq: 3})
	m = updated.(Model)

	assert.Equal(t, nav.Home, m.state.View())
}

func TestFreshSearchTickAppliesFilter(t *testing.T) {
	m := loadedModel(t)
	m.searchInput.SetValue("kostel")
	m.searchSeq = 5

	updated, _ := m.Update(searchTickMsg{seq: 5})
	m = updated.(Model)

	assert.Equal(t, nav.Search, m.state.View())
	require.Len(t, m.rows, 1)
	assert.Equal(t, "Kostel", m.rows[0].item.Title)
}

func TestLoadFailureKeepsStateAndShowsMessage(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(loadFailedMsg{err: assert.AnError})
	m = updated.(Model)

	// Navigation state is untouched; only the inline message changes.
	require.NotNil(t, m.state)
	assert.Contains(t, m.statusErr, "Chyba při načítání obsahu")
}

func TestTextItemOpensWithFetch(t *testing.T) {
	catalog := browserCatalog()
	catalog.Items[0] = &models.Item{
		Path: "texts/povest.txt", Type: models.TypeText, Title: "Pověst", CategoryID: "photos/churches",
	}
	m := New(&fakeSource{catalog: catalog, text: "Byla jednou jedna ves."})
	updated, _ := m.Update(catalogLoadedMsg{catalog: catalog})
	m = updated.(Model)

	// Descend photos -> churches, then open the text item.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.textLoading)
	assert.Equal(t, nav.Viewer, m.state.View())

	updated, _ = m.Update(textLoadedMsg{path: "texts/povest.txt", content: "Byla jednou jedna ves."})
	m = updated.(Model)
	assert.False(t, m.textLoading)
	assert.Equal(t, "Byla jednou jedna ves.", m.textContent)
}
