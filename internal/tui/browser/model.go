// Package browser is the kiosk's terminal front end: a bubbletea program
// over the navigation state machine, with breadcrumbs, debounced search and
// a viewer overlay dispatched on item type.
package browser

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/nav"
	"github.com/mhorak/kiosek/pkg/prefs"
)

// searchDebounce is how long the search input must be idle before the
// filter runs. A new keystroke within the window supersedes the pending
// filter.
const searchDebounce = 300 * time.Millisecond

// Source supplies the browser with catalog data and preferences. The HTTP
// client and the in-process loader both implement it.
type Source interface {
	Load(ctx context.Context) (*models.Catalog, error)
	Text(ctx context.Context, path string) (string, error)
	TextSize(ctx context.Context) (string, error)
	SetTextSize(ctx context.Context, size string) error
}

// row is one selectable line of the browser list: a category folder or an
// item. Mixed listings show categories first, then items.
type row struct {
	category *models.CategoryNode
	item     *models.Item
	itemIdx  int // index into the nav state's current item list
}

// Model is the bubbletea model for the kiosk browser.
type Model struct {
	source Source
	state  *nav.State

	keys KeyMap
	help help.Model

	searchInput textinput.Model
	searching   bool
	searchSeq   int

	rows         []row
	cursor       int
	scrollOffset int

	width  int
	height int

	textSize string

	// Viewer state for text items, fetched on demand.
	textContent string
	textLoading bool
	textScroll  int

	loading   bool
	statusErr string
}

// New creates the browser model. The catalog is fetched in Init; the UI is
// not navigable until it arrives.
func New(source Source) Model {
	ti := textinput.New()
	ti.Placeholder = "Hledat..."
	ti.CharLimit = 100

	return Model{
		source:      source,
		keys:        keys,
		help:        help.New(),
		searchInput: ti,
		textSize:    prefs.TextSizeMedium,
		loading:     true,
	}
}

// Messages.

type catalogLoadedMsg struct{ catalog *models.Catalog }

type loadFailedMsg struct{ err error }

type textLoadedMsg struct {
	path    string
	content string
}

type textFailedMsg struct{ err error }

type textSizeMsg struct{ size string }

type searchTickMsg struct{ seq int }

// debounceCmd delivers a search tick after the debounce window; ticks whose
// sequence number is stale by arrival are ignored.
func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), m.loadTextSize())
}

func (m Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		catalog, err := m.source.Load(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return catalogLoadedMsg{catalog: catalog}
	}
}

func (m Model) loadTextSize() tea.Cmd {
	return func() tea.Msg {
		size, err := m.source.TextSize(context.Background())
		if err != nil || !prefs.ValidTextSize(size) {
			size = prefs.TextSizeMedium
		}
		return textSizeMsg{size: size}
	}
}

func (m Model) fetchText(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := m.source.Text(context.Background(), path)
		if err != nil {
			return textFailedMsg{err: err}
		}
		return textLoadedMsg{path: path, content: content}
	}
}

func (m Model) saveTextSize(size string) tea.Cmd {
	return func() tea.Msg {
		// Persisting is best effort; the session keeps the new size either way.
		_ = m.source.SetTextSize(context.Background(), size)
		return nil
	}
}

// rebuildRows projects the nav state's current categories and items into
// the selectable list.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	if m.state == nil {
		return
	}
	for _, c := range m.state.Categories() {
		m.rows = append(m.rows, row{category: c})
	}
	for i, item := range m.state.Items() {
		m.rows = append(m.rows, row{item: item, itemIdx: i})
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollOffset = 0
}
