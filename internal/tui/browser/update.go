package browser

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/nav"
	"github.com/mhorak/kiosek/pkg/prefs"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.statusErr = ""
		m.state = nav.New(msg.catalog)
		m.cursor = 0
		m.rebuildRows()
		return m, nil

	case loadFailedMsg:
		// The navigation state stays wherever it was; only the inline
		// message changes.
		m.loading = false
		m.statusErr = "Chyba při načítání obsahu: " + msg.err.Error()
		return m, nil

	case textSizeMsg:
		m.textSize = msg.size
		return m, nil

	case textLoadedMsg:
		if item := m.currentItem(); item != nil && item.Path == msg.path {
			m.textContent = msg.content
			m.textLoading = false
		}
		return m, nil

	case textFailedMsg:
		m.textLoading = false
		m.statusErr = "Chyba při načítání textu: " + msg.err.Error()
		return m, nil

	case searchTickMsg:
		// A newer keystroke supersedes this pending filter.
		if msg.seq != m.searchSeq || m.state == nil {
			return m, nil
		}
		m.state.SetSearch(m.searchInput.Value())
		m.cursor = 0
		m.rebuildRows()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && !m.searching {
		return m, tea.Quit
	}

	if m.searching {
		return m.updateSearchInput(msg)
	}
	if m.state == nil {
		return m, nil
	}
	if m.state.View() == nav.Viewer {
		return m.updateViewer(msg)
	}
	return m.updateBrowse(msg)
}

// updateSearchInput handles keys while the search field is focused.
func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchSeq++
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		if m.state != nil {
			m.state.GoHome()
			m.cursor = 0
			m.rebuildRows()
		}
		return m, nil

	case "enter":
		m.searching = false
		m.searchSeq++
		m.searchInput.Blur()
		if m.state != nil {
			m.state.SetSearch(m.searchInput.Value())
			m.cursor = 0
			m.rebuildRows()
		}
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(cmd, debounceCmd(m.searchSeq))
	}
	return m, cmd
}

// updateViewer handles keys while the viewer overlay is open.
func (m Model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state.CloseViewer()
		m.resetTextViewer()
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.state.GoHome()
		m.resetTextViewer()
		m.clearSearchUI()
		m.cursor = 0
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keys.PrevImage):
		m.state.PrevItem()
		return m, nil

	case key.Matches(msg, m.keys.NextImage):
		m.state.NextItem()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.textScroll > 0 {
			m.textScroll--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.textScroll++
		return m, nil

	case key.Matches(msg, m.keys.TextSmall):
		return m.adjustTextSize(-1)

	case key.Matches(msg, m.keys.TextLarge):
		return m.adjustTextSize(1)
	}
	return m, nil
}

// updateBrowse handles keys in the home, category and search list views.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.openSelected()

	case key.Matches(msg, m.keys.Back):
		if m.state.View() == nav.Search {
			m.state.GoHome()
			m.clearSearchUI()
		} else {
			m.state.NavigateUp()
		}
		m.cursor = 0
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.state.GoHome()
		m.clearSearchUI()
		m.cursor = 0
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keys.TextSmall):
		return m.adjustTextSize(-1)

	case key.Matches(msg, m.keys.TextLarge):
		return m.adjustTextSize(1)

	case key.Matches(msg, m.keys.Breadcrumb):
		// Digits jump straight to a breadcrumb level.
		if n, err := strconv.Atoi(msg.String()); err == nil {
			m.state.NavigateToBreadcrumbLevel(n - 1)
			m.cursor = 0
			m.rebuildRows()
		}
		return m, nil
	}
	return m, nil
}

// openSelected enters the category or opens the item under the cursor.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return m, nil
	}
	r := m.rows[m.cursor]

	if r.category != nil {
		m.state.EnterCategory(r.category.ID)
		m.cursor = 0
		m.rebuildRows()
		return m, nil
	}

	m.state.OpenItem(r.item, r.itemIdx)
	m.resetTextViewer()
	if r.item.Type == models.TypeText {
		m.textLoading = true
		return m, m.fetchText(r.item.Path)
	}
	return m, nil
}

func (m Model) adjustTextSize(dir int) (tea.Model, tea.Cmd) {
	idx := 0
	for i, v := range prefs.TextSizes {
		if v == m.textSize {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 || idx >= len(prefs.TextSizes) {
		return m, nil
	}
	m.textSize = prefs.TextSizes[idx]
	return m, m.saveTextSize(m.textSize)
}

func (m *Model) resetTextViewer() {
	m.textContent = ""
	m.textLoading = false
	m.textScroll = 0
}

func (m *Model) clearSearchUI() {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.searching = false
	m.searchSeq++
}

func (m *Model) currentItem() *models.Item {
	if m.state == nil {
		return nil
	}
	return m.state.CurrentItem()
}

func (m *Model) ensureCursorVisible() {
	height := m.listHeight()
	if height <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+height {
		m.scrollOffset = m.cursor - height + 1
	}
}
