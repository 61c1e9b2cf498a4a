package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhorak/kiosek/pkg/breadcrumb"
	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/nav"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	activeStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	mutedStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	separatorGlyph = " › "
)

func (m Model) View() string {
	if m.loading {
		return "\n  Načítání obsahu..."
	}
	if m.state == nil {
		return "\n  " + errorStyle.Render(m.statusErr)
	}
	if m.help.ShowAll {
		return "\n" + m.help.View(m.keys)
	}

	var body string
	if m.state.View() == nav.Viewer {
		body = m.renderViewer()
	} else {
		body = m.renderList()
	}

	sections := []string{
		m.renderBreadcrumbs(),
		m.renderSearchLine(),
		body,
		m.renderFooter(),
	}
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBreadcrumbs draws the clickable trail: home, each category level,
// and the open item's title in the viewer.
func (m Model) renderBreadcrumbs() string {
	parts := []string{"Domů"}
	path := m.state.CategoryPath()

	switch {
	case len(path) > 0:
		for _, seg := range breadcrumb.Project(path, m.state.Roots()) {
			parts = append(parts, fmt.Sprintf("%s [%d]", seg.Title, seg.Level+1))
		}
	case m.state.SearchQuery() != "":
		parts = append(parts, fmt.Sprintf("Hledání: %q", m.state.SearchQuery()))
	}

	if item := m.state.CurrentItem(); item != nil {
		parts = append(parts, item.DisplayTitle())
	}

	last := len(parts) - 1
	for i, p := range parts {
		if i == last {
			parts[i] = activeStyle.Render(p)
		} else {
			parts[i] = headerStyle.Render(p)
		}
	}
	return strings.Join(parts, mutedStyle.Render(separatorGlyph))
}

func (m Model) renderSearchLine() string {
	if m.searching || m.searchInput.Value() != "" {
		return m.searchInput.View()
	}
	return mutedStyle.Render("/ hledat")
}

func (m Model) renderList() string {
	if len(m.rows) == 0 {
		return m.renderEmptyState()
	}

	height := m.listHeight()
	start := m.scrollOffset
	end := start + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		line := m.renderRow(m.rows[i])
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.rows) > height {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%d-%d z %d)", start+1, end, len(m.rows))))
	}
	return b.String()
}

func (m Model) renderRow(r row) string {
	if r.category != nil {
		c := r.category
		line := fmt.Sprintf(" %s %s", c.Icon, c.Title)
		if c.ItemCount > 0 {
			line += mutedStyle.Render(fmt.Sprintf("  %d položek", c.ItemCount))
		}
		return line
	}

	item := r.item
	line := fmt.Sprintf(" %s %s", item.Icon(), item.DisplayTitle())
	if item.Description != "" {
		line += mutedStyle.Render("  " + item.Description)
	}
	return line
}

func (m Model) renderEmptyState() string {
	switch m.state.View() {
	case nav.Search:
		return mutedStyle.Render("\n  📭 Žádné výsledky nenalezeny")
	case nav.Category:
		return mutedStyle.Render("\n  📭 V této kategorii nejsou žádné položky")
	default:
		return mutedStyle.Render("\n  📁 Žádné kategorie nenalezeny")
	}
}

// renderViewer dispatches on the open item's type. Only text items have
// real terminal content; other media show their metadata.
func (m Model) renderViewer() string {
	item := m.state.CurrentItem()
	if item == nil {
		return ""
	}

	switch item.Type {
	case models.TypeText:
		return m.renderTextViewer(item)
	case models.TypeImage:
		return m.renderMediaPane(item, "←/→ procházení obrázků")
	case models.TypeDocument, models.TypeVideo, models.TypeAudio:
		return m.renderMediaPane(item, "")
	default:
		return "\n  ❌ Nepodporovaný typ souboru"
	}
}

func (m Model) renderTextViewer(item *models.Item) string {
	if m.textLoading {
		return "\n  Načítání..."
	}
	if m.textContent == "" && m.statusErr != "" {
		return "\n  " + errorStyle.Render(m.statusErr)
	}

	lines := strings.Split(m.textContent, "\n")
	height := m.listHeight()
	start := m.textScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" velikost textu: %s\n\n", m.textSize)))
	style := textStyle(m.textSize)
	for _, line := range lines[start:end] {
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMediaPane(item *models.Item, hint string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  %s  %s\n", item.Icon(), headerStyle.Render(item.DisplayTitle())))
	if item.Description != "" {
		b.WriteString("\n  " + item.Description + "\n")
	}
	b.WriteString(mutedStyle.Render("\n  " + item.Path + "\n"))
	if hint != "" {
		b.WriteString(mutedStyle.Render("\n  " + hint + "\n"))
	}
	return b.String()
}

func (m Model) renderFooter() string {
	footer := m.help.View(m.keys)
	if m.statusErr != "" && m.state.View() != nav.Viewer {
		footer = errorStyle.Render(m.statusErr) + "\n" + footer
	}
	return footer
}

// textStyle maps the persisted text-size preference onto terminal styling.
func textStyle(size string) lipgloss.Style {
	switch size {
	case "small":
		return lipgloss.NewStyle().Faint(true)
	case "large":
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle()
}

// listHeight is the number of rows the list viewport can show.
func (m Model) listHeight() int {
	if m.height == 0 {
		return 20
	}
	h := m.height - 7
	if h < 1 {
		h = 1
	}
	return h
}
