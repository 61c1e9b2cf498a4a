// Package nav owns the client-side navigation state: the current view, the
// category path, the search query and the open item. All mutation goes
// through transition methods so the state invariants hold at a single
// boundary; reads go through accessors.
package nav

import (
	"strings"

	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/query"
)

// View is the kiosk's current screen.
type View int

const (
	Home View = iota
	Category
	Search
	Viewer
)

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case Category:
		return "category"
	case Search:
		return "search"
	case Viewer:
		return "viewer"
	}
	return "unknown"
}

// State is the navigation state container. Create one with New after the
// catalog has loaded; it is not safe for concurrent use and is never
// persisted.
type State struct {
	catalog *models.Catalog
	roots   []*models.CategoryNode

	view              View
	categoryPath      []string
	searchQuery       string
	currentCategories []*models.CategoryNode
	currentItems      []*models.Item
	currentIndex      int
	currentItem       *models.Item
}

// New creates the state machine in the home view. For a legacy catalog the
// top level is the derived flat tag list.
func New(catalog *models.Catalog) *State {
	roots := catalog.Categories
	if catalog.IsLegacy {
		roots = query.LegacyCategories(catalog)
	}
	return &State{
		catalog:           catalog,
		roots:             roots,
		view:              Home,
		currentCategories: roots,
		currentIndex:      -1,
	}
}

// Accessors.

func (s *State) View() View                         { return s.view }
func (s *State) Roots() []*models.CategoryNode      { return s.roots }
func (s *State) SearchQuery() string                { return s.searchQuery }
func (s *State) Categories() []*models.CategoryNode { return s.currentCategories }
func (s *State) Items() []*models.Item              { return s.currentItems }
func (s *State) CurrentItem() *models.Item          { return s.currentItem }
func (s *State) CurrentIndex() int                  { return s.currentIndex }

// CategoryPath returns a copy of the current category path.
func (s *State) CategoryPath() []string {
	return append([]string(nil), s.categoryPath...)
}

func (s *State) pathString() string {
	return strings.Join(s.categoryPath, "/")
}

// GoHome resets to the top level: empty path, empty query, viewer closed.
func (s *State) GoHome() {
	s.view = Home
	s.categoryPath = nil
	s.searchQuery = ""
	s.currentCategories = s.roots
	s.currentItems = nil
	s.closeItem()
}

// EnterCategory descends into a child of the current level. Unknown ids are
// ignored.
func (s *State) EnterCategory(id string) {
	if findNode(s.currentCategories, id) == nil {
		return
	}
	s.categoryPath = append(s.categoryPath, id)
	s.searchQuery = ""
	s.enterCurrentLevel()
}

// NavigateUp pops the last path segment, landing on home when the path
// becomes empty.
func (s *State) NavigateUp() {
	if len(s.categoryPath) == 0 {
		s.GoHome()
		return
	}
	s.categoryPath = s.categoryPath[:len(s.categoryPath)-1]
	if len(s.categoryPath) == 0 {
		s.GoHome()
		return
	}
	s.enterCurrentLevel()
}

// NavigateToBreadcrumbLevel truncates the path to level+1 segments and
// re-enters that category, closing the viewer if open. Out-of-range levels
// are a no-op.
func (s *State) NavigateToBreadcrumbLevel(level int) {
	if level < 0 || level >= len(s.categoryPath) {
		return
	}
	s.closeItem()
	s.categoryPath = s.categoryPath[:level+1]
	s.enterCurrentLevel()
}

// SetSearch applies a search query. A blank query means "not a search" and
// routes home.
func (s *State) SetSearch(q string) {
	q = strings.TrimSpace(q)
	if q == "" {
		s.GoHome()
		return
	}
	s.categoryPath = nil
	s.searchQuery = q
	s.currentCategories = nil
	s.currentItems = query.Search(s.catalog, q)
	s.view = Search
}

// OpenItem opens the viewer over the current list, preserving whatever
// category path or search query is active.
func (s *State) OpenItem(item *models.Item, index int) {
	if item == nil {
		return
	}
	s.currentItem = item
	s.currentIndex = index
	s.view = Viewer
}

// CloseViewer clears the open item and resumes the surviving context:
// category if a path is set, else search if a query is set, else home.
func (s *State) CloseViewer() {
	s.closeItem()
	switch {
	case len(s.categoryPath) > 0:
		s.view = Category
	case s.searchQuery != "":
		s.view = Search
	default:
		s.view = Home
	}
}

// NextItem advances the viewer to the next image item in the current list.
// No wraparound; non-image viewers do not navigate.
func (s *State) NextItem() {
	s.stepImage(1)
}

// PrevItem moves the viewer to the previous image item in the current list.
func (s *State) PrevItem() {
	s.stepImage(-1)
}

func (s *State) stepImage(dir int) {
	if s.view != Viewer || s.currentItem == nil || s.currentItem.Type != models.TypeImage {
		return
	}
	for i := s.currentIndex + dir; i >= 0 && i < len(s.currentItems); i += dir {
		if s.currentItems[i].Type == models.TypeImage {
			s.currentIndex = i
			s.currentItem = s.currentItems[i]
			return
		}
	}
}

func (s *State) closeItem() {
	s.currentItem = nil
	s.currentIndex = -1
}

// enterCurrentLevel resolves what the current category path shows: its
// subcategories, its items, or both when the node owns items alongside
// subcategories (mixed listing). One scan of the item list per transition.
func (s *State) enterCurrentLevel() {
	s.view = Category
	node := s.nodeAt(s.categoryPath)

	s.currentItems = query.ItemsUnder(s.catalog, s.pathString(), false)
	if node != nil && node.HasSubcategories() {
		s.currentCategories = node.Subcategories
	} else {
		s.currentCategories = nil
	}
}

func (s *State) nodeAt(path []string) *models.CategoryNode {
	level := s.roots
	var node *models.CategoryNode
	for _, id := range path {
		node = findNode(level, id)
		if node == nil {
			return nil
		}
		level = node.Subcategories
	}
	return node
}

func findNode(level []*models.CategoryNode, id string) *models.CategoryNode {
	for _, n := range level {
		if n.ID == id {
			return n
		}
	}
	return nil
}
