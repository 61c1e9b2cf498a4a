// Package query answers read-only questions about a built catalog: which
// items live under a category path, which items match a search, and which
// child categories a path has. All functions branch on the catalog's legacy
// flag exactly once, never per item.
package query

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mhorak/kiosek/pkg/models"
)

// ItemsUnder returns the items belonging to the category identified by the
// joined path string. In modern mode this is an exact CategoryID match;
// with subtree set, items nested anywhere beneath the path are included as
// well. In legacy mode only the last path segment is meaningful and an item
// matches when its tag list contains it.
func ItemsUnder(c *models.Catalog, categoryID string, subtree bool) []*models.Item {
	var out []*models.Item
	if c.IsLegacy {
		tag := lastSegment(categoryID)
		for _, item := range c.Items {
			if containsString(item.Categories, tag) {
				out = append(out, item)
			}
		}
		return out
	}
	prefix := categoryID + "/"
	for _, item := range c.Items {
		if item.CategoryID == categoryID || (subtree && strings.HasPrefix(item.CategoryID, prefix)) {
			out = append(out, item)
		}
	}
	return out
}

// Search returns items whose title, description or any keyword contains the
// query, case-insensitively. Result order is catalog order; there is no
// ranking. Callers must not pass an empty or whitespace-only query.
func Search(c *models.Catalog, q string) []*models.Item {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []*models.Item
	for _, item := range c.Items {
		if Matches(item, q) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a single item matches the lowercased query.
func Matches(item *models.Item, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, kw := range item.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// ChildrenOf walks the category forest level by level along the path and
// returns the subcategories of the final node. An empty path returns the
// top-level categories. Any unknown segment yields an empty result, not an
// error; stale paths after a rebuild simply have no children.
func ChildrenOf(c *models.Catalog, categoryPath []string) []*models.CategoryNode {
	level := c.Categories
	for _, id := range categoryPath {
		node := findNode(level, id)
		if node == nil {
			return nil
		}
		level = node.Subcategories
	}
	return level
}

// NodeAt resolves the category node at the full path, or nil if any segment
// is unknown.
func NodeAt(c *models.Catalog, categoryPath []string) *models.CategoryNode {
	level := c.Categories
	var node *models.CategoryNode
	for _, id := range categoryPath {
		node = findNode(level, id)
		if node == nil {
			return nil
		}
		level = node.Subcategories
	}
	return node
}

// LegacyCategories derives the flat category list for a legacy catalog: the
// distinct tags across all items, in Czech collation order, presented as
// selectable leaf nodes.
func LegacyCategories(c *models.Catalog) []*models.CategoryNode {
	counts := make(map[string]int)
	for _, item := range c.Items {
		for _, tag := range item.Categories {
			counts[tag]++
		}
	}
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	collate.New(language.Czech).SortStrings(tags)

	nodes := make([]*models.CategoryNode, 0, len(tags))
	for _, tag := range tags {
		nodes = append(nodes, &models.CategoryNode{
			ID:        tag,
			Path:      []string{tag},
			Title:     tag,
			Icon:      models.FolderIcon,
			Filter:    true,
			ItemCount: counts[tag],
		})
	}
	return nodes
}

func findNode(level []*models.CategoryNode, id string) *models.CategoryNode {
	for _, n := range level {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func lastSegment(categoryID string) string {
	if i := strings.LastIndexByte(categoryID, '/'); i >= 0 {
		return categoryID[i+1:]
	}
	return categoryID
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
