// Package breadcrumb projects a category path into displayable, clickable
// segments by resolving each segment's title against the top-level category
// forest.
package breadcrumb

import "github.com/mhorak/kiosek/pkg/models"

// Segment is one clickable element of the breadcrumb trail. Level is the
// zero-indexed depth used for direct re-navigation.
type Segment struct {
	ID    string
	Title string
	Icon  string
	Level int
}

// Project resolves every element of categoryPath to a titled segment against
// roots, which for a legacy catalog is the derived flat tag list. A segment
// that is no longer resolvable (stale path after a catalog rebuild) degrades
// to its raw id rather than failing.
func Project(categoryPath []string, roots []*models.CategoryNode) []Segment {
	if len(categoryPath) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(categoryPath))
	level := roots
	for i, id := range categoryPath {
		var node *models.CategoryNode
		for _, n := range level {
			if n.ID == id {
				node = n
				break
			}
		}
		if node == nil {
			segments = append(segments, Segment{ID: id, Title: id, Level: i})
			level = nil
			continue
		}
		segments = append(segments, Segment{ID: id, Title: node.Title, Icon: node.Icon, Level: i})
		level = node.Subcategories
	}
	return segments
}
