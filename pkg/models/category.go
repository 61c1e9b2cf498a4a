package models

import "strings"

// CategoryNode is one node of the category tree built from the content
// configuration directory. Path always equals the parent's Path plus this
// node's ID; ItemCount counts items in the whole subtree.
type CategoryNode struct {
	ID            string          `json:"id" yaml:"id"`
	Path          []string        `json:"path" yaml:"path"`
	Title         string          `json:"title" yaml:"title"`
	Icon          string          `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description   string          `json:"description,omitempty" yaml:"description,omitempty"`
	Filter        bool            `json:"filter" yaml:"filter"`
	Subcategories []*CategoryNode `json:"subcategories,omitempty" yaml:"subcategories,omitempty"`
	ItemCount     int             `json:"itemCount" yaml:"itemCount"`
}

// PathString returns the joined category path, e.g. "photos/churches".
func (n *CategoryNode) PathString() string {
	return strings.Join(n.Path, "/")
}

// HasSubcategories reports whether this node has child categories.
func (n *CategoryNode) HasSubcategories() bool {
	return len(n.Subcategories) > 0
}

// Catalog is the result of one build or legacy load: the ordered category
// forest plus the flat item list. IsLegacy is a single global mode flag,
// never mixed per item.
type Catalog struct {
	Categories []*CategoryNode `json:"categories" yaml:"categories"`
	Items      []*Item         `json:"items" yaml:"items"`
	IsLegacy   bool            `json:"isLegacy" yaml:"isLegacy"`
}
