package models

import (
	"path/filepath"
	"strings"
)

// ItemType categorizes the kinds of media the kiosk can display.
type ItemType string

const (
	TypeImage    ItemType = "image"
	TypeDocument ItemType = "document"
	TypeText     ItemType = "text"
	TypeVideo    ItemType = "video"
	TypeAudio    ItemType = "audio"
	TypeUnknown  ItemType = "unknown"
)

// extensionTypes maps lowercased file extensions to item types.
var extensionTypes = map[string]ItemType{
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".png":  TypeImage,
	".gif":  TypeImage,
	".webp": TypeImage,
	".pdf":  TypeDocument,
	".txt":  TypeText,
	".md":   TypeText,
	".mp4":  TypeVideo,
	".webm": TypeVideo,
	".ogv":  TypeVideo,
	".mp3":  TypeAudio,
	".wav":  TypeAudio,
	".ogg":  TypeAudio,
}

// InferType determines an item's type from its file extension.
func InferType(path string) ItemType {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return TypeUnknown
}

// Item is a single piece of exhibition content. In hierarchical (modern)
// mode CategoryID carries the full joined category path; in legacy mode
// Categories carries the flat tag list instead. Exactly one of the two is
// populated, selected by the catalog's IsLegacy flag.
type Item struct {
	Path        string   `json:"path" yaml:"path"`
	Type        ItemType `json:"type" yaml:"type"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	CategoryID string   `json:"categoryId,omitempty" yaml:"categoryId,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// DisplayTitle returns the title, falling back to the content path.
func (i *Item) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Path
}

// Icon returns the glyph used for this item in list views.
func (i *Item) Icon() string {
	return TypeIcons[i.Type]
}

// TypeIcons maps item types to the glyphs the kiosk lists use.
var TypeIcons = map[ItemType]string{
	TypeImage:    "🖼️",
	TypeDocument: "📄",
	TypeText:     "📝",
	TypeVideo:    "🎬",
	TypeAudio:    "🎵",
	TypeUnknown:  "📎",
}

// FolderIcon is the default icon for category folders without a descriptor.
const FolderIcon = "📁"
