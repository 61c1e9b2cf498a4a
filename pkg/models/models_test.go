package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	assert.Equal(t, TypeImage, InferType("photos/kostel.JPG"))
	assert.Equal(t, TypeDocument, InferType("docs/kronika.pdf"))
	assert.Equal(t, TypeText, InferType("texts/povest.md"))
	assert.Equal(t, TypeVideo, InferType("videos/prohlidka.mp4"))
	assert.Equal(t, TypeAudio, InferType("audio/zvony.ogg"))
	assert.Equal(t, TypeUnknown, InferType("misc/archiv.zip"))
	assert.Equal(t, TypeUnknown, InferType("bez-pripony"))
}

func TestDisplayTitleFallsBackToPath(t *testing.T) {
	item := &Item{Path: "photos/kostel.jpg"}
	assert.Equal(t, "photos/kostel.jpg", item.DisplayTitle())

	item.Title = "Kostel"
	assert.Equal(t, "Kostel", item.DisplayTitle())
}

func TestCategoryNodePathString(t *testing.T) {
	node := &CategoryNode{ID: "churches", Path: []string{"photos", "churches"}}
	assert.Equal(t, "photos/churches", node.PathString())
	assert.False(t, node.HasSubcategories())
}
