package catalog

import (
	"encoding/json"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/mhorak/kiosek/pkg/models"
)

// LegacyMetadataName is the flat metadata file used before hierarchical
// configuration existed: one JSON document with an items array, each item
// tagged with a flat categories list.
const LegacyMetadataName = "metadata.json"

// LoadLegacy reads the flat metadata file. Any read or parse failure
// degrades to an empty catalog rather than an error.
func LoadLegacy(fsys fs.FS, log *logrus.Logger) *models.Catalog {
	if log == nil {
		log = logrus.StandardLogger()
	}
	empty := &models.Catalog{
		Categories: []*models.CategoryNode{},
		Items:      []*models.Item{},
		IsLegacy:   true,
	}

	data, err := fs.ReadFile(fsys, LegacyMetadataName)
	if err != nil {
		log.WithError(err).Warn("legacy metadata not readable, serving empty catalog")
		return empty
	}

	var meta struct {
		Items []*models.Item `json:"items"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		log.WithError(err).Warn("legacy metadata malformed, serving empty catalog")
		return empty
	}

	items := make([]*models.Item, 0, len(meta.Items))
	for _, item := range meta.Items {
		// A JSON null in the items array unmarshals to a nil entry.
		if item == nil {
			log.Warn("skipping null item entry in legacy metadata")
			continue
		}
		item.CategoryID = ""
		if item.Type == "" {
			item.Type = models.InferType(item.Path)
		}
		items = append(items, item)
	}
	return &models.Catalog{
		Categories: []*models.CategoryNode{},
		Items:      items,
		IsLegacy:   true,
	}
}
