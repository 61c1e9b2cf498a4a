// Package catalog builds the kiosk's category tree and item list from the
// content directory. Builds are fail-soft: unreadable directories and
// malformed definition files are logged and skipped, never fatal. The worst
// case is an empty catalog.
package catalog

import (
	"context"
	"encoding/json"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mhorak/kiosek/pkg/models"
)

const (
	// ConfigDirName is the hierarchical configuration root inside the
	// content directory. Its absence switches the loader to legacy mode.
	ConfigDirName = "categories"

	// DescriptorName is the per-directory descriptor carrying the
	// directory's own title/icon/filter/description.
	DescriptorName = "metadata.json"

	// scanConcurrency bounds the subdirectory fan-out.
	scanConcurrency = 8
)

// Builder turns a content filesystem into a Catalog. The filesystem is
// injected so builds are testable against an in-memory fake.
type Builder struct {
	fsys fs.FS
	log  *logrus.Logger
}

// NewBuilder creates a builder over the given content filesystem.
func NewBuilder(fsys fs.FS, log *logrus.Logger) *Builder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{fsys: fsys, log: log}
}

// Load probes for the hierarchical configuration root and builds from it,
// falling back to the legacy flat metadata file when it does not exist.
func Load(ctx context.Context, fsys fs.FS, log *logrus.Logger) *models.Catalog {
	if info, err := fs.Stat(fsys, ConfigDirName); err == nil && info.IsDir() {
		return NewBuilder(fsys, log).Build(ctx)
	}
	return LoadLegacy(fsys, log)
}

// Build scans the configuration tree and returns the resulting catalog.
// Repeated builds over an unchanged filesystem yield equal catalogs.
func (b *Builder) Build(ctx context.Context) *models.Catalog {
	categories, items := b.scanDir(ctx, ConfigDirName, nil)
	if categories == nil {
		categories = []*models.CategoryNode{}
	}
	if items == nil {
		items = []*models.Item{}
	}
	return &models.Catalog{Categories: categories, Items: items}
}

// descriptor mirrors a directory's metadata.json.
type descriptor struct {
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Filter      *bool  `json:"filter"`
}

// itemBatch mirrors an item-definition file.
type itemBatch struct {
	Items []*models.Item `json:"items"`
}

// scanDir reads one configuration directory: its item-definition batches,
// its subdirectory category nodes, and everything below them. categoryPath
// is the path of the directory itself (nil at the configuration root).
func (b *Builder) scanDir(ctx context.Context, dir string, categoryPath []string) ([]*models.CategoryNode, []*models.Item) {
	entries, err := fs.ReadDir(b.fsys, dir)
	if err != nil {
		b.log.WithError(err).WithField("dir", dir).Warn("skipping unreadable configuration directory")
		return nil, nil
	}

	var subdirs, batchFiles []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		if strings.HasSuffix(name, ".json") && name != DescriptorName {
			batchFiles = append(batchFiles, name)
		}
	}
	// Directory listing order is not guaranteed; sort for determinism.
	// Sibling categories follow Czech collation, matching the exposition's
	// display order. Collators are not safe for concurrent use, so each
	// scan gets its own.
	sort.Strings(batchFiles)
	collate.New(language.Czech).SortStrings(subdirs)

	var items []*models.Item
	for _, name := range batchFiles {
		items = append(items, b.readBatch(path.Join(dir, name), categoryPath)...)
	}

	// Independent subdirectories have no data dependency on each other;
	// fan out and merge in sorted order.
	type subtree struct {
		node  *models.CategoryNode
		items []*models.Item
	}
	results := make([]subtree, len(subdirs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanConcurrency)
	for i, name := range subdirs {
		g.Go(func() error {
			childPath := append(append([]string(nil), categoryPath...), name)
			childDir := path.Join(dir, name)
			node := b.readDescriptor(childDir, name, childPath)
			node.Subcategories, results[i].items = b.scanDir(ctx, childDir, childPath)
			node.ItemCount = len(results[i].items)
			results[i].node = node
			return nil
		})
	}
	_ = g.Wait()

	categories := make([]*models.CategoryNode, 0, len(subdirs))
	for _, r := range results {
		categories = append(categories, r.node)
		items = append(items, r.items...)
	}
	return categories, items
}

// readDescriptor loads a directory's metadata.json, synthesizing a default
// node (directory name, folder icon) when it is missing or malformed.
func (b *Builder) readDescriptor(dir, id string, categoryPath []string) *models.CategoryNode {
	node := &models.CategoryNode{
		ID:     id,
		Path:   categoryPath,
		Title:  id,
		Icon:   models.FolderIcon,
		Filter: true,
	}

	data, err := fs.ReadFile(b.fsys, path.Join(dir, DescriptorName))
	if err != nil {
		return node
	}
	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		b.log.WithError(err).WithField("dir", dir).Warn("skipping malformed category descriptor")
		return node
	}
	if d.Title != "" {
		node.Title = d.Title
	}
	if d.Icon != "" {
		node.Icon = d.Icon
	}
	node.Description = d.Description
	if d.Filter != nil {
		node.Filter = *d.Filter
	}
	return node
}

// readBatch loads one item-definition file and stamps every item with the
// directory's category path. Duplicate item paths across files are kept as
// distinct entries.
func (b *Builder) readBatch(file string, categoryPath []string) []*models.Item {
	data, err := fs.ReadFile(b.fsys, file)
	if err != nil {
		b.log.WithError(err).WithField("file", file).Warn("skipping unreadable item file")
		return nil
	}
	var batch itemBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		b.log.WithError(err).WithField("file", file).Warn("skipping malformed item file")
		return nil
	}

	categoryID := strings.Join(categoryPath, "/")
	items := make([]*models.Item, 0, len(batch.Items))
	for _, item := range batch.Items {
		// A JSON null in the items array unmarshals to a nil entry.
		if item == nil {
			b.log.WithField("file", file).Warn("skipping null item entry")
			continue
		}
		item.CategoryID = categoryID
		item.Categories = nil
		item.Type = models.InferType(item.Path)
		items = append(items, item)
	}
	return items
}
