package browser

import (
	"context"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/mhorak/kiosek/pkg/catalog"
	"github.com/mhorak/kiosek/pkg/client"
	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/prefs"
)

// APISource feeds the browser from a running kiosk server.
type APISource struct {
	Client *client.Client
}

func (s *APISource) Load(ctx context.Context) (*models.Catalog, error) {
	// Both collections are fetched before the state becomes navigable.
	categories, isLegacy, err := s.Client.Categories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.Client.Items(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return &models.Catalog{
		Categories: categories,
		Items:      items,
		IsLegacy:   isLegacy,
	}, nil
}

func (s *APISource) Text(ctx context.Context, path string) (string, error) {
	return s.Client.Text(ctx, path)
}

func (s *APISource) TextSize(ctx context.Context) (string, error) {
	return s.Client.TextSize(ctx)
}

func (s *APISource) SetTextSize(ctx context.Context, size string) error {
	return s.Client.SetTextSize(ctx, size)
}

// LocalSource feeds the browser directly from the content directory,
// without a server.
type LocalSource struct {
	Content fs.FS
	Prefs   *prefs.Store
	Log     *logrus.Logger
}

func (s *LocalSource) Load(ctx context.Context) (*models.Catalog, error) {
	return catalog.Load(ctx, s.Content, s.Log), nil
}

func (s *LocalSource) Text(_ context.Context, path string) (string, error) {
	data, err := fs.ReadFile(s.Content, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *LocalSource) TextSize(context.Context) (string, error) {
	if s.Prefs == nil {
		return prefs.TextSizeMedium, nil
	}
	return s.Prefs.TextSize(), nil
}

func (s *LocalSource) SetTextSize(_ context.Context, size string) error {
	if s.Prefs == nil {
		return nil
	}
	return s.Prefs.SetTextSize(size)
}
