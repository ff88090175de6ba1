package storage

import (
	"context"
	"fmt"

	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/config"
)

// CatalogSource is a catalog source that may hold a client connection
type CatalogSource interface {
	catalog.Source
	Close() error
}

type nopCloser struct {
	catalog.Source
}

func (nopCloser) Close() error { return nil }

// NewCatalogSource returns the source selected by CATALOG_SOURCE
func NewCatalogSource(ctx context.Context, cfg *config.Config) (CatalogSource, error) {
	switch cfg.CatalogSource {
	case config.CatalogBuiltin, "":
		return nopCloser{catalog.BuiltinSource{}}, nil
	case config.CatalogFile:
		return nopCloser{catalog.FileSource{Path: cfg.CatalogPath}}, nil
	case config.CatalogFirestore:
		return NewFirestoreCatalog(ctx, cfg)
	case config.CatalogGCS:
		return NewCloudStorageCatalog(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

// LoadCatalog opens the configured source, loads the catalog and releases the source
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	src, err := NewCatalogSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return catalog.Load(ctx, src)
}
