package storage

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"

	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/config"
	"github.com/kusasa/backend/models"
)

// CloudStorageCatalog reads a JSON catalog document from a Cloud Storage object
type CloudStorageCatalog struct {
	client     *storage.Client
	bucketName string
	objectName string
}

// NewCloudStorageCatalog creates a new Cloud Storage catalog source
func NewCloudStorageCatalog(ctx context.Context, cfg *config.Config) (*CloudStorageCatalog, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageCatalog{
		client:     client,
		bucketName: cfg.CatalogBucket,
		objectName: cfg.CatalogObject,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageCatalog) Close() error {
	return c.client.Close()
}

// URL returns the object's public URL
func (c *CloudStorageCatalog) URL() string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, c.objectName)
}

// Load downloads and decodes the catalog object
func (c *CloudStorageCatalog) Load(ctx context.Context) ([]models.Job, error) {
	rc, err := c.client.Bucket(c.bucketName).Object(c.objectName).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("catalog object %s not found: %w", c.URL(), err)
		}
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	jobs, err := catalog.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", c.URL(), err)
	}
	return jobs, nil
}
