package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kusasa/backend/config"
)

func TestLoadCatalog_Builtin(t *testing.T) {
	c, err := LoadCatalog(context.Background(), &config.Config{CatalogSource: config.CatalogBuiltin})
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jobs": [{"id": "x", "title": "Electrician", "location": "Gqeberha, Eastern Cape"}]}`), 0o600))

	c, err := LoadCatalog(context.Background(), &config.Config{CatalogSource: config.CatalogFile, CatalogPath: path})
	require.NoError(t, err)
	job, ok := c.Job("x")
	require.True(t, ok)
	assert.Equal(t, "Electrician", job.Title)
}

func TestNewCatalogSource_Unknown(t *testing.T) {
	_, err := NewCatalogSource(context.Background(), &config.Config{CatalogSource: "s3"})
	assert.ErrorContains(t, err, "unknown catalog source")
}

func TestCloudStorageCatalog_URL(t *testing.T) {
	c := &CloudStorageCatalog{bucketName: "kusasa-data", objectName: "catalog/jobs.json"}
	assert.Equal(t, "https://storage.googleapis.com/kusasa-data/catalog/jobs.json", c.URL())
}
