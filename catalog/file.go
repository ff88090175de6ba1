package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/kusasa/backend/models"
)

// FileSource reads a catalog from a local JSON file
type FileSource struct {
	Path string
}

// Load reads and decodes the file
func (s FileSource) Load(context.Context) ([]models.Job, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
