// Package catalog holds the static, read-only job catalog that profiles are
// matched against. It is loaded once at startup and never changes afterwards.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/kusasa/backend/models"
)

// ErrEmptyCatalog is returned when a source yields no jobs
var ErrEmptyCatalog = errors.New("job catalog is empty")

// Source loads the job listings for a catalog
type Source interface {
	Load(ctx context.Context) ([]models.Job, error)
}

// Catalog is an immutable, ordered set of jobs indexed by ID
type Catalog struct {
	jobs  []models.Job
	index map[string]int
}

// New builds a catalog, normalizing job types and filling in missing
// application links. Job IDs must be non-empty and unique.
func New(jobs []models.Job) (*Catalog, error) {
	if len(jobs) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		jobs:  make([]models.Job, 0, len(jobs)),
		index: make(map[string]int, len(jobs)),
	}
	for i, job := range jobs {
		job.ID = strings.TrimSpace(job.ID)
		if job.ID == "" {
			return nil, fmt.Errorf("job at position %d has no id", i)
		}
		if _, dup := c.index[job.ID]; dup {
			return nil, fmt.Errorf("duplicate job id %q", job.ID)
		}

		job.Type = models.NormalizeJobType(string(job.Type))
		if len(job.ApplicationLinks) == 0 {
			job.ApplicationLinks = SearchLinks(job.Title, job.Location)
		}

		c.index[job.ID] = len(c.jobs)
		c.jobs = append(c.jobs, job)
	}
	return c, nil
}

// Load builds a catalog from a source
func Load(ctx context.Context, src Source) (*Catalog, error) {
	jobs, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}

	c, err := New(jobs)
	if err != nil {
		return nil, err
	}

	log.Printf("[Catalog] Loaded %d jobs", c.Len())
	return c, nil
}

// Jobs returns the listings in catalog order. The slice is a copy.
func (c *Catalog) Jobs() []models.Job {
	out := make([]models.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// Job looks up a listing by ID
func (c *Catalog) Job(id string) (models.Job, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Job{}, false
	}
	return c.jobs[i], true
}

// Has reports whether id is a catalog job
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of listings
func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Decode reads a catalog document: either a bare JSON array of jobs or an
// object with a "jobs" array.
func Decode(r io.Reader) ([]models.Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var jobs []models.Job
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
		return jobs, nil
	}

	var doc struct {
		Jobs []models.Job `json:"jobs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return doc.Jobs, nil
}
