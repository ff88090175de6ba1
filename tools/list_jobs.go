package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/models"
)

// ListJobsTool returns the job catalog
type ListJobsTool struct {
	catalog *catalog.Catalog
}

// NewListJobsTool creates a new catalog listing tool
func NewListJobsTool(cat *catalog.Catalog) *ListJobsTool {
	return &ListJobsTool{catalog: cat}
}

func (t *ListJobsTool) Name() string {
	return "list_jobs"
}

func (t *ListJobsTool) Description() string {
	return `List the jobs available for matching.
Optionally filter by work type (Remote, Hybrid, On-site).`
}

func (t *ListJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Only return jobs of this work type",
				"enum":        []string{string(models.JobTypeRemote), string(models.JobTypeHybrid), string(models.JobTypeOnSite)},
			},
		},
	}
}

// ListJobsInput represents the input for catalog listing
type ListJobsInput struct {
	Type string `json:"type,omitempty"`
}

func (t *ListJobsTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var listInput ListJobsInput
	if len(input) > 0 && strings.TrimSpace(string(input)) != "null" {
		if err := json.Unmarshal(input, &listInput); err != nil {
			return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
		}
	}

	jobs := t.catalog.Jobs()
	if listInput.Type != "" {
		want := models.NormalizeJobType(listInput.Type)
		filtered := jobs[:0]
		for _, job := range jobs {
			if job.Type == want {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	return NewSuccessResult(models.JobsResponse{Jobs: jobs, Total: len(jobs)})
}
