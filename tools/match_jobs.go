package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/models"
)

// MatchJobsTool scores a candidate profile against the whole job catalog
type MatchJobsTool struct {
	matcher agent.JobMatcher
	catalog *catalog.Catalog
}

// NewMatchJobsTool creates a new job matching tool
func NewMatchJobsTool(matcher agent.JobMatcher, cat *catalog.Catalog) *MatchJobsTool {
	return &MatchJobsTool{
		matcher: matcher,
		catalog: cat,
	}
}

func (t *MatchJobsTool) Name() string {
	return "match_jobs"
}

func (t *MatchJobsTool) Description() string {
	return `Score a candidate profile against every job in the catalog using AI.
Input is a profile as returned by parse_resume.
Returns matches ranked by score (0-100) with missing skills, reasoning and recommended upskilling courses.`
}

func (t *MatchJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"profile": map[string]interface{}{
				"type":        "object",
				"description": "Candidate profile with summary, yearsExperience, extractedSkills and suggestedRoles",
			},
		},
		"required": []string{"profile"},
	}
}

func (t *MatchJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var matchInput models.MatchJobsRequest
	if err := json.Unmarshal(input, &matchInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	matches, err := t.matcher.MatchJobs(ctx, &matchInput.Profile, t.catalog.Jobs())
	if err != nil {
		return NewErrorResult(err.Error())
	}

	return NewSuccessResult(models.MatchJobsResponse{
		Matches: agent.RankMatches(matches, t.catalog),
	})
}
