package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/models"
)

// JobsHandler serves the job catalog and stateless matching
type JobsHandler struct {
	catalog *catalog.Catalog
	matcher agent.JobMatcher
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(cat *catalog.Catalog, matcher agent.JobMatcher) *JobsHandler {
	return &JobsHandler{
		catalog: cat,
		matcher: matcher,
	}
}

// ListJobs returns the catalog
// @Summary List jobs
// @Description List every job in the catalog, optionally filtered by type
// @Tags Jobs
// @Produce json
// @Param type query string false "Job type (Remote, Hybrid, On-site)"
// @Success 200 {object} models.JobsResponse "Job catalog"
// @Router /jobs [get]
func (h *JobsHandler) ListJobs(c *gin.Context) {
	jobs := h.catalog.Jobs()

	if raw := c.Query("type"); raw != "" {
		want := models.NormalizeJobType(raw)
		filtered := make([]models.Job, 0, len(jobs))
		for _, job := range jobs {
			if job.Type == want {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	c.JSON(http.StatusOK, models.JobsResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

// GetJob returns one catalog job
// @Summary Get job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job "Job"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobsHandler) GetJob(c *gin.Context) {
	job, ok := h.catalog.Job(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Job not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, job)
}

// MatchJobs scores a profile against the catalog
// @Summary Match jobs
// @Description Score a candidate profile against every catalog job. Matches for unknown jobs are dropped and the rest are ranked by score.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body models.MatchJobsRequest true "Candidate profile"
// @Success 200 {object} models.MatchJobsResponse "Ranked matches"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 502 {object} models.ErrorResponse "Matching failed"
// @Router /match-jobs [post]
func (h *JobsHandler) MatchJobs(c *gin.Context) {
	var req models.MatchJobsRequest
	if !bindJSON(c, &req) {
		return
	}

	matches, err := h.matcher.MatchJobs(c.Request.Context(), &req.Profile, h.catalog.Jobs())
	if err != nil {
		log.Printf("[JobsHandler] MatchJobs error: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: agent.FailureMessage(agent.StageMatching, err),
			Code:  http.StatusBadGateway,
		})
		return
	}

	c.JSON(http.StatusOK, models.MatchJobsResponse{
		Matches: agent.RankMatches(matches, h.catalog),
	})
}
