package agent

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/gemini"
	"github.com/kusasa/backend/models"
)

// ProfileExtractor is the first inference step
type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, req models.AnalysisRequest) (*models.CandidateProfile, error)
}

// JobMatcher is the second inference step
type JobMatcher interface {
	MatchJobs(ctx context.Context, profile *models.CandidateProfile, jobs []models.Job) ([]models.MatchResult, error)
}

// StageFailure is returned by Analyze when a pipeline step fails
type StageFailure struct {
	Stage Stage
	Cause error
}

func (e *StageFailure) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Cause)
}

func (e *StageFailure) Unwrap() error {
	return e.Cause
}

// Message is the user-facing text recorded for this failure
func (e *StageFailure) Message() string {
	return FailureMessage(e.Stage, e.Cause)
}

// Analyzer runs the parse-then-match pipeline against a session controller
type Analyzer struct {
	extractor ProfileExtractor
	matcher   JobMatcher
	catalog   *catalog.Catalog
}

// NewAnalyzer creates an analyzer over the given catalog
func NewAnalyzer(extractor ProfileExtractor, matcher JobMatcher, cat *catalog.Catalog) *Analyzer {
	return &Analyzer{
		extractor: extractor,
		matcher:   matcher,
		catalog:   cat,
	}
}

// Catalog returns the job catalog used for matching
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// Analyze runs one analysis for the controller's active input. The two
// inference calls are strictly sequential. Step errors are returned as a
// *StageFailure after the controller has moved to the error stage.
func (a *Analyzer) Analyze(ctx context.Context, ctrl *Controller) error {
	st, err := ctrl.Dispatch(AnalysisStarted{})
	if err != nil {
		return err
	}

	req, err := st.ActiveRequest()
	if err != nil {
		return a.fail(ctrl, StageParsing, err)
	}

	log.Printf("[Analyzer] Extracting profile (mode=%s)", st.InputMode)
	profile, err := a.extractor.ExtractProfile(ctx, req)
	if err != nil {
		return a.fail(ctrl, StageParsing, err)
	}
	if _, err := ctrl.Dispatch(ProfileExtracted{Profile: profile}); err != nil {
		return err
	}

	jobs := a.catalog.Jobs()
	log.Printf("[Analyzer] Matching profile against %d jobs", len(jobs))
	matches, err := a.matcher.MatchJobs(ctx, profile, jobs)
	if err != nil {
		return a.fail(ctrl, StageMatching, err)
	}

	ranked := RankMatches(matches, a.catalog)
	if _, err := ctrl.Dispatch(MatchesReceived{Matches: ranked}); err != nil {
		return err
	}

	log.Printf("[Analyzer] Analysis complete: %d ranked matches (%d received)", len(ranked), len(matches))
	return nil
}

func (a *Analyzer) fail(ctrl *Controller, stage Stage, cause error) error {
	failure := &StageFailure{Stage: stage, Cause: cause}
	log.Printf("[Analyzer] %v", failure)
	if _, err := ctrl.Dispatch(AnalysisFailed{Stage: stage, Message: failure.Message()}); err != nil {
		log.Printf("[Analyzer] Could not record failure: %v", err)
	}
	return failure
}

// FailureMessage is the user-facing text for a failed run. Only the opaque
// inference messages are passed through.
func FailureMessage(stage Stage, err error) string {
	var inferenceErr *gemini.InferenceError
	if errors.As(err, &inferenceErr) {
		return inferenceErr.Error()
	}
	if stage == StageMatching {
		return gemini.ErrJobMatching.Error()
	}
	return gemini.ErrResumeAnalysis.Error()
}
