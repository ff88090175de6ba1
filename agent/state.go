// Package agent owns the per-session view state machine and the two-step
// analysis pipeline that drives it.
package agent

import (
	"errors"

	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/models"
)

// View is the screen the session is on
type View string

// View constants
const (
	ViewHome     View = "home"
	ViewAnalyze  View = "analyze"
	ViewResults  View = "results"
	ViewEmployer View = "employer"
)

// Stage is the analysis pipeline position
type Stage string

// Stage constants
const (
	StageIdle     Stage = "idle"
	StageParsing  Stage = "parsing"
	StageMatching Stage = "matching"
	StageDone     Stage = "done"
	StageError    Stage = "error"
)

// Busy reports whether an inference call is in flight
func (s Stage) Busy() bool {
	return s == StageParsing || s == StageMatching
}

// Tab is the detail pane tab for the selected match
type Tab string

// Tab constants
const (
	TabOverview Tab = "overview"
	TabUpskill  Tab = "upskill"
)

// InputMode selects which input feeds the next run
type InputMode string

// InputMode constants
const (
	InputFile InputMode = "file"
	InputText InputMode = "text"
)

// State machine errors
var (
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrNoInput            = errors.New("no valid input for the selected mode")
	ErrUnknownMatch       = errors.New("match not found in results")
)

// AnalysisData is the result of a fully successful run. Matches are ranked.
type AnalysisData struct {
	Profile *models.CandidateProfile `json:"profile"`
	Matches []models.MatchResult     `json:"matches"`
}

// State is one session's complete UI state. Values are replaced, never
// mutated in place, so a State can be shared after it leaves the reducer.
type State struct {
	View          View              `json:"view"`
	Stage         Stage             `json:"stage"`
	InputMode     InputMode         `json:"inputMode"`
	Selection     *intake.Selection `json:"selection,omitempty"`
	PastedText    string            `json:"pastedText"`
	AnalysisData  *AnalysisData     `json:"analysisData,omitempty"`
	SelectedJobID string            `json:"selectedJobId,omitempty"`
	ActiveTab     Tab               `json:"activeTab"`
	Error         string            `json:"error,omitempty"`
	FailedAt      Stage             `json:"failedAt,omitempty"`

	// profile extracted in parsing, held until matching succeeds
	pending *models.CandidateProfile
}

// NewState returns the state of a fresh session
func NewState() State {
	return State{
		View:      ViewHome,
		Stage:     StageIdle,
		InputMode: InputFile,
		ActiveTab: TabOverview,
	}
}

// ActiveRequest returns the analysis request for the active input mode
func (s State) ActiveRequest() (models.AnalysisRequest, error) {
	switch s.InputMode {
	case InputFile:
		if s.Selection == nil {
			return models.AnalysisRequest{}, ErrNoInput
		}
		return s.Selection.Request, nil
	case InputText:
		req, err := intake.FromText(s.PastedText)
		if err != nil {
			return models.AnalysisRequest{}, ErrNoInput
		}
		return req, nil
	default:
		return models.AnalysisRequest{}, ErrNoInput
	}
}

// CanAnalyze reports whether the analyze action is enabled
func (s State) CanAnalyze() bool {
	if s.Stage != StageIdle && s.Stage != StageError {
		return false
	}
	_, err := s.ActiveRequest()
	return err == nil
}

// SelectedMatch returns the match shown in the detail pane
func (s State) SelectedMatch() (models.MatchResult, bool) {
	if s.AnalysisData == nil {
		return models.MatchResult{}, false
	}
	for _, m := range s.AnalysisData.Matches {
		if m.JobID == s.SelectedJobID {
			return m, true
		}
	}
	return models.MatchResult{}, false
}
