package agent

import (
	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/models"
)

// Event is a state machine input. The set is closed.
type Event interface {
	event()
}

// Started moves from the landing page to the analyze view
type Started struct{}

// HomeOpened returns to the landing page
type HomeOpened struct{}

// EmployerOpened shows the employer view
type EmployerOpened struct{}

// InputModeChanged toggles between file and pasted-text input
type InputModeChanged struct {
	Mode InputMode
}

// FileSelected records a normalized upload and switches to file mode
type FileSelected struct {
	Selection *intake.Selection
}

// FileCleared discards the current upload
type FileCleared struct{}

// TextChanged replaces the pasted text and switches to text mode
type TextChanged struct {
	Text string
}

// AnalysisStarted begins a run with the active input
type AnalysisStarted struct{}

// ProfileExtracted completes the parsing step
type ProfileExtracted struct {
	Profile *models.CandidateProfile
}

// MatchesReceived completes the matching step. Matches must already be ranked.
type MatchesReceived struct {
	Matches []models.MatchResult
}

// AnalysisFailed ends a run at the stage that failed
type AnalysisFailed struct {
	Stage   Stage
	Message string
}

// MatchSelected shows a match in the detail pane
type MatchSelected struct {
	JobID string
}

// TabSelected switches the detail pane tab
type TabSelected struct {
	Tab Tab
}

// Reset discards the results and any input, returning to a clean analyze view
type Reset struct{}

func (Started) event()          {}
func (HomeOpened) event()       {}
func (EmployerOpened) event()   {}
func (InputModeChanged) event() {}
func (FileSelected) event()     {}
func (FileCleared) event()      {}
func (TextChanged) event()      {}
func (AnalysisStarted) event()  {}
func (ProfileExtracted) event() {}
func (MatchesReceived) event()  {}
func (AnalysisFailed) event()   {}
func (MatchSelected) event()    {}
func (TabSelected) event()      {}
func (Reset) event()            {}
