package agent

import (
	"fmt"
	"strings"
)

// Reduce applies an event to a state and returns the next state. It never
// mutates its input. Rejected events return the unchanged state and an error.
func Reduce(s State, ev Event) (State, error) {
	switch e := ev.(type) {
	case Started:
		if s.Stage == StageDone {
			s.View = ViewResults
		} else {
			s.View = ViewAnalyze
		}
		return s, nil

	case HomeOpened:
		s.View = ViewHome
		return s, nil

	case EmployerOpened:
		s.View = ViewEmployer
		return s, nil

	case InputModeChanged:
		if err := editable(s, ev); err != nil {
			return s, err
		}
		if e.Mode != InputFile && e.Mode != InputText {
			return s, fmt.Errorf("%w: unknown input mode %q", ErrInvalidTransition, e.Mode)
		}
		s.InputMode = e.Mode
		return clearFailure(s), nil

	case FileSelected:
		if err := editable(s, ev); err != nil {
			return s, err
		}
		if e.Selection == nil {
			return s, fmt.Errorf("%w: empty file selection", ErrInvalidTransition)
		}
		s.Selection = e.Selection
		s.InputMode = InputFile
		return clearFailure(s), nil

	case FileCleared:
		if err := editable(s, ev); err != nil {
			return s, err
		}
		s.Selection = nil
		return clearFailure(s), nil

	case TextChanged:
		if err := editable(s, ev); err != nil {
			return s, err
		}
		s.PastedText = e.Text
		s.InputMode = InputText
		return clearFailure(s), nil

	case AnalysisStarted:
		if s.Stage.Busy() {
			return s, ErrAnalysisInProgress
		}
		if s.Stage == StageDone {
			return s, invalid(s, ev)
		}
		if _, err := s.ActiveRequest(); err != nil {
			return s, err
		}
		s = clearFailure(s)
		s.Stage = StageParsing
		s.pending = nil
		return s, nil

	case ProfileExtracted:
		if s.Stage != StageParsing || e.Profile == nil {
			return s, invalid(s, ev)
		}
		s.Stage = StageMatching
		s.pending = e.Profile
		return s, nil

	case MatchesReceived:
		if s.Stage != StageMatching || s.pending == nil {
			return s, invalid(s, ev)
		}
		s.AnalysisData = &AnalysisData{Profile: s.pending, Matches: e.Matches}
		s.pending = nil
		s.Stage = StageDone
		s.View = ViewResults
		s.ActiveTab = TabOverview
		s.SelectedJobID = ""
		if len(e.Matches) > 0 {
			s.SelectedJobID = e.Matches[0].JobID
		}
		return s, nil

	case AnalysisFailed:
		if !s.Stage.Busy() {
			return s, invalid(s, ev)
		}
		s.FailedAt = e.Stage
		if s.FailedAt == "" {
			s.FailedAt = s.Stage
		}
		s.Stage = StageError
		s.Error = e.Message
		s.pending = nil
		return s, nil

	case MatchSelected:
		if s.Stage != StageDone {
			return s, invalid(s, ev)
		}
		next := s
		next.SelectedJobID = e.JobID
		if _, ok := next.SelectedMatch(); !ok {
			return s, fmt.Errorf("%w: %s", ErrUnknownMatch, e.JobID)
		}
		next.ActiveTab = TabOverview
		return next, nil

	case TabSelected:
		if s.Stage != StageDone {
			return s, invalid(s, ev)
		}
		if e.Tab != TabOverview && e.Tab != TabUpskill {
			return s, fmt.Errorf("%w: unknown tab %q", ErrInvalidTransition, e.Tab)
		}
		s.ActiveTab = e.Tab
		return s, nil

	case Reset:
		if s.Stage.Busy() {
			return s, ErrAnalysisInProgress
		}
		next := NewState()
		next.View = ViewAnalyze
		return next, nil

	default:
		return s, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, ev)
	}
}

// editable rejects input changes while a run is active or results are shown
func editable(s State, ev Event) error {
	if s.Stage.Busy() {
		return ErrAnalysisInProgress
	}
	if s.Stage == StageDone {
		return invalid(s, ev)
	}
	return nil
}

// clearFailure returns an error state to idle once the user acts on it
func clearFailure(s State) State {
	if s.Stage == StageError {
		s.Stage = StageIdle
	}
	s.Error = ""
	s.FailedAt = ""
	return s
}

func invalid(s State, ev Event) error {
	name := strings.TrimPrefix(fmt.Sprintf("%T", ev), "agent.")
	return fmt.Errorf("%w: %s during %s", ErrInvalidTransition, name, s.Stage)
}
