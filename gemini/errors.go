package gemini

import "errors"

// Stage names the inference call that failed
type Stage string

// Stage constants
const (
	StageProfile  Stage = "profile_extraction"
	StageMatching Stage = "job_matching"
)

// Opaque failures surfaced to callers. Causes are logged, never shown.
var (
	ErrResumeAnalysis = errors.New("Failed to analyze resume. Please try again.")
	ErrJobMatching    = errors.New("Failed to match jobs.")
)

// InferenceError wraps any failure of an inference call. Its message is the
// generic user-facing one for the stage; the cause stays reachable for logs.
type InferenceError struct {
	Stage Stage
	Cause error
}

func (e *InferenceError) Error() string {
	return e.sentinel().Error()
}

func (e *InferenceError) Unwrap() error {
	return e.Cause
}

// Is matches the stage sentinel so callers can use errors.Is
func (e *InferenceError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *InferenceError) sentinel() error {
	if e.Stage == StageMatching {
		return ErrJobMatching
	}
	return ErrResumeAnalysis
}
