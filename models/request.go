package models

import (
	"encoding/base64"
	"errors"
)

// InlineFile carries a document the inference engine can ingest natively
type InlineFile struct {
	Data     string `json:"data"` // base64 encoded bytes
	MIMEType string `json:"mimeType" example:"application/pdf"`
}

// Bytes decodes the base64 payload
func (f *InlineFile) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(f.Data)
}

// AnalysisRequest is the normalized payload for profile extraction.
// Exactly one of Text or File is set.
type AnalysisRequest struct {
	Text string      `json:"text,omitempty"`
	File *InlineFile `json:"file,omitempty"`
}

// Validate checks that exactly one input shape is present
func (r *AnalysisRequest) Validate() error {
	hasText := r.Text != ""
	hasFile := r.File != nil
	switch {
	case hasText && hasFile:
		return errors.New("analysis request carries both text and file")
	case !hasText && !hasFile:
		return errors.New("analysis request is empty")
	case hasFile && (r.File.Data == "" || r.File.MIMEType == ""):
		return errors.New("inline file requires data and mime type")
	}
	return nil
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"text is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Jobs      int    `json:"jobs" example:"5"`
}

// CVParseRequest represents a stateless request to extract a profile from pasted text
// @Description CV parsing request
type CVParseRequest struct {
	CVText string `json:"cv_text" binding:"required" example:"5 years React and Node.js experience..."`
}

// CVParseResponse represents the extracted profile
// @Description Parsed CV profile information
type CVParseResponse struct {
	Profile CandidateProfile `json:"profile"`
}

// MatchJobsRequest asks for the catalog to be scored against a profile
// @Description Stateless job matching request
type MatchJobsRequest struct {
	Profile CandidateProfile `json:"profile" binding:"required"`
}

// MatchJobsResponse returns catalog matches ranked by score
// @Description Stateless job matching response
type MatchJobsResponse struct {
	Matches []MatchResult `json:"matches"`
}

// JobsResponse lists the catalog
// @Description Job catalog listing
type JobsResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total" example:"5"`
}

// InputModeRequest switches between file and pasted-text input
// @Description Input mode toggle
type InputModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=file text" example:"text"`
}

// TextInputRequest replaces the pasted resume text
// @Description Pasted resume text
type TextInputRequest struct {
	Text string `json:"text" example:"5 years React and Node.js experience..."`
}

// SelectMatchRequest picks the match shown in the detail pane
// @Description Match selection
type SelectMatchRequest struct {
	JobID string `json:"jobId" binding:"required" example:"1"`
}

// SelectTabRequest picks the detail pane tab
// @Description Tab selection
type SelectTabRequest struct {
	Tab string `json:"tab" binding:"required,oneof=overview upskill" example:"upskill"`
}
