package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/models"
)

// ParseResumeTool extracts a candidate profile from resume text or a document
type ParseResumeTool struct {
	extractor  agent.ProfileExtractor
	normalizer *intake.Normalizer
}

// NewParseResumeTool creates a new resume parsing tool
func NewParseResumeTool(extractor agent.ProfileExtractor, normalizer *intake.Normalizer) *ParseResumeTool {
	return &ParseResumeTool{
		extractor:  extractor,
		normalizer: normalizer,
	}
}

func (t *ParseResumeTool) Name() string {
	return "parse_resume"
}

func (t *ParseResumeTool) Description() string {
	return `Extract a structured candidate profile from a CV/resume using AI.
Provide either cv_text, or file_data (base64) with file_name and mime_type for PDF, Word (.docx) or TXT files.
Returns a summary, years of experience, skills with proficiency levels and suggested roles.`
}

func (t *ParseResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"cv_text": map[string]interface{}{
				"type":        "string",
				"description": "The CV/resume text content to parse",
			},
			"file_data": map[string]interface{}{
				"type":        "string",
				"description": "Base64 encoded CV document",
			},
			"file_name": map[string]interface{}{
				"type":        "string",
				"description": "Original file name, used to detect the format",
			},
			"mime_type": map[string]interface{}{
				"type":        "string",
				"description": "Declared media type of the document",
			},
		},
	}
}

// ParseResumeInput represents the input for resume parsing
type ParseResumeInput struct {
	CVText   string `json:"cv_text,omitempty"`
	FileData string `json:"file_data,omitempty"`
	FileName string `json:"file_name,omitempty"`
	MIMEType string `json:"mime_type,omitempty"`
}

func (t *ParseResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var parseInput ParseResumeInput
	if err := json.Unmarshal(input, &parseInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	req, err := t.request(parseInput)
	if err != nil {
		return NewErrorResult(intake.UserMessage(err))
	}

	profile, err := t.extractor.ExtractProfile(ctx, req)
	if err != nil {
		return NewErrorResult(err.Error())
	}

	return NewSuccessResult(models.CVParseResponse{Profile: *profile})
}

func (t *ParseResumeTool) request(input ParseResumeInput) (models.AnalysisRequest, error) {
	if input.FileData == "" {
		return intake.FromText(input.CVText)
	}

	data, err := base64.StdEncoding.DecodeString(input.FileData)
	if err != nil {
		return models.AnalysisRequest{}, &intake.ExtractionError{FileName: input.FileName, Cause: err}
	}

	selection, err := t.normalizer.Normalize(intake.Upload{
		Name:     input.FileName,
		MIMEType: input.MIMEType,
		Data:     data,
	})
	if err != nil {
		return models.AnalysisRequest{}, err
	}
	return selection.Request, nil
}
