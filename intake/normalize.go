// Package intake turns uploaded resumes and pasted text into the normalized
// request payload consumed by profile extraction.
package intake

import (
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/kusasa/backend/models"
)

// TextExtractor converts a word-processing document into plain text
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// Upload is a user-supplied file
type Upload struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Selection is an upload resolved once, at selection time, into its request payload
type Selection struct {
	FileName string                 `json:"fileName"`
	Kind     Kind                   `json:"-"`
	MIMEType string                 `json:"mimeType"`
	Size     int                    `json:"size"`
	Request  models.AnalysisRequest `json:"-"`
}

// Normalizer builds analysis requests from uploads and pasted text
type Normalizer struct {
	maxBytes        int64
	extractor       TextExtractor
	includeFileName bool
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithExtractor replaces the DOCX text extractor
func WithExtractor(extractor TextExtractor) Option {
	return func(n *Normalizer) {
		n.extractor = extractor
	}
}

// WithFileNamePrefix toggles the "FileName: <name>" header on converted text
func WithFileNamePrefix(enabled bool) Option {
	return func(n *Normalizer) {
		n.includeFileName = enabled
	}
}

// NewNormalizer creates a normalizer with the given size ceiling
func NewNormalizer(maxBytes int64, opts ...Option) *Normalizer {
	n := &Normalizer{
		maxBytes:        maxBytes,
		extractor:       NewDocxExtractor(),
		includeFileName: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// MaxBytes returns the upload ceiling
func (n *Normalizer) MaxBytes() int64 {
	return n.maxBytes
}

// Normalize validates an upload and resolves it into exactly one of
// {text} or {file}. Nothing here talks to the inference engine.
func (n *Normalizer) Normalize(upload Upload) (*Selection, error) {
	if int64(len(upload.Data)) > n.maxBytes {
		return nil, ErrFileTooLarge
	}

	kind, mimeType := ClassifyContent(upload.MIMEType, upload.Name, upload.Data)

	selection := &Selection{
		FileName: upload.Name,
		Kind:     kind,
		MIMEType: mimeType,
		Size:     len(upload.Data),
	}

	switch kind {
	case KindNativeBinary:
		selection.Request = models.AnalysisRequest{
			File: &models.InlineFile{
				Data:     base64.StdEncoding.EncodeToString(upload.Data),
				MIMEType: mimeType,
			},
		}

	case KindConvertibleDocument:
		text, err := n.extractor.ExtractText(upload.Data)
		if err != nil {
			log.Printf("[Intake] Failed to extract text from %s: %v", upload.Name, err)
			return nil, &ExtractionError{FileName: upload.Name, Cause: err}
		}
		selection.Request = models.AnalysisRequest{Text: n.withFileName(upload.Name, text)}

	case KindPlainText:
		selection.Request = models.AnalysisRequest{Text: n.withFileName(upload.Name, string(upload.Data))}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, describe(upload))
	}

	log.Printf("[Intake] Selected %s (%s, %d bytes)", upload.Name, kind, len(upload.Data))
	return selection, nil
}

// FromText builds a request from pasted text. No file-type branching applies.
func FromText(text string) (models.AnalysisRequest, error) {
	if strings.TrimSpace(text) == "" {
		return models.AnalysisRequest{}, ErrEmptyInput
	}
	return models.AnalysisRequest{Text: text}, nil
}

func (n *Normalizer) withFileName(name, text string) string {
	if !n.includeFileName {
		return text
	}
	return fmt.Sprintf("FileName: %s\n\n%s", name, text)
}

func describe(upload Upload) string {
	if upload.MIMEType != "" {
		return upload.MIMEType
	}
	return upload.Name
}
