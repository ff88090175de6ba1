package gemini

import "context"

// Part is one piece of request content: either text or inline binary data
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
}

// IsBlob reports whether the part carries inline binary data
func (p Part) IsBlob() bool {
	return len(p.Data) > 0
}

// TextPart creates a text part
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart creates an inline binary part
func BlobPart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// Request is a single structured-output generation call
type Request struct {
	SystemInstruction string
	Parts             []Part
	Schema            *Schema
}

// Engine is the hosted structured-output model. Implementations return the
// raw JSON text of the first candidate.
type Engine interface {
	Generate(ctx context.Context, req *Request) (string, error)
	Close() error
}

// Generation parameters shared by every backend
const (
	temperature     = 0.2 // Lower temperature for more consistent outputs
	topP            = 0.8
	maxOutputTokens = 8192
)
