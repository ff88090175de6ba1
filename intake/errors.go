package intake

import (
	"errors"
	"fmt"
)

var (
	// ErrFileTooLarge is returned when an upload exceeds the size ceiling
	ErrFileTooLarge = errors.New("file size exceeds the upload limit")
	// ErrUnsupportedFormat is returned for anything other than PDF, Word (.docx) or plain text
	ErrUnsupportedFormat = errors.New("unsupported file type, please upload PDF, Word (.docx), or TXT")
	// ErrEmptyInput is returned when neither a file nor non-blank text was supplied
	ErrEmptyInput = errors.New("resume text or file is required")
)

// ExtractionError reports a document that could not be converted to text
type ExtractionError struct {
	FileName string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not read this document: %s", e.FileName)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the text safe to show to the person who uploaded the file
func UserMessage(err error) string {
	var extractErr *ExtractionError
	switch {
	case errors.As(err, &extractErr):
		return "Could not read this document. Please ensure it is a valid .docx file."
	case errors.Is(err, ErrFileTooLarge):
		return "File size exceeds 5MB limit."
	case errors.Is(err, ErrUnsupportedFormat):
		return "Unsupported file type. Please upload PDF, Word (.docx), or TXT."
	case errors.Is(err, ErrEmptyInput):
		return "Please upload a CV or paste its text."
	default:
		return "Could not process the selected input."
	}
}
