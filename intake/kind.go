package intake

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind is the closed set of ways an uploaded document can be handled
type Kind int

const (
	// KindUnsupported documents are rejected before any inference call
	KindUnsupported Kind = iota
	// KindNativeBinary documents are sent inline to the engine (PDF)
	KindNativeBinary
	// KindConvertibleDocument documents are converted to text locally (DOCX)
	KindConvertibleDocument
	// KindPlainText documents are read verbatim
	KindPlainText
)

// Supported media types
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

func (k Kind) String() string {
	switch k {
	case KindNativeBinary:
		return "native_binary"
	case KindConvertibleDocument:
		return "convertible_document"
	case KindPlainText:
		return "plain_text"
	default:
		return "unsupported"
	}
}

// Classify resolves a document's kind from its declared media type. The file
// extension is only consulted when the declared type is missing or generic.
// It never looks at content.
func Classify(mimeType, filename string) Kind {
	declared := baseMIME(mimeType)
	if !isGeneric(declared) {
		switch declared {
		case MIMEPDF:
			return KindNativeBinary
		case MIMEDocx:
			return KindConvertibleDocument
		case MIMEText:
			return KindPlainText
		default:
			return KindUnsupported
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindNativeBinary
	case ".docx":
		return KindConvertibleDocument
	case ".txt":
		return KindPlainText
	default:
		return KindUnsupported
	}
}

// ClassifyContent is Classify with content checks for uploads whose declared
// type is missing or generic (browsers send application/octet-stream for files
// they do not recognise). A kind taken from the extension must agree with the
// content; without a known extension only PDF and DOCX are sniffed.
func ClassifyContent(mimeType, filename string, data []byte) (Kind, string) {
	declared := baseMIME(mimeType)
	if !isGeneric(declared) {
		kind := Classify(declared, "")
		return kind, canonicalMIME(kind, declared)
	}

	kind := Classify("", filename)
	if kind != KindUnsupported {
		if !sniffedAs(data, contentFamily(kind)) {
			return KindUnsupported, declared
		}
		return kind, canonicalMIME(kind, declared)
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is(MIMEPDF):
		return KindNativeBinary, MIMEPDF
	case detected.Is(MIMEDocx):
		return KindConvertibleDocument, MIMEDocx
	}
	return KindUnsupported, declared
}

// contentFamily is the detected type a kind's content must descend from.
// DOCX only has to be a zip so damaged documents reach the extractor.
func contentFamily(kind Kind) string {
	switch kind {
	case KindNativeBinary:
		return MIMEPDF
	case KindConvertibleDocument:
		return "application/zip"
	default:
		return MIMEText
	}
}

func sniffedAs(data []byte, want string) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is(want) {
			return true
		}
	}
	return false
}

func canonicalMIME(kind Kind, declared string) string {
	switch kind {
	case KindNativeBinary:
		return MIMEPDF
	case KindConvertibleDocument:
		return MIMEDocx
	case KindPlainText:
		return MIMEText
	default:
		return declared
	}
}

func isGeneric(mimeType string) bool {
	return mimeType == "" || mimeType == "application/octet-stream"
}

func baseMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
