package intake

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText([]byte) (string, error) {
	return s.text, s.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		filename string
		expected Kind
	}{
		{name: "pdf by type", mimeType: "application/pdf", filename: "cv", expected: KindNativeBinary},
		{name: "pdf by extension", filename: "CV.PDF", expected: KindNativeBinary},
		{name: "docx by type", mimeType: MIMEDocx, filename: "cv", expected: KindConvertibleDocument},
		{name: "docx by extension", mimeType: "application/octet-stream", filename: "cv.docx", expected: KindConvertibleDocument},
		{name: "text with charset", mimeType: "text/plain; charset=utf-8", filename: "cv", expected: KindPlainText},
		{name: "text by extension", filename: "cv.txt", expected: KindPlainText},
		{name: "legacy word", mimeType: "application/msword", filename: "cv.doc", expected: KindUnsupported},
		{name: "image", mimeType: "image/png", filename: "cv.png", expected: KindUnsupported},
		{name: "explicit type beats extension", mimeType: "image/png", filename: "cv.pdf", expected: KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.mimeType, tt.filename))
		})
	}
}

func TestNormalize_PDFPassesThroughInline(t *testing.T) {
	data := []byte("%PDF-1.4 fake pdf body")
	n := NewNormalizer(1024)

	sel, err := n.Normalize(Upload{Name: "cv.pdf", MIMEType: "application/pdf", Data: data})
	require.NoError(t, err)

	assert.Equal(t, KindNativeBinary, sel.Kind)
	assert.Empty(t, sel.Request.Text)
	require.NotNil(t, sel.Request.File)
	assert.Equal(t, "application/pdf", sel.Request.File.MIMEType)

	decoded, err := base64.StdEncoding.DecodeString(sel.Request.File.Data)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
	assert.NoError(t, sel.Request.Validate())
}

func TestNormalize_PlainTextGetsFileNamePrefix(t *testing.T) {
	n := NewNormalizer(1024)

	sel, err := n.Normalize(Upload{Name: "cv.txt", MIMEType: "text/plain", Data: []byte("Go developer")})
	require.NoError(t, err)

	assert.Nil(t, sel.Request.File)
	assert.Equal(t, "FileName: cv.txt\n\nGo developer", sel.Request.Text)
}

func TestNormalize_PrefixCanBeDisabled(t *testing.T) {
	n := NewNormalizer(1024, WithFileNamePrefix(false))

	sel, err := n.Normalize(Upload{Name: "cv.txt", MIMEType: "text/plain", Data: []byte("Go developer")})
	require.NoError(t, err)
	assert.Equal(t, "Go developer", sel.Request.Text)
}

func TestNormalize_DocxUsesExtractor(t *testing.T) {
	n := NewNormalizer(1024, WithExtractor(&stubExtractor{text: "Extracted body"}))

	sel, err := n.Normalize(Upload{Name: "cv.docx", MIMEType: MIMEDocx, Data: []byte("PK..")})
	require.NoError(t, err)

	assert.Equal(t, KindConvertibleDocument, sel.Kind)
	assert.Equal(t, "FileName: cv.docx\n\nExtracted body", sel.Request.Text)
	assert.Nil(t, sel.Request.File)
}

func TestNormalize_DocxExtractionFailure(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	n := NewNormalizer(1024, WithExtractor(&stubExtractor{err: cause}))

	sel, err := n.Normalize(Upload{Name: "broken.docx", MIMEType: MIMEDocx, Data: []byte("garbage")})
	assert.Nil(t, sel)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "broken.docx", extractErr.FileName)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, UserMessage(err), "Could not read this document")
}

func TestNormalize_SizeLimit(t *testing.T) {
	n := NewNormalizer(10)

	t.Run("at the limit", func(t *testing.T) {
		_, err := n.Normalize(Upload{Name: "cv.txt", MIMEType: "text/plain", Data: bytes.Repeat([]byte("a"), 10)})
		assert.NoError(t, err)
	})

	t.Run("over the limit regardless of type", func(t *testing.T) {
		for _, mimeType := range []string{"application/pdf", MIMEDocx, "text/plain", "image/png"} {
			_, err := n.Normalize(Upload{Name: "cv", MIMEType: mimeType, Data: bytes.Repeat([]byte("a"), 11)})
			assert.ErrorIs(t, err, ErrFileTooLarge, mimeType)
		}
	})
}

func TestNormalize_Unsupported(t *testing.T) {
	n := NewNormalizer(1024)

	sel, err := n.Normalize(Upload{Name: "photo.png", MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}})
	assert.Nil(t, sel)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, "Unsupported file type. Please upload PDF, Word (.docx), or TXT.", UserMessage(err))
}

func TestNormalize_SniffsGenericUploads(t *testing.T) {
	n := NewNormalizer(1024)

	sel, err := n.Normalize(Upload{Name: "resume", MIMEType: "application/octet-stream", Data: []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")})
	require.NoError(t, err)
	assert.Equal(t, KindNativeBinary, sel.Kind)
	assert.Equal(t, MIMEPDF, sel.Request.File.MIMEType)
}

func TestNormalize_DeclaredTypeWins(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	pdf := []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")
	emptyZip := append([]byte("PK\x05\x06"), make([]byte, 18)...)
	n := NewNormalizer(1024, WithExtractor(&stubExtractor{text: "docx text"}))

	tests := []struct {
		name     string
		upload   Upload
		expected Kind
		mimeType string
	}{
		{name: "image named as pdf", upload: Upload{Name: "cv.pdf", MIMEType: "image/png", Data: png}},
		{name: "legacy word named as docx", upload: Upload{Name: "cv.docx", MIMEType: "application/msword", Data: emptyZip}},
		{name: "markdown sent as octet-stream", upload: Upload{Name: "notes.md", MIMEType: "application/octet-stream", Data: []byte("# Jane Doe")}},
		{name: "image bytes behind pdf extension", upload: Upload{Name: "cv.pdf", MIMEType: "application/octet-stream", Data: png}},
		{name: "image bytes behind txt extension", upload: Upload{Name: "cv.txt", Data: png}},
		{name: "text bytes behind docx extension", upload: Upload{Name: "cv.docx", Data: []byte("plain words")}},
		{name: "pdf extension confirmed by content", upload: Upload{Name: "cv.pdf", MIMEType: "application/octet-stream", Data: pdf}, expected: KindNativeBinary, mimeType: MIMEPDF},
		{name: "docx extension on a zip", upload: Upload{Name: "cv.docx", Data: emptyZip}, expected: KindConvertibleDocument, mimeType: MIMEDocx},
		{name: "txt extension confirmed by content", upload: Upload{Name: "cv.txt", Data: []byte("Go developer")}, expected: KindPlainText, mimeType: MIMEText},
		{name: "declared text is trusted", upload: Upload{Name: "notes.md", MIMEType: "text/plain", Data: []byte("# Jane Doe")}, expected: KindPlainText, mimeType: MIMEText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := n.Normalize(tt.upload)
			if tt.expected == KindUnsupported {
				assert.Nil(t, sel)
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel.Kind)
			assert.Equal(t, tt.mimeType, sel.MIMEType)
		})
	}
}

func TestNormalize_ExactlyOneShape(t *testing.T) {
	n := NewNormalizer(1024, WithExtractor(&stubExtractor{text: "docx text"}))
	uploads := []Upload{
		{Name: "a.pdf", MIMEType: MIMEPDF, Data: []byte("%PDF-1.4")},
		{Name: "a.docx", MIMEType: MIMEDocx, Data: []byte("PK")},
		{Name: "a.txt", MIMEType: MIMEText, Data: []byte("text")},
	}

	for _, upload := range uploads {
		sel, err := n.Normalize(upload)
		require.NoError(t, err, upload.Name)
		hasText := sel.Request.Text != ""
		hasFile := sel.Request.File != nil
		assert.True(t, hasText != hasFile, upload.Name)
	}
}

func TestSelection_JSON(t *testing.T) {
	n := NewNormalizer(1024)

	sel, err := n.Normalize(Upload{Name: "cv.txt", MIMEType: "text/plain", Data: []byte("Go developer")})
	require.NoError(t, err)

	raw, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fileName":"cv.txt","mimeType":"text/plain","size":12}`, string(raw))
}

func TestFromText(t *testing.T) {
	req, err := FromText("5 years React and Node.js experience...")
	require.NoError(t, err)
	assert.Equal(t, "5 years React and Node.js experience...", req.Text)
	assert.Nil(t, req.File)

	_, err = FromText("   \n\t")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDocxExtractor_ExtractText(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills:</w:t></w:r><w:r><w:tab/><w:t xml:space="preserve">React, Git</w:t></w:r></w:p>
</w:body>
</w:document>`

	text, err := NewDocxExtractor().ExtractText(buildDocx(t, body))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills:\tReact, Git", text)
}

func TestDocxExtractor_RejectsNonZip(t *testing.T) {
	_, err := NewDocxExtractor().ExtractText([]byte("not a docx"))
	assert.Error(t, err)
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	require.True(t, strings.HasPrefix(buf.String(), "PK"))
	return buf.Bytes()
}
