package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/models"
)

// CVHandler handles stateless CV parsing requests
type CVHandler struct {
	extractor  agent.ProfileExtractor
	normalizer *intake.Normalizer
}

// NewCVHandler creates a new CV handler
func NewCVHandler(extractor agent.ProfileExtractor, normalizer *intake.Normalizer) *CVHandler {
	return &CVHandler{
		extractor:  extractor,
		normalizer: normalizer,
	}
}

// ParseCV parses a CV and extracts profile information
// @Summary Parse CV
// @Description Parse a CV file or text and extract a structured candidate profile using AI. No session is involved.
// @Tags CV
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.CVParseRequest false "CV parse request (JSON)"
// @Param cv_file formData file false "CV file to parse (PDF, DOCX, TXT)"
// @Param cv_text formData string false "CV text content"
// @Success 200 {object} models.CVParseResponse "Parsed CV profile"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 415 {object} models.ErrorResponse "Unsupported file type"
// @Failure 422 {object} models.ErrorResponse "Document could not be read"
// @Failure 502 {object} models.ErrorResponse "Parsing failed"
// @Router /parse-cv [post]
func (h *CVHandler) ParseCV(c *gin.Context) {
	var (
		req models.AnalysisRequest
		err error
	)

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		if _, fileErr := c.FormFile("cv_file"); fileErr == nil {
			upload, ok := readUpload(c, h.normalizer.MaxBytes())
			if !ok {
				return
			}
			var selection *intake.Selection
			selection, err = h.normalizer.Normalize(upload)
			if err == nil {
				req = selection.Request
			}
		} else {
			// Try text field
			req, err = intake.FromText(c.PostForm("cv_text"))
		}
	} else {
		var body models.CVParseRequest
		if !bindJSON(c, &body) {
			return
		}
		req, err = intake.FromText(body.CVText)
	}
	if err != nil {
		intakeError(c, err)
		return
	}

	profile, err := h.extractor.ExtractProfile(c.Request.Context(), req)
	if err != nil {
		log.Printf("[CVHandler] ParseCV error: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: agent.FailureMessage(agent.StageParsing, err),
			Code:  http.StatusBadGateway,
		})
		return
	}

	c.JSON(http.StatusOK, models.CVParseResponse{
		Profile: *profile,
	})
}

// readUpload reads the cv_file form field, stopping one byte past maxBytes
func readUpload(c *gin.Context, maxBytes int64) (intake.Upload, bool) {
	file, header, err := c.Request.FormFile("cv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "CV file is required",
			Code:    http.StatusBadRequest,
			Details: "send the document in the cv_file form field",
		})
		return intake.Upload{}, false
	}
	defer file.Close()

	if header.Size > maxBytes {
		intakeError(c, intake.ErrFileTooLarge)
		return intake.Upload{}, false
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Failed to read CV file",
			Code:  http.StatusBadRequest,
		})
		return intake.Upload{}, false
	}

	log.Printf("[Handler] Received CV file: %s, size: %d bytes", header.Filename, len(data))

	return intake.Upload{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}, true
}
