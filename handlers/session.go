package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/auth"
	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/models"
	"github.com/kusasa/backend/session"
)

// SessionHandler drives a visitor's view state machine
type SessionHandler struct {
	store      *session.Store
	tokens     *auth.SessionTokens
	normalizer *intake.Normalizer
	analyzer   *agent.Analyzer
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store, tokens *auth.SessionTokens, normalizer *intake.Normalizer, analyzer *agent.Analyzer) *SessionHandler {
	return &SessionHandler{
		store:      store,
		tokens:     tokens,
		normalizer: normalizer,
		analyzer:   analyzer,
	}
}

// SessionResponse is a snapshot of one session
// @Description Session state snapshot
type SessionResponse struct {
	ID         string             `json:"id" example:"3f0c6f5e-8d8b-4a53-9a57-5b8f0f7b9b1e"`
	State      agent.State        `json:"state"`
	CanAnalyze bool               `json:"canAnalyze" example:"true"`
	Results    *agent.ResultsView `json:"results,omitempty"`
}

// SessionCreatedResponse carries the bearer token for a new session
// @Description New session with its bearer token
type SessionCreatedResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Session   SessionResponse `json:"session"`
}

// RegisterRoutes registers session endpoints. requireSession resolves the
// bearer token; analyzeLimit guards the analyze action.
func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup, requireSession gin.HandlerFunc, analyzeLimit ...gin.HandlerFunc) {
	router.POST("/sessions", h.CreateSession)

	sess := router.Group("/session", requireSession)
	sess.GET("", h.GetSession)
	sess.POST("/start", h.Start)
	sess.POST("/home", h.OpenHome)
	sess.POST("/employer", h.OpenEmployer)
	sess.PUT("/input-mode", h.SetInputMode)
	sess.POST("/file", h.UploadFile)
	sess.DELETE("/file", h.ClearFile)
	sess.PUT("/text", h.SetText)
	sess.POST("/analyze", append(analyzeLimit, h.Analyze)...)
	sess.PUT("/selection", h.SelectMatch)
	sess.PUT("/tab", h.SelectTab)
	sess.POST("/reset", h.Reset)
}

// CreateSession starts a new session
// @Summary Create session
// @Description Start a new analysis session on the landing view and return its bearer token
// @Tags Session
// @Produce json
// @Success 201 {object} SessionCreatedResponse "New session"
// @Failure 500 {object} models.ErrorResponse "Token signing failed"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sess := h.store.Create()

	token, expiresAt, err := h.tokens.Issue(sess.ID)
	if err != nil {
		h.store.Delete(sess.ID)
		log.Printf("[Handler] Failed to issue session token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create session",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[Handler] Created session %s", sess.ID)
	c.JSON(http.StatusCreated, SessionCreatedResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   h.snapshot(sess.ID, sess.Controller.State()),
	})
}

// GetSession returns the session state
// @Summary Get session
// @Description Current view, analysis stage, inputs and, once done, the ranked results view
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "Session state"
// @Failure 401 {object} models.ErrorResponse "Missing or expired session"
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess := auth.GetSession(c)
	c.JSON(http.StatusOK, h.snapshot(sess.ID, sess.Controller.State()))
}

// Start moves to the analyze view
// @Summary Start
// @Description Leave the landing page for the analyze view
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "Session state"
// @Router /session/start [post]
func (h *SessionHandler) Start(c *gin.Context) {
	h.dispatch(c, agent.Started{})
}

// OpenHome moves to the landing view
// @Summary Open home
// @Description Show the landing page; analysis state is kept
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "Session state"
// @Router /session/home [post]
func (h *SessionHandler) OpenHome(c *gin.Context) {
	h.dispatch(c, agent.HomeOpened{})
}

// OpenEmployer moves to the employer view
// @Summary Open employer view
// @Description Show the employer view; analysis state is kept
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "Session state"
// @Router /session/employer [post]
func (h *SessionHandler) OpenEmployer(c *gin.Context) {
	h.dispatch(c, agent.EmployerOpened{})
}

// SetInputMode toggles between file and pasted text
// @Summary Set input mode
// @Description Choose which input feeds the next analysis. Only one mode is active at a time.
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.InputModeRequest true "Input mode"
// @Success 200 {object} SessionResponse "Session state"
// @Failure 400 {object} models.ErrorResponse "Invalid mode"
// @Failure 409 {object} models.ErrorResponse "Analysis in progress"
// @Router /session/input-mode [put]
func (h *SessionHandler) SetInputMode(c *gin.Context) {
	var req models.InputModeRequest
	if !bindJSON(c, &req) {
		return
	}
	h.dispatch(c, agent.InputModeChanged{Mode: agent.InputMode(req.Mode)})
}

// UploadFile selects a resume document
// @Summary Upload CV file
// @Description Select a PDF, Word (.docx) or TXT resume up to the upload limit. The file is validated and converted immediately.
// @Tags Session
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cv_file formData file true "CV file (PDF, DOCX, TXT)"
// @Success 200 {object} SessionResponse "Session state"
// @Failure 400 {object} models.ErrorResponse "No file"
// @Failure 409 {object} models.ErrorResponse "Analysis in progress"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 415 {object} models.ErrorResponse "Unsupported file type"
// @Failure 422 {object} models.ErrorResponse "Document could not be read"
// @Router /session/file [post]
func (h *SessionHandler) UploadFile(c *gin.Context) {
	sess := auth.GetSession(c)
	if sess.Controller.State().Stage.Busy() {
		stateError(c, agent.ErrAnalysisInProgress)
		return
	}

	upload, ok := readUpload(c, h.normalizer.MaxBytes())
	if !ok {
		return
	}

	selection, err := h.normalizer.Normalize(upload)
	if err != nil {
		// An unreadable or unsupported document replaces the previous choice
		if !errors.Is(err, intake.ErrFileTooLarge) {
			if _, clearErr := sess.Controller.Dispatch(agent.FileCleared{}); clearErr != nil {
				log.Printf("[Handler] Could not clear selection: %v", clearErr)
			}
		}
		intakeError(c, err)
		return
	}

	h.dispatch(c, agent.FileSelected{Selection: selection})
}

// ClearFile discards the selected document
// @Summary Clear CV file
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "Session state"
// @Failure 409 {object} models.ErrorResponse "Analysis in progress"
// @Router /session/file [delete]
func (h *SessionHandler) ClearFile(c *gin.Context) {
	h.dispatch(c, agent.FileCleared{})
}

// SetText replaces the pasted resume text
// @Summary Set CV text
// @Description Replace the pasted resume text and switch to text input
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TextInputRequest true "Resume text"
// @Success 200 {object} SessionResponse "Session state"
// @Failure 409 {object} models.ErrorResponse "Analysis in progress"
// @Router /session/text [put]
func (h *SessionHandler) SetText(c *gin.Context) {
	var req models.TextInputRequest
	if !bindJSON(c, &req) {
		return
	}
	h.dispatch(c, agent.TextChanged{Text: req.Text})
}

// Analyze runs profile extraction and job matching
// @Summary Analyze
// @Description Extract a profile from the active input and match it against the job catalog. Blocks until both steps finish.
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "Results"
// @Failure 400 {object} models.ErrorResponse "No input for the active mode"
// @Failure 409 {object} models.ErrorResponse "Analysis already running or results showing"
// @Failure 429 {object} models.ErrorResponse "Too many analysis requests"
// @Failure 502 {object} models.ErrorResponse "Analysis failed"
// @Router /session/analyze [post]
func (h *SessionHandler) Analyze(c *gin.Context) {
	sess := auth.GetSession(c)

	// A started run is never aborted by the caller going away
	ctx := context.WithoutCancel(c.Request.Context())

	err := h.analyzer.Analyze(ctx, sess.Controller)
	if err == nil {
		c.JSON(http.StatusOK, h.snapshot(sess.ID, sess.Controller.State()))
		return
	}

	if isStateError(err) {
		stateError(c, err)
		return
	}

	message := agent.FailureMessage(agent.StageParsing, err)
	var failure *agent.StageFailure
	if errors.As(err, &failure) {
		message = failure.Message()
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error: message,
		Code:  http.StatusBadGateway,
	})
}

// SelectMatch shows a match in the detail pane
// @Summary Select match
// @Description Show a ranked match in the detail pane; the tab returns to overview
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SelectMatchRequest true "Job ID"
// @Success 200 {object} SessionResponse "Session state"
// @Failure 404 {object} models.ErrorResponse "No such match"
// @Failure 409 {object} models.ErrorResponse "No results yet"
// @Router /session/selection [put]
func (h *SessionHandler) SelectMatch(c *gin.Context) {
	var req models.SelectMatchRequest
	if !bindJSON(c, &req) {
		return
	}
	h.dispatch(c, agent.MatchSelected{JobID: req.JobID})
}

// SelectTab switches the detail pane tab
// @Summary Select tab
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SelectTabRequest true "Tab"
// @Success 200 {object} SessionResponse "Session state"
// @Failure 409 {object} models.ErrorResponse "No results yet"
// @Router /session/tab [put]
func (h *SessionHandler) SelectTab(c *gin.Context) {
	var req models.SelectTabRequest
	if !bindJSON(c, &req) {
		return
	}
	h.dispatch(c, agent.TabSelected{Tab: agent.Tab(req.Tab)})
}

// Reset discards results and input
// @Summary Reset
// @Description Clear the results and inputs and return to the analyze view
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "Session state"
// @Failure 409 {object} models.ErrorResponse "Analysis in progress"
// @Router /session/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	h.dispatch(c, agent.Reset{})
}

func (h *SessionHandler) dispatch(c *gin.Context, ev agent.Event) {
	sess := auth.GetSession(c)

	state, err := sess.Controller.Dispatch(ev)
	if err != nil {
		stateError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(sess.ID, state))
}

func (h *SessionHandler) snapshot(id string, state agent.State) SessionResponse {
	resp := SessionResponse{
		ID:         id,
		State:      state,
		CanAnalyze: state.CanAnalyze(),
	}
	if view, ok := agent.BuildResultsView(state, h.analyzer.Catalog()); ok {
		resp.Results = view
	}
	return resp
}
