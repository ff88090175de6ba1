package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/auth"
	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/config"
	"github.com/kusasa/backend/gemini"
	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/models"
	"github.com/kusasa/backend/session"
	"github.com/kusasa/backend/tools"
	"github.com/kusasa/backend/utils"
)

type stubExtractor struct {
	err   error
	calls []models.AnalysisRequest
}

func (s *stubExtractor) ExtractProfile(_ context.Context, req models.AnalysisRequest) (*models.CandidateProfile, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return &models.CandidateProfile{
		Summary:         "Frontend developer",
		YearsExperience: 5,
		ExtractedSkills: []models.Skill{{Name: "React", Level: models.SkillLevelExpert}},
		SuggestedRoles:  []string{"Frontend Developer"},
	}, nil
}

type stubMatcher struct {
	matches []models.MatchResult
	err     error
}

func (s *stubMatcher) MatchJobs(context.Context, *models.CandidateProfile, []models.Job) ([]models.MatchResult, error) {
	return s.matches, s.err
}

type testServer struct {
	router    *gin.Engine
	store     *session.Store
	extractor *stubExtractor
	matcher   *stubMatcher
}

func newTestServer(t *testing.T, analyzePerMinute int) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New(catalog.Builtin())
	require.NoError(t, err)

	ts := &testServer{
		store:     session.NewStore(time.Hour),
		extractor: &stubExtractor{},
		matcher: &stubMatcher{matches: []models.MatchResult{
			{JobID: "2", MatchScore: 40},
			{JobID: "1", MatchScore: 88, MissingSkills: []string{"Git"}},
			{JobID: "99", MatchScore: 99},
		}},
	}

	tokens := auth.NewSessionTokens(&config.Config{SessionSecret: "test-secret", SessionTTLMinutes: 60})
	normalizer := intake.NewNormalizer(64)
	analyzer := agent.NewAnalyzer(ts.extractor, ts.matcher, cat)

	registry := tools.NewToolRegistry()
	registry.Register(tools.NewListJobsTool(cat))

	sessionHandler := NewSessionHandler(ts.store, tokens, normalizer, analyzer)
	systemHandler := NewSystemHandler(cat, registry)
	jobsHandler := NewJobsHandler(cat, ts.matcher)
	cvHandler := NewCVHandler(ts.extractor, normalizer)

	limiter := utils.NewKeyedLimiter(analyzePerMinute)
	bySession := func(c *gin.Context) string {
		if sess := auth.GetSession(c); sess != nil {
			return sess.ID
		}
		return ""
	}

	ts.router = gin.New()
	ts.router.GET("/health", systemHandler.HealthCheck)
	api := ts.router.Group("/api")
	sessionHandler.RegisterRoutes(api, auth.SessionMiddleware(tokens, ts.store), utils.RateLimitMiddleware(limiter, bySession))
	api.GET("/jobs", jobsHandler.ListJobs)
	api.GET("/jobs/:id", jobsHandler.GetJob)
	api.POST("/match-jobs", jobsHandler.MatchJobs)
	api.POST("/parse-cv", cvHandler.ParseCV)
	api.GET("/tools", systemHandler.GetTools)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) upload(t *testing.T, path, token, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("cv_file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) createSession(t *testing.T) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, agent.ViewHome, resp.Session.State.View)
	assert.False(t, resp.Session.CanAnalyze)
	return resp.Token
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) SessionResponse {
	t.Helper()
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestSession_RequiresToken(t *testing.T) {
	ts := newTestServer(t, 10)

	w := ts.do(t, http.MethodGet, "/api/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodGet, "/api/session", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_ExpiredSessionRejected(t *testing.T) {
	ts := newTestServer(t, 10)
	token := ts.createSession(t)

	w := ts.do(t, http.MethodGet, "/api/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ts.store.Delete(decodeSession(t, w).ID)

	w = ts.do(t, http.MethodGet, "/api/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Session expired", decodeError(t, w).Error)
}

func TestSession_TextFlow(t *testing.T) {
	ts := newTestServer(t, 10)
	token := ts.createSession(t)

	w := ts.do(t, http.MethodPost, "/api/session/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, agent.ViewAnalyze, decodeSession(t, w).State.View)

	w = ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "5 years React"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, agent.InputText, resp.State.InputMode)
	assert.True(t, resp.CanAnalyze)

	w = ts.do(t, http.MethodPost, "/api/session/analyze", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = decodeSession(t, w)
	assert.Equal(t, agent.StageDone, resp.State.Stage)
	assert.Equal(t, agent.ViewResults, resp.State.View)
	require.NotNil(t, resp.Results)
	require.Len(t, resp.Results.Matches, 2)
	assert.Equal(t, "1", resp.Results.Matches[0].Job.ID)
	assert.Equal(t, "88%", resp.Results.Matches[0].ScoreLabel)
	require.NotNil(t, resp.Results.Selected)
	assert.Equal(t, "1", resp.Results.Selected.Job.ID)

	require.Len(t, ts.extractor.calls, 1)
	assert.Equal(t, "5 years React", ts.extractor.calls[0].Text)

	w = ts.do(t, http.MethodPut, "/api/session/tab", token, models.SelectTabRequest{Tab: "upskill"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, agent.TabUpskill, decodeSession(t, w).State.ActiveTab)

	w = ts.do(t, http.MethodPut, "/api/session/selection", token, models.SelectMatchRequest{JobID: "2"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, "2", resp.State.SelectedJobID)
	assert.Equal(t, agent.TabOverview, resp.State.ActiveTab)

	w = ts.do(t, http.MethodPut, "/api/session/selection", token, models.SelectMatchRequest{JobID: "99"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// inputs are locked while results are showing
	w = ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "other"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(t, http.MethodPost, "/api/session/reset", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, agent.ViewAnalyze, resp.State.View)
	assert.Equal(t, agent.StageIdle, resp.State.Stage)
	assert.Empty(t, resp.State.PastedText)
	assert.Nil(t, resp.Results)
}

func TestSession_AnalyzeWithoutInput(t *testing.T) {
	ts := newTestServer(t, 10)
	token := ts.createSession(t)

	w := ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "   "})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeSession(t, w).CanAnalyze)

	w = ts.do(t, http.MethodPost, "/api/session/analyze", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ts.extractor.calls)
}

func TestSession_AnalyzeFailure(t *testing.T) {
	ts := newTestServer(t, 10)
	ts.extractor.err = &gemini.InferenceError{Stage: gemini.StageProfile, Cause: assert.AnError}
	token := ts.createSession(t)

	ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "cv"})
	w := ts.do(t, http.MethodPost, "/api/session/analyze", token, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Failed to analyze resume. Please try again.", decodeError(t, w).Error)

	w = ts.do(t, http.MethodGet, "/api/session", token, nil)
	resp := decodeSession(t, w)
	assert.Equal(t, agent.StageError, resp.State.Stage)
	assert.Equal(t, agent.StageParsing, resp.State.FailedAt)
	assert.True(t, resp.CanAnalyze)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestSession_AnalyzeMatchFailure(t *testing.T) {
	ts := newTestServer(t, 10)
	ts.matcher.err = &gemini.InferenceError{Stage: gemini.StageMatching, Cause: assert.AnError}
	token := ts.createSession(t)

	ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "cv"})
	w := ts.do(t, http.MethodPost, "/api/session/analyze", token, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Failed to match jobs.", decodeError(t, w).Error)

	// the body comes from the failed run, not from the current session state
	w = ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "cv v2"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Empty(t, resp.State.Error)
	assert.Equal(t, agent.StageIdle, resp.State.Stage)
}

func TestSession_AnalyzeRateLimited(t *testing.T) {
	ts := newTestServer(t, 1)
	ts.extractor.err = &gemini.InferenceError{Stage: gemini.StageProfile, Cause: assert.AnError}
	token := ts.createSession(t)

	ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "cv"})
	w := ts.do(t, http.MethodPost, "/api/session/analyze", token, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	w = ts.do(t, http.MethodPost, "/api/session/analyze", token, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, ts.extractor.calls, 1)
}

func TestSession_UploadFile(t *testing.T) {
	ts := newTestServer(t, 10)
	token := ts.createSession(t)

	w := ts.upload(t, "/api/session/file", token, "resume.txt", []byte("Go developer"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeSession(t, w)
	require.NotNil(t, resp.State.Selection)
	assert.Equal(t, "resume.txt", resp.State.Selection.FileName)
	assert.Equal(t, intake.MIMEText, resp.State.Selection.MIMEType)
	assert.Equal(t, agent.InputFile, resp.State.InputMode)
	assert.True(t, resp.CanAnalyze)

	// oversized uploads keep the previous selection
	w = ts.upload(t, "/api/session/file", token, "big.txt", bytes.Repeat([]byte("a"), 65))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "File size exceeds 5MB limit.", decodeError(t, w).Error)
	resp = decodeSession(t, ts.do(t, http.MethodGet, "/api/session", token, nil))
	require.NotNil(t, resp.State.Selection)

	// unsupported uploads discard it
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	w = ts.upload(t, "/api/session/file", token, "photo.png", png)
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Equal(t, "Unsupported file type. Please upload PDF, Word (.docx), or TXT.", decodeError(t, w).Error)
	resp = decodeSession(t, ts.do(t, http.MethodGet, "/api/session", token, nil))
	assert.Nil(t, resp.State.Selection)
	assert.False(t, resp.CanAnalyze)
}

func TestSession_UnreadableDocx(t *testing.T) {
	ts := newTestServer(t, 10)
	token := ts.createSession(t)

	emptyZip := append([]byte("PK\x05\x06"), make([]byte, 18)...)
	w := ts.upload(t, "/api/session/file", token, "cv.docx", emptyZip)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Could not read this document. Please ensure it is a valid .docx file.", decodeError(t, w).Error)
}

func TestSession_FileAndTextModes(t *testing.T) {
	ts := newTestServer(t, 10)
	token := ts.createSession(t)

	ts.upload(t, "/api/session/file", token, "resume.txt", []byte("file body"))
	ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "pasted body"})

	w := ts.do(t, http.MethodPut, "/api/session/input-mode", token, models.InputModeRequest{Mode: "file"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/session/analyze", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ts.extractor.calls, 1)
	assert.Equal(t, "FileName: resume.txt\n\nfile body", ts.extractor.calls[0].Text)

	w = ts.do(t, http.MethodPut, "/api/session/input-mode", token, models.InputModeRequest{Mode: "camera"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSession_NavigationKeepsResults(t *testing.T) {
	ts := newTestServer(t, 10)
	token := ts.createSession(t)

	ts.do(t, http.MethodPut, "/api/session/text", token, models.TextInputRequest{Text: "cv"})
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/session/analyze", token, nil).Code)

	w := ts.do(t, http.MethodPost, "/api/session/employer", token, nil)
	assert.Equal(t, agent.ViewEmployer, decodeSession(t, w).State.View)

	w = ts.do(t, http.MethodPost, "/api/session/home", token, nil)
	assert.Equal(t, agent.ViewHome, decodeSession(t, w).State.View)

	w = ts.do(t, http.MethodPost, "/api/session/start", token, nil)
	resp := decodeSession(t, w)
	assert.Equal(t, agent.ViewResults, resp.State.View)
	assert.NotNil(t, resp.Results)
}

func TestParseCV(t *testing.T) {
	ts := newTestServer(t, 10)

	w := ts.do(t, http.MethodPost, "/api/parse-cv", "", models.CVParseRequest{CVText: "React dev"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.CVParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Frontend developer", resp.Profile.Summary)

	w = ts.upload(t, "/api/parse-cv", "", "cv.txt", []byte("Go"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "FileName: cv.txt\n\nGo", ts.extractor.calls[1].Text)

	w = ts.do(t, http.MethodPost, "/api/parse-cv", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseCV_MultipartText(t *testing.T) {
	ts := newTestServer(t, 10)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("cv_text", "   "))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse-cv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please upload a CV or paste its text.", decodeError(t, w).Error)
}

func TestParseCV_InferenceFailure(t *testing.T) {
	ts := newTestServer(t, 10)
	ts.extractor.err = &gemini.InferenceError{Stage: gemini.StageProfile, Cause: assert.AnError}

	w := ts.do(t, http.MethodPost, "/api/parse-cv", "", models.CVParseRequest{CVText: "React dev"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Failed to analyze resume. Please try again.", decodeError(t, w).Error)
}

func TestListJobs(t *testing.T) {
	ts := newTestServer(t, 10)

	w := ts.do(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.JobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)

	w = ts.do(t, http.MethodGet, "/api/jobs?type=remote", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, job := range resp.Jobs {
		assert.Equal(t, models.JobTypeRemote, job.Type)
	}
	assert.Equal(t, len(resp.Jobs), resp.Total)
}

func TestGetJob(t *testing.T) {
	ts := newTestServer(t, 10)

	w := ts.do(t, http.MethodGet, "/api/jobs/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var job models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, "1", job.ID)
	assert.NotEmpty(t, job.ApplicationLinks)

	w = ts.do(t, http.MethodGet, "/api/jobs/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchJobs(t *testing.T) {
	ts := newTestServer(t, 10)

	w := ts.do(t, http.MethodPost, "/api/match-jobs", "", models.MatchJobsRequest{
		Profile: models.CandidateProfile{Summary: "dev"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.MatchJobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "1", resp.Matches[0].JobID)
	assert.Equal(t, "2", resp.Matches[1].JobID)

	ts.matcher.err = &gemini.InferenceError{Stage: gemini.StageMatching, Cause: assert.AnError}
	w = ts.do(t, http.MethodPost, "/api/match-jobs", "", models.MatchJobsRequest{
		Profile: models.CandidateProfile{Summary: "dev"},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Failed to match jobs.", decodeError(t, w).Error)
}

func TestHealthCheckAndTools(t *testing.T) {
	ts := newTestServer(t, 10)

	w := ts.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 5, health.Jobs)

	w = ts.do(t, http.MethodGet, "/api/tools", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"list_jobs"`))
}
