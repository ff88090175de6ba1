package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/kusasa/backend/config"
	"github.com/kusasa/backend/models"
)

// Client extracts candidate profiles and scores them against jobs
type Client struct {
	engine   Engine
	market   string
	validate bool
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithMarket sets the job market named in prompts
func WithMarket(market string) ClientOption {
	return func(c *Client) {
		if market != "" {
			c.market = market
		}
	}
}

// WithValidation toggles JSON Schema validation of engine responses
func WithValidation(enabled bool) ClientOption {
	return func(c *Client) {
		c.validate = enabled
	}
}

// NewClient creates a client backed by the configured inference backend
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	var (
		engine Engine
		err    error
	)

	switch cfg.InferenceBackend {
	case config.BackendStudio:
		engine, err = NewStudioEngine(ctx, cfg)
	default:
		engine, err = NewVertexEngine(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[Gemini] Using %s backend with model %s", cfg.InferenceBackend, cfg.GeminiModel)

	return NewClientWithEngine(engine,
		WithMarket(cfg.TargetMarket),
		WithValidation(cfg.ValidateResponses),
	), nil
}

// NewClientWithEngine creates a client on top of an existing engine
func NewClientWithEngine(engine Engine, opts ...ClientOption) *Client {
	c := &Client{
		engine:   engine,
		market:   "South African",
		validate: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close closes the underlying engine
func (c *Client) Close() error {
	return c.engine.Close()
}

// ExtractProfile turns a normalized analysis request into a candidate profile
func (c *Client) ExtractProfile(ctx context.Context, req models.AnalysisRequest) (*models.CandidateProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, c.fail(StageProfile, err)
	}

	var parts []Part
	if req.File != nil {
		data, err := req.File.Bytes()
		if err != nil {
			return nil, c.fail(StageProfile, fmt.Errorf("failed to decode inline file: %w", err))
		}
		parts = []Part{BlobPart(req.File.MIMEType, data), TextPart(fileInstruction)}
	} else {
		parts = []Part{TextPart(profileTextPrompt(req.Text))}
	}

	schema := CandidateProfileSchema()
	text, err := c.generate(ctx, &Request{
		SystemInstruction: profileSystemInstruction(c.market),
		Parts:             parts,
		Schema:            schema,
	})
	if err != nil {
		return nil, c.fail(StageProfile, err)
	}

	var profile models.CandidateProfile
	if err := json.Unmarshal([]byte(text), &profile); err != nil {
		log.Printf("[Gemini] Failed to parse profile response: %s", text)
		return nil, c.fail(StageProfile, fmt.Errorf("failed to parse profile JSON: %w", err))
	}

	log.Printf("[Gemini] Extracted profile: skills=%d, experience=%g years, roles=%d",
		len(profile.ExtractedSkills), profile.YearsExperience, len(profile.SuggestedRoles))

	return &profile, nil
}

// MatchJobs scores a profile against the given jobs. The result is in engine
// order and may omit jobs or reference unknown ones; ranking is the caller's job.
func (c *Client) MatchJobs(ctx context.Context, profile *models.CandidateProfile, jobs []models.Job) ([]models.MatchResult, error) {
	if profile == nil {
		return nil, c.fail(StageMatching, fmt.Errorf("profile is required"))
	}

	schema := MatchResponseSchema()
	text, err := c.generate(ctx, &Request{
		Parts:  []Part{TextPart(matchPrompt(profile, jobs, c.market))},
		Schema: schema,
	})
	if err != nil {
		return nil, c.fail(StageMatching, err)
	}

	var resp models.MatchResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		log.Printf("[Gemini] Failed to parse match response: %s", text)
		return nil, c.fail(StageMatching, fmt.Errorf("failed to parse match JSON: %w", err))
	}

	if resp.Matches == nil {
		resp.Matches = []models.MatchResult{}
	}

	log.Printf("[Gemini] Matched profile against %d jobs: %d results", len(jobs), len(resp.Matches))

	return resp.Matches, nil
}

// generate runs the engine and returns cleaned, optionally validated JSON
func (c *Client) generate(ctx context.Context, req *Request) (string, error) {
	raw, err := c.engine.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	text := cleanJSON(raw)
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}

	if c.validate && req.Schema != nil {
		if err := validateJSON(req.Schema, text); err != nil {
			log.Printf("[Gemini] Invalid response: %s", text)
			return "", err
		}
	}
	return text, nil
}

func (c *Client) fail(stage Stage, cause error) error {
	log.Printf("[Gemini] %s failed: %v", stage, cause)
	return &InferenceError{Stage: stage, Cause: cause}
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
