package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/kusasa/backend/config"
	"github.com/kusasa/backend/utils"
)

// StudioEngine runs generation against the Gemini API with an API key
type StudioEngine struct {
	client    *genai.Client
	modelName string
}

// NewStudioEngine creates a Gemini API engine
func NewStudioEngine(ctx context.Context, cfg *config.Config) (*StudioEngine, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.HTTPTimeoutSeconds > 0 {
		clientCfg.HTTPClient = utils.NewInferenceHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second)
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini API client: %w", err)
	}

	return &StudioEngine{
		client:    client,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close is a no-op; the Gemini API client holds no long-lived connections
func (e *StudioEngine) Close() error {
	return nil
}

// Generate runs one structured-output call and returns the JSON text
func (e *StudioEngine) Generate(ctx context.Context, req *Request) (string, error) {
	temp, p := float32(temperature), float32(topP)
	genCfg := &genai.GenerateContentConfig{
		Temperature:      &temp,
		TopP:             &p,
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   studioSchema(req.Schema),
	}
	if req.SystemInstruction != "" {
		genCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}}
	}

	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, part := range req.Parts {
		if part.IsBlob() {
			parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: part.MIMEType, Data: part.Data}})
			continue
		}
		parts = append(parts, &genai.Part{Text: part.Text})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	resp, err := e.client.Models.GenerateContent(ctx, e.modelName, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}

func studioSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        studioType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Items:       studioSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = studioSchema(prop)
		}
	}
	return out
}

func studioType(t SchemaType) genai.Type {
	switch t {
	case TypeString:
		return genai.TypeString
	case TypeNumber:
		return genai.TypeNumber
	case TypeInteger:
		return genai.TypeInteger
	case TypeBoolean:
		return genai.TypeBoolean
	case TypeArray:
		return genai.TypeArray
	case TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}
