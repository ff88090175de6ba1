package gemini

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/kusasa/backend/config"
)

// VertexEngine runs generation on Vertex AI
type VertexEngine struct {
	client    *genai.Client
	modelName string
}

// NewVertexEngine creates a Vertex AI engine using application default credentials
func NewVertexEngine(ctx context.Context, cfg *config.Config) (*VertexEngine, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	return &VertexEngine{
		client:    client,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Vertex AI client
func (e *VertexEngine) Close() error {
	return e.client.Close()
}

// Generate runs one structured-output call and returns the JSON text
func (e *VertexEngine) Generate(ctx context.Context, req *Request) (string, error) {
	// A model handle per call keeps schema and system instruction request-scoped
	model := e.client.GenerativeModel(e.modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(maxOutputTokens)
	model.ResponseMIMEType = "application/json"
	if req.Schema != nil {
		model.ResponseSchema = vertexSchema(req.Schema)
	}
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}

	parts := make([]genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.IsBlob() {
			parts = append(parts, genai.Blob{MIMEType: p.MIMEType, Data: p.Data})
			continue
		}
		parts = append(parts, genai.Text(p.Text))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func vertexSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        vertexType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Items:       vertexSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = vertexSchema(prop)
		}
	}
	return out
}

func vertexType(t SchemaType) genai.Type {
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
