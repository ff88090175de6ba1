package gemini

import "github.com/kusasa/backend/models"

// SchemaType mirrors the OpenAPI subset understood by the engine
type SchemaType string

// SchemaType constants
const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
)

// Schema is a backend-neutral response contract. Each engine converts it to
// its SDK's representation; validation renders it as JSON Schema.
type Schema struct {
	Type        SchemaType
	Description string
	Enum        []string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

// CandidateProfileSchema is the contract for profile extraction
func CandidateProfileSchema() *Schema {
	levels := make([]string, 0, len(models.SkillLevels))
	for _, level := range models.SkillLevels {
		levels = append(levels, string(level))
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"summary":         {Type: TypeString},
			"yearsExperience": {Type: TypeNumber},
			"extractedSkills": {
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"name":  {Type: TypeString},
						"level": {Type: TypeString, Enum: levels},
					},
				},
			},
			"suggestedRoles": {
				Type:  TypeArray,
				Items: &Schema{Type: TypeString},
			},
		},
		Required: []string{"summary", "extractedSkills", "yearsExperience", "suggestedRoles"},
	}
}

// MatchResponseSchema is the contract for job matching
func MatchResponseSchema() *Schema {
	course := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":       {Type: TypeString},
			"provider":    {Type: TypeString},
			"duration":    {Type: TypeString},
			"cost":        {Type: TypeString},
			"description": {Type: TypeString},
			"url":         {Type: TypeString, Description: "A valid URL or search query URL"},
		},
	}

	match := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"jobId":         {Type: TypeString},
			"matchScore":    {Type: TypeNumber, Description: "Score between 0 and 100"},
			"missingSkills": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"reasoning":     {Type: TypeString},
			"recommendedCourses": {
				Type:  TypeArray,
				Items: course,
			},
		},
		Required: []string{"jobId", "matchScore", "missingSkills", "reasoning"},
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"matches": {Type: TypeArray, Items: match},
		},
	}
}

// JSONSchema renders the contract as a JSON Schema document for validation.
// Required lists are left to the engine; absent fields pass through as zero values.
func (s *Schema) JSONSchema() map[string]interface{} {
	out := map[string]interface{}{
		"type": string(s.Type),
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
	}
	return out
}
