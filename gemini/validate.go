package gemini

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// validateJSON checks a response document against the contract's types and enums
func validateJSON(schema *Schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema.JSONSchema()),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("failed to validate response: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return fmt.Errorf("response does not match schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}
