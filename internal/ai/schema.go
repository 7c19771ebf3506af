package ai

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// recommendationSchema is the contract the AI response must satisfy before
// anything downstream touches it. Anything that fails here is discarded in
// favor of the fallback set.
const recommendationSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["name", "category"],
		"properties": {
			"title": {"type": "string"},
			"name": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"category": {"type": "string", "minLength": 1},
			"proficiencyLevel": {"type": "string"}
		}
	}
}`

// validateRecommendationJSON checks a raw AI response against the
// recommendation schema.
func validateRecommendationJSON(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(recommendationSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to validate recommendations: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("recommendations do not match schema: %v", result.Errors())
	}
	return nil
}
