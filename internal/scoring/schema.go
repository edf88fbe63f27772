package scoring

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// scoreSchema is the JSON Schema every oracle score response must satisfy
// before it is accepted. Responses that parse as JSON but miss a sub-score
// or carry a non-numeric value are classified as malformed.
const scoreSchema = `{
  "type": "object",
  "required": ["skills_match", "experience_match", "education_match", "keywords_match"],
  "properties": {
    "skills_match": {"type": "number"},
    "experience_match": {"type": "number"},
    "education_match": {"type": "number"},
    "keywords_match": {"type": "number"},
    "explanation": {
      "type": "object",
      "properties": {
        "overall": {"type": "string"},
        "strengths": {"type": "array", "items": {"type": "string"}},
        "weaknesses": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

var compiledScoreSchema = gojsonschema.NewStringLoader(scoreSchema)

// validateScorePayload checks a raw oracle response against the score schema.
func validateScorePayload(payload string) error {
	result, err := gojsonschema.Validate(compiledScoreSchema, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("response violates score schema: %s", strings.Join(problems, "; "))
}
