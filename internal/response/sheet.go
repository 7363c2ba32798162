package response

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/careerfit/internal/docschema"
)

// SheetSchema describes a response sheet: a list of question ids with the
// answer given to each, as YAML or JSON.
var SheetSchema = &docschema.Schema{
	Name: "response-sheet",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"responses"},
		"properties": map[string]any{
			"responses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"answer": map[string]any{
							"oneOf": []any{
								map[string]any{"type": "string"},
								map[string]any{"type": "integer"},
							},
						},
					},
				},
			},
		},
	},
}

type sheet struct {
	Responses []Response `json:"responses"`
}

// ParseSheet validates and decodes a response sheet. Later entries for the
// same question replace earlier ones, as they would in a Store.
func ParseSheet(data []byte) ([]Response, error) {
	raw, err := docschema.ValidateYAML(SheetSchema, data)
	if err != nil {
		return nil, err
	}

	var doc sheet
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode response sheet: %w", err)
	}

	s := NewStore()
	for _, r := range doc.Responses {
		s.Record(r.QuestionID, r.Answer)
	}
	return s.Responses(), nil
}
