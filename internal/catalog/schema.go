package catalog

import "github.com/abhisek/careerfit/internal/docschema"

// DocumentSchema is the structural schema of a catalog document. Cross-field
// rules (unique IDs, options per type) are checked by validateDocument.
var DocumentSchema = &docschema.Schema{
	Name: "careerfit-catalog",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"version", "sections"},
		"properties": map[string]any{
			"version": map[string]any{"type": "integer", "const": 1},
			"sections": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    sectionSchema,
			},
			"quality": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"additionalProperties": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": 100,
					},
				},
			},
			"dimensions": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":     "object",
					"required": []any{"name"},
					"properties": map[string]any{
						"name":        map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string"},
					},
				},
			},
			"careers": map[string]any{
				"type":  "array",
				"items": careerSchema,
			},
		},
	},
}

var sectionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title", "questions"},
	"properties": map[string]any{
		"id":            map[string]any{"type": "string", "minLength": 1},
		"title":         map[string]any{"type": "string"},
		"description":   map[string]any{"type": "string"},
		"icon":          map[string]any{"type": "string"},
		"time_estimate": map[string]any{"type": "integer", "minimum": 0},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    questionSchema,
		},
	},
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "type", "prompt"},
	"properties": map[string]any{
		"id":     map[string]any{"type": "string", "minLength": 1},
		"type":   map[string]any{"type": "string", "enum": []any{"multiple-choice", "likert", "scenario", "matching"}},
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"construct": map[string]any{"type": "string"},
		"weight":    map[string]any{"type": "number", "exclusiveMinimum": 0},
	},
}

var careerSchema = map[string]any{
	"type":     "object",
	"required": []any{"title", "match"},
	"properties": map[string]any{
		"title":       map[string]any{"type": "string"},
		"match":       map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"description": map[string]any{"type": "string"},
		"requirements": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}
