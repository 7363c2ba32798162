package docschema

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-sheet",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":   map[string]any{"type": "string"},
				"rating": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			},
			"required": []any{"name"},
		},
	}
}

func TestValidateJSON_Valid(t *testing.T) {
	if err := ValidateJSON(testSchema(), json.RawMessage(`{"name":"a","rating":3}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_MissingRequired(t *testing.T) {
	err := ValidateJSON(testSchema(), json.RawMessage(`{"rating":3}`))
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var docErr *ErrInvalidDocument
	if !errors.As(err, &docErr) {
		t.Fatalf("expected ErrInvalidDocument, got: %T", err)
	}
	if docErr.Schema != "test-sheet" {
		t.Errorf("Schema = %q, want %q", docErr.Schema, "test-sheet")
	}
}

func TestValidateJSON_Malformed(t *testing.T) {
	err := ValidateJSON(testSchema(), json.RawMessage(`{not json`))
	var docErr *ErrInvalidDocument
	if !errors.As(err, &docErr) {
		t.Fatalf("expected ErrInvalidDocument, got: %v", err)
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	if err := ValidateJSON(nil, json.RawMessage(`anything`)); err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateYAML_NormalizesDocument(t *testing.T) {
	raw, err := ValidateYAML(testSchema(), []byte("name: planner\nrating: 4\n"))
	if err != nil {
		t.Fatalf("ValidateYAML: %v", err)
	}
	var got struct {
		Name   string `json:"name"`
		Rating int    `json:"rating"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal normalized: %v", err)
	}
	if got.Name != "planner" || got.Rating != 4 {
		t.Errorf("got %+v, want name=planner rating=4", got)
	}
}

func TestValidateYAML_OutOfRange(t *testing.T) {
	_, err := ValidateYAML(testSchema(), []byte("name: planner\nrating: 9\n"))
	if err == nil {
		t.Fatal("expected error for rating above maximum")
	}
}
