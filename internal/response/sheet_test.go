package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/docschema"
)

func TestParseSheet_YAML(t *testing.T) {
	data := []byte(`
responses:
  - question: psych_1
    answer: 4
  - question: tech_1
    answer: 16 trucks
`)
	got, err := ParseSheet(data)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "psych_1", got[0].QuestionID)
	assert.True(t, got[0].Answer.IsRating())
	assert.Equal(t, "4", got[0].Answer.Text())
	assert.Equal(t, "16 trucks", got[1].Answer.Text())
	assert.False(t, got[1].Answer.IsRating())
}

func TestParseSheet_JSONDuplicatesReplace(t *testing.T) {
	data := []byte(`{"responses": [{"question": "psych_1", "answer": 2}, ` +
		`{"question": "psych_2", "answer": 3}, {"question": "psych_1", "answer": 5}]}`)
	got, err := ParseSheet(data)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "psych_2", got[0].QuestionID)
	assert.Equal(t, "psych_1", got[1].QuestionID)
	assert.Equal(t, "5", got[1].Answer.Text())
}

func TestParseSheet_NaNAnswerIsNotNumeric(t *testing.T) {
	data := []byte(`
responses:
  - question: psych_1
    answer: "NaN"
`)
	got, err := ParseSheet(data)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, ok := got[0].Answer.Number()
	assert.False(t, ok)
}

func TestParseSheet_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "responses: [unclosed"},
		{"missing responses", "answers: []"},
		{"missing answer", "responses:\n  - question: psych_1\n"},
		{"fractional answer", "responses:\n  - question: psych_1\n    answer: 3.5\n"},
		{"unknown field", "responses:\n  - question: psych_1\n    answer: 3\n    note: hi\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSheet([]byte(tt.data))
			require.Error(t, err)
			var invalid *docschema.ErrInvalidDocument
			assert.True(t, errors.As(err, &invalid), "got %T: %v", err, err)
		})
	}
}

func TestParseSheet_Empty(t *testing.T) {
	got, err := ParseSheet([]byte("responses: []\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
