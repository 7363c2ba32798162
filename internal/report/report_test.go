package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
	"github.com/abhisek/careerfit/internal/scoring"
)

func testReport() Report {
	cat := catalog.Default()
	res := scoring.Calculate(cat, []response.Response{
		{QuestionID: "psych_1", Answer: response.Rating(5)},
		{QuestionID: "psych_3", Answer: response.Rating(4)},
		{QuestionID: "tech_1", Answer: response.Choice("16 trucks")},
	})
	done := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return Report{
		AttemptID:   "attempt-1",
		StartedAt:   done.Add(-(21*time.Minute + 5*time.Second)),
		CompletedAt: done,
		Answered:    3,
		Total:       len(cat.Questions()),
		Results:     res,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"md", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("out/report.json"))
	assert.Equal(t, FormatYAML, FormatForPath("report.yaml"))
	assert.Equal(t, FormatText, FormatForPath("report.md"))
	assert.Equal(t, FormatText, FormatForPath("report"))
	assert.Equal(t, FormatText, FormatForPath("report.pdf"))
}

func TestText(t *testing.T) {
	r := testReport()
	out := Text(r)

	assert.Contains(t, out, r.Results.Recommendation.Headline())
	assert.Contains(t, out, "in 21:05")
	assert.Contains(t, out, "Answered 3 of")
	for _, s := range r.Results.Strengths {
		assert.Contains(t, out, "- "+s)
	}
	assert.Contains(t, out, "1. "+r.Results.NextSteps[0])
	assert.Contains(t, out, r.Results.CareerMatches[0].Title)
}

func TestText_NoTimes(t *testing.T) {
	r := testReport()
	r.StartedAt, r.CompletedAt = time.Time{}, time.Time{}
	out := Text(r)
	assert.NotContains(t, out, "Completed")
	assert.Zero(t, r.Duration())
}

func TestWrite_JSON(t *testing.T) {
	r := testReport()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, r))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "attempt-1", doc["attempt_id"])
	assert.Equal(t, float64(21*60+5), doc["duration_secs"])
	scores := doc["scores"].(map[string]any)
	assert.Equal(t, float64(r.Results.Overall), scores["overall"])
	assert.Equal(t, string(r.Results.Recommendation), doc["recommendation"])
}

func TestWrite_YAML(t *testing.T) {
	r := testReport()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, r))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, r.Results.Technical, doc.Scores.Technical)
	assert.Len(t, doc.Careers, len(r.Results.CareerMatches))
	assert.Equal(t, r.Results.Recommendation.Headline(), doc.Headline)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("pdf"), testReport()))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.json")
	require.NoError(t, WriteFile(path, testReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
}

func TestDefaultFileName(t *testing.T) {
	r := testReport()
	name := DefaultFileName(r, FormatText)
	assert.True(t, strings.HasPrefix(name, "careerfit-2026"), name)
	assert.True(t, strings.HasSuffix(name, ".md"), name)
	assert.True(t, strings.HasSuffix(DefaultFileName(r, FormatYAML), ".yaml"))
}
