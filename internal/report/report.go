// Package report renders a completed assessment for people and machines:
// a plain-text report, or the same data as JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/careerfit/internal/scoring"
)

// Format selects how a report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat accepts a format name; "" means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text", "txt", "md", "markdown":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
}

// FormatForPath picks a format from a file extension, defaulting to text.
func FormatForPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatText
	}
	return f
}

// Report is one completed attempt. AttemptID and the times are optional;
// a sheet scored offline has neither.
type Report struct {
	AttemptID   string
	StartedAt   time.Time
	CompletedAt time.Time
	Answered    int
	Total       int
	Results     scoring.Results
}

// Duration is how long the attempt took, zero when unknown.
func (r Report) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// document is the machine-readable shape shared by JSON and YAML output.
type document struct {
	AttemptID      string      `json:"attempt_id,omitempty" yaml:"attempt_id,omitempty"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	DurationSecs   int         `json:"duration_secs,omitempty" yaml:"duration_secs,omitempty"`
	Answered       int         `json:"answered" yaml:"answered"`
	Total          int         `json:"total" yaml:"total"`
	Scores         scoresDoc   `json:"scores" yaml:"scores"`
	Recommendation string      `json:"recommendation" yaml:"recommendation"`
	Headline       string      `json:"headline" yaml:"headline"`
	Dimensions     []dimDoc    `json:"dimensions" yaml:"dimensions"`
	Strengths      []string    `json:"strengths" yaml:"strengths"`
	Improvements   []string    `json:"improvements" yaml:"improvements"`
	NextSteps      []string    `json:"next_steps" yaml:"next_steps"`
	Careers        []careerDoc `json:"career_matches" yaml:"career_matches"`
}

type scoresDoc struct {
	Psychometric int `json:"psychometric" yaml:"psychometric"`
	Technical    int `json:"technical" yaml:"technical"`
	Wiscar       int `json:"wiscar" yaml:"wiscar"`
	Overall      int `json:"overall" yaml:"overall"`
}

type dimDoc struct {
	Construct string `json:"construct" yaml:"construct"`
	Name      string `json:"name" yaml:"name"`
	Score     int    `json:"score" yaml:"score"`
}

type careerDoc struct {
	Title        string   `json:"title" yaml:"title"`
	Match        int      `json:"match" yaml:"match"`
	Description  string   `json:"description" yaml:"description"`
	Requirements []string `json:"requirements" yaml:"requirements"`
}

func toDocument(r Report) document {
	res := r.Results
	doc := document{
		AttemptID:      r.AttemptID,
		DurationSecs:   int(r.Duration().Seconds()),
		Answered:       r.Answered,
		Total:          r.Total,
		Recommendation: string(res.Recommendation),
		Headline:       res.Recommendation.Headline(),
		Scores: scoresDoc{
			Psychometric: res.Psychometric,
			Technical:    res.Technical,
			Wiscar:       res.Wiscar,
			Overall:      res.Overall,
		},
		Dimensions:   []dimDoc{},
		Strengths:    res.Strengths,
		Improvements: res.Improvements,
		NextSteps:    res.NextSteps,
		Careers:      []careerDoc{},
	}
	if !r.CompletedAt.IsZero() {
		t := r.CompletedAt.UTC()
		doc.CompletedAt = &t
	}
	for _, d := range res.Dimensions {
		doc.Dimensions = append(doc.Dimensions, dimDoc{Construct: d.Construct, Name: d.Name, Score: d.Score})
	}
	for _, c := range res.CareerMatches {
		doc.Careers = append(doc.Careers, careerDoc{
			Title:        c.Title,
			Match:        c.Match,
			Description:  c.Description,
			Requirements: c.Requirements,
		})
	}
	return doc
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDocument(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(r)); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		_, err := io.WriteString(w, Text(r))
		return err
	}
	return fmt.Errorf("unknown report format %q", f)
}

// WriteFile writes r to path in the format implied by its extension,
// creating parent directories.
func WriteFile(path string, r Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Write(f, FormatForPath(path), r); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

// DefaultFileName is a timestamped file name for an exported report.
func DefaultFileName(r Report, f Format) string {
	ts := r.CompletedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	ext := string(f)
	if f == FormatText {
		ext = "md"
	}
	return fmt.Sprintf("careerfit-%s.%s", ts.Local().Format("20060102-150405"), ext)
}
