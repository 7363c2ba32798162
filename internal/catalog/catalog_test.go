package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SectionsInOrder(t *testing.T) {
	sections := Default().Sections()
	require.Len(t, sections, 3)

	want := []struct {
		id      string
		count   int
		minutes int
	}{
		{SectionPsychometric, 6, 8},
		{SectionTechnical, 5, 12},
		{SectionWiscar, 6, 10},
	}
	for i, w := range want {
		assert.Equal(t, w.id, sections[i].ID)
		assert.Len(t, sections[i].Questions, w.count, "section %s", w.id)
		assert.Equal(t, w.minutes, sections[i].TimeEstimate, "section %s", w.id)
	}
}

func TestDefault_SectionLengths(t *testing.T) {
	assert.Equal(t, []int{6, 5, 6}, Default().SectionLengths())
	assert.Equal(t, 30, Default().TotalMinutes())
}

func TestDefault_QuestionLookup(t *testing.T) {
	q, ok := Default().Question("tech_2")
	require.True(t, ok)
	assert.Equal(t, TypeScenario, q.Type)
	assert.Equal(t, SectionTechnical, q.Section)
	assert.Equal(t, "logical_reasoning", q.Construct)
	assert.InDelta(t, 1.3, q.Weight, 1e-9)
	assert.Len(t, q.Options, 4)

	_, ok = Default().Question("nope")
	assert.False(t, ok)

	_, err := Default().Lookup("nope")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestDefault_QuestionsFlattenedInOrder(t *testing.T) {
	qs := Default().Questions()
	require.Len(t, qs, 17)
	assert.Equal(t, "psych_1", qs[0].ID)
	assert.Equal(t, "tech_1", qs[6].ID)
	assert.Equal(t, "wiscar_6", qs[16].ID)
}

func TestQuality(t *testing.T) {
	c := Default()
	tests := []struct {
		qid, answer string
		want        int
	}{
		{"tech_1", "16 trucks", 100},
		{"tech_1", "18 trucks", 20},
		{"tech_4", "=IF(urgent,fast_route,standard_route)", 100},
		{"tech_5", "C → A → B → E → D", 90},
		{"wiscar_6", "Stressful but doable", 50},
		{"tech_1", "99 trucks", UnscoredQuality},
		{"psych_1", "4", UnscoredQuality},
		{"unknown", "x", UnscoredQuality},
	}
	for _, tt := range tests {
		if got := c.Quality(tt.qid, tt.answer); got != tt.want {
			t.Errorf("Quality(%q, %q) = %d, want %d", tt.qid, tt.answer, got, tt.want)
		}
	}
}

func TestDimension(t *testing.T) {
	d := Default().Dimension("cognitive_readiness")
	assert.Equal(t, "Cognitive Readiness", d.Name)
	assert.NotEmpty(t, d.Description)

	unknown := Default().Dimension("general")
	assert.Equal(t, "general", unknown.Name)
	assert.Empty(t, unknown.Description)
}

func TestCareers_ReturnsCopy(t *testing.T) {
	c := Default()
	careers := c.Careers()
	require.Len(t, careers, 4)
	assert.Equal(t, "Supply Chain Analyst", careers[2].Title)
	assert.Equal(t, 95, careers[2].Match)

	careers[0].Title = "mutated"
	careers[0].Requirements[0] = "mutated"
	again := c.Careers()
	assert.Equal(t, "Inventory Analyst", again[0].Title)
	assert.Equal(t, "Excel proficiency", again[0].Requirements[0])
}

func TestSections_ReturnsCopy(t *testing.T) {
	c := Default()
	s, ok := c.Section(SectionWiscar)
	require.True(t, ok)
	s.Questions[0].Prompt = "mutated"

	again, _ := c.Section(SectionWiscar)
	assert.NotEqual(t, "mutated", again.Questions[0].Prompt)
}

const minimalCatalog = `
version: 1
sections:
  - id: psychometric
    title: P
    questions:
      - id: p1
        type: likert
        prompt: I plan ahead
  - id: technical
    title: T
    questions:
      - id: t1
        type: multiple-choice
        prompt: Pick one
        options: [a, b]
  - id: wiscar
    title: W
    questions:
      - id: w1
        type: likert
        prompt: I want this
        construct: will
        weight: 2
quality:
  t1: {a: 100}
`

func TestParse_AppliesDefaults(t *testing.T) {
	c, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	p1, _ := c.Question("p1")
	assert.Equal(t, DefaultConstruct, p1.Construct)
	assert.Equal(t, 1.0, p1.Weight)

	w1, _ := c.Question("w1")
	assert.Equal(t, "will", w1.Construct)
	assert.Equal(t, 2.0, w1.Weight)

	assert.Equal(t, 100, c.Quality("t1", "a"))
	assert.Equal(t, UnscoredQuality, c.Quality("t1", "b"))
	assert.Empty(t, c.Careers())
}

func TestParse_SchemaRejectsBadType(t *testing.T) {
	doc := `
version: 1
sections:
  - id: psychometric
    title: P
    questions:
      - id: p1
        type: essay
        prompt: Tell us
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParse_SchemaRejectsNonPositiveWeight(t *testing.T) {
	doc := `
version: 1
sections:
  - id: psychometric
    title: P
    questions:
      - id: p1
        type: likert
        prompt: x
        weight: -1
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, c.SectionLengths())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
