// Package catalog holds the assessment's reference data: sections and their
// questions, the answer-quality table used to grade choice questions, WISCAR
// dimension descriptions and the alternative careers list.
//
// The data ships as an embedded YAML document and is read-only once loaded.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/abhisek/careerfit/internal/docschema"
)

// QuestionType determines how an answer is graded.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeLikert         QuestionType = "likert"
	TypeScenario       QuestionType = "scenario"
	TypeMatching       QuestionType = "matching"
)

// DefaultConstruct is assigned to questions that name no construct.
const DefaultConstruct = "general"

// Section IDs the scoring engine depends on.
const (
	SectionPsychometric = "psychometric"
	SectionTechnical    = "technical"
	SectionWiscar       = "wiscar"
)

// Question is a single assessment item.
type Question struct {
	ID        string       `json:"id"`
	Section   string       `json:"-"`
	Type      QuestionType `json:"type"`
	Prompt    string       `json:"prompt"`
	Options   []string     `json:"options,omitempty"`
	Construct string       `json:"construct,omitempty"`
	Weight    float64      `json:"weight,omitempty"`
}

// Section is an ordered group of questions presented together.
type Section struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	TimeEstimate int        `json:"time_estimate"` // minutes
	Questions    []Question `json:"questions"`
}

// Dimension describes a WISCAR construct for display.
type Dimension struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Career is a static alternative-career suggestion.
type Career struct {
	Title        string   `json:"title"`
	Match        int      `json:"match"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// document is the on-disk shape of a catalog.
type document struct {
	Version    int                       `json:"version"`
	Sections   []Section                 `json:"sections"`
	Quality    map[string]map[string]int `json:"quality"`
	Dimensions map[string]Dimension      `json:"dimensions"`
	Careers    []Career                  `json:"careers"`
}

// Catalog is an immutable, indexed view over a loaded catalog document.
type Catalog struct {
	sections   []Section
	questions  []Question
	byID       map[string]Question
	quality    map[string]map[string]int
	dimensions map[string]Dimension
	careers    []Career
}

//go:embed data/catalog.yaml
var embedded []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog embedded in the binary. The embedded document
// is validated by tests, so a failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load reads a catalog document from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates and indexes a YAML or JSON catalog document.
func Parse(data []byte) (*Catalog, error) {
	raw, err := docschema.ValidateYAML(DocumentSchema, data)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	applyDefaults(&doc)
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	return build(&doc), nil
}

func applyDefaults(doc *document) {
	for si := range doc.Sections {
		s := &doc.Sections[si]
		for qi := range s.Questions {
			q := &s.Questions[qi]
			q.Section = s.ID
			if q.Construct == "" {
				q.Construct = DefaultConstruct
			}
			if q.Weight == 0 {
				q.Weight = 1
			}
		}
	}
}

func build(doc *document) *Catalog {
	c := &Catalog{
		sections:   doc.Sections,
		byID:       make(map[string]Question),
		quality:    doc.Quality,
		dimensions: doc.Dimensions,
		careers:    doc.Careers,
	}
	for _, s := range doc.Sections {
		for _, q := range s.Questions {
			c.questions = append(c.questions, q)
			c.byID[q.ID] = q
		}
	}
	return c
}

// Sections returns all sections in presentation order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		s.Questions = slices.Clone(s.Questions)
		out[i] = s
	}
	return out
}

// Section returns the section with the given ID.
func (c *Catalog) Section(id string) (Section, bool) {
	for _, s := range c.sections {
		if s.ID == id {
			s.Questions = slices.Clone(s.Questions)
			return s, true
		}
	}
	return Section{}, false
}

// Questions returns every question in presentation order.
func (c *Catalog) Questions() []Question {
	return slices.Clone(c.questions)
}

// ErrQuestionNotFound is returned by Lookup for IDs the catalog does not hold.
var ErrQuestionNotFound = errors.New("question not found")

// Question looks up a question by ID.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Lookup is Question for callers that propagate errors.
func (c *Catalog) Lookup(id string) (Question, error) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, id)
	}
	return q, nil
}

// SectionLengths returns the number of questions in each section, in order.
func (c *Catalog) SectionLengths() []int {
	lengths := make([]int, len(c.sections))
	for i, s := range c.sections {
		lengths[i] = len(s.Questions)
	}
	return lengths
}

// TotalMinutes sums the display time estimates of all sections.
func (c *Catalog) TotalMinutes() int {
	var total int
	for _, s := range c.sections {
		total += s.TimeEstimate
	}
	return total
}

// Quality grades a chosen option for questionID on a 0-100 scale.
// Pairs missing from the table grade as UnscoredQuality.
func (c *Catalog) Quality(questionID, answer string) int {
	if v, ok := c.quality[questionID][answer]; ok {
		return v
	}
	return UnscoredQuality
}

// UnscoredQuality is the grade of an answer the quality table does not list.
const UnscoredQuality = 50

// Dimension returns display info for a construct. Unknown constructs get
// their raw name and no description.
func (c *Catalog) Dimension(construct string) Dimension {
	if d, ok := c.dimensions[construct]; ok {
		return d
	}
	return Dimension{Name: construct}
}

// Careers returns the alternative career suggestions.
func (c *Catalog) Careers() []Career {
	out := make([]Career, len(c.careers))
	for i, cr := range c.careers {
		cr.Requirements = slices.Clone(cr.Requirements)
		out[i] = cr
	}
	return out
}
