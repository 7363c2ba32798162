// Package scoring turns a set of responses into section scores, an overall
// score, a recommendation and narrative feedback. Every function here is
// pure: same catalog and responses in, same Results out.
package scoring

import (
	"math"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
)

// Overall score blend in percent. Fixed policy, not configurable.
const (
	WeightPsychometric = 25
	WeightTechnical    = 35
	WeightWiscar       = 40
)

// Likert scale bounds. Ratings outside are clamped before mapping.
const (
	LikertMin = 1
	LikertMax = 5
)

// Scores holds the three headline section scores, each 0-100.
type Scores struct {
	Psychometric int `json:"psychometric"`
	Technical    int `json:"technical"`
	Wiscar       int `json:"wiscar"`
}

// SubScore grades a single answer on a 0-100 scale.
//
// Likert answers map linearly from 1..5 to 0..100; a likert answer that is
// not numeric grades 0. Every other type is graded from the catalog's
// answer-quality table.
func SubScore(cat *catalog.Catalog, q catalog.Question, a response.Answer) float64 {
	if q.Type == catalog.TypeLikert {
		v, ok := a.Number()
		if !ok {
			return 0
		}
		v = clamp(v, LikertMin, LikertMax)
		return (v - LikertMin) / (LikertMax - LikertMin) * 100
	}
	return float64(cat.Quality(q.ID, a.Text()))
}

// SectionScore is the weight-adjusted mean sub-score of the responses that
// belong to sectionID, rounded. Answers are accumulated in catalog order so
// the result does not depend on response order. A section with no matching
// responses scores 0.
//
// Only likert, multiple-choice and scenario questions earn credit here;
// matching questions count toward the weight with a sub-score of 0.
func SectionScore(cat *catalog.Catalog, responses []response.Response, sectionID string) int {
	section, ok := cat.Section(sectionID)
	if !ok {
		return 0
	}
	byQuestion := answersByQuestion(responses)

	var total, totalWeight float64
	for _, q := range section.Questions {
		a, answered := byQuestion[q.ID]
		if !answered {
			continue
		}
		total += sectionSubScore(cat, q, a) * q.Weight
		totalWeight += q.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return roundHalfUp(total / totalWeight)
}

func sectionSubScore(cat *catalog.Catalog, q catalog.Question, a response.Answer) float64 {
	switch q.Type {
	case catalog.TypeLikert, catalog.TypeMultipleChoice, catalog.TypeScenario:
		return SubScore(cat, q, a)
	default:
		return 0
	}
}

// WiscarScore averages WISCAR sub-scores per construct, then averages the
// construct means. Question weights are deliberately not applied on this
// path, and every construct counts equally regardless of how many
// questions feed it. No WISCAR responses scores 0.
func WiscarScore(cat *catalog.Catalog, responses []response.Response) int {
	groups := wiscarGroups(cat, responses)
	if len(groups) == 0 {
		return 0
	}
	var sum float64
	for _, g := range groups {
		sum += g.mean()
	}
	return roundHalfUp(sum / float64(len(groups)))
}

// OverallScore blends the section scores with the fixed policy weights.
// Integer arithmetic keeps x.5 blends from drifting below the rounding edge.
func OverallScore(s Scores) int {
	blend := WeightPsychometric*s.Psychometric +
		WeightTechnical*s.Technical +
		WeightWiscar*s.Wiscar
	return (blend + 50) / 100
}

// constructGroup collects the sub-scores of one construct.
type constructGroup struct {
	construct string
	scores    []float64
}

func (g constructGroup) mean() float64 {
	if len(g.scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range g.scores {
		sum += s
	}
	return sum / float64(len(g.scores))
}

// wiscarGroups buckets WISCAR sub-scores by construct, ordered by the
// construct's first appearance in the catalog.
func wiscarGroups(cat *catalog.Catalog, responses []response.Response) []constructGroup {
	section, ok := cat.Section(catalog.SectionWiscar)
	if !ok {
		return nil
	}

	byQuestion := answersByQuestion(responses)

	var groups []constructGroup
	index := make(map[string]int)
	for _, q := range section.Questions {
		a, answered := byQuestion[q.ID]
		if !answered {
			continue
		}
		i, seen := index[q.Construct]
		if !seen {
			i = len(groups)
			index[q.Construct] = i
			groups = append(groups, constructGroup{construct: q.Construct})
		}
		groups[i].scores = append(groups[i].scores, SubScore(cat, q, a))
	}
	return groups
}

// answersByQuestion indexes responses by question ID. A later response for
// the same question replaces an earlier one.
func answersByQuestion(responses []response.Response) map[string]response.Answer {
	byQuestion := make(map[string]response.Answer, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r.Answer
	}
	return byQuestion
}

// roundHalfUp rounds to the nearest integer with .5 going up. The value is
// first snapped to 1e-9 so a mean that is exactly x.5 in decimal, but lands
// a hair below it in binary, still rounds up.
func roundHalfUp(v float64) int {
	v = math.Round(v*1e9) / 1e9
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
