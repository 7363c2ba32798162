package scoring

import (
	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
)

// DimensionScore is the average sub-score of one WISCAR construct.
type DimensionScore struct {
	Construct   string `json:"construct"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Score       int    `json:"score"`
}

// Results is the outcome of a completed attempt.
type Results struct {
	Scores
	Overall        int              `json:"overall"`
	Recommendation Recommendation   `json:"recommendation"`
	Strengths      []string         `json:"strengths"`
	Improvements   []string         `json:"improvements"`
	NextSteps      []string         `json:"next_steps"`
	CareerMatches  []catalog.Career `json:"career_matches"`
	Dimensions     []DimensionScore `json:"dimensions"`
}

// Calculate scores a full set of responses. Responses for questions the
// catalog does not know are ignored.
func Calculate(cat *catalog.Catalog, responses []response.Response) Results {
	s := Scores{
		Psychometric: SectionScore(cat, responses, catalog.SectionPsychometric),
		Technical:    SectionScore(cat, responses, catalog.SectionTechnical),
		Wiscar:       WiscarScore(cat, responses),
	}
	overall := OverallScore(s)
	rec := Recommend(overall)

	return Results{
		Scores:         s,
		Overall:        overall,
		Recommendation: rec,
		Strengths:      Strengths(cat, responses, s),
		Improvements:   Improvements(cat, responses, s),
		NextSteps:      NextSteps(rec),
		CareerMatches:  cat.Careers(),
		Dimensions:     Dimensions(cat, responses),
	}
}

// Dimensions breaks the WISCAR score down per construct, in catalog order.
// Constructs without any response are omitted.
func Dimensions(cat *catalog.Catalog, responses []response.Response) []DimensionScore {
	groups := wiscarGroups(cat, responses)
	out := make([]DimensionScore, 0, len(groups))
	for _, g := range groups {
		d := cat.Dimension(g.construct)
		out = append(out, DimensionScore{
			Construct:   g.construct,
			Name:        d.Name,
			Description: d.Description,
			Score:       roundHalfUp(g.mean()),
		})
	}
	return out
}
