package scoring

import (
	"slices"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
)

const (
	strongSectionScore = 80 // section score at or above earns a strength
	weakSectionScore   = 70 // section score below earns an improvement
	strongRating       = 4  // likert rating at or above earns a strength
	weakAnswerQuality  = 80 // targeted answer grade below earns an improvement
)

type sectionRule struct {
	score func(Scores) int
	text  string
}

type answerRule struct {
	questionID string
	text       string
}

var sectionStrengths = []sectionRule{
	{func(s Scores) int { return s.Psychometric }, "Strong personality fit for logistics planning roles"},
	{func(s Scores) int { return s.Technical }, "Excellent analytical and technical problem-solving abilities"},
	{func(s Scores) int { return s.Wiscar }, "High career readiness and motivation"},
}

// Likert items whose high ratings are called out individually.
var ratingStrengths = []answerRule{
	{"wiscar_1", "Strong motivation and commitment to logistics career"},
	{"psych_1", "Natural planning and organizational mindset"},
	{"psych_2", "Ability to work effectively under pressure"},
}

var fallbackStrengths = []string{
	"Completed comprehensive assessment",
	"Demonstrates interest in logistics field",
}

var sectionImprovements = []sectionRule{
	{func(s Scores) int { return s.Technical }, "Develop technical skills in Excel, data analysis, and logistics software"},
	{func(s Scores) int { return s.Psychometric }, "Build comfort with structured, detail-oriented work environments"},
	{func(s Scores) int { return s.Wiscar }, "Gain more exposure to logistics and supply chain concepts"},
}

// Technical items whose weak answers point at a specific skill gap.
var answerImprovements = []answerRule{
	{"tech_4", "Strengthen Excel and analytical tool proficiency"},
	{"tech_3", "Build foundational supply chain and logistics knowledge"},
}

var fallbackImprovements = []string{
	"Continue developing relevant skills and experience",
}

var nextSteps = map[Recommendation][]string{
	RecommendYes: {
		"Enroll in a logistics or supply chain certification program",
		"Start building experience with Excel and data analysis",
		"Network with logistics professionals on LinkedIn",
		"Apply for logistics coordinator or analyst positions",
	},
	RecommendMaybe: {
		"Focus on strengthening identified skill gaps",
		"Take online courses to build technical competencies",
		"Gain practical experience through projects or internships",
		"Retake this assessment in 3-6 months to track progress",
	},
	RecommendNo: {
		"Consider alternative careers in operations or business analysis",
		"Develop foundational business and analytical skills",
		"Explore related fields that match your strengths better",
		"Focus on roles that leverage your natural talents and interests",
	},
}

// Strengths lists what the respondent did well. Never empty.
func Strengths(cat *catalog.Catalog, responses []response.Response, s Scores) []string {
	var out []string
	for _, rule := range sectionStrengths {
		if rule.score(s) >= strongSectionScore {
			out = append(out, rule.text)
		}
	}
	for _, rule := range ratingStrengths {
		a, _, ok := answerFor(cat, responses, rule.questionID)
		if !ok {
			continue
		}
		if v, numeric := a.Number(); numeric && v >= strongRating {
			out = append(out, rule.text)
		}
	}
	if len(out) == 0 {
		return slices.Clone(fallbackStrengths)
	}
	return out
}

// Improvements lists areas to develop. Never empty.
func Improvements(cat *catalog.Catalog, responses []response.Response, s Scores) []string {
	var out []string
	for _, rule := range sectionImprovements {
		if rule.score(s) < weakSectionScore {
			out = append(out, rule.text)
		}
	}
	for _, rule := range answerImprovements {
		a, q, ok := answerFor(cat, responses, rule.questionID)
		if !ok {
			continue
		}
		if SubScore(cat, q, a) < weakAnswerQuality {
			out = append(out, rule.text)
		}
	}
	if len(out) == 0 {
		return slices.Clone(fallbackImprovements)
	}
	return out
}

// NextSteps returns the fixed action plan for a recommendation.
func NextSteps(r Recommendation) []string {
	return slices.Clone(nextSteps[r])
}

// answerFor finds the answer to a catalog question among responses. The
// last response for the question wins, as in SectionScore.
func answerFor(cat *catalog.Catalog, responses []response.Response, questionID string) (response.Answer, catalog.Question, bool) {
	q, ok := cat.Question(questionID)
	if !ok {
		return response.Answer{}, catalog.Question{}, false
	}
	for i := len(responses) - 1; i >= 0; i-- {
		if responses[i].QuestionID == questionID {
			return responses[i].Answer, q, true
		}
	}
	return response.Answer{}, catalog.Question{}, false
}
