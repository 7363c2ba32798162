package scoring

// Recommendation is the categorical verdict derived from the overall score.
type Recommendation string

const (
	RecommendYes   Recommendation = "yes"
	RecommendMaybe Recommendation = "maybe"
	RecommendNo    Recommendation = "no"
)

// Overall score thresholds. Ties go to the higher tier.
const (
	ThresholdYes   = 75
	ThresholdMaybe = 60
)

// Recommend maps an overall score to a recommendation.
func Recommend(overall int) Recommendation {
	switch {
	case overall >= ThresholdYes:
		return RecommendYes
	case overall >= ThresholdMaybe:
		return RecommendMaybe
	default:
		return RecommendNo
	}
}

// Headline returns the display heading for a recommendation.
func (r Recommendation) Headline() string {
	switch r {
	case RecommendYes:
		return "Highly Recommended"
	case RecommendMaybe:
		return "Consider with Preparation"
	case RecommendNo:
		return "Not Recommended Currently"
	default:
		return "Assessment Complete"
	}
}
