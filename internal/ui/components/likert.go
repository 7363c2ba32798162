package components

import "strconv"

// LikertLabels are the agreement labels for ratings 1 to 5.
var LikertLabels = []string{
	"Strongly Disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly Agree",
}

// NewLikert builds a MultiChoice over the agreement scale with rating
// preselected. rating 0 means unanswered.
func NewLikert(rating int) MultiChoice {
	current := ""
	if rating >= 1 && rating <= len(LikertLabels) {
		current = LikertLabels[rating-1]
	}
	return NewMultiChoice(LikertLabels, current)
}

// LikertRating converts a chosen label back to its 1-5 rating.
func LikertRating(m MultiChoice) (int, bool) {
	if _, ok := m.Value(); !ok {
		return 0, false
	}
	return m.Chosen + 1, true
}

// LikertLabel describes a rating, e.g. "4 - Agree".
func LikertLabel(rating int) string {
	if rating < 1 || rating > len(LikertLabels) {
		return strconv.Itoa(rating)
	}
	return strconv.Itoa(rating) + " - " + LikertLabels[rating-1]
}
