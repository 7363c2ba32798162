package assessment

// Progress describes where the respondent is in the assessment.
type Progress struct {
	Section          int // 1-based
	SectionID        string
	SectionTitle     string
	Question         int // 1-based, within the section
	SectionQuestions int
	Index            int // 1-based, across all sections
	TotalSections    int
	Answered         int
	TotalQuestions   int
	Percent          float64 // 0-100
}

// SectionIndex maps a flat question pointer onto (section, question within
// section), both 0-based. Pointers past the end land on the last question;
// negative pointers land on the first.
func SectionIndex(pointer int, lengths []int) (section, question int) {
	if pointer < 0 {
		return 0, 0
	}
	for i, n := range lengths {
		if pointer < n {
			return i, pointer
		}
		pointer -= n
	}
	if len(lengths) == 0 {
		return 0, 0
	}
	last := len(lengths) - 1
	return last, max(lengths[last]-1, 0)
}

// OverallPercent weighs every section equally regardless of its length:
// each completed section adds 100/sections, the current one a share of that
// proportional to how far into it the respondent is.
func OverallPercent(section, question, sectionQuestions, sections int) float64 {
	if sections == 0 || sectionQuestions == 0 {
		return 0
	}
	return (float64(section-1)*100 + float64(question)/float64(sectionQuestions)*100) / float64(sections)
}
