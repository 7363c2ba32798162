package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// validateDocument performs the cross-field checks the schema can't express.
// Returns a combined error describing all problems found, or nil if valid.
func validateDocument(doc *document) error {
	var errs []string

	sectionIDs := make(map[string]bool, len(doc.Sections))
	questionIDs := make(map[string]Question)

	for _, s := range doc.Sections {
		if sectionIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", s.ID))
		}
		sectionIDs[s.ID] = true

		for _, q := range s.Questions {
			if prev, ok := questionIDs[q.ID]; ok {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q (sections %q and %q)", q.ID, prev.Section, s.ID))
			}
			questionIDs[q.ID] = q

			if q.Type != TypeLikert && len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("question %q: %s questions need options", q.ID, q.Type))
			}
			if q.Weight <= 0 {
				errs = append(errs, fmt.Sprintf("question %q: weight must be > 0, got %v", q.ID, q.Weight))
			}
		}
	}

	for _, id := range []string{SectionPsychometric, SectionTechnical, SectionWiscar} {
		if !sectionIDs[id] {
			errs = append(errs, fmt.Sprintf("section %q is required for scoring", id))
		}
	}

	// Quality entries must point at real questions and offered options.
	for qid, grades := range doc.Quality {
		q, ok := questionIDs[qid]
		if !ok {
			errs = append(errs, fmt.Sprintf("quality table references nonexistent question %q", qid))
			continue
		}
		for option := range grades {
			if !slices.Contains(q.Options, option) {
				errs = append(errs, fmt.Sprintf("quality table grades %q for question %q, which is not one of its options", option, qid))
			}
		}
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
