package report

import (
	"fmt"
	"strings"
)

// Text renders r as a markdown-flavoured plain-text report.
func Text(r Report) string {
	res := r.Results
	var b strings.Builder

	b.WriteString("# Should I become a Logistics Planner?\n\n")
	fmt.Fprintf(&b, "%s: %d/100\n", res.Recommendation.Headline(), res.Overall)
	if !r.CompletedAt.IsZero() {
		fmt.Fprintf(&b, "Completed %s", r.CompletedAt.Local().Format("Jan 02, 2006 15:04"))
		if d := r.Duration(); d > 0 {
			fmt.Fprintf(&b, " in %s", FormatDuration(d.Seconds()))
		}
		b.WriteString("\n")
	}
	if r.Total > 0 {
		fmt.Fprintf(&b, "Answered %d of %d questions\n", r.Answered, r.Total)
	}

	b.WriteString("\n## Scores\n\n")
	fmt.Fprintf(&b, "  %-20s %3d\n", "Personality Fit", res.Psychometric)
	fmt.Fprintf(&b, "  %-20s %3d\n", "Technical Skills", res.Technical)
	fmt.Fprintf(&b, "  %-20s %3d\n", "Career Readiness", res.Wiscar)
	fmt.Fprintf(&b, "  %-20s %3d\n", "Overall", res.Overall)

	if len(res.Dimensions) > 0 {
		b.WriteString("\n## WISCAR dimensions\n\n")
		for _, d := range res.Dimensions {
			fmt.Fprintf(&b, "  %-20s %3d\n", d.Name, d.Score)
		}
	}

	writeList(&b, "Strengths", res.Strengths)
	writeList(&b, "Areas to improve", res.Improvements)
	writeNumbered(&b, "Next steps", res.NextSteps)

	if len(res.CareerMatches) > 0 {
		b.WriteString("\n## Related careers\n")
		for _, c := range res.CareerMatches {
			fmt.Fprintf(&b, "\n### %s (%d%% match)\n\n%s\n", c.Title, c.Match, c.Description)
			if len(c.Requirements) > 0 {
				fmt.Fprintf(&b, "Requires: %s\n", strings.Join(c.Requirements, ", "))
			}
		}
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}

func writeNumbered(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, it)
	}
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
