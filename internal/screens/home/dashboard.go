package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/screens/welcome"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// contentWidth returns the uniform inner width used for all sections so
// the boxes line up.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 74)
}

// renderTitle returns the banner and tagline.
func renderTitle(cw int, compact bool) string {
	title := welcome.RenderBanner(cw)
	if compact {
		title = welcome.RenderBanner(0)
	}
	tagline := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(welcome.Tagline)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + tagline)
}

// stats is what the dashboard knows about past attempts.
type stats struct {
	enabled bool // false when history is off
	loaded  bool
	latest  *store.Record
	count   int
	err     error
}

// renderStatsBar renders the last result and attempt count in a bordered box
// matching content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	switch {
	case !st.enabled:
		line = dim.Render("HISTORY OFF")
	case st.err != nil:
		line = lipgloss.NewStyle().Foreground(theme.Error).Render("HISTORY UNAVAILABLE")
	case !st.loaded:
		line = dim.Render("…")
	case st.latest == nil:
		line = dim.Render("NO ATTEMPTS YET")
	default:
		r := st.latest.Results
		score := lipgloss.NewStyle().Foreground(theme.ScoreColor(r.Overall)).Bold(true)
		count := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		if compact {
			line = fmt.Sprintf("%s  %s",
				score.Render(fmt.Sprintf("★%d", r.Overall)),
				count.Render(fmt.Sprintf("#%d", st.count)))
		} else {
			line = fmt.Sprintf("%s  %s  %s",
				score.Render(fmt.Sprintf("★ LAST %d", r.Overall)),
				lipgloss.NewStyle().Foreground(theme.RecommendationColor(r.Recommendation)).
					Render(r.Recommendation.Headline()),
				count.Render(fmt.Sprintf("◆ %d ATTEMPTS", st.count)))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
