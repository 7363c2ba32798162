package summary

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

var (
	dimStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	okStyle  = lipgloss.NewStyle().Foreground(theme.Success)
	errStyle = lipgloss.NewStyle().Foreground(theme.Error)
)

// barLabelWidth fits the longest section or dimension name.
const barLabelWidth = 18

// renderReport lays out the full results report, centered in width.
func renderReport(r report.Report, width int) string {
	res := r.Results
	cw := layout.ContentWidth(width)
	inner := cw - 6 // card border + padding

	var blocks []string

	blocks = append(blocks,
		theme.Title.Width(cw).Render("Assessment Complete!"),
		theme.Subtitle.Width(cw).Render("Your personalized career guidance report"),
		"",
		renderVerdict(res, r, cw),
	)

	scores := []string{
		components.NewScoreBar("Personality Fit", res.Psychometric, barLabelWidth, inner).View(),
		components.NewScoreBar("Technical Skills", res.Technical, barLabelWidth, inner).View(),
		components.NewScoreBar("Career Readiness", res.Wiscar, barLabelWidth, inner).View(),
	}
	blocks = append(blocks, components.TitledCard("Scores", strings.Join(scores, "\n"), cw))

	if len(res.Dimensions) > 0 {
		var dims []string
		for _, d := range res.Dimensions {
			dims = append(dims, components.NewScoreBar(d.Name, d.Score, barLabelWidth, inner).View())
			if d.Description != "" {
				dims = append(dims, dimStyle.Width(inner).Render("  "+d.Description))
			}
		}
		blocks = append(blocks, components.TitledCard("WISCAR Dimensions", strings.Join(dims, "\n"), cw))
	}

	blocks = append(blocks,
		components.TitledCard("Your Strengths", bulletList(res.Strengths, "✓", theme.Success, inner), cw),
		components.TitledCard("Areas for Improvement", bulletList(res.Improvements, "→", theme.Accent, inner), cw),
		components.TitledCard("Recommended Next Steps", numberedList(res.NextSteps, inner), cw),
	)

	if len(res.CareerMatches) > 0 {
		blocks = append(blocks, components.TitledCard("Alternative Career Paths", renderCareers(res, inner), cw))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func renderVerdict(res scoring.Results, r report.Report, cw int) string {
	verdictColor := theme.RecommendationColor(res.Recommendation)

	score := lipgloss.NewStyle().Foreground(verdictColor).Bold(true).
		Render(fmt.Sprintf("%d", res.Overall)) +
		dimStyle.Render(" / 100")
	headline := lipgloss.NewStyle().Foreground(verdictColor).Bold(true).
		Render(res.Recommendation.Headline())

	lines := []string{score, headline}
	var meta []string
	if r.Total > 0 {
		meta = append(meta, fmt.Sprintf("%d of %d answered", r.Answered, r.Total))
	}
	if d := r.Duration(); d > 0 {
		meta = append(meta, "took "+report.FormatDuration(d.Seconds()))
	}
	if !r.CompletedAt.IsZero() {
		meta = append(meta, r.CompletedAt.Local().Format("Jan 02, 2006 15:04"))
	}
	if len(meta) > 0 {
		lines = append(lines, dimStyle.Render(strings.Join(meta, " · ")))
	}

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func bulletList(items []string, mark string, markColor color.Color, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 2)
	markStyle := lipgloss.NewStyle().Foreground(markColor)

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, markStyle.Render(mark+" "), style.Render(it)))
	}
	return strings.Join(lines, "\n")
}

func numberedList(items []string, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4)
	lines := make([]string, 0, len(items))
	for i, it := range items {
		num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d. ", i+1))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, num, style.Render(it)))
	}
	return strings.Join(lines, "\n")
}

func renderCareers(res scoring.Results, width int) string {
	var parts []string
	for _, c := range res.CareerMatches {
		head := theme.Body.Bold(true).Render(c.Title) + "  " +
			lipgloss.NewStyle().Foreground(theme.ScoreColor(c.Match)).Render(fmt.Sprintf("%d%% match", c.Match))
		body := lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(c.Description)
		block := head + "\n" + body
		if len(c.Requirements) > 0 {
			block += "\n" + dimStyle.Width(width).Render("Requires: "+strings.Join(c.Requirements, ", "))
		}
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n\n")
}
