package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// renderQuestion renders the progress header, the current prompt and its
// options.
func (s *QuestionScreen) renderQuestion(width, height int) string {
	cw := layout.ContentWidth(width)
	p := s.a.Progress()
	cat := s.a.Catalog()

	steps := make([]string, 0, p.TotalSections)
	for _, sec := range cat.Sections() {
		steps = append(steps, sec.Title)
	}
	stepper := components.Stepper{Steps: steps, Current: p.Section - 1}

	position := theme.Hint.Render(fmt.Sprintf("Question %d of %d · %s",
		p.Question, p.SectionQuestions, p.SectionTitle))
	bar := components.NewProgressBar("Overall", p.Percent/100, true, cw).View()

	var prompt strings.Builder
	if s.question.Type == catalog.TypeScenario {
		prompt.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("Scenario-Based Question"))
		prompt.WriteString("\n\n")
	}
	prompt.WriteString(theme.Body.Bold(true).Width(cw - 6).Render(s.question.Prompt))
	prompt.WriteString("\n\n")
	prompt.WriteString(s.choice.View(cw - 6))

	button := s.nextButton().View()

	blocks := []string{
		stepper.View(),
		"",
		position,
		bar,
		"",
		components.Card(prompt.String(), cw),
		"",
		lipgloss.PlaceHorizontal(cw, lipgloss.Right, button),
	}
	if s.notice != "" {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.Warning).Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuitConfirm renders the leave-assessment dialog.
func renderQuitConfirm(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Leave the assessment?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your answers so far will be discarded."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))

	return lipgloss.PlaceVertical(height, lipgloss.Top, b.String())
}
