package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const roleSummary = "Logistics Planners coordinate the movement of goods, materials, and " +
	"services across supply chains. They make sure the right items arrive on time, " +
	"in the right quantity, at the right place, at the lowest cost and with minimal disruption."

var (
	jobTitles = []string{
		"Logistics Planner",
		"Supply Chain Coordinator",
		"Transportation Scheduler",
		"Freight Operations Analyst",
	}
	successTraits = []string{
		"Attention to detail",
		"Analytical thinking",
		"Planning & coordination",
		"Resilience under pressure",
	}
)

// IntroScreen explains the role and the assessment before it starts.
type IntroScreen struct {
	deps   Deps
	a      *assessment.Assessment
	errMsg string
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// NewIntro creates the intro for a fresh attempt.
func NewIntro(deps Deps) *IntroScreen {
	return newIntro(deps, deps.newAssessment())
}

func newIntro(deps Deps, a *assessment.Assessment) *IntroScreen {
	return &IntroScreen{deps: deps, a: a}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Career Assessment"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start assessment"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "s", "S":
		if err := s.a.Start(); err != nil {
			s.deps.logger().Error("start assessment", zap.Error(err))
			s.errMsg = err.Error()
			return s, nil
		}
		next := newQuestionScreen(s.deps, s.a)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *IntroScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	inner := cw - 6
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	cat := s.a.Catalog()
	blocks := []string{
		theme.Title.Width(cw).Render("Should I Become a Logistics Planner?"),
		theme.Subtitle.Width(cw).Render(fmt.Sprintf(
			"Career readiness & fit assessment · %d questions · about %d minutes",
			len(cat.Questions()), cat.TotalMinutes())),
		"",
	}

	if !compact {
		about := theme.Body.Width(inner).Render(roleSummary) + "\n\n" +
			lipgloss.JoinHorizontal(lipgloss.Top,
				lipgloss.NewStyle().Width(inner/2).Render(titledList("Common job titles", jobTitles)),
				titledList("Key success traits", successTraits),
			)
		blocks = append(blocks, components.TitledCard("What is logistics planning?", about, cw))
	}

	var sections []string
	for i, sec := range cat.Sections() {
		head := fmt.Sprintf("%d. %s", i+1, sec.Title)
		meta := fmt.Sprintf("%d questions · %d min", len(sec.Questions), sec.TimeEstimate)
		gap := max(inner-lipgloss.Width(head)-lipgloss.Width(meta), 1)
		line := theme.Body.Bold(true).Render(head) + strings.Repeat(" ", gap) + theme.Hint.Render(meta)
		if !compact {
			line += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Width(inner).Render("   "+sec.Description)
		}
		sections = append(sections, line)
	}
	blocks = append(blocks, components.TitledCard("Assessment sections", strings.Join(sections, "\n"), cw))

	blocks = append(blocks, "", lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.NewButton("Start Assessment", true, nil).View()))

	if s.errMsg != "" {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.Error).Width(cw).
			Align(lipgloss.Center).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func titledList(title string, items []string) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(title))
	for _, it := range items {
		b.WriteString("\n" + theme.Body.Render("• "+it))
	}
	return b.String()
}
