// Package history lists completed attempts kept in the results store.
package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/summary"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// Limit caps how many attempts are listed.
const Limit = 50

type historyLoadedMsg struct {
	Records []store.Record
	Err     error
}

// HistoryScreen displays past attempts, newest first.
type HistoryScreen struct {
	repo      store.ResultRepo
	total     int
	exportDir string
	logger    *zap.Logger

	records  []store.Record
	selected int
	loaded   bool
	errMsg   string
	spin     spinner.Model
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.StatusProvider = (*HistoryScreen)(nil)

// Option configures a HistoryScreen.
type Option func(*HistoryScreen)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *HistoryScreen) { s.logger = l }
}

// WithExportDir is passed on to the result detail screen.
func WithExportDir(dir string) Option {
	return func(s *HistoryScreen) { s.exportDir = dir }
}

// New creates a HistoryScreen. total is the number of questions in the
// catalog, used to report how much of each attempt was answered.
func New(repo store.ResultRepo, total int, opts ...Option) *HistoryScreen {
	s := &HistoryScreen{
		repo:  repo,
		total: total,
		spin:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger)
	return s
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	load := func() tea.Msg {
		recs, err := repo.Recent(context.Background(), Limit)
		return historyLoadedMsg{Records: recs, Err: err}
	}
	return tea.Batch(load, s.spin.Tick)
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Status() string {
	if !s.loaded || len(s.records) == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d", s.selected+1, len(s.records))
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if len(s.records) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "View report"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.logger.Error("load history", zap.Error(msg.Err))
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case spinner.TickMsg:
		if s.loaded {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.records) {
				detail := summary.New(s.reportFor(s.records[s.selected]),
					summary.WithTitle("Past Result"),
					summary.WithExportDir(s.exportDir),
					summary.WithLogger(s.logger))
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) reportFor(rec store.Record) report.Report {
	return report.Report{
		AttemptID:   rec.AttemptID,
		StartedAt:   rec.StartedAt,
		CompletedAt: rec.CompletedAt,
		Answered:    rec.Answered,
		Total:       s.total,
		Results:     rec.Results,
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n" + s.spin.View() + " Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take the assessment to see your results here.")
	}

	// Keep the selected row on screen.
	rows := max(height-2, 1)
	start := max(s.selected-rows+1, 0)
	end := min(start+rows, len(s.records))

	var b strings.Builder
	b.WriteString("\n")
	for i := start; i < end; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRow(i)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) renderRow(i int) string {
	rec := s.records[i]
	r := rec.Results

	prefix := "  "
	if i == s.selected {
		prefix = "> "
	}

	date := rec.CompletedAt.Local().Format("Jan 02, 2006 15:04")
	overall := lipgloss.NewStyle().Foreground(theme.ScoreColor(r.Overall)).Bold(true).
		Render(fmt.Sprintf("%3d", r.Overall))
	headline := lipgloss.NewStyle().Foreground(theme.RecommendationColor(r.Recommendation)).
		Width(26).Render(r.Recommendation.Headline())
	dur := report.FormatDuration(rec.Duration().Seconds())

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(prefix+date+"  ") + overall + style.Render("  ") + headline +
		style.Render(fmt.Sprintf("  %s  %d/%d answered", dur, rec.Answered, s.total))
}
