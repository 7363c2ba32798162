package summary

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

type saveState int

const (
	saveNone saveState = iota
	saveRunning
	saveDone
	saveFailed
)

// savedMsg reports the outcome of the background history save.
type savedMsg struct {
	Err error
}

// exportedMsg reports the outcome of writing a report file.
type exportedMsg struct {
	Path string
	Err  error
}

// SummaryScreen displays the results of one attempt.
type SummaryScreen struct {
	report  report.Report
	title   string
	save    func(context.Context) error
	restart func() screen.Screen
	logger  *zap.Logger

	saveState saveState
	saveErr   error

	exportDir string
	exporting bool
	input     components.TextInput
	exportMsg string
	exportErr bool

	vp viewport.Model
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// Option configures a SummaryScreen.
type Option func(*SummaryScreen)

// WithSave persists the results when the screen opens.
func WithSave(fn func(context.Context) error) Option {
	return func(s *SummaryScreen) { s.save = fn }
}

// WithRestart enables "r" to replace this screen with a fresh attempt.
func WithRestart(fn func() screen.Screen) Option {
	return func(s *SummaryScreen) { s.restart = fn }
}

// WithTitle overrides the header title.
func WithTitle(title string) Option {
	return func(s *SummaryScreen) { s.title = title }
}

// WithExportDir sets where exported reports are suggested.
func WithExportDir(dir string) Option {
	return func(s *SummaryScreen) { s.exportDir = dir }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *SummaryScreen) { s.logger = l }
}

// New creates a new SummaryScreen.
func New(r report.Report, opts ...Option) *SummaryScreen {
	s := &SummaryScreen{
		report: r,
		title:  "Results",
		vp:     viewport.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger)
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.save == nil {
		return nil
	}
	s.saveState = saveRunning
	save := s.save
	return func() tea.Msg {
		return savedMsg{Err: save(context.Background())}
	}
}

func (s *SummaryScreen) Title() string {
	return s.title
}

func (s *SummaryScreen) HandlesEscape() bool {
	return s.exporting
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.exporting {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save report"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "E", Description: "Export"},
	}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Continue"},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.saveState, s.saveErr = saveFailed, msg.Err
			s.logger.Error("save result", zap.String("attempt", s.report.AttemptID), zap.Error(msg.Err))
		} else {
			s.saveState = saveDone
		}
		return s, nil

	case exportedMsg:
		if msg.Err != nil {
			s.input.Message, s.input.IsError = msg.Err.Error(), true
			s.logger.Warn("export report", zap.String("path", msg.Path), zap.Error(msg.Err))
			return s, nil
		}
		s.exporting = false
		s.exportMsg, s.exportErr = "Report saved to "+msg.Path, false
		return s, nil

	case tea.KeyPressMsg:
		if s.exporting {
			return s.updateExport(msg)
		}
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.restart != nil {
				next := s.restart()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return s, nil
		case "e", "E":
			return s, s.openExport()
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) openExport() tea.Cmd {
	name := report.DefaultFileName(s.report, report.FormatText)
	if s.exportDir != "" {
		name = filepath.Join(s.exportDir, name)
	}
	s.exporting = true
	s.exportMsg = ""
	s.input = components.NewTextInput("Export report (.md, .json or .yaml)", "path", name, 60)
	return s.input.Init()
}

func (s *SummaryScreen) updateExport(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.exporting = false
		return s, nil
	case "enter":
		path := s.input.Value()
		if path == "" {
			s.input.Message, s.input.IsError = "Enter a file path", true
			return s, nil
		}
		r := s.report
		return s, func() tea.Msg {
			return exportedMsg{Path: path, Err: report.WriteFile(path, r)}
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	status := s.statusLine(width)
	bodyHeight := max(height-lipgloss.Height(status)-1, 1)

	s.vp.SetWidth(width)
	s.vp.SetHeight(bodyHeight)
	s.vp.SetContent(renderReport(s.report, width))

	return s.vp.View() + "\n" + status
}

func (s *SummaryScreen) statusLine(width int) string {
	if s.exporting {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View())
	}

	var parts []string
	switch s.saveState {
	case saveRunning:
		parts = append(parts, dimStyle.Render("Saving to history..."))
	case saveDone:
		parts = append(parts, okStyle.Render("Saved to history"))
	case saveFailed:
		parts = append(parts, errStyle.Render(fmt.Sprintf("Could not save to history: %v", s.saveErr)))
	}
	if s.exportMsg != "" {
		parts = append(parts, okStyle.Render(s.exportMsg))
	}
	if pct := s.vp.ScrollPercent(); s.vp.TotalLineCount() > s.vp.Height() {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%3.0f%%", pct*100)))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "   "))
}
