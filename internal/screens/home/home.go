// Package home is the main menu: start an attempt, browse history, quit.
package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/history"
	"github.com/abhisek/careerfit/internal/screens/placeholder"
	"github.com/abhisek/careerfit/internal/screens/quiz"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

const buttonWidth = 24

type statsLoadedMsg struct {
	Latest *store.Record
	Count  int
	Err    error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps  quiz.Deps
	menu  components.Menu
	stats stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. History is available when deps.Results is
// set.
func New(deps quiz.Deps) *HomeScreen {
	h := &HomeScreen{
		deps:  deps,
		stats: stats{enabled: deps.Results != nil},
	}

	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: func() tea.Cmd {
			intro := quiz.NewIntro(deps)
			return func() tea.Msg { return router.PushScreenMsg{Screen: intro} }
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			var next screen.Screen
			if deps.Results == nil {
				next = placeholder.New("History", "History is turned off.\nRun without --no-history to keep past results.")
			} else {
				next = history.New(deps.Results, len(deps.Catalog.Questions()),
					history.WithLogger(deps.Logger),
					history.WithExportDir(deps.ExportDir))
			}
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the stats, since an attempt may have been saved while this
// screen was covered.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.deps.Results
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		n, err := repo.Count(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		latest, err := repo.Latest(ctx)
		if errors.Is(err, store.ErrNotFound) {
			return statsLoadedMsg{Count: n}
		}
		return statsLoadedMsg{Latest: latest, Count: n, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			logging.OrNop(h.deps.Logger).Warn("load home stats", zap.Error(msg.Err))
		}
		h.stats.loaded = true
		h.stats.latest = msg.Latest
		h.stats.count = msg.Count
		h.stats.err = msg.Err
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	var r scoring.Recommendation
	if h.stats.latest != nil {
		r = h.stats.latest.Results.Recommendation
	}
	return VariantFor(r)
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := contentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}
	sections = append(sections,
		renderStatsBar(h.stats, cw, compact),
		h.menu.ButtonView(buttonWidth),
	)

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.Frame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
