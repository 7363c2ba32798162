package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// MultiChoice is a single-select option list. Moving the cursor and
// choosing are separate so that a choice can be reviewed before moving on.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
}

// NewMultiChoice creates a list with current preselected when it matches
// an option.
func NewMultiChoice(options []string, current string) MultiChoice {
	m := MultiChoice{Options: options, Chosen: -1}
	for i, opt := range options {
		if opt == current {
			m.Chosen = i
			m.Cursor = i
			break
		}
	}
	return m
}

// Update moves the cursor with up/down and chooses with space or a digit.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(kmsg, Keys.Down):
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case key.Matches(kmsg, Keys.Choose):
		m.Chosen = m.Cursor
	default:
		if n := digit(kmsg.String()); n > 0 && n <= len(m.Options) {
			m.Cursor = n - 1
			m.Chosen = n - 1
		}
	}
	return m
}

// Value returns the chosen option.
func (m MultiChoice) Value() (string, bool) {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return "", false
	}
	return m.Options[m.Chosen], true
}

// View renders the options, wrapping long ones to width.
func (m MultiChoice) View(width int) string {
	lines := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "○"
		if i == m.Chosen {
			mark = "●"
		}

		style := theme.Unselected
		switch {
		case i == m.Chosen:
			style = theme.Chosen
		case i == m.Cursor:
			style = theme.Selected
		}

		line := fmt.Sprintf("%s%s %d. %s", cursor, mark, i+1, opt)
		lines = append(lines, style.Width(width).Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n"))
}
