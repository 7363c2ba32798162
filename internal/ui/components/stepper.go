package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// Stepper shows the sections of a flow with the current one highlighted.
type Stepper struct {
	Steps   []string
	Current int // 0-based; len(Steps) marks all complete
}

// View renders the steps on one line: done ✓, current ●, pending ○.
func (s Stepper) View() string {
	parts := make([]string, 0, len(s.Steps))
	for i, step := range s.Steps {
		switch {
		case i < s.Current:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+step))
		case i == s.Current:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("● "+step))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ "+step))
		}
	}
	sep := lipgloss.NewStyle().Foreground(theme.Border).Render(" ─ ")
	return strings.Join(parts, sep)
}
