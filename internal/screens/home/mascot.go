package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No attempts yet
	MascotCelebrating                      // Last result recommended the career
	MascotThinking                         // Last result said prepare first
	MascotEncouraging                      // Last result did not recommend it
)

const mascotIdle = `  ┌─────┐
  │ ◉ ◉ │
  │  ▽  │
 ┌┴─────┴┐
 │ ▤ ▤ ▤ │
 └◯─────◯┘`

const mascotCelebrating = `  ┌─────┐ ✦
  │ ★ ★ │
  │  ◡  │
 ┌┴─────┴┐
 │ ▤ ▤ ▤ │
 └◯─────◯┘`

const mascotThinking = `  ┌─────┐ ?
  │ ◉ ◔ │
  │  ─  │
 ┌┴─────┴┐
 │ ▤ ▤ ▤ │
 └◯─────◯┘`

const mascotEncouraging = `  ┌─────┐
  │ ◉ ◉ │ ↗
  │  ◠  │
 ┌┴─────┴┐
 │ ▤ ▤ ▤ │
 └◯─────◯┘`

// VariantFor picks the mascot for the most recent recommendation. An empty
// recommendation means no attempt has been recorded.
func VariantFor(r scoring.Recommendation) MascotVariant {
	switch r {
	case scoring.RecommendYes:
		return MascotCelebrating
	case scoring.RecommendMaybe:
		return MascotThinking
	case scoring.RecommendNo:
		return MascotEncouraging
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	var fg color.Color = theme.Primary

	switch variant {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Success
	case MascotThinking:
		art, fg = mascotThinking, theme.Warning
	case MascotEncouraging:
		art, fg = mascotEncouraging, theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
