package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with careerfit styling and a one-line
// validation message.
type TextInput struct {
	Model   textinput.Model
	Label   string
	Message string
	IsError bool
}

// NewTextInput creates a focused text input prefilled with value.
func NewTextInput(label, placeholder, value string, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.SetValue(value)
	ti.CursorEnd()
	if width > 0 {
		ti.SetWidth(width)
	}
	ti.Focus()

	return TextInput{Model: ti, Label: label}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, input and message.
func (t TextInput) View() string {
	var b strings.Builder
	if t.Label != "" {
		b.WriteString(theme.Body.Bold(true).Render(t.Label) + "\n")
	}
	b.WriteString(t.Model.View())
	if t.Message != "" {
		color := theme.Success
		if t.IsError {
			color = theme.Error
		}
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(color).Render(t.Message))
	}
	return b.String()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}
