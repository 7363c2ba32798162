package placeholder

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/router"
)

func TestPlaceholder(t *testing.T) {
	p := New("History", "History is turned off.")

	if p.Title() != "History" {
		t.Errorf("Title() = %q, want %q", p.Title(), "History")
	}

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg on enter")
	}
}
