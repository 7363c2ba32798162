package quiz

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// QuestionScreen serves the questions of a started attempt one at a time.
type QuestionScreen struct {
	deps Deps
	a    *assessment.Assessment

	question    catalog.Question
	choice      components.MultiChoice
	confirmQuit bool
	notice      string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)
var _ screen.EscapeHandler = (*QuestionScreen)(nil)

func newQuestionScreen(deps Deps, a *assessment.Assessment) *QuestionScreen {
	s := &QuestionScreen{deps: deps, a: a}
	s.load()
	return s
}

// load rebuilds the option list for the current question, restoring any
// recorded answer.
func (s *QuestionScreen) load() {
	q, ok := s.a.CurrentQuestion()
	if !ok {
		return
	}
	s.question = q
	s.notice = ""

	ans, answered := s.a.CurrentAnswer()
	if q.Type == catalog.TypeLikert {
		rating := 0
		if answered {
			if v, ok := ans.Number(); ok {
				rating = int(v)
			}
		}
		s.choice = components.NewLikert(rating)
		return
	}
	current := ""
	if answered {
		current = ans.Text()
	}
	s.choice = components.NewMultiChoice(q.Options, current)
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	if sec, ok := s.a.CurrentSection(); ok {
		return sec.Title
	}
	return "Assessment"
}

// Status shows the position across the whole attempt.
func (s *QuestionScreen) Status() string {
	p := s.a.Progress()
	if p.Index == 0 {
		return ""
	}
	return fmt.Sprintf("Q %d of %d", p.Index, p.TotalQuestions)
}

// HandlesEscape is always true: esc asks before abandoning the attempt.
func (s *QuestionScreen) HandlesEscape() bool {
	return true
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave assessment"},
			{Key: "N", Description: "Keep going"},
		}
	}
	next := "Next"
	if s.a.IsLast() {
		next = "Finish"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space/1-" + strconv.Itoa(len(s.choice.Options)), Description: "Choose"},
		{Key: "Enter", Description: next},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestionScreen) answered() bool {
	_, ok := s.choice.Value()
	return ok
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "y", "Y":
			s.deps.logger().Info("assessment abandoned",
				zap.String("attempt_id", s.a.AttemptID()),
				zap.Int("answered", len(s.a.Responses())))
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch {
	case kmsg.String() == "esc":
		s.confirmQuit = true
		return s, nil
	case key.Matches(kmsg, components.Keys.Enter):
		if !s.answered() {
			s.notice = "Choose an answer to continue."
			return s, nil
		}
		_, cmd := s.nextButton().Update(kmsg)
		return s, cmd
	}

	before := s.choice.Chosen
	s.choice = s.choice.Update(kmsg)
	if s.choice.Chosen != before {
		s.record()
	}
	return s, nil
}

// record stores the chosen option as the current question's answer.
func (s *QuestionScreen) record() {
	var ans response.Answer
	if s.question.Type == catalog.TypeLikert {
		rating, ok := components.LikertRating(s.choice)
		if !ok {
			return
		}
		ans = response.Rating(rating)
	} else {
		text, ok := s.choice.Value()
		if !ok {
			return
		}
		ans = response.Choice(text)
	}
	if err := s.a.RecordAnswer(ans); err != nil {
		s.deps.logger().Error("record answer", zap.Error(err))
		s.notice = err.Error()
		return
	}
	s.notice = ""
}

// nextButton is the Next or Finish button. It only fires once the current
// question is answered.
func (s *QuestionScreen) nextButton() components.Button {
	label := "Next"
	if s.a.IsLast() {
		label = "Finish"
	}
	return components.NewButton(label, s.answered(), s.next)
}

// next advances to the following question. Advancing past the last
// question hands over to the results screen.
func (s *QuestionScreen) next() tea.Cmd {
	if err := s.a.Advance(); err != nil {
		s.deps.logger().Error("advance", zap.Error(err))
		s.notice = err.Error()
		return nil
	}
	if s.a.Phase() == assessment.PhaseResults {
		results := newResultsScreen(s.deps, s.a)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
	}
	s.load()
	return nil
}

func (s *QuestionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestion(width, height)
}
