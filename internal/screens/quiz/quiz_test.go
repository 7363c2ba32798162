package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/summary"
	"github.com/abhisek/careerfit/internal/store"
)

// mockResultRepo implements store.ResultRepo for testing.
type mockResultRepo struct {
	saved []*store.Record
	err   error
}

func (m *mockResultRepo) Save(_ context.Context, rec *store.Record) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, rec)
	return nil
}
func (m *mockResultRepo) Recent(_ context.Context, _ int) ([]store.Record, error) {
	return nil, nil
}
func (m *mockResultRepo) Latest(_ context.Context) (*store.Record, error) {
	return nil, store.ErrNotFound
}
func (m *mockResultRepo) Get(_ context.Context, _ string) (*store.Record, error) {
	return nil, store.ErrNotFound
}
func (m *mockResultRepo) Count(_ context.Context) (int, error) {
	return len(m.saved), nil
}
func (m *mockResultRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(repo store.ResultRepo) Deps {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	return Deps{
		Catalog: catalog.Default(),
		Results: repo,
		Options: []assessment.Option{
			assessment.WithIDGenerator(func() string { return "attempt-test" }),
			assessment.WithClock(func() time.Time {
				tick++
				return t0.Add(time.Duration(tick) * time.Second)
			}),
		},
	}
}

// runCmd executes cmd and returns its message, or nil.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// startQuiz presses Enter on a fresh intro and returns the question screen.
func startQuiz(t *testing.T, deps Deps) *QuestionScreen {
	t.Helper()
	intro := NewIntro(deps)
	_, cmd := intro.Update(specialKey(tea.KeyEnter))
	msg, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", runCmd(cmd))
	qs, ok := msg.Screen.(*QuestionScreen)
	require.True(t, ok, "expected *QuestionScreen, got %T", msg.Screen)
	return qs
}

func TestIntro_EnterStartsAttempt(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	assert.Equal(t, assessment.PhaseTaking, qs.a.Phase())
	assert.Equal(t, "attempt-test", qs.a.AttemptID())
	assert.Equal(t, "psych_1", qs.question.ID)
}

func TestIntro_View(t *testing.T) {
	v := NewIntro(testDeps(nil)).View(100, 40)

	for _, want := range []string{"Logistics Planner", "Technical & Analytical Skills", "Start Assessment"} {
		if !strings.Contains(v, want) {
			t.Errorf("intro view missing %q", want)
		}
	}
}

func TestQuestion_NextButtonTracksAnswer(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	b := qs.nextButton()
	assert.False(t, b.Active)
	assert.Equal(t, "Next", b.Label)

	qs.Update(keyPress('4'))
	assert.True(t, qs.nextButton().Active)

	_, cmd := qs.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, qs.a.Progress().Index)
}

func TestQuestion_EnterRequiresAnswer(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	_, cmd := qs.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, qs.a.Progress().Index)
	assert.NotEmpty(t, qs.notice)
}

func TestQuestion_LikertDigitRecordsRating(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	qs.Update(keyPress('4'))

	ans, ok := qs.a.CurrentAnswer()
	require.True(t, ok)
	assert.Equal(t, response.Rating(4), ans)

	qs.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 2, qs.a.Progress().Index)
	assert.Equal(t, "psych_2", qs.question.ID)
	_, chosen := qs.choice.Value()
	assert.False(t, chosen, "next question should start unanswered")
}

func TestQuestion_SpaceChoosesCursor(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	qs.Update(specialKey(tea.KeyDown))
	qs.Update(specialKey(tea.KeyDown))
	qs.Update(specialKey(tea.KeySpace))

	ans, ok := qs.a.CurrentAnswer()
	require.True(t, ok)
	assert.Equal(t, response.Rating(3), ans)
}

func TestQuestion_ChoiceRecordsOptionText(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))
	for i := 0; i < 6; i++ {
		qs.Update(keyPress('1'))
		qs.Update(specialKey(tea.KeyEnter))
	}
	require.Equal(t, "tech_1", qs.question.ID)

	qs.Update(keyPress('2'))
	ans, ok := qs.a.CurrentAnswer()
	require.True(t, ok)
	assert.Equal(t, response.Choice("16 trucks"), ans)
}

func TestQuestion_StatusAndTitle(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	assert.Equal(t, "Q 1 of 17", qs.Status())
	assert.Equal(t, "Personality & Motivation", qs.Title())
	assert.True(t, qs.HandlesEscape())
}

func TestQuestion_ScenarioHeading(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))
	for qs.question.Type != catalog.TypeScenario {
		qs.Update(keyPress('1'))
		qs.Update(specialKey(tea.KeyEnter))
	}

	v := qs.View(100, 40)
	assert.Contains(t, v, "Scenario-Based Question")
}

func TestQuestion_QuitConfirm(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	_, cmd := qs.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
	assert.True(t, qs.confirmQuit)
	assert.Contains(t, qs.View(80, 24), "Leave the assessment?")

	qs.Update(keyPress('n'))
	assert.False(t, qs.confirmQuit)

	qs.Update(specialKey(tea.KeyEscape))
	_, cmd = qs.Update(keyPress('y'))
	if _, ok := runCmd(cmd).(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg after confirming quit")
	}
}

// finish answers every question with option n and returns the screen the
// last Enter replaces the quiz with.
func finish(t *testing.T, qs *QuestionScreen, n rune) screen.Screen {
	t.Helper()
	var last tea.Cmd
	for qs.a.Phase() == assessment.PhaseTaking {
		qs.Update(keyPress(n))
		_, last = qs.Update(specialKey(tea.KeyEnter))
	}
	msg, ok := runCmd(last).(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg after the last question")
	return msg.Screen
}

func TestQuestion_FinishShowsResultsAndSaves(t *testing.T) {
	repo := &mockResultRepo{}
	qs := startQuiz(t, testDeps(repo))

	next := finish(t, qs, '4')
	sum, ok := next.(*summary.SummaryScreen)
	require.True(t, ok, "expected *summary.SummaryScreen, got %T", next)

	results, ok := qs.a.Results()
	require.True(t, ok)

	runCmd(sum.Init())
	require.Len(t, repo.saved, 1)
	rec := repo.saved[0]
	assert.Equal(t, "attempt-test", rec.AttemptID)
	assert.Equal(t, 17, rec.Answered)
	assert.Equal(t, results, rec.Results)
	assert.True(t, rec.CompletedAt.After(rec.StartedAt))
}

func TestQuestion_FinishWithoutHistory(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))

	sum := finish(t, qs, '1')
	assert.Nil(t, sum.Init(), "no save without a repo")
}

func TestResults_SaveFailureIsReported(t *testing.T) {
	repo := &mockResultRepo{err: errors.New("database is locked")}
	qs := startQuiz(t, testDeps(repo))

	sum := finish(t, qs, '2')
	msg := runCmd(sum.Init())
	sum, _ = sum.Update(msg)
	assert.Contains(t, sum.View(100, 40), "database is locked")
}

func TestResults_RetakeRestartsAssessment(t *testing.T) {
	qs := startQuiz(t, testDeps(nil))
	sum := finish(t, qs, '3')

	_, cmd := sum.Update(keyPress('r'))
	msg, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	require.True(t, ok)
	intro, ok := msg.Screen.(*IntroScreen)
	require.True(t, ok, "expected *IntroScreen, got %T", msg.Screen)

	assert.Equal(t, assessment.PhaseIntro, qs.a.Phase())
	assert.Empty(t, qs.a.Responses())
	assert.Same(t, qs.a, intro.a)
}
