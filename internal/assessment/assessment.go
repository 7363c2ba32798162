// Package assessment drives one attempt through the intro, taking and
// results phases. It owns the response store for the attempt and invokes
// the scoring engine exactly once, when the last question is advanced past.
package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
	"github.com/abhisek/careerfit/internal/scoring"
)

// Phase is the lifecycle state of an attempt.
type Phase int

const (
	PhaseIntro   Phase = iota // Nothing recorded yet
	PhaseTaking               // Serving questions
	PhaseResults              // Scored and frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseTaking:
		return "taking"
	case PhaseResults:
		return "results"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ErrInvalidTransition is returned when an operation is requested in a
// phase that doesn't allow it.
var ErrInvalidTransition = errors.New("invalid transition")

// Option configures an Assessment.
type Option func(*Assessment)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assessment) {
		if l != nil {
			a.log = l
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assessment) { a.now = now }
}

// WithIDGenerator replaces the attempt ID generator, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(a *Assessment) { a.newID = gen }
}

// Assessment is a single-threaded state machine over the catalog's
// questions. There is no back navigation.
type Assessment struct {
	cat       *catalog.Catalog
	sections  []catalog.Section
	questions []catalog.Question
	lengths   []int

	store   *response.Store
	phase   Phase
	pointer int
	results *scoring.Results

	attemptID  string
	startedAt  time.Time
	finishedAt time.Time
	shownAt    time.Time

	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

// New creates an assessment in the intro phase.
func New(cat *catalog.Catalog, opts ...Option) *Assessment {
	a := &Assessment{
		cat:       cat,
		sections:  cat.Sections(),
		questions: cat.Questions(),
		lengths:   cat.SectionLengths(),
		store:     response.NewStore(),
		phase:     PhaseIntro,
		now:       time.Now,
		newID:     uuid.NewString,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Catalog returns the catalog the assessment runs over.
func (a *Assessment) Catalog() *catalog.Catalog { return a.cat }

// Phase returns the current phase.
func (a *Assessment) Phase() Phase { return a.phase }

// AttemptID identifies the current attempt. Empty in the intro phase.
func (a *Assessment) AttemptID() string { return a.attemptID }

// StartedAt is when Start was called for the current attempt.
func (a *Assessment) StartedAt() time.Time { return a.startedAt }

// FinishedAt is when the attempt was scored. Zero until then.
func (a *Assessment) FinishedAt() time.Time { return a.finishedAt }

// Start begins a fresh attempt at the first question.
func (a *Assessment) Start() error {
	if err := a.require(PhaseIntro, "start"); err != nil {
		return err
	}
	if len(a.questions) == 0 {
		return fmt.Errorf("start: catalog has no questions")
	}

	a.store.Reset()
	a.pointer = 0
	a.results = nil
	a.attemptID = a.newID()
	a.startedAt = a.now()
	a.finishedAt = time.Time{}
	a.shownAt = a.startedAt
	a.phase = PhaseTaking

	a.log.Info("assessment started",
		zap.String("attempt_id", a.attemptID),
		zap.Int("questions", len(a.questions)))
	return nil
}

// CurrentQuestion returns the question being served. False outside the
// taking phase.
func (a *Assessment) CurrentQuestion() (catalog.Question, bool) {
	if a.phase != PhaseTaking {
		return catalog.Question{}, false
	}
	return a.questions[a.pointer], true
}

// CurrentSection returns the section of the question being served.
func (a *Assessment) CurrentSection() (catalog.Section, bool) {
	if a.phase != PhaseTaking {
		return catalog.Section{}, false
	}
	si, _ := SectionIndex(a.pointer, a.lengths)
	return a.sections[si], true
}

// CurrentAnswer returns the recorded answer for the current question, if any.
func (a *Assessment) CurrentAnswer() (response.Answer, bool) {
	q, ok := a.CurrentQuestion()
	if !ok {
		return response.Answer{}, false
	}
	return a.store.Current(q.ID)
}

// IsLast reports whether the current question is the final one.
func (a *Assessment) IsLast() bool {
	return a.phase == PhaseTaking && a.pointer == len(a.questions)-1
}

// RecordAnswer records an answer for the current question, replacing any
// earlier one. The answer is not checked against the question's options.
func (a *Assessment) RecordAnswer(ans response.Answer) error {
	if err := a.require(PhaseTaking, "record answer"); err != nil {
		return err
	}
	q := a.questions[a.pointer]
	a.store.RecordTimed(q.ID, ans, a.now().Sub(a.shownAt))
	a.log.Debug("answer recorded", zap.String("question", q.ID), zap.Stringer("answer", ans))
	return nil
}

// RecordAnswerFor records an answer by question ID while taking. IDs the
// catalog doesn't know are kept but never scored.
func (a *Assessment) RecordAnswerFor(questionID string, ans response.Answer) error {
	if err := a.require(PhaseTaking, "record answer"); err != nil {
		return err
	}
	a.store.Record(questionID, ans)
	a.log.Debug("answer recorded", zap.String("question", questionID), zap.Stringer("answer", ans))
	return nil
}

// Advance moves to the next question. Advancing past the last question
// scores the attempt and enters the results phase. Unanswered questions may
// be advanced past; they simply don't contribute to any score.
func (a *Assessment) Advance() error {
	if err := a.require(PhaseTaking, "advance"); err != nil {
		return err
	}
	if a.pointer < len(a.questions)-1 {
		a.pointer++
		a.shownAt = a.now()
		return nil
	}

	r := scoring.Calculate(a.cat, a.store.Responses())
	a.results = &r
	a.finishedAt = a.now()
	a.phase = PhaseResults

	a.log.Info("assessment completed",
		zap.String("attempt_id", a.attemptID),
		zap.Int("answered", a.store.Len()),
		zap.Int("overall", r.Overall),
		zap.String("recommendation", string(r.Recommendation)),
		zap.Duration("elapsed", a.finishedAt.Sub(a.startedAt)))
	return nil
}

// Results returns the frozen results. False until the attempt is scored.
func (a *Assessment) Results() (scoring.Results, bool) {
	if a.results == nil {
		return scoring.Results{}, false
	}
	return *a.results, true
}

// Responses returns the answers recorded so far.
func (a *Assessment) Responses() []response.Response {
	return a.store.Responses()
}

// Restart discards the results and responses and returns to the intro.
func (a *Assessment) Restart() error {
	if err := a.require(PhaseResults, "restart"); err != nil {
		return err
	}
	a.log.Info("assessment restarted", zap.String("attempt_id", a.attemptID))

	a.store.Reset()
	a.pointer = 0
	a.results = nil
	a.attemptID = ""
	a.startedAt = time.Time{}
	a.finishedAt = time.Time{}
	a.phase = PhaseIntro
	return nil
}

// Progress reports the position of the current question. Outside the
// taking phase it reports 0% before starting and 100% once scored.
func (a *Assessment) Progress() Progress {
	p := Progress{
		TotalSections:  len(a.lengths),
		Answered:       a.store.Len(),
		TotalQuestions: len(a.questions),
	}
	switch a.phase {
	case PhaseIntro:
		return p
	case PhaseResults:
		p.Percent = 100
		return p
	}

	si, qi := SectionIndex(a.pointer, a.lengths)
	p.Section = si + 1
	p.SectionID = a.sections[si].ID
	p.SectionTitle = a.sections[si].Title
	p.Question = qi + 1
	p.SectionQuestions = a.lengths[si]
	p.Index = a.pointer + 1
	p.Percent = OverallPercent(p.Section, p.Question, p.SectionQuestions, p.TotalSections)
	return p
}

func (a *Assessment) require(want Phase, op string) error {
	if a.phase != want {
		return fmt.Errorf("%s in %s phase (want %s): %w", op, a.phase, want, ErrInvalidTransition)
	}
	return nil
}
