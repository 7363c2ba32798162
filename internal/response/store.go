// Package response holds the answers given during one assessment attempt.
package response

import (
	"slices"
	"time"
)

// Response is one recorded answer.
type Response struct {
	QuestionID string        `json:"question"`
	Answer     Answer        `json:"answer"`
	TimeSpent  time.Duration `json:"time_spent,omitempty"` // informational only
}

// Store keeps at most one response per question. It is owned by a single
// attempt and is not safe for concurrent use.
type Store struct {
	responses []Response
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Record inserts or replaces the answer for questionID. Options are not
// checked against the question; callers pass what the respondent chose.
func (s *Store) Record(questionID string, answer Answer) {
	s.RecordTimed(questionID, answer, 0)
}

// RecordTimed is Record with the time the respondent spent on the question.
func (s *Store) RecordTimed(questionID string, answer Answer, spent time.Duration) {
	s.responses = slices.DeleteFunc(s.responses, func(r Response) bool {
		return r.QuestionID == questionID
	})
	s.responses = append(s.responses, Response{
		QuestionID: questionID,
		Answer:     answer,
		TimeSpent:  spent,
	})
}

// Current returns the answer recorded for questionID, false if unanswered.
func (s *Store) Current(questionID string) (Answer, bool) {
	for _, r := range s.responses {
		if r.QuestionID == questionID {
			return r.Answer, true
		}
	}
	return Answer{}, false
}

// Responses returns a copy of the recorded responses. Order carries no meaning.
func (s *Store) Responses() []Response {
	return slices.Clone(s.responses)
}

// Len returns the number of answered questions.
func (s *Store) Len() int {
	return len(s.responses)
}

// Reset discards every response.
func (s *Store) Reset() {
	s.responses = nil
}
