package response

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecord_ReplacesExisting(t *testing.T) {
	s := NewStore()
	s.Record("psych_1", Rating(2))
	s.Record("tech_1", Choice("15 trucks"))
	s.Record("psych_1", Rating(5))

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	var count int
	for _, r := range s.Responses() {
		if r.QuestionID == "psych_1" {
			count++
			if v, _ := r.Answer.Number(); v != 5 {
				t.Errorf("psych_1 answer = %v, want 5", v)
			}
		}
	}
	if count != 1 {
		t.Errorf("psych_1 responses = %d, want exactly 1", count)
	}
}

func TestCurrent(t *testing.T) {
	s := NewStore()
	if _, ok := s.Current("tech_1"); ok {
		t.Error("expected unanswered before Record")
	}

	s.Record("tech_1", Choice("16 trucks"))
	a, ok := s.Current("tech_1")
	if !ok {
		t.Fatal("expected answer after Record")
	}
	if a.Text() != "16 trucks" {
		t.Errorf("Current = %q, want %q", a.Text(), "16 trucks")
	}
}

func TestRecordTimed_KeepsTimeSpent(t *testing.T) {
	s := NewStore()
	s.RecordTimed("wiscar_1", Rating(4), 12*time.Second)

	rs := s.Responses()
	if len(rs) != 1 || rs[0].TimeSpent != 12*time.Second {
		t.Errorf("Responses = %+v, want one response with 12s", rs)
	}
}

func TestResponses_ReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Record("psych_1", Rating(3))

	rs := s.Responses()
	rs[0].QuestionID = "mutated"

	if _, ok := s.Current("psych_1"); !ok {
		t.Error("mutating the returned slice changed the store")
	}
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.Record("psych_1", Rating(3))
	s.Record("psych_2", Rating(4))
	s.Reset()

	if s.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", s.Len())
	}
	if _, ok := s.Current("psych_1"); ok {
		t.Error("expected psych_1 unanswered after Reset")
	}
}

func TestAnswer_Number(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   float64
		ok     bool
	}{
		{"rating", Rating(4), 4, true},
		{"numeric text", Choice("5"), 5, true},
		{"padded numeric text", Choice(" 3 "), 3, true},
		{"option text", Choice("16 trucks"), 0, false},
		{"empty", Choice(""), 0, false},
		{"nan text", Choice("NaN"), 0, false},
		{"lowercase nan", Choice(" nan "), 0, false},
		{"inf text", Choice("Inf"), 0, false},
		{"negative infinity", Choice("-Infinity"), 0, false},
		{"overflow", Choice("1e400"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.answer.Number()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Number() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAnswer_JSON(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`4`), &a); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if !a.IsRating() || a.Text() != "4" {
		t.Errorf("got %+v, want rating 4", a)
	}

	if err := json.Unmarshal([]byte(`"Manageable with good systems"`), &a); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if a.IsRating() || a.Text() != "Manageable with good systems" {
		t.Errorf("got %+v, want choice", a)
	}

	if err := json.Unmarshal([]byte(`2.5`), &a); err == nil {
		t.Error("expected error for fractional rating")
	}

	out, err := json.Marshal(Rating(2))
	if err != nil || string(out) != "2" {
		t.Errorf("Marshal(Rating(2)) = %s, %v", out, err)
	}
}
