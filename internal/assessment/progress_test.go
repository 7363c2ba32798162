package assessment

import (
	"math"
	"testing"
)

func TestSectionIndex(t *testing.T) {
	lengths := []int{6, 5, 6}
	tests := []struct {
		pointer      int
		wantSection  int
		wantQuestion int
	}{
		{0, 0, 0},
		{5, 0, 5},
		{6, 1, 0},
		{10, 1, 4},
		{11, 2, 0},
		{16, 2, 5},
		{17, 2, 5}, // past the end
		{-1, 0, 0},
	}
	for _, tt := range tests {
		s, q := SectionIndex(tt.pointer, lengths)
		if s != tt.wantSection || q != tt.wantQuestion {
			t.Errorf("SectionIndex(%d) = (%d, %d), want (%d, %d)",
				tt.pointer, s, q, tt.wantSection, tt.wantQuestion)
		}
	}
}

func TestSectionIndex_NoSections(t *testing.T) {
	if s, q := SectionIndex(3, nil); s != 0 || q != 0 {
		t.Errorf("SectionIndex(3, nil) = (%d, %d), want (0, 0)", s, q)
	}
}

func TestSectionIndex_MatchesCumulativeCount(t *testing.T) {
	lengths := []int{2, 3, 1, 4}
	pointer := 0
	for si, n := range lengths {
		for qi := 0; qi < n; qi++ {
			s, q := SectionIndex(pointer, lengths)
			if s != si || q != qi {
				t.Fatalf("pointer %d: got (%d, %d), want (%d, %d)", pointer, s, q, si, qi)
			}
			pointer++
		}
	}
}

func TestOverallPercent(t *testing.T) {
	tests := []struct {
		section, question, sectionQuestions, sections int
		want                                          float64
	}{
		{1, 1, 6, 3, 100.0 / 18},
		{1, 6, 6, 3, 100.0 / 3},
		{2, 5, 5, 3, 200.0 / 3},
		{3, 6, 6, 3, 100},
		{1, 1, 0, 3, 0},
		{1, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		got := OverallPercent(tt.section, tt.question, tt.sectionQuestions, tt.sections)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("OverallPercent(%d, %d, %d, %d) = %f, want %f",
				tt.section, tt.question, tt.sectionQuestions, tt.sections, got, tt.want)
		}
	}
}
