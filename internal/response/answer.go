package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Answer is either the text of a chosen option or a 1-5 agreement rating.
type Answer struct {
	text     string
	rating   int
	isRating bool
}

// Choice returns an answer holding option text.
func Choice(text string) Answer {
	return Answer{text: text}
}

// Rating returns an answer holding a likert rating.
func Rating(v int) Answer {
	return Answer{rating: v, isRating: true}
}

// IsRating reports whether the answer was given as a rating.
func (a Answer) IsRating() bool { return a.isRating }

// Text returns the option text, or the rating in decimal form.
func (a Answer) Text() string {
	if a.isRating {
		return strconv.Itoa(a.rating)
	}
	return a.text
}

// Number interprets the answer numerically. Ratings always convert; text
// converts when it parses as a finite number, so "4" and 4 are
// interchangeable. "NaN" and "Inf" are not numbers here.
func (a Answer) Number() (float64, bool) {
	if a.isRating {
		return float64(a.rating), true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(a.text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (a Answer) String() string { return a.Text() }

// MarshalJSON encodes ratings as numbers and choices as strings.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isRating {
		return json.Marshal(a.rating)
	}
	return json.Marshal(a.text)
}

// UnmarshalJSON accepts a JSON string or an integer.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Choice(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("answer must be a string or number: %w", err)
	}
	if f != float64(int(f)) {
		return fmt.Errorf("rating must be a whole number, got %v", f)
	}
	*a = Rating(int(f))
	return nil
}
