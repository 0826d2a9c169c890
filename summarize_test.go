package roster

import (
	"errors"
	"testing"
)

func classified(ages ...int) []ClassifiedUser {
	users := make([]User, len(ages))
	for i, age := range ages {
		users[i] = User{ID: i + 1, Name: string(rune('A' + i)), Age: age}
	}
	return Classify(users)
}

func TestSummarize(t *testing.T) {
	t.Run("Sample Batch", func(t *testing.T) {
		s, err := Summarize(Classify([]User{
			{ID: 1, Name: "Alice", Age: 25},
			{ID: 2, Name: "Bob", Age: 30},
			{ID: 3, Name: "Charlie", Age: 35},
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if s.AverageAge != 30.0 {
			t.Errorf("expected average 30.0, got %v", s.AverageAge)
		}
		if s.Adults != 3 {
			t.Errorf("expected 3 adults, got %d", s.Adults)
		}
		if s.Oldest.Name != "Charlie" || s.Oldest.ID != 3 || s.Oldest.Age != 35 {
			t.Errorf("expected Charlie/3/35, got %+v", s.Oldest.User)
		}
		if s.Count != 3 || s.TotalAge != 90 {
			t.Errorf("expected count 3 and total 90, got %d and %d", s.Count, s.TotalAge)
		}

		expected := "Average age is 30.0\nOldest user: Charlie (id 3, age 35)\nAdult count: 3"
		if s.String() != expected {
			t.Errorf("expected report:\n%s\ngot:\n%s", expected, s.String())
		}
	})

	t.Run("Oldest Tie Keeps First", func(t *testing.T) {
		s, err := Summarize(classified(20, 44, 31, 44))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Oldest.ID != 2 {
			t.Errorf("expected first oldest (id 2), got id %d", s.Oldest.ID)
		}
	})

	t.Run("Adult Count", func(t *testing.T) {
		s, err := Summarize(classified(17, 18, 5, 60))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Adults != 2 {
			t.Errorf("expected 2 adults, got %d", s.Adults)
		}
	})

	t.Run("Empty Batch", func(t *testing.T) {
		_, err := Summarize(nil)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if verr.Detail != "Empty batch: no users to summarize" {
			t.Errorf("unexpected detail %q", verr.Detail)
		}
	})
}

func TestSummarizeAverageRounding(t *testing.T) {
	tests := []struct {
		name     string
		ages     []int
		expected string
	}{
		{"whole", []int{25, 30, 35}, "30.0"},
		{"half", []int{25, 26}, "25.5"},
		{"round up", []int{20, 21, 21}, "20.7"},
		{"round down", []int{1, 1, 2}, "1.3"},
		{"half away from zero", []int{25, 25, 25, 26}, "25.3"},
		{"single", []int{7}, "7.0"},
		{"negative half", []int{-1, -1, -1, -2}, "-1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Summarize(classified(tt.ages...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := "Average age is " + tt.expected + "\n"
			if got := s.String()[:len(want)]; got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}
