package roster

import (
	"fmt"
	"math"
	"strings"
)

const emptyBatch = "Empty batch: no users to summarize"

// Summary holds the statistics of a classified batch.
type Summary struct {
	BatchID    string
	Oldest     ClassifiedUser
	AverageAge float64 // rounded to one decimal
	TotalAge   int
	Count      int
	Adults     int
}

// Summarize computes the average age, the oldest user and the adult count.
//
// The oldest user is the first one with the maximum age. An empty input has
// neither an average nor a maximum and fails with a *ValidationError.
func Summarize(classified []ClassifiedUser) (Summary, error) {
	if len(classified) == 0 {
		return Summary{}, invalid(emptyBatch)
	}

	s := Summary{Count: len(classified), Oldest: classified[0]}
	for _, u := range classified {
		s.TotalAge += u.Age
		if u.Age > s.Oldest.Age {
			s.Oldest = u
		}
		if u.IsAdult {
			s.Adults++
		}
	}
	s.AverageAge = roundTenth(float64(s.TotalAge) / float64(s.Count))
	return s, nil
}

// roundTenth rounds half away from zero to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// String renders the report:
//
//	Average age is 30.0
//	Oldest user: Charlie (id 3, age 35)
//	Adult count: 3
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Average age is %.1f\n", s.AverageAge)
	fmt.Fprintf(&b, "Oldest user: %s (id %d, age %d)\n", s.Oldest.Name, s.Oldest.ID, s.Oldest.Age)
	fmt.Fprintf(&b, "Adult count: %d", s.Adults)
	return b.String()
}
