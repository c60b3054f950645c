package analytics

import (
	"testing"
	"time"

	"subpulse/internal/record"
)

func ts(year int, month time.Month, day, hour int) *time.Time {
	t := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func submittedAt(at *time.Time, deadline *time.Time) record.Assignment {
	return record.Assignment{
		ID:         "r",
		CourseID:   "c",
		Submitted:  true,
		SubmitTime: at,
		Deadline:   deadline,
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(3, 4); got != 0.75 {
		t.Errorf("Ratio(3, 4) = %v, want 0.75", got)
	}
	if got := Ratio(5, 0); got != 0 {
		t.Errorf("Ratio(5, 0) = %v, want 0", got)
	}
}

func TestNightRate(t *testing.T) {
	timed := []record.Assignment{
		submittedAt(ts(2024, 3, 4, 22), nil), // night
		submittedAt(ts(2024, 3, 4, 5), nil),  // night
		submittedAt(ts(2024, 3, 4, 6), nil),  // day
		submittedAt(ts(2024, 3, 4, 21), nil), // day
	}

	if got := NightRate(timed, 4); got != 0.5 {
		t.Errorf("NightRate = %v, want 0.5", got)
	}
	if got := NightRate(nil, 0); got != 0 {
		t.Errorf("NightRate on empty set = %v, want 0", got)
	}
}

func TestWeekendRate(t *testing.T) {
	timed := []record.Assignment{
		submittedAt(ts(2024, 3, 2, 12), nil), // Saturday
		submittedAt(ts(2024, 3, 3, 12), nil), // Sunday
		submittedAt(ts(2024, 3, 4, 12), nil), // Monday
		submittedAt(ts(2024, 3, 5, 12), nil), // Tuesday
	}

	if got := WeekendRate(timed, 4); got != 0.5 {
		t.Errorf("WeekendRate = %v, want 0.5", got)
	}
}

func TestLateRate(t *testing.T) {
	withDeadline := []record.Assignment{
		submittedAt(ts(2024, 3, 4, 12), ts(2024, 3, 4, 10)), // late
		submittedAt(ts(2024, 3, 4, 9), ts(2024, 3, 4, 10)),  // on time
		submittedAt(ts(2024, 3, 4, 10), ts(2024, 3, 4, 10)), // exactly at deadline, not late
	}

	// Denominator is all submitted records, including two without deadlines.
	if got := LateRate(withDeadline, 5); got != 0.2 {
		t.Errorf("LateRate = %v, want 0.2", got)
	}
}

func TestLastWindowRates(t *testing.T) {
	tests := []struct {
		name       string
		leadHours  []float64
		wantLast6  float64
		wantLast24 float64
	}{
		{"Empty", nil, 0, 0},
		{"AllAhead", []float64{48, 72}, 0, 0},
		{"Boundaries", []float64{0, 6, 24}, 2.0 / 3.0, 1},
		// Late submissions stay in the denominator but not the numerators.
		{"LateExcluded", []float64{-2, 3, 30, 12}, 0.25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last6, last24 := LastWindowRates(tt.leadHours)
			if last6 != tt.wantLast6 {
				t.Errorf("last6 = %v, want %v", last6, tt.wantLast6)
			}
			if last24 != tt.wantLast24 {
				t.Errorf("last24 = %v, want %v", last24, tt.wantLast24)
			}
		})
	}
}

func TestSummarizeLeadTimes(t *testing.T) {
	if got := SummarizeLeadTimes(nil); got != nil {
		t.Fatalf("expected nil stats for empty population, got %+v", got)
	}

	// Even count takes the upper median (index floor(n/2) after sorting).
	stats := SummarizeLeadTimes([]float64{10, -2, 40, 4})
	if stats.AvgLeadHours != 13 {
		t.Errorf("avg = %v, want 13", stats.AvgLeadHours)
	}
	if stats.MedianLeadHours != 10 {
		t.Errorf("median = %v, want 10 (upper median of [-2 4 10 40])", stats.MedianLeadHours)
	}

	stats = SummarizeLeadTimes([]float64{5, 1, 9})
	if stats.MedianLeadHours != 5 {
		t.Errorf("odd-count median = %v, want 5", stats.MedianLeadHours)
	}
}

func TestLeadHours(t *testing.T) {
	withDeadline := []record.Assignment{
		submittedAt(ts(2024, 3, 4, 10), ts(2024, 3, 5, 10)),
		submittedAt(ts(2024, 3, 5, 13), ts(2024, 3, 5, 10)),
	}

	hours := LeadHours(withDeadline)
	if len(hours) != 2 || hours[0] != 24 || hours[1] != -3 {
		t.Errorf("LeadHours = %v, want [24 -3]", hours)
	}
}
