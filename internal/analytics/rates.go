package analytics

import (
	"slices"
	"time"

	"subpulse/internal/record"
)

// Ratio divides count by total, returning 0 for an empty population.
func Ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// isNightHour reports whether an hour-of-day falls in the 22:00-06:00
// night band.
func isNightHour(hour int) bool {
	return hour >= 22 || hour < 6
}

// NightRate is the share of submissions handed in between 22:00 and
// 06:00, over all submitted records.
func NightRate(timed []record.Assignment, submittedCount int) float64 {
	night := 0
	for _, r := range timed {
		if isNightHour(r.SubmitTime.Hour()) {
			night++
		}
	}
	return Ratio(night, submittedCount)
}

// WeekendRate is the share of submissions handed in on Saturday or
// Sunday, over all submitted records.
func WeekendRate(timed []record.Assignment, submittedCount int) float64 {
	weekend := 0
	for _, r := range timed {
		switch r.SubmitTime.Weekday() {
		case time.Sunday, time.Saturday:
			weekend++
		}
	}
	return Ratio(weekend, submittedCount)
}

// LateRate is the share of submissions handed in after their deadline,
// over all submitted records. Records without a deadline never count as
// late.
func LateRate(withDeadline []record.Assignment, submittedCount int) float64 {
	late := 0
	for _, r := range withDeadline {
		if r.SubmitTime.After(*r.Deadline) {
			late++
		}
	}
	return Ratio(late, submittedCount)
}

// LeadHours computes (deadline - submitTime) in hours for every
// submission that had a deadline. Negative values mean late.
func LeadHours(withDeadline []record.Assignment) []float64 {
	hours := make([]float64, 0, len(withDeadline))
	for _, r := range withDeadline {
		hours = append(hours, r.Deadline.Sub(*r.SubmitTime).Hours())
	}
	return hours
}

// LastWindowRates returns the share of submissions landing within 6 and
// 24 hours of the deadline. Late submissions stay in the denominator but
// never in a numerator.
func LastWindowRates(leadHours []float64) (last6, last24 float64) {
	if len(leadHours) == 0 {
		return 0, 0
	}
	n6, n24 := 0, 0
	for _, h := range leadHours {
		if h >= 0 && h <= 6 {
			n6++
		}
		if h >= 0 && h <= 24 {
			n24++
		}
	}
	return Ratio(n6, len(leadHours)), Ratio(n24, len(leadHours))
}

// SummarizeLeadTimes returns the mean and median lead hours, or nil for
// an empty population. The median is the element at index floor(n/2) of
// the ascending sort (upper median for even n).
func SummarizeLeadTimes(leadHours []float64) *TimeStats {
	if len(leadHours) == 0 {
		return nil
	}

	sum := 0.0
	for _, h := range leadHours {
		sum += h
	}

	temp := make([]float64, len(leadHours))
	copy(temp, leadHours)
	slices.Sort(temp)

	return &TimeStats{
		AvgLeadHours:    sum / float64(len(leadHours)),
		MedianLeadHours: temp[len(temp)/2],
	}
}
