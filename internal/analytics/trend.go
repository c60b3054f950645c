package analytics

import (
	"time"

	"subpulse/internal/record"
)

const minSemesterTrendDays = 7

// dayOf normalizes a timestamp to its wall-clock calendar day, anchored
// in UTC so day arithmetic is exact regardless of the source location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SubmissionTrend produces one point per calendar day with the number of
// submissions on that day, gap-free over the resolved window.
//
// The window defaults to [earliest, latest] over all submit times and
// deadlines. When both semester endpoints are present (normalized so
// start <= end) and span at least a week, the semester range wins. With
// no candidate dates at all the series is empty.
func SubmissionTrend(records []record.Assignment, semester *record.SemesterRange) []TrendPoint {
	var candidates []time.Time
	for _, r := range records {
		if r.SubmitTime != nil && !r.SubmitTime.IsZero() {
			candidates = append(candidates, *r.SubmitTime)
		}
		if r.Deadline != nil && !r.Deadline.IsZero() {
			candidates = append(candidates, *r.Deadline)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	start, end := candidates[0], candidates[0]
	for _, t := range candidates[1:] {
		if t.Before(start) {
			start = t
		}
		if t.After(end) {
			end = t
		}
	}

	if semester != nil && semester.Start != nil && semester.End != nil &&
		!semester.Start.IsZero() && !semester.End.IsZero() {
		s, e := *semester.Start, *semester.End
		if e.Before(s) {
			s, e = e, s
		}
		if e.Sub(s) >= minSemesterTrendDays*24*time.Hour {
			start, end = s, e
		}
	}

	perDay := make(map[time.Time]int)
	for _, r := range record.SubmittedTimed(records) {
		perDay[dayOf(*r.SubmitTime)]++
	}

	var points []TrendPoint
	for day := dayOf(start); !day.After(dayOf(end)); day = day.AddDate(0, 0, 1) {
		points = append(points, TrendPoint{
			Label: day.Format("1/2"),
			Value: perDay[day],
		})
	}
	return points
}
