package record

import (
	"time"

	"github.com/samber/lo"
)

// Assignment is one assignment instance in a user's submission history.
// Deadline, SubmitTime and Attachment are optional; SubmitTime is expected
// to be present exactly when Submitted is true, but every consumer branches
// on pointer presence rather than trusting the invariant.
type Assignment struct {
	ID         string      `json:"id"`
	CourseID   string      `json:"courseId"`
	Title      string      `json:"title"`
	Deadline   *time.Time  `json:"deadline,omitempty"`
	Submitted  bool        `json:"submitted"`
	SubmitTime *time.Time  `json:"submitTime,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// Attachment describes an uploaded file. Size is either a number (bytes)
// or free-form text such as "3.2MB" or "500 bytes"; it is kept raw here
// and interpreted by the analytics layer.
type Attachment struct {
	Name string `json:"name,omitempty"`
	Size any    `json:"size,omitempty"`
}

// SemesterRange bounds the academic term. It is a hint for trend-window
// selection only; it never filters which records count.
type SemesterRange struct {
	Start *time.Time `json:"startDate,omitempty"`
	End   *time.Time `json:"endDate,omitempty"`
}

// Submitted returns the records that have been handed in.
func Submitted(records []Assignment) []Assignment {
	return lo.Filter(records, func(r Assignment, _ int) bool {
		return r.Submitted
	})
}

// SubmittedTimed returns submitted records that carry a submit timestamp.
// Time-of-day, trend, heatmap and streak metrics operate on this set.
func SubmittedTimed(records []Assignment) []Assignment {
	return lo.Filter(records, func(r Assignment, _ int) bool {
		return r.Submitted && r.SubmitTime != nil && !r.SubmitTime.IsZero()
	})
}

// SubmittedWithDeadline returns timed submissions that also have a
// deadline. Lag and lead-time metrics operate on this set.
func SubmittedWithDeadline(records []Assignment) []Assignment {
	return lo.Filter(SubmittedTimed(records), func(r Assignment, _ int) bool {
		return r.Deadline != nil && !r.Deadline.IsZero()
	})
}

// PendingWithDeadline returns unsubmitted records with a deadline, the
// population for deadline-risk scoring.
func PendingWithDeadline(records []Assignment) []Assignment {
	return lo.Filter(records, func(r Assignment, _ int) bool {
		return !r.Submitted && r.Deadline != nil && !r.Deadline.IsZero()
	})
}
