package analytics

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"subpulse/internal/record"
)

const recentSubmissionLimit = 20

// Options carries the per-pass inputs beside the records themselves.
// Now is the reference instant for pending-risk; it must be supplied by
// the caller so a pass is reproducible.
type Options struct {
	Semester *record.SemesterRange
	Now      time.Time
}

// Analyze runs every builder over one record collection and assembles
// the complete snapshot. It is a pure function: the input is never
// mutated, malformed values degrade silently, and the same input always
// yields the same snapshot.
func Analyze(records []record.Assignment, opts Options) Snapshot {
	submitted := record.Submitted(records)
	timed := record.SubmittedTimed(records)
	withDeadline := record.SubmittedWithDeadline(records)
	pending := record.PendingWithDeadline(records)

	leadHours := LeadHours(withDeadline)
	last6, last24 := LastWindowRates(leadHours)
	lateRate := LateRate(withDeadline, len(submitted))

	return Snapshot{
		Total:               len(records),
		Submitted:           len(submitted),
		SubmissionRate:      Ratio(len(submitted), len(records)),
		NightRate:           NightRate(timed, len(submitted)),
		WeekendRate:         WeekendRate(timed, len(submitted)),
		LateRate:            lateRate,
		Last6Rate:           last6,
		Last24Rate:          last24,
		HourDistribution:    HourDistribution(timed),
		WeekdayDistribution: WeekdayDistribution(timed),
		LagDistribution:     LagDistribution(leadHours),
		PendingRisk:         PendingRiskStats(pending, opts.Now),
		AttachmentStats:     AttachmentDistribution(submitted),
		CourseStats:         CourseDistribution(records),
		TimeStats:           SummarizeLeadTimes(leadHours),
		ActivityStats:       Activity(timed),
		SubmissionTrend:     SubmissionTrend(records, opts.Semester),
		WeeklyHourHeatmap:   WeeklyHourGrid(timed),
		CalendarHeatmap:     CalendarGrid(timed),
		Procrastination:     ProcrastinationProfile(lateRate, last24, last6),
		RecentSubmissions:   recentSubmissions(timed),
	}
}

// recentSubmissions lists the most recent submissions, newest first.
func recentSubmissions(timed []record.Assignment) []Submission {
	subs := lo.Map(timed, func(r record.Assignment, _ int) Submission {
		return Submission{
			ID:         r.ID,
			CourseID:   r.CourseID,
			Title:      r.Title,
			SubmitTime: *r.SubmitTime,
			Late:       r.Deadline != nil && r.SubmitTime.After(*r.Deadline),
		}
	})

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmitTime.After(subs[j].SubmitTime)
	})

	if len(subs) > recentSubmissionLimit {
		subs = subs[:recentSubmissionLimit]
	}
	return subs
}
