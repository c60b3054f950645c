package analytics

import (
	"sort"
	"strconv"
	"time"

	"subpulse/internal/record"
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// HourDistribution counts submissions per hour of day across 24 fixed
// bins.
func HourDistribution(timed []record.Assignment) []BucketCount {
	counts := make([]BucketCount, 24)
	for i := range counts {
		counts[i].Label = strconv.Itoa(i)
	}
	for _, r := range timed {
		counts[r.SubmitTime.Hour()].Count++
	}
	return counts
}

// WeekdayDistribution counts submissions per day of week, Sunday first.
func WeekdayDistribution(timed []record.Assignment) []BucketCount {
	counts := make([]BucketCount, 7)
	for i := range counts {
		counts[i].Label = weekdayLabels[i]
	}
	for _, r := range timed {
		counts[r.SubmitTime.Weekday()].Count++
	}
	return counts
}

// LagDistribution buckets lead hours into overdue/0-6h/6-24h/1-3d/>3d.
// Lag here is deadline minus submit time, so "overdue" holds the
// non-positive values.
func LagDistribution(leadHours []float64) []BucketCount {
	return CountRanges(lagRanges, leadHours)
}

// PendingRiskStats buckets still-pending work by hours until deadline,
// relative to the supplied reference time. Records whose deadline already
// passed are excluded from the distribution and its total. The risk score
// is the share of pending work due within 24 hours.
func PendingRiskStats(pending []record.Assignment, now time.Time) PendingRisk {
	var hours []float64
	for _, r := range pending {
		h := r.Deadline.Sub(now).Hours()
		if h < 0 {
			continue
		}
		hours = append(hours, h)
	}

	items := CountRanges(riskRanges, hours)
	urgent := items[0].Count + items[1].Count

	return PendingRisk{
		Total:     len(hours),
		RiskScore: Ratio(urgent, len(hours)),
		Items:     items,
	}
}

// AttachmentDistribution summarizes attachments on submitted records.
// Every attachment counts toward Total; only parseable sizes contribute
// to TotalSize and the size buckets.
func AttachmentDistribution(submitted []record.Assignment) AttachmentStats {
	total := 0
	totalSize := 0.0
	var sizes []float64

	for _, r := range submitted {
		if r.Attachment == nil {
			continue
		}
		total++
		size, ok := ParseSize(r.Attachment.Size)
		if !ok {
			continue
		}
		totalSize += size
		sizes = append(sizes, size)
	}

	return AttachmentStats{
		Total:     total,
		TotalSize: totalSize,
		Items:     CountRanges(sizeRanges, sizes),
	}
}

// CourseDistribution tallies total and submitted counts per course over
// all records, sorted by submitted count descending. Ties break by
// course ID for determinism.
func CourseDistribution(records []record.Assignment) []CourseStat {
	byCourse := make(map[string]*CourseStat)
	for _, r := range records {
		stat, ok := byCourse[r.CourseID]
		if !ok {
			stat = &CourseStat{CourseID: r.CourseID}
			byCourse[r.CourseID] = stat
		}
		stat.Total++
		if r.Submitted {
			stat.Submitted++
		}
	}

	stats := make([]CourseStat, 0, len(byCourse))
	for _, stat := range byCourse {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Submitted != stats[j].Submitted {
			return stats[i].Submitted > stats[j].Submitted
		}
		return stats[i].CourseID < stats[j].CourseID
	})

	return stats
}
