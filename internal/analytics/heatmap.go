package analytics

import (
	"time"

	"subpulse/internal/record"
)

const calendarWeeks = 16

// WeeklyHourGrid builds the 7x24 weekday/hour submission count matrix,
// Sunday first, plus the matrix-wide maximum for external color scaling.
// No submissions yields an empty grid.
func WeeklyHourGrid(timed []record.Assignment) WeeklyHeatmap {
	if len(timed) == 0 {
		return WeeklyHeatmap{}
	}

	rows := make([][]int, 7)
	for i := range rows {
		rows[i] = make([]int, 24)
	}

	max := 0
	for _, r := range timed {
		day := int(r.SubmitTime.Weekday())
		hour := r.SubmitTime.Hour()
		rows[day][hour]++
		if rows[day][hour] > max {
			max = rows[day][hour]
		}
	}

	return WeeklyHeatmap{Rows: rows, Max: max}
}

// CalendarGrid builds a fixed 16-week daily submission count grid. Weeks
// start on Sunday and the last week is the one containing the most
// recent submission. The first week of each month in view carries an
// abbreviated month label; other weeks carry an empty label.
func CalendarGrid(timed []record.Assignment) CalendarHeatmap {
	if len(timed) == 0 {
		return CalendarHeatmap{}
	}

	perDay := make(map[time.Time]int)
	latest := dayOf(*timed[0].SubmitTime)
	for _, r := range timed {
		day := dayOf(*r.SubmitTime)
		perDay[day]++
		if day.After(latest) {
			latest = day
		}
	}

	lastWeekStart := latest.AddDate(0, 0, -int(latest.Weekday()))
	firstWeekStart := lastWeekStart.AddDate(0, 0, -(calendarWeeks-1)*7)

	weeks := make([][]int, calendarWeeks)
	labels := make([]string, calendarWeeks)
	max := 0
	prevMonth := time.Month(0)

	for w := 0; w < calendarWeeks; w++ {
		weekStart := firstWeekStart.AddDate(0, 0, w*7)
		if weekStart.Month() != prevMonth {
			labels[w] = weekStart.Format("Jan")
			prevMonth = weekStart.Month()
		}

		weeks[w] = make([]int, 7)
		for d := 0; d < 7; d++ {
			count := perDay[weekStart.AddDate(0, 0, d)]
			weeks[w][d] = count
			if count > max {
				max = count
			}
		}
	}

	return CalendarHeatmap{Weeks: weeks, WeekLabels: labels, Max: max}
}
