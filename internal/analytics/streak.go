package analytics

import (
	"sort"
	"time"

	"subpulse/internal/record"
)

// Activity reports the number of distinct calendar days with at least
// one submission and the longest run of consecutive such days.
func Activity(timed []record.Assignment) ActivityStats {
	seen := make(map[time.Time]bool)
	for _, r := range timed {
		seen[dayOf(*r.SubmitTime)] = true
	}
	if len(seen) == 0 {
		return ActivityStats{}
	}

	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return ActivityStats{
		ActiveDays:    len(days),
		LongestStreak: longest,
	}
}
