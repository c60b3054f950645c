package analytics

import "math"

// Score weights: late submissions dominate, last-day and last-six-hour
// habits refine.
const (
	lateWeight   = 0.5
	last24Weight = 0.3
	last6Weight  = 0.2
)

var profileTiers = []struct {
	threshold   int
	label       string
	description string
}{
	{80, "extreme", "Habitually submits at the last moment."},
	{60, "sprinter", "Mostly submits just before the deadline."},
	{40, "borderline", "Inconsistent pace, occasionally right at the line."},
	{20, "steady", "Consistent pace with high completion."},
	{-1, "planner", "Submits well ahead of time."},
}

// ProcrastinationProfile combines the deadline-pressure rates into a
// 0-100 score and its categorical label. Checked high to low, first
// match wins.
func ProcrastinationProfile(lateRate, last24Rate, last6Rate float64) Profile {
	raw := lateRate*lateWeight + last24Rate*last24Weight + last6Rate*last6Weight
	raw = math.Max(0, math.Min(1, raw))
	score := int(math.Round(raw * 100))

	for _, tier := range profileTiers {
		if score > tier.threshold {
			return Profile{
				Score:       score,
				Label:       tier.label,
				Description: tier.description,
			}
		}
	}

	// Unreachable: the last tier accepts every score.
	return Profile{Score: score}
}
