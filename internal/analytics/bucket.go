package analytics

import "math"

// Range is a labeled half-open numeric interval: Min exclusive, Max
// inclusive. Min may be -Inf and Max may be +Inf.
type Range struct {
	Label string
	Min   float64
	Max   float64
}

// BucketIndex returns the index of the first range r where
// r.Min < v <= r.Max, or -1 if no range matches. The exclusive-min /
// inclusive-max convention decides boundary values: a lag of exactly 6.0
// hours belongs to (6,24], not (0,6].
func BucketIndex(ranges []Range, v float64) int {
	for i, r := range ranges {
		if v > r.Min && v <= r.Max {
			return i
		}
	}
	return -1
}

// CountRanges folds values into labeled bins. Values matching no range
// are dropped and contribute to no bin.
func CountRanges(ranges []Range, values []float64) []BucketCount {
	counts := make([]BucketCount, len(ranges))
	for i, r := range ranges {
		counts[i] = BucketCount{Label: r.Label}
	}
	for _, v := range values {
		if idx := BucketIndex(ranges, v); idx >= 0 {
			counts[idx].Count++
		}
	}
	return counts
}

var (
	// Submission lag in hours, negative meaning late.
	lagRanges = []Range{
		{Label: "overdue", Min: math.Inf(-1), Max: 0},
		{Label: "0-6h", Min: 0, Max: 6},
		{Label: "6-24h", Min: 6, Max: 24},
		{Label: "1-3d", Min: 24, Max: 72},
		{Label: ">3d", Min: 72, Max: math.Inf(1)},
	}

	// Hours until deadline for still-pending work. Past-deadline records
	// are filtered out before bucketing, so the open lower bound is safe.
	riskRanges = []Range{
		{Label: "<6h", Min: math.Inf(-1), Max: 6},
		{Label: "6-24h", Min: 6, Max: 24},
		{Label: "1-3d", Min: 24, Max: 72},
		{Label: ">3d", Min: 72, Max: math.Inf(1)},
	}

	// Attachment size in bytes.
	sizeRanges = []Range{
		{Label: "<100KB", Min: math.Inf(-1), Max: 100 * 1024},
		{Label: "100KB-1MB", Min: 100 * 1024, Max: 1024 * 1024},
		{Label: "1-5MB", Min: 1024 * 1024, Max: 5 * 1024 * 1024},
		{Label: "5-20MB", Min: 5 * 1024 * 1024, Max: 20 * 1024 * 1024},
		{Label: ">20MB", Min: 20 * 1024 * 1024, Max: math.Inf(1)},
	}
)
