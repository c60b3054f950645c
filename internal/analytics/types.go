package analytics

import (
	"time"
)

// BucketCount is one labeled histogram bin.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PendingRisk summarizes how close unsubmitted work is to its deadlines.
// Records whose deadline already passed are excluded from Total and Items.
type PendingRisk struct {
	Total     int           `json:"total"`
	RiskScore float64       `json:"riskScore"`
	Items     []BucketCount `json:"items"`
}

// AttachmentStats covers submitted records carrying an attachment.
// Total counts every attachment, parseable or not; TotalSize and Items
// cover only sizes that parsed.
type AttachmentStats struct {
	Total     int           `json:"total"`
	TotalSize float64       `json:"totalSize"`
	Items     []BucketCount `json:"items"`
}

// CourseStat is the per-course assignment tally.
type CourseStat struct {
	CourseID  string `json:"courseId"`
	Total     int    `json:"total"`
	Submitted int    `json:"submitted"`
}

// TimeStats summarizes lead hours (deadline minus submit time) for
// submissions that had a deadline.
type TimeStats struct {
	AvgLeadHours    float64 `json:"avgLeadHours"`
	MedianLeadHours float64 `json:"medianLeadHours"`
}

// ActivityStats counts distinct submission days and the longest run of
// consecutive ones.
type ActivityStats struct {
	ActiveDays    int `json:"activeDays"`
	LongestStreak int `json:"longestStreak"`
}

// TrendPoint is one day in the submission trend series.
type TrendPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// WeeklyHeatmap is a 7x24 grid of submission counts indexed by
// [weekday][hour], Sunday first. Rows is empty when there are no
// submissions.
type WeeklyHeatmap struct {
	Rows [][]int `json:"rows"`
	Max  int     `json:"max"`
}

// CalendarHeatmap is a fixed 16-week grid of daily submission counts,
// each week Sunday-start, ending at the week containing the most recent
// submission. WeekLabels marks the first week of each month in view.
type CalendarHeatmap struct {
	Weeks      [][]int  `json:"weeks"`
	WeekLabels []string `json:"weekLabels"`
	Max        int      `json:"max"`
}

// Profile is the composite procrastination assessment.
type Profile struct {
	Score       int    `json:"score"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Submission is one entry in the recent-submission list.
type Submission struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"courseId"`
	Title      string    `json:"title"`
	SubmitTime time.Time `json:"submitTime"`
	Late       bool      `json:"late"`
}

// Snapshot is the complete, immutable output of one analytics pass.
type Snapshot struct {
	Total               int             `json:"total"`
	Submitted           int             `json:"submitted"`
	SubmissionRate      float64         `json:"submissionRate"`
	NightRate           float64         `json:"nightRate"`
	WeekendRate         float64         `json:"weekendRate"`
	LateRate            float64         `json:"lateRate"`
	Last6Rate           float64         `json:"last6Rate"`
	Last24Rate          float64         `json:"last24Rate"`
	HourDistribution    []BucketCount   `json:"hourDistribution"`
	WeekdayDistribution []BucketCount   `json:"weekdayDistribution"`
	LagDistribution     []BucketCount   `json:"lagDistribution"`
	PendingRisk         PendingRisk     `json:"pendingRisk"`
	AttachmentStats     AttachmentStats `json:"attachmentStats"`
	CourseStats         []CourseStat    `json:"courseStats"`
	TimeStats           *TimeStats      `json:"timeStats,omitempty"`
	ActivityStats       ActivityStats   `json:"activityStats"`
	SubmissionTrend     []TrendPoint    `json:"submissionTrend"`
	WeeklyHourHeatmap   WeeklyHeatmap   `json:"weeklyHourHeatmap"`
	CalendarHeatmap     CalendarHeatmap `json:"calendarHeatmap"`
	Procrastination     Profile         `json:"procrastinationProfile"`
	RecentSubmissions   []Submission    `json:"recentSubmissions"`
}
