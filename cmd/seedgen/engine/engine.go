package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"subpulse/internal/record"
)

// GeneratorConfig controls mock record generation. The same Seed and Now
// always produce the same record set.
type GeneratorConfig struct {
	Scenario string // "planner", "steady", "sprinter", "chaos"
	Count    int
	Courses  int
	Seed     int64
	Now      time.Time
}

// Generate produces a mock assignment history over the past 16 weeks.
// Scenarios shift the lead-time distribution: planners submit days ahead,
// sprinters inside the last day, chaos mixes in late and missing
// submissions.
func Generate(cfg GeneratorConfig) []record.Assignment {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Courses <= 0 {
		cfg.Courses = 1
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var records []record.Assignment
	windowStart := cfg.Now.AddDate(0, 0, -16*7)

	for i := 0; i < cfg.Count; i++ {
		courseID := fmt.Sprintf("course-%d", i%cfg.Courses+1)
		deadline := windowStart.Add(time.Duration(rng.Int63n(int64(17 * 7 * 24 * time.Hour))))

		r := record.Assignment{
			ID:       uuid.NewString(),
			CourseID: courseID,
			Title:    fmt.Sprintf("Assignment %d", i+1),
			Deadline: &deadline,
		}

		if deadline.After(cfg.Now) {
			// Deadline still ahead of Now: leave pending.
			records = append(records, r)
			continue
		}

		leadHours := sampleLeadHours(cfg.Scenario, rng)
		if leadHours == skipSubmission {
			records = append(records, r)
			continue
		}

		submit := deadline.Add(-time.Duration(leadHours * float64(time.Hour)))
		r.Submitted = true
		r.SubmitTime = &submit
		r.Attachment = &record.Attachment{
			Name: fmt.Sprintf("solution-%d.pdf", i+1),
			Size: fmt.Sprintf("%.1fMB", 0.2+rng.Float64()*6),
		}
		records = append(records, r)
	}

	return records
}

// skipSubmission marks an assignment that was never handed in.
const skipSubmission = -1e9

func sampleLeadHours(scenario string, rng *rand.Rand) float64 {
	switch scenario {
	case "planner":
		return 48 + rng.Float64()*120
	case "sprinter":
		return rng.Float64() * 24
	case "chaos":
		roll := rng.Float64()
		switch {
		case roll < 0.2:
			return skipSubmission
		case roll < 0.4:
			return -rng.Float64() * 48 // late
		default:
			return rng.Float64() * 96
		}
	default: // steady
		if rng.Float64() < 0.1 {
			return skipSubmission
		}
		return 12 + rng.Float64()*72
	}
}
