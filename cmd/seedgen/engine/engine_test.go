package engine

import (
	"testing"
	"time"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := GeneratorConfig{
		Scenario: "steady",
		Count:    50,
		Courses:  4,
		Seed:     7,
		Now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	first := Generate(cfg)
	second := Generate(cfg)

	if len(first) != cfg.Count || len(second) != cfg.Count {
		t.Fatalf("expected %d records, got %d and %d", cfg.Count, len(first), len(second))
	}
	for i := range first {
		if first[i].Submitted != second[i].Submitted ||
			!equalTimes(first[i].SubmitTime, second[i].SubmitTime) ||
			!equalTimes(first[i].Deadline, second[i].Deadline) {
			t.Fatalf("record %d differs between identical seeds", i)
		}
	}
}

func TestGenerateScenarios(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, scenario := range []string{"planner", "steady", "sprinter", "chaos"} {
		t.Run(scenario, func(t *testing.T) {
			records := Generate(GeneratorConfig{Scenario: scenario, Count: 80, Courses: 5, Seed: 3, Now: now})

			submitted := 0
			for _, r := range records {
				if r.Deadline == nil {
					t.Fatal("every generated record needs a deadline")
				}
				if r.Submitted != (r.SubmitTime != nil) {
					t.Fatalf("record %s breaks the submit-time invariant", r.ID)
				}
				if r.Submitted {
					submitted++
					if r.Attachment == nil {
						t.Fatalf("submitted record %s has no attachment", r.ID)
					}
				}
			}
			if submitted == 0 {
				t.Error("expected at least one submission per scenario")
			}
		})
	}
}

func equalTimes(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
