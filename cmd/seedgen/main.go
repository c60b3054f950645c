package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"subpulse/cmd/seedgen/engine"
	"subpulse/internal/record"
)

func main() {
	scenario := flag.String("scenario", "steady", "Scenario to generate: planner, steady, sprinter, chaos")
	out := flag.String("out", "records.jsonl", "Output record file")
	count := flag.Int("count", 120, "Number of assignments to generate")
	courses := flag.Int("courses", 6, "Number of courses to spread assignments over")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Count:    *count,
		Courses:  *courses,
		Seed:     *seed,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario '%s' (Count: %d, Courses: %d) to %s...\n", cfg.Scenario, cfg.Count, cfg.Courses, *out)

	records := engine.Generate(cfg)
	if err := record.SaveFile(*out, records); err != nil {
		fmt.Printf("Failed to save records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
