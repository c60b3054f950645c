package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"subpulse/internal/analytics"
	"subpulse/internal/record"
)

var (
	analyzeRecordsPath string
	analyzeNow         string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute one analytics snapshot and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.RecordsPath
		if analyzeRecordsPath != "" {
			path = analyzeRecordsPath
		}

		records, err := record.LoadFile(path)
		if err != nil {
			return err
		}
		log.Info().Int("records", len(records)).Str("path", path).Msg("Loaded assignment records")

		now := time.Now()
		if analyzeNow != "" {
			now, err = time.Parse(time.RFC3339, analyzeNow)
			if err != nil {
				return fmt.Errorf("invalid --now timestamp %q: %w", analyzeNow, err)
			}
		}

		snapshot := analytics.Analyze(records, analytics.Options{
			Semester: cfg.Semester,
			Now:      now,
		})

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snapshot)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRecordsPath, "records", "", "path to a JSONL record file (defaults to the configured store)")
	analyzeCmd.Flags().StringVar(&analyzeNow, "now", "", "RFC3339 reference time for deadline-risk scoring (defaults to the current time)")
	rootCmd.AddCommand(analyzeCmd)
}
