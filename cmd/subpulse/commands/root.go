package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"subpulse/internal/config"
	"subpulse/internal/logging"
	"subpulse/internal/serve"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "subpulse",
	Short: "Subpulse is a submission-analytics server for assignment histories",
	Long: `Subpulse computes behavioral and statistical summaries from a user's
assignment/submission history: distribution histograms, daily trends,
weekday/hour and calendar heatmaps, streaks, deadline-risk scoring and a
composite procrastination profile.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Subpulse starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("Analytics server starting Stdio loop")
		server := serve.NewServer(cfg)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("Serve loop failed")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
