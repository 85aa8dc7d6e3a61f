package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"prereqmap/lib/configutil"
	"prereqmap/lib/telemetry"
	"prereqmap/lib/timezone"

	"github.com/spf13/cobra"
)

// Config carries the seldom-changed knobs that would be noise as
// flags. Flags win over config values where both exist.
type Config struct {
	HandbookBaseUrl  string   `json:"handbook_base_url"`
	TimetableBaseUrl string   `json:"timetable_base_url"`
	CacheDir         string   `json:"cache_dir"`
	Database         string   `json:"database"`
	Programs         []string `json:"programs"`
}

var (
	flagSchool  string
	flagYear    int
	flagCampus  string
	flagCache   string
	flagDb      string
	flagLogfile string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "prereqmap",
	Short: "prereqmap scrapes the UNSW handbook and timetable into a course prerequisite graph.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(flagVerbose, flagLogfile)

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "prereqmap")
		if err != nil {
			if !telemetry.IsNotConfigured(err) {
				slog.Warn("failed to set up telemetry", "err", err)
			}
			return
		}
		cobra.OnFinalize(func() {
			err := tel.Shutdown(context.Background())
			if err != nil {
				slog.Warn("failed to shut down telemetry", "err", err)
			}
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagSchool, "school", "COMP", "Four letter subject area to scrape, e.g. COMP or MATH.")
	flags.IntVar(&flagYear, "year", timezone.HandbookYear(timezone.Now()), "Handbook catalogue year.")
	flags.StringVar(&flagCampus, "campus", "KENS", "Timetable campus code.")
	flags.StringVar(&flagCache, "cache", ".cache", "Directory for the on-disk page cache.")
	flags.StringVar(&flagDb, "db", "prereqmap.db", "Database to read/write scrape results (path or libsql:// url).")
	flags.StringVar(&flagLogfile, "logfile", "", "Also append log output to this file.")
	flags.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and request dumps.")
}

// readConfig layers config.json5 (if any) under the flag values.
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read config.json5", "err", err)
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = flagCache
	}
	if rootCmd.PersistentFlags().Changed("cache") {
		cfg.CacheDir = flagCache
	}
	if cfg.Database == "" {
		cfg.Database = flagDb
	}
	if rootCmd.PersistentFlags().Changed("db") {
		cfg.Database = flagDb
	}

	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
