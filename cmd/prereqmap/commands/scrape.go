package commands

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"prereqmap/lib/restyutil"
	"prereqmap/lib/scrapers/handbook"
	"prereqmap/lib/scrapers/timetable"
	"prereqmap/lib/serviceutil"
	"prereqmap/lib/sqliteutil"
	"prereqmap/lib/telemetry"
	"prereqmap/lib/webcache"
	"prereqmap/services/coursegraph"
	"prereqmap/services/coursegraph/db"
	"prereqmap/services/coursegraph/scraper"

	"github.com/spf13/cobra"
)

var scrapePrograms *[]string

func init() {
	scrapePrograms = scrapeCmd.Flags().StringSlice(
		"program", nil,
		"Program codes to also scrape course membership for.",
	)
	rootCmd.AddCommand(scrapeCmd)
}

func createClients(cfg Config) (handbook.Client, timetable.Client, error) {
	if flagVerbose {
		handbook.SetRestyInstrumentOutput(
			restyutil.NewFilesystemOutput(filepath.Join(cfg.CacheDir, "resty", "handbook")),
		)
		timetable.SetRestyInstrumentOutput(
			restyutil.NewFilesystemOutput(filepath.Join(cfg.CacheDir, "resty", "timetable")),
		)
	}

	hbCache, err := webcache.New(filepath.Join(cfg.CacheDir, "pages"))
	if err != nil {
		return handbook.Client{}, timetable.Client{}, err
	}

	hb := handbook.NewClient(handbook.ClientOptions{
		BaseUrl: cfg.HandbookBaseUrl,
		Cache:   hbCache,
	})
	tt := timetable.NewClient(timetable.ClientOptions{
		BaseUrl: cfg.TimetableBaseUrl,
		Cache:   hbCache,
	})
	return hb, tt, nil
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--program <code>...]",
	Short: "Scrapes the timetable and handbook for one school and writes the result to the database.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		ctx := serviceutil.SignalContext()
		if flagVerbose {
			telemetry.InstrumentPerfStats(ctx)
		}

		hb, tt, err := createClients(cfg)
		if err != nil {
			serviceutil.Fatal("failed to initialize clients", err)
		}

		out, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		programs := cfg.Programs
		if len(*scrapePrograms) > 0 {
			programs = *scrapePrograms
		}

		slog.Info(
			"scraping",
			"school", flagSchool, "year", flagYear,
			"campus", flagCampus, "programs", len(programs),
		)

		t1 := time.Now()
		err = scraper.Scrape(ctx, out, hb, tt, scraper.Options{
			School:   flagSchool,
			Year:     flagYear,
			Campus:   flagCampus,
			Programs: programs,
		})
		if err != nil {
			serviceutil.Fatal("scrape failed", err)
		}
		t2 := time.Now()

		slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds())

		reportNameDrift(ctx, db.New(out), tt)
	},
}

// reportNameDrift warns about courses whose timetable name no longer
// resembles their stored handbook title. The timetable page comes out
// of the cache at this point, so the re-read is free.
func reportNameDrift(ctx context.Context, qry *db.Queries, tt timetable.Client) {
	offerings, err := tt.Courses(ctx, flagSchool, flagYear, flagCampus)
	if err != nil {
		slog.Warn("failed to re-read timetable for name check", "err", err)
		return
	}
	stored, err := qry.ListCourses(ctx)
	if err != nil {
		slog.Warn("failed to list stored courses", "err", err)
		return
	}

	timetableNames := map[string]string{}
	for _, o := range offerings {
		timetableNames[o.Code] = o.Name
	}
	handbookNames := map[string]string{}
	for _, c := range stored {
		handbookNames[c.Code] = c.Name
	}

	const threshold = 0.9
	for _, link := range coursegraph.Suspicious(
		coursegraph.LinkNames(timetableNames, handbookNames),
		threshold,
	) {
		slog.Warn(
			"timetable and handbook disagree about a course",
			"code", link.Code,
			"timetable", link.TimetableName,
			"handbook", link.HandbookName,
			"correlation", link.Correlation,
		)
	}
}
