package telemetry

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitSlog installs the default logger. Verbose mode drops the level
// to debug, which also turns on resty request dumps elsewhere. When
// logfile is non-empty, output is teed into it (appending).
func InitSlog(verbose bool, logfile string) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			slog.Warn("failed to open logfile, logging to stderr only", "path", logfile, "err", err)
		} else {
			out = io.MultiWriter(os.Stderr, f)
		}
	}

	logger := slog.New(tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}
