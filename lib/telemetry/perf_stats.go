package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var perfMeter = otel.Meter("prereqmap.perf")
var scrapeCpuGauge, _ = perfMeter.Float64Gauge("scrape.cpu_usage")
var scrapeHeapGauge, _ = perfMeter.Int64Gauge("scrape.heap_mb")
var scrapeGoroutineGauge, _ = perfMeter.Int64Gauge("scrape.goroutines")

// InstrumentPerfStats samples process stats until ctx is cancelled.
// The goroutine count is the interesting one here: a scrape fans out
// one goroutine per page, so it roughly tracks in-flight requests.
func InstrumentPerfStats(ctx context.Context) {
	go func() {
		var memStats runtime.MemStats
		ticker := time.NewTicker(time.Second * 10)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				runtime.ReadMemStats(&memStats)

				cpuUsage, err := cpu.Percent(time.Second, false)
				if err == nil {
					scrapeCpuGauge.Record(ctx, cpuUsage[0])
				} else {
					slog.WarnContext(ctx, "failed to read cpu usage", "err", err)
				}

				scrapeHeapGauge.Record(ctx, int64(memStats.HeapAlloc/1_000_000))
				scrapeGoroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
			case <-ctx.Done():
				return
			}
		}
	}()
}
