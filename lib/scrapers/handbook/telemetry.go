package handbook

import (
	"prereqmap/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("prereqmap.lib.scrapers.handbook")

var instrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response dumps for clients
// created after the call.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	instrumentOutput = out
}
