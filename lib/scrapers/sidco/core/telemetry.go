package core

import (
	"sidco-backend/lib/restyutil"
	"sidco-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("sidco.lib.scrapers.sidco.core")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response transcripts for every
// client created afterwards. Used by the CLI in verbose mode.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
