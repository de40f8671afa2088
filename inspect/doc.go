// Package inspect dumps the leading elements of a pipeline to a structured
// logger for debugging.
//
// Dump only walks pure pipelines, so inspecting a pipeline never repeats
// its side effects:
//
//	cfg := inspect.Config{Enabled: true, Limit: 10}
//	if err := inspect.Dump(log, "evens", evens, cfg); err != nil {
//	    log.WithError(err).Warn("dump skipped")
//	}
//
// Every line of one dump carries the same traversal id so the element lines
// and the summary line can be correlated in aggregated logs.
package inspect
