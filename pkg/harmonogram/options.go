// Package harmonogram extracts normalized schedule events from XLSX
// workbooks laid out as a positional session grid: columns carry headers
// forward, row positions encode start times and merge spans encode
// durations.
package harmonogram

import "github.com/zjazdy/harmonogram/pkg/harmonogram/parser"

// Options configures extraction behavior.
type Options struct {
	// Sheet selects the worksheet by name. When empty or unknown, the
	// workbook's first sheet is used.
	Sheet string
	// Dates optionally supplies a date memo cache shared across parses.
	// Nil means a fresh cache per call.
	Dates *parser.DateNormalizer
	// Cells optionally supplies a cell-text memo cache shared across
	// parses. Nil means a fresh cache per call.
	Cells *parser.TextAnalyzer
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}
