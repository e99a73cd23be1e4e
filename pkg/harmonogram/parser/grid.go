// Package parser implements the schedule extraction core: a pure
// transformation from an in-memory spreadsheet grid snapshot into a
// normalized, sorted collection of scheduled events. It performs no I/O;
// workbook loading is the caller's concern.
package parser

import (
	"strings"
	"time"
)

// CellValue holds one cell's raw content in whichever shape the workbook
// stored it: plain text, ordered rich-text runs, a native date, or a
// numeric serial.
type CellValue struct {
	Text   string
	Runs   []string
	Time   *time.Time
	Serial *float64
}

// Plain returns the display text: rich runs concatenated in order when
// present, the plain text otherwise. Run styling is ignored.
func (v CellValue) Plain() string {
	if len(v.Runs) > 0 {
		return strings.Join(v.Runs, "")
	}
	return v.Text
}

// isZero reports whether the cell carries no content at all.
func (v CellValue) isZero() bool {
	return v.Time == nil && v.Serial == nil && strings.TrimSpace(v.Plain()) == ""
}

// FontColor describes a font color in one of the three workbook
// representations: direct RGB/ARGB hex, indexed palette slot, or theme slot.
// The zero value means no explicit color.
type FontColor struct {
	RGB     string
	Indexed int
	Theme   *int
}

// Grid is a read-only view over a sheet's cell grid, addressed by
// (row, column) starting at 1.
type Grid interface {
	Rows() int
	Cols() int
	Value(row, col int) CellValue
	FontColor(row, col int) FontColor
	MergeRegions() []MergeRegion
}
