// Package models defines the JSON interchange structures for extracted
// schedules.
package models

// Event is one scheduled session block extracted from the grid. Field names
// follow the interchange payload consumed by downstream renderers, filters
// and exporters.
type Event struct {
	// Session is the session ("zjazd") label carried from the header rows.
	Session string `json:"zjazd"`
	// Program is the study program owning the column.
	Program string `json:"program"`
	// Date is the canonical calendar date (YYYY-MM-DD).
	Date string `json:"date"`
	// Weekday is the weekday name as written in the header (nil if never set).
	Weekday *string `json:"day"`
	// StartTime is the wall-clock start (HH:MM), nil for rows outside the
	// mapped range.
	StartTime *string `json:"startTime"`
	// EndTime is the start plus the merged block duration, nil when the
	// start is nil.
	EndTime *string `json:"endTime"`
	// Title is the residual cell text after heuristic stripping.
	Title string `json:"title"`
	// Type is the classification tag (W, ĆW, LAB, PROJEKT, K), nil if
	// no keyword matched.
	Type *string `json:"type"`
	// Lecturers lists matched lecturer names in match order, duplicates kept.
	Lecturers []string `json:"lecturers"`
	// Location is the matched room or hall text, nil if no pattern matched.
	Location *string `json:"location"`
	// IsRemote marks online sessions (red font color or remote keyword).
	IsRemote bool `json:"isRemote"`
	// Color is "red" for remote sessions, nil otherwise.
	Color *string `json:"color"`
	// Raw is the original trimmed cell text.
	Raw string `json:"raw"`
}

// Schedule is the extraction result for one workbook.
type Schedule struct {
	// SourceFile is the workbook's display name (no path).
	SourceFile string `json:"source_file"`
	// GeneratedAt is the extraction timestamp (RFC 3339).
	GeneratedAt string `json:"generated_at"`
	// Program is always "ALL"; per-program filtering happens downstream.
	Program string `json:"program"`
	// Events is sorted by (date, program, startTime).
	Events []Event `json:"events"`
}
