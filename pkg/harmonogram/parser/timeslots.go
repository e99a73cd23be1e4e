package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid layout constants: content starts at row 6, one row per 15-minute
// slot from 08:00, bounded at row 57 so malformed sheets cannot force an
// unbounded scan.
const (
	firstContentRow = 6
	lastContentRow  = 57
	slotMinutes     = 15
	baseHour        = 8
)

// StartTime maps a row index to its wall-clock start time ("HH:MM"), or ""
// for rows above the first content row (header rows).
func StartTime(row int) string {
	if row < firstContentRow {
		return ""
	}
	idx := row - firstContentRow
	h := baseHour + (idx*slotMinutes)/60
	m := (idx * slotMinutes) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// AddMinutes advances an "HH:MM" timestamp by the given number of minutes,
// rolling minutes into hours. Sessions never cross midnight, so there is no
// date component to carry.
func AddMinutes(hhmm string, minutes int) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	total := h*60 + m + minutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
