package parser

import (
	"strconv"
	"strings"
)

// The four designated header rows of the grid layout.
const (
	sessionHeaderRow = 1
	dateHeaderRow    = 2
	weekdayHeaderRow = 3
	programHeaderRow = 4
)

// reservedSessionTokens are literal column-title words that appear in the
// header rows themselves; they must never overwrite a carried session label.
var reservedSessionTokens = map[string]bool{
	"nr":    true,
	"zjazd": true,
	"lp":    true,
	"lp.":   true,
}

// minScheduleYear guards against decorative header dates from template
// leftovers; columns dated before it are not extracted.
const minScheduleYear = 2020

// ColumnMeta is the header metadata in effect for one column after
// carry-forward. An empty string means the field was never set.
type ColumnMeta struct {
	Session string
	Date    string // canonical YYYY-MM-DD
	Weekday string
	Program string
}

// eligible reports whether a column qualifies for event extraction: date,
// program and session label all resolved, the session label is a real one
// (not a reserved header token, contains a digit), and the date is recent
// enough to be a live schedule.
func (m ColumnMeta) eligible() bool {
	if m.Date == "" || m.Program == "" || m.Session == "" {
		return false
	}
	if reservedSessionTokens[strings.ToLower(strings.TrimSpace(m.Session))] {
		return false
	}
	if !strings.ContainsAny(m.Session, "0123456789") {
		return false
	}
	if len(m.Date) >= 4 {
		if year, err := strconv.Atoi(m.Date[:4]); err == nil && year < minScheduleYear {
			return false
		}
	}
	return true
}

// ResolveHeaders walks the four header rows across every column, carrying
// the last valid value of each field forward into later columns until a new
// valid value replaces it. Header cells merged across many data columns
// therefore still label every column they span.
func ResolveHeaders(g Grid, dates *DateNormalizer) map[int]ColumnMeta {
	metas := make(map[int]ColumnMeta, g.Cols())

	var session, weekday, program string
	var lastDate CellValue
	haveDate := false

	for c := 1; c <= g.Cols(); c++ {
		if s := strings.TrimSpace(g.Value(sessionHeaderRow, c).Plain()); s != "" {
			if !reservedSessionTokens[strings.ToLower(s)] {
				session = s
			}
		}
		if v := g.Value(dateHeaderRow, c); !v.isZero() {
			lastDate = v
			haveDate = true
		}
		if s := strings.TrimSpace(g.Value(weekdayHeaderRow, c).Plain()); s != "" {
			weekday = s
		}
		if s := strings.TrimSpace(g.Value(programHeaderRow, c).Plain()); s != "" {
			program = s
		}

		meta := ColumnMeta{Session: session, Weekday: weekday, Program: program}
		if haveDate {
			meta.Date = dates.Normalize(lastDate)
		}
		metas[c] = meta
	}
	return metas
}
