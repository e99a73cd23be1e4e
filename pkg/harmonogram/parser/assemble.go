package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zjazdy/harmonogram/pkg/harmonogram/models"
)

// numericTitlePattern matches residual titles that are nothing but digits
// and separators: stray counters and time markers, not real sessions.
var numericTitlePattern = regexp.MustCompile(`^[\d\s:.\-/]+$`)

// Assembler walks a grid column by column and produces the normalized,
// sorted event collection. The memo caches it carries may be shared across
// sequential parses; cache hits are a performance matter only.
type Assembler struct {
	Dates *DateNormalizer
	Cells *TextAnalyzer
}

// NewAssembler returns an assembler using the given memo caches, creating
// fresh ones where nil is passed.
func NewAssembler(dates *DateNormalizer, cells *TextAnalyzer) *Assembler {
	if dates == nil {
		dates = NewDateNormalizer()
	}
	if cells == nil {
		cells = NewTextAnalyzer()
	}
	return &Assembler{Dates: dates, Cells: cells}
}

// Assemble produces exactly one event per qualifying content block. Columns
// with incomplete header metadata and cells without a usable residual title
// are skipped silently; they reduce the output, never abort it.
func (a *Assembler) Assemble(g Grid) []models.Event {
	headers := ResolveHeaders(g, a.Dates)
	merges := buildMergeMap(g.MergeRegions())

	maxRow := g.Rows()
	if maxRow > lastContentRow {
		maxRow = lastContentRow
	}

	events := []models.Event{}
	for c := 1; c <= g.Cols(); c++ {
		meta := headers[c]
		if !meta.eligible() {
			continue
		}

		r := firstContentRow
		for r <= maxRow {
			row, col, height := r, c, 1
			if reg, ok := merges.lookup(r, c); ok {
				if !reg.IsAnchor(r, c) {
					// Content belongs to the anchor; consume one row.
					r++
					continue
				}
				height = reg.Height()
				row, col = reg.MinRow, reg.MinCol
			}

			text := strings.TrimSpace(g.Value(row, col).Plain())
			if text == "" {
				r++
				continue
			}

			details := a.Cells.Analyze(text)
			if details.Title == "" || numericTitlePattern.MatchString(details.Title) {
				r++
				continue
			}

			start := StartTime(r)
			end := ""
			if start != "" {
				end = AddMinutes(start, height*slotMinutes)
			}
			remote := IsRemote(g.FontColor(row, col), text)

			events = append(events, newEvent(meta, details, start, end, remote))
			r += height
		}
	}

	sortEvents(events)
	return events
}

func newEvent(meta ColumnMeta, details CellDetails, start, end string, remote bool) models.Event {
	ev := models.Event{
		Session:   meta.Session,
		Program:   meta.Program,
		Date:      meta.Date,
		Weekday:   optional(meta.Weekday),
		StartTime: optional(start),
		EndTime:   optional(end),
		Title:     details.Title,
		Type:      optional(details.Type),
		Lecturers: details.Lecturers,
		Location:  optional(details.Location),
		IsRemote:  remote,
		Raw:       details.Raw,
	}
	if ev.Lecturers == nil {
		ev.Lecturers = []string{}
	}
	if remote {
		ev.Color = optional("red")
	}
	return ev
}

// sortEvents orders events by (date, program, startTime) ascending, with
// the empty string standing in for absent fields so they sort first.
func sortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Program != b.Program {
			return a.Program < b.Program
		}
		return deref(a.StartTime) < deref(b.StartTime)
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
