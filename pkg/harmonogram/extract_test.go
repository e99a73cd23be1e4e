package harmonogram

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/zjazdy/harmonogram/pkg/harmonogram/parser"
)

func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	// Header rows: session, date, weekday, program.
	f.SetCellValue(sheet, "A1", "1")
	f.SetCellValue(sheet, "A2", "12 wrzesnia 2025")
	f.SetCellValue(sheet, "A3", "sobota")
	f.SetCellValue(sheet, "A4", "INF")

	// A four-slot lab block in red, then a single-slot lecture.
	f.SetCellValue(sheet, "A6", "Algorytmy i struktury danych dr Jan Kowalski LAB 2.15 CP")
	if err := f.MergeCell(sheet, "A6", "A9"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "FF0000"}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheet, "A6", "A6", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}
	f.SetCellValue(sheet, "A11", "Bazy danych wykład")

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	path := writeFixture(t)

	schedule, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if schedule.SourceFile != "plan.xlsx" {
		t.Errorf("SourceFile = %q, expected plan.xlsx", schedule.SourceFile)
	}
	if schedule.Program != "ALL" {
		t.Errorf("Program = %q, expected ALL", schedule.Program)
	}
	if schedule.GeneratedAt == "" {
		t.Error("GeneratedAt is empty")
	}
	if len(schedule.Events) != 2 {
		t.Fatalf("got %d events, expected 2: %+v", len(schedule.Events), schedule.Events)
	}

	lab := schedule.Events[0]
	if lab.Date != "2025-09-12" || lab.Program != "INF" || lab.Session != "1" {
		t.Errorf("events[0] header metadata = %+v", lab)
	}
	if lab.Title != "Algorytmy i struktury danych" {
		t.Errorf("events[0].Title = %q", lab.Title)
	}
	if lab.Type == nil || *lab.Type != "LAB" {
		t.Errorf("events[0].Type = %v, expected LAB", lab.Type)
	}
	if len(lab.Lecturers) != 1 || lab.Lecturers[0] != "dr Jan Kowalski" {
		t.Errorf("events[0].Lecturers = %v", lab.Lecturers)
	}
	if lab.Location == nil || *lab.Location != "2.15 CP" {
		t.Errorf("events[0].Location = %v", lab.Location)
	}
	if lab.StartTime == nil || *lab.StartTime != "08:00" || lab.EndTime == nil || *lab.EndTime != "09:00" {
		t.Errorf("events[0] times = %v-%v, expected 08:00-09:00", lab.StartTime, lab.EndTime)
	}
	if !lab.IsRemote || lab.Color == nil || *lab.Color != "red" {
		t.Errorf("events[0] should be remote (red font), got %+v", lab)
	}

	lecture := schedule.Events[1]
	if lecture.Title != "Bazy danych" {
		t.Errorf("events[1].Title = %q, expected Bazy danych", lecture.Title)
	}
	if lecture.StartTime == nil || *lecture.StartTime != "09:15" {
		t.Errorf("events[1].StartTime = %v, expected 09:15", lecture.StartTime)
	}
	if lecture.IsRemote {
		t.Errorf("events[1] should not be remote: %+v", lecture)
	}
}

func TestExtractGeneralFormatSerialDate(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "1")
	// A bare numeric serial with no date format: raw and display text are
	// both "45912", but the column must still resolve to 2025-09-12.
	f.SetCellValue(sheet, "A2", 45912)
	f.SetCellValue(sheet, "A3", "sobota")
	f.SetCellValue(sheet, "A4", "INF")
	f.SetCellValue(sheet, "A6", "Bazy danych wykład")

	path := filepath.Join(t.TempDir(), "serial.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}

	schedule, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(schedule.Events) != 1 {
		t.Fatalf("got %d events, expected 1: %+v", len(schedule.Events), schedule.Events)
	}
	if schedule.Events[0].Date != "2025-09-12" {
		t.Errorf("Date = %q, expected 2025-09-12", schedule.Events[0].Date)
	}
}

func TestExtractUnknownSheetFallsBack(t *testing.T) {
	path := writeFixture(t)

	schedule, err := Extract(path, Options{Sheet: "Nope"})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(schedule.Events) != 2 {
		t.Errorf("got %d events after sheet fallback, expected 2", len(schedule.Events))
	}
}

func TestExtractSharedCaches(t *testing.T) {
	path := writeFixture(t)

	opts := DefaultOptions()
	opts.Dates = nil // fresh per call is the default
	first, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// Sharing memo caches across parses must not change the output.
	shared := DefaultOptions()
	shared.Dates = parser.NewDateNormalizer()
	shared.Cells = parser.NewTextAnalyzer()
	for i := 0; i < 2; i++ {
		again, err := Extract(path, shared)
		if err != nil {
			t.Fatalf("Extract with shared caches failed: %v", err)
		}
		if len(again.Events) != len(first.Events) {
			t.Fatalf("shared-cache parse produced %d events, expected %d",
				len(again.Events), len(first.Events))
		}
		for j := range again.Events {
			if again.Events[j].Title != first.Events[j].Title {
				t.Errorf("event %d title diverged: %q vs %q",
					j, again.Events[j].Title, first.Events[j].Title)
			}
		}
	}
}

func TestExtractRejectsUnsupportedFormat(t *testing.T) {
	_, err := Extract("schedule.xls", DefaultOptions())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %T: %v", err, err)
	}
}
