package harmonogram

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/zjazdy/harmonogram/pkg/harmonogram/parser"
)

// workbookGrid adapts one excelize worksheet to the parser's read-only grid
// contract. Formatted cell values and merge regions are snapshotted up
// front; rich text, raw serials and font styles are fetched on demand since
// only a handful of cells need them.
type workbookGrid struct {
	f      *excelize.File
	sheet  string
	rows   [][]string
	cols   int
	merges []parser.MergeRegion
}

func newWorkbookGrid(f *excelize.File, sheet string) (*workbookGrid, error) {
	sheet = pickSheet(f, sheet)

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "read rows")
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "read merge regions")
	}
	merges := make([]parser.MergeRegion, 0, len(merged))
	for _, m := range merged {
		minCol, minRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return nil, errors.Wrap(err, "merge start address")
		}
		maxCol, maxRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return nil, errors.Wrap(err, "merge end address")
		}
		merges = append(merges, parser.MergeRegion{
			MinRow: minRow, MinCol: minCol,
			MaxRow: maxRow, MaxCol: maxCol,
		})
	}

	return &workbookGrid{f: f, sheet: sheet, rows: rows, cols: cols, merges: merges}, nil
}

// pickSheet returns the requested sheet when it exists in the workbook, the
// first sheet otherwise.
func pickSheet(f *excelize.File, want string) string {
	list := f.GetSheetList()
	if want != "" {
		for _, name := range list {
			if name == want {
				return name
			}
		}
	}
	if len(list) > 0 {
		return list[0]
	}
	return want
}

func (g *workbookGrid) Rows() int {
	return len(g.rows)
}

func (g *workbookGrid) Cols() int {
	return g.cols
}

func (g *workbookGrid) Value(row, col int) parser.CellValue {
	v := parser.CellValue{Text: g.cellText(row, col)}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return v
	}
	if runs, err := g.f.GetCellRichText(g.sheet, axis); err == nil && len(runs) > 0 {
		for _, run := range runs {
			v.Runs = append(v.Runs, run.Text)
		}
	}
	// Date cells keep a numeric serial as their raw value whether or not a
	// display format is attached; surface any numeric raw so the date
	// normalizer can use the exact value instead of re-parsing text.
	raw, err := g.f.GetCellValue(g.sheet, axis, excelize.Options{RawCellValue: true})
	if err == nil && raw != "" {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			v.Serial = &serial
		}
	}
	return v
}

func (g *workbookGrid) cellText(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

func (g *workbookGrid) FontColor(row, col int) parser.FontColor {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return parser.FontColor{}
	}
	styleID, err := g.f.GetCellStyle(g.sheet, axis)
	if err != nil {
		return parser.FontColor{}
	}
	style, err := g.f.GetStyle(styleID)
	if err != nil || style == nil || style.Font == nil {
		return parser.FontColor{}
	}
	return parser.FontColor{
		RGB:     style.Font.Color,
		Indexed: style.Font.ColorIndexed,
		Theme:   style.Font.ColorTheme,
	}
}

func (g *workbookGrid) MergeRegions() []parser.MergeRegion {
	return g.merges
}
