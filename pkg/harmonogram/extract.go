package harmonogram

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/zjazdy/harmonogram/pkg/harmonogram/models"
	"github.com/zjazdy/harmonogram/pkg/harmonogram/parser"
)

// Extract opens an XLSX workbook and converts its schedule grid into a
// normalized, sorted event collection. Only structural failures return an
// error; malformed columns and cells degrade to fewer events.
func Extract(path string, opts Options) (*models.Schedule, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
	default:
		return nil, ErrUnsupportedFormat
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Source: path, Err: errors.Wrap(err, "open workbook")}
	}
	defer f.Close()

	grid, err := newWorkbookGrid(f, opts.Sheet)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}

	events := parser.NewAssembler(opts.Dates, opts.Cells).Assemble(grid)

	return &models.Schedule{
		SourceFile:  filepath.Base(path),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Program:     "ALL",
		Events:      events,
	}, nil
}
