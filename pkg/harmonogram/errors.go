package harmonogram

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates the input is not an XLSX/XLSM file.
var ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx or .xlsm")

// ParseError reports a structural failure reading the workbook: the file
// could not be opened or the sheet could not be read at all. Per-column and
// per-cell anomalies never surface here; they only reduce the number of
// extracted events.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
