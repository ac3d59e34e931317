package spreadsheet

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet rendered as a header row plus ordered data rows.
// Cells are kept as the raw strings excelize produces so numeric date
// serials survive until normalization.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Decode reads an xlsx workbook into sheets. Sheets without a header row are
// skipped; a workbook with no usable sheet at all is an error.
func Decode(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer func() { _ = f.Close() }()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %q", name)
		}
		if len(rows) == 0 || emptyRow(rows[0]) {
			continue
		}

		header := make([]string, len(rows[0]))
		for i, cell := range rows[0] {
			header[i] = strings.TrimSpace(cell)
		}

		data := make([][]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			if emptyRow(row) {
				continue
			}
			// excelize trims trailing empty cells; pad back to header width
			// so positional lookups stay in bounds.
			padded := make([]string, len(header))
			copy(padded, row)
			data = append(data, padded)
		}

		sheets = append(sheets, Sheet{Name: name, Header: header, Rows: data})
	}

	if len(sheets) == 0 {
		return nil, errors.New("workbook has no tabular sheets")
	}
	return sheets, nil
}

// Cell returns the value under the given header for a data row, or "" when
// the header is absent.
func (s Sheet) Cell(row []string, header string) string {
	for i, h := range s.Header {
		if h == header && i < len(row) {
			return row[i]
		}
	}
	return ""
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
