package spreadsheet

import (
	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// WriteTemplate produces a workbook with the canonical header row, a bold
// header style, and the given example rows. Pure with respect to its inputs;
// callers decide the header set.
func WriteTemplate(sheetName string, header []string, examples [][]string) ([]byte, error) {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if len(sheetName) > 31 { // Excel sheet name limit
		sheetName = sheetName[:31]
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return nil, errors.Wrap(err, "write header row")
	}

	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCell, cerr := excelize.CoordinatesToCellName(len(header), 1)
		if cerr == nil {
			_ = f.SetCellStyle(sheetName, "A1", lastCell, styleID)
		}
	}

	for i, example := range examples {
		cells := make([]interface{}, len(example))
		for j, v := range example {
			cells[j] = v
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "cell coordinates")
		}
		if err := f.SetSheetRow(sheetName, start, &cells); err != nil {
			return nil, errors.Wrapf(err, "write example row %d", i+1)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "serialize workbook")
	}
	return buf.Bytes(), nil
}
