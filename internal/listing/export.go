package listing

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes rows as a one-sheet workbook: a header row of column
// labels followed by one row of cell text per record.
func WriteXLSX[T any](w io.Writer, sheet string, t Table[T], rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}

	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, col.Label); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for i, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, cellText(col, row)); err != nil {
				return err
			}
		}
	}
	_, err := f.WriteTo(w)
	return err
}
