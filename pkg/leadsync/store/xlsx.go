package store

import (
	"github.com/natefinch/atomic"
	"github.com/xuri/excelize/v2"
)

// readXLSX returns the raw cell values of the first sheet of an OOXML workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil
	}
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

func writeXLSX(path, sheetName string, s *Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if def := f.GetSheetName(0); def != sheetName {
		if err := f.SetSheetName(def, sheetName); err != nil {
			return err
		}
	}

	for rowIdx, row := range s.Rows {
		if len(row) == 0 {
			continue
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			if v != "" {
				values[i] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, buf)
}
