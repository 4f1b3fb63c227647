package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// writeXLSX writes a workbook with the raw series on sheet "raw" and the
// month series of the subplot on sheet "subplot-N", one row per point.
func writeXLSX(w io.Writer, s *Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "raw"); err != nil {
		return err
	}
	if err := writeRows(f, "raw", []interface{}{"month", "co2"}, func(emit func(...interface{}) error) error {
		for _, p := range s.Raw {
			if err := emit(p.Date, p.CO2); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	sheet := fmt.Sprintf("subplot-%d", s.Subplot)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeRows(f, sheet, []interface{}{"series", "month", "co2"}, func(emit func(...interface{}) error) error {
		for _, ms := range s.Months {
			for _, p := range ms.Series {
				if err := emit(ms.Month, p.Date, p.CO2); err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return f.Write(w)
}

// writeRows writes header to row 1 of sheet and every row produced by
// fill below it.
func writeRows(f *excelize.File, sheet string, header []interface{}, fill func(emit func(...interface{}) error) error) error {
	row := 1
	emit := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(sheet, cell, &values)
	}
	if err := emit(header...); err != nil {
		return err
	}
	return fill(emit)
}
