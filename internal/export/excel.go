package export

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Tournaments"

// WriteXLSX writes the records as a spreadsheet with a single "Tournaments"
// sheet mirroring the CSV columns.
func WriteXLSX(w io.Writer, records []*record.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for col, header := range record.Header() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for rowIdx, r := range records {
		for col, value := range r.Row() {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("record cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("writing record %s: %w", r.ID, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
