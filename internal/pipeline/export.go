package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"rompdb/internal"
)

// ExportRecordsToXLSX writes records to a single-sheet workbook using
// the canonical column set. Sources are never written to.
func ExportRecordsToXLSX(records []internal.ShipmentRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range RequiredColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, record := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, record.SAP)
		set(2, record.Romp)
		set(3, record.Catalog)
		set(4, record.ShippedQty)
		set(5, record.ShipDate.Format("2006-01-02"))
		set(6, record.Carrier)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
