package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/claims-triage/internal/model"
)

// WriteXLSX writes batch results as an Excel workbook with one row per
// document, mirroring the CSV column order.
func WriteXLSX(results []model.DocumentResult, outputPath string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Triage")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range resultColumns() {
		header.AddCell().SetString(col)
	}

	for _, r := range results {
		row := sheet.AddRow()
		for _, value := range buildRow(r) {
			row.AddCell().SetString(value)
		}
	}

	if err := f.Save(outputPath); err != nil {
		return eris.Wrap(err, "export: save xlsx")
	}
	return nil
}
