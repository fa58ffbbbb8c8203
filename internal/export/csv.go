// Package export writes batch triage results to tabular formats. Exports
// are presentation of a finished run; claims themselves are never stored.
package export

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/claims-triage/internal/model"
)

// resultColumns returns the ordered header row: document path, every
// document field in registry order, then completeness and routing.
func resultColumns() []string {
	cols := make([]string, 0, len(model.DocumentFields())+4)
	cols = append(cols, "Document")
	for _, f := range model.DocumentFields() {
		cols = append(cols, model.DisplayFieldName(f.Key))
	}
	return append(cols, "Missing Fields", "Route", "Reasoning")
}

// WriteCSV writes batch results as a CSV file with one row per document.
func WriteCSV(results []model.DocumentResult, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(resultColumns()); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, r := range results {
		if err := w.Write(buildRow(r)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	return nil
}

// buildRow maps one DocumentResult to a row matching resultColumns. Absent
// fields render as empty cells.
func buildRow(r model.DocumentResult) []string {
	row := make([]string, 0, len(model.DocumentFields())+4)
	row = append(row, r.Document)
	for _, f := range model.DocumentFields() {
		value, _ := r.Result.Fields.ValueByKey(f.Key)
		row = append(row, value)
	}
	return append(row,
		strings.Join(r.Result.MissingFields, ", "),
		string(r.Result.Routing.Route),
		r.Result.Routing.Reasoning,
	)
}
