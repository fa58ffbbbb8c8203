package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/claims-triage/internal/model"
	"github.com/sells-group/claims-triage/internal/pipeline"
)

func sampleResults() []model.DocumentResult {
	return []model.DocumentResult{
		{Document: "claims/fnol_001.txt", Result: pipeline.Process(pipeline.SampleDocument())},
		{Document: "claims/fnol_002.txt", Result: pipeline.Process("Claim Type: Auto\n")},
	}
}

func TestResultColumns_Order(t *testing.T) {
	cols := resultColumns()

	require.Len(t, cols, 19)
	assert.Equal(t, "Document", cols[0])
	assert.Equal(t, "Policy Number", cols[1])
	assert.Equal(t, "Missing Fields", cols[16])
	assert.Equal(t, "Route", cols[17])
	assert.Equal(t, "Reasoning", cols[18])
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triage.csv")

	require.NoError(t, WriteCSV(sampleResults(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, resultColumns(), rows[0])
	assert.Equal(t, "claims/fnol_001.txt", rows[1][0])
	assert.Equal(t, "PN-4481-220", rows[1][1])
	assert.Equal(t, string(model.RouteFastTrack), rows[1][17])

	// The incomplete document carries its missing fields and Manual Review.
	assert.Contains(t, rows[2][16], "Attachments")
	assert.Equal(t, string(model.RouteManualReview), rows[2][17])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triage.xlsx")

	require.NoError(t, WriteXLSX(sampleResults(), path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Document", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "claims/fnol_001.txt", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, string(model.RouteFastTrack), sheet.Rows[1].Cells[17].String())
}

func TestWriteCSV_BadPath(t *testing.T) {
	err := WriteCSV(sampleResults(), filepath.Join(t.TempDir(), "missing", "triage.csv"))
	assert.Error(t, err)
}
