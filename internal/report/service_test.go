package report_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"labelscan/internal/analysis"
	"labelscan/internal/report"
)

func sampleRows() []report.Row {
	return []report.Row{
		{ID: 1, Filename: "label-01.pdf", Fields: analysis.Fields{
			ModelName:         "C31N1815",
			Voltage:           "11.4V",
			TypBattCapacityWh: "42Wh",
			TypCapacityMAh:    "3640mAh",
			RatedCapacityMAh:  "3550mAh",
			RatedEnergyWh:     "40Wh",
		}},
		{ID: 2, Filename: "label-02.pdf", Fields: analysis.Fields{
			ModelName: "C21N2001",
			// Voltage left blank: extraction gap, must be highlighted.
		}},
	}
}

func TestGenerateWritesWorkbook(t *testing.T) {
	gen := report.NewXLSXGenerator(nil)
	outputDir := t.TempDir()

	path, err := gen.Generate(context.Background(), uuid.New(), outputDir, sampleRows())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outputDir, "analysis_result.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue("Analysis", "C1")
	require.NoError(t, err)
	require.Equal(t, "Model Name", header)

	filename, err := f.GetCellValue("Analysis", "B2")
	require.NoError(t, err)
	require.Equal(t, "label-01.pdf", filename)

	voltage, err := f.GetCellValue("Analysis", "D2")
	require.NoError(t, err)
	require.Equal(t, "11.4V", voltage)

	blank, err := f.GetCellValue("Analysis", "D3")
	require.NoError(t, err)
	require.Empty(t, blank)

	// The blank extraction cell carries a style; the populated one does not.
	blankStyle, err := f.GetCellStyle("Analysis", "D3")
	require.NoError(t, err)
	filledStyle, err := f.GetCellStyle("Analysis", "D2")
	require.NoError(t, err)
	require.NotEqual(t, filledStyle, blankStyle)
}

func TestGenerateEmptyBatch(t *testing.T) {
	gen := report.NewXLSXGenerator(nil)

	path, err := gen.Generate(context.Background(), uuid.New(), t.TempDir(), nil)
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestManifestRoundsTripRows(t *testing.T) {
	raw, err := report.Manifest(sampleRows())
	require.NoError(t, err)

	var decoded []report.Row
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "label-02.pdf", decoded[1].Filename)
	require.Empty(t, decoded[1].Fields.Voltage)
}
