package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"labelscan/internal/analysis"
)

// Row is one line of the final report, in input-manifest order.
type Row struct {
	ID       int             `json:"id"`
	Filename string          `json:"filename"`
	Fields   analysis.Fields `json:"fields"`
}

// Generator synthesises the downloadable artifact for a finished job.
type Generator interface {
	Generate(ctx context.Context, jobID uuid.UUID, outputDir string, rows []Row) (string, error)
}

// XLSXGenerator writes the analysis workbook. Cells whose extracted value is
// blank get a highlight fill so reviewers can spot extraction gaps.
type XLSXGenerator struct {
	logger *slog.Logger
}

func NewXLSXGenerator(logger *slog.Logger) *XLSXGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXGenerator{logger: logger}
}

const sheet = "Analysis"

var headers = []string{
	"ID",
	"Filename",
	"Model Name",
	"Voltage",
	"Typ Batt Capacity Wh",
	"Typ Capacity mAh",
	"Rated Capacity mAh",
	"Rated Energy Wh",
}

func (g *XLSXGenerator) Generate(ctx context.Context, jobID uuid.UUID, outputDir string, rows []Row) (string, error) {
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FDEB95"}},
	})
	if err != nil {
		return "", fmt.Errorf("xlsx style: %w", err)
	}

	for rowIndex, row := range rows {
		values := []any{
			row.ID,
			row.Filename,
			row.Fields.ModelName,
			row.Fields.Voltage,
			row.Fields.TypBattCapacityWh,
			row.Fields.TypCapacityMAh,
			row.Fields.RatedCapacityMAh,
			row.Fields.RatedEnergyWh,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIndex+2)
			_ = f.SetCellValue(sheet, cell, v)
			// Field columns start at 3; blank extractions get flagged.
			if col >= 2 {
				if s, ok := v.(string); ok && s == "" {
					_ = f.SetCellStyle(sheet, cell, cell, highlight)
				}
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 6)
	_ = f.SetColWidth(sheet, "B", "B", 36)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "H", 18)

	path := filepath.Join(outputDir, "analysis_result.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("xlsx write: %w", err)
	}

	g.logger.Info("report.xlsx.ok",
		"job_id", jobID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

// Manifest serialises report rows into the job's output manifest.
func Manifest(rows []Row) (json.RawMessage, error) {
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal output manifest: %w", err)
	}
	return data, nil
}
