package usecase

import (
	"context"

	"activity-report-service/internal/reports/core/domain"

	"github.com/xuri/excelize/v2"
)

type ExportReportUseCase struct {
	reports ReportBuilder
}

func NewExportReportUseCase(reports ReportBuilder) *ExportReportUseCase {
	return &ExportReportUseCase{reports: reports}
}

// Execute renders the filtered records of a dataset as an xlsx workbook.
// Headers are the first record's keys in source order; missing keys leave
// the cell blank.
func (uc *ExportReportUseCase) Execute(ctx context.Context, in BuildReportInput) ([]byte, error) {
	rep, err := uc.reports.Execute(ctx, in)
	if err != nil {
		return nil, err
	}
	return renderWorkbook(rep.Records)
}

const exportSheet = "Sheet1"

// exportHeaders is the union of record keys in first-observed order, so the
// first record's key order leads the sheet.
func exportHeaders(records []domain.Record) []string {
	var headers []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, key := range rec.Keys {
			if !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
		}
	}
	return headers
}

func renderWorkbook(records []domain.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := exportHeaders(records)

	for col, key := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, key); err != nil {
			return nil, err
		}
	}

	for row, rec := range records {
		for col, key := range headers {
			val, ok := rec.Field(key)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
