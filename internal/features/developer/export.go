package developer

import (
	"context"
	"fmt"

	"go-marketplace/internal/latency"
	"go-marketplace/internal/models"

	"github.com/xuri/excelize/v2"
)

const analyticsSheet = "Analytics"

var analyticsColumns = []string{"Date", "Installs", "Uninstalls", "Active Users", "Revenue", "Errors"}

// ExportAnalytics renders the extension's analytics as an XLSX workbook and
// returns it with a download filename.
func (s *DeveloperServiceImpl) ExportAnalytics(ctx context.Context, developerID, extensionID string) ([]byte, string, error) {
	s.Latency.Wait(latency.Analytics)

	a, err := s.analytics(developerID, extensionID)
	if err != nil {
		return nil, "", err
	}

	data, err := analyticsWorkbook(a)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}
	return data, extensionID + "-analytics.xlsx", nil
}

func analyticsWorkbook(a models.ExtensionAnalytics) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(analyticsSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range analyticsColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(analyticsSheet, cell, col)
		f.SetCellStyle(analyticsSheet, cell, cell, headerStyle)
	}

	var totals struct {
		installs, uninstalls, errors int
		revenue                      float64
	}
	for i, p := range a.Data {
		row := []any{p.Date, p.Installs, p.Uninstalls, p.ActiveUsers, nil, nil}
		if p.Revenue != nil {
			row[4] = *p.Revenue
			totals.revenue += *p.Revenue
		}
		if p.Errors != nil {
			row[5] = *p.Errors
			totals.errors += *p.Errors
		}
		totals.installs += p.Installs
		totals.uninstalls += p.Uninstalls

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(analyticsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, len(a.Data)+2)
	totalRow := []any{"Total", totals.installs, totals.uninstalls, nil, totals.revenue, totals.errors}
	if err := f.SetSheetRow(analyticsSheet, totalCell, &totalRow); err != nil {
		return nil, err
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(analyticsColumns), len(a.Data)+2)
	f.SetCellStyle(analyticsSheet, totalCell, lastCell, headerStyle)

	for i := range analyticsColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(analyticsSheet, col, col, 15)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
