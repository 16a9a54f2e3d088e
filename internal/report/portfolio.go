// Package report renders the portfolio as an XLSX workbook.
package report

import (
	"bytes"
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/presenter"

	"github.com/xuri/excelize/v2"
)

// SheetName of the single worksheet
const SheetName = "Portfolio"

// ContentType of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PortfolioHeader column titles, in order
var PortfolioHeader = []string{"Property", "Type", "Location", "Units", "Occupancy", "Occupied", "Vacant"}

var columnWidths = []float64{30, 16, 28, 10, 12, 10, 10}

// PortfolioWorkbook writes one row per property followed by a totals row
func PortfolioWorkbook(p presenter.Portfolio) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close is called explicitly on every path

	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E0E7FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	totalsStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create totals style: %w", err)
	}

	for i, header := range PortfolioHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, columnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range p.Rows {
		values := []any{
			row.Title,
			row.TypeLabel,
			row.Location,
			row.Occupancy.Total,
			row.OccupancyLabel,
			row.Occupancy.Occupied,
			row.Occupancy.Vacant,
		}
		if err := writeRow(f, i+2, values); err != nil {
			f.Close()
			return nil, err
		}
	}

	totalsRow := len(p.Rows) + 2
	totals := []any{"Total", "", "", p.Totals.Total, p.TotalsLabel, p.Totals.Occupied, p.Totals.Vacant}
	if err := writeRow(f, totalsRow, totals); err != nil {
		f.Close()
		return nil, err
	}
	first, _ := excelize.CoordinatesToCellName(1, totalsRow)
	last, _ := excelize.CoordinatesToCellName(len(PortfolioHeader), totalsRow)
	if err := f.SetCellStyle(SheetName, first, last, totalsStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set totals style: %w", err)
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
