package quoteexport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"quoteparse/internal/domain"
)

// SheetName is the worksheet that holds exported line items.
const SheetName = "Line Items"

// WriteXLSX renders a result as a single-sheet workbook. Numeric columns are
// written as numbers; nil values leave the cell empty.
func WriteXLSX(result *domain.ExtractionResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if index, _ := f.GetSheetIndex(SheetName); index == -1 {
		if _, err := f.NewSheet(SheetName); err != nil {
			return nil, fmt.Errorf("creating sheet: %w", err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(SheetName)
	f.SetActiveSheet(activeIndex)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for r := range result.Items {
		item := &result.Items[r]
		row := r + 2
		write := func(col int, v any) error {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			return f.SetCellValue(SheetName, cell, v)
		}

		values := []any{item.LineNumber, nil, item.Description, nil, nil, nil}
		if item.PartID != nil {
			values[1] = *item.PartID
		}
		if item.Quantity != nil {
			values[3] = *item.Quantity
		}
		if item.UnitPrice != nil {
			values[4] = *item.UnitPrice
		}
		if item.TotalPrice != nil {
			values[5] = *item.TotalPrice
		}
		for c, v := range values {
			if v == nil {
				continue
			}
			if err := write(c+1, v); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 8)
	_ = f.SetColWidth(SheetName, "B", "B", 16)
	_ = f.SetColWidth(SheetName, "C", "C", 60)
	_ = f.SetColWidth(SheetName, "D", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf, nil
}
