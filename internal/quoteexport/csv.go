package quoteexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"quoteparse/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by every export format.
var columns = []string{
	"Line",
	"Part ID",
	"Description",
	"Quantity",
	"Unit Price",
	"Total Price",
}

// Writer wraps csv.Writer for exporting line items as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteItems writes one row per line item.
func (w *Writer) WriteItems(items []domain.LineItem) error {
	for i := range items {
		if err := w.csv.Write(itemToRow(&items[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV renders a full result: BOM, header, then items.
func WriteCSV(out io.Writer, result *domain.ExtractionResult) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteItems(result.Items); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// itemToRow converts an item to string cells. Nil values become blank cells.
func itemToRow(item *domain.LineItem) []string {
	row := make([]string, len(columns))
	row[0] = strconv.Itoa(item.LineNumber)
	if item.PartID != nil {
		row[1] = *item.PartID
	}
	row[2] = item.Description
	row[3] = formatQuantity(item.Quantity)
	row[4] = formatMoney(item.UnitPrice)
	row[5] = formatMoney(item.TotalPrice)
	return row
}

func formatQuantity(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
