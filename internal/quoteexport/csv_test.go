package quoteexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteparse/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleResult() *domain.ExtractionResult {
	return domain.NewExtractionResult("billroy", []domain.LineItem{
		{
			LineNumber:  1,
			PartID:      ptr("R04-123"),
			Description: "Conveyor belt 600mm",
			Quantity:    ptr(2.0),
			UnitPrice:   ptr(1234.5),
			TotalPrice:  ptr(2469.0),
		},
		{
			LineNumber:  2,
			Description: "Freight",
		},
	})
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Line", "Part ID", "Description", "Quantity", "Unit Price", "Total Price"}, row)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"1", "R04-123", "Conveyor belt 600mm", "2", "1234.50", "2469.00"}, rows[1])
	assert.Equal(t, []string{"2", "", "Freight", "", "", ""}, rows[2])
}

func TestWriteCSV_NoItems(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, domain.NewExtractionResult("cps", nil)))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestItemToRow_FractionalQuantity(t *testing.T) {
	row := itemToRow(&domain.LineItem{LineNumber: 7, Description: "Hose", Quantity: ptr(2.5)})
	assert.Equal(t, "2.5", row[3])
	assert.Equal(t, "", row[4])
}
