package plain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteparse/internal/document/plain"
	"quoteparse/internal/domain"
	"quoteparse/internal/testutil"
)

func TestLoader_Load(t *testing.T) {
	data := testutil.MinimalPDF(
		testutil.Page{Lines: []string{"BILLROY ENGINEERING", "Line: 1"}},
		testutil.Page{Lines: []string{"Quantity", "2.0"}},
	)

	pages, err := plain.NewLoader().Load(context.Background(), data)

	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	assert.Contains(t, pages[0].Text, "BILLROY")
	assert.Contains(t, pages[1].Text, "Quantity")
	assert.InDelta(t, 595.0, pages[0].Width, 0.01)
	assert.InDelta(t, 842.0, pages[0].Height, 0.01)
	assert.NotEmpty(t, pages[0].Words)
	assert.Empty(t, pages[0].Tables)
}

func TestLoader_InvalidDocument(t *testing.T) {
	_, err := plain.NewLoader().Load(context.Background(), []byte("%PDF-1.4 this is not really a pdf"))

	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}

func TestLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := plain.NewLoader().Load(ctx, testutil.MinimalPDF(testutil.Page{Lines: []string{"x"}}))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Name(t *testing.T) {
	assert.Equal(t, "plain", plain.NewLoader().Name())
}
