package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"2.0", ptr(2.0)},
		{"$250.00", ptr(250.0)},
		{"$1,500.00", ptr(1500.0)},
		{" 1,200 ", ptr(1200.0)},
		{".5", ptr(0.5)},
		{"", nil},
		{"TBA", nil},
		{"NaN", nil},
		{"Inf", nil},
		{"1.2.3", nil},
		{"$", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseNumber(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestIsPartID(t *testing.T) {
	for _, tok := range []string{"R04-123", "14782A", "XYZ-123", "ABC123", "AI4-4"} {
		assert.True(t, isPartID(tok), tok)
	}
	for _, tok := range []string{"", "R4", "12345", "ROLLER", "r04-123", "Weigh Roller", "$250"} {
		assert.False(t, isPartID(tok), tok)
	}
}

func TestFirstPartID(t *testing.T) {
	id, ok := firstPartID("Replace roller (R04-123), galvanised")
	assert.True(t, ok)
	assert.Equal(t, "R04-123", id)

	_, ok = firstPartID("no codes here 123")
	assert.False(t, ok)
}

const billroyBlock = `Line: 1
Part ID: 14782A
AI4-4 BELTSCALE-2000BW-1000IS
Includes Billet Bearing Shims.
Quantity
2.0
Unit Price
5091.00
Total Price
10182.00
`

func TestBlockLineNumber(t *testing.T) {
	n, ok := blockLineNumber(billroyBlock)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = blockLineNumber("Part ID: 14782A")
	assert.False(t, ok)

	_, ok = blockLineNumber("Line: 99999999999999999999999")
	assert.False(t, ok)
}

func TestBlockPartID(t *testing.T) {
	id := blockPartID(billroyBlock)
	require.NotNil(t, id)
	assert.Equal(t, "14782A", *id)

	assert.Nil(t, blockPartID("Line: 2\nWidget\nQuantity\n1"))
}

func TestBlockDescription(t *testing.T) {
	assert.Equal(t, "AI4-4 BELTSCALE-2000BW-1000IS Includes Billet Bearing Shims.", blockDescription(billroyBlock))
	assert.Equal(t, "Widget kit", blockDescription("Line: 2\nWidget\nkit\nUnit Price\n3.00"))
	assert.Equal(t, "Trailing text", blockDescription("Line: 3 Trailing\ntext"))
}

func TestBlockNumbers(t *testing.T) {
	assert.Equal(t, 2.0, *blockQuantity(billroyBlock))
	assert.Equal(t, 5091.0, *blockUnitPrice(billroyBlock))
	assert.Equal(t, 10182.0, *blockTotalPrice(billroyBlock))

	block := "Line: 4\nQuantity: 1,200\nUnit Price: $1,500.50"
	assert.Equal(t, 1200.0, *blockQuantity(block))
	assert.Equal(t, 1500.5, *blockUnitPrice(block))
	assert.Nil(t, blockTotalPrice(block))

	missing := "Line: 5\nQuantity\nTBA\nUnit Price\nPOA"
	assert.Nil(t, blockQuantity(missing))
	assert.Nil(t, blockUnitPrice(missing))
}

func TestSplitBlocks(t *testing.T) {
	blocks := splitBlocks("preamble\nLine: 1 a\nLine: 2 b\nLine:3 c")
	require.Len(t, blocks, 3)
	assert.Equal(t, "Line: 1 a\n", blocks[0])
	assert.Equal(t, "Line:3 c", blocks[2])

	assert.Empty(t, splitBlocks("no anchors at all"))
}

func ptr(v float64) *float64 { return &v }
