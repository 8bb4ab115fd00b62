package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteparse/internal/domain"
	"quoteparse/internal/parser"
)

func cpsTable() domain.Table {
	return domain.Table{
		{"Item", "Description", "Col2", "Col3", "Col4", "Qty", "Price"},
		{"", "", "", "", "", "", ""},
		{"1", "Weigh Roller", "", "", "", "4", "$250.00"},
		{"", "R04-123", "", "", "", "", ""},
		{"2", "Belt Assembly", "", "", "", "2", "$1,500.00"},
	}
}

func TestCPSParser_FiveRowTable(t *testing.T) {
	p := parser.NewCPSParser(nil)

	items := p.Extract([]domain.Page{{Number: 1, Tables: []domain.Table{cpsTable()}}})

	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].LineNumber)
	require.NotNil(t, items[0].PartID)
	assert.Equal(t, "R04-123", *items[0].PartID)
	assert.Equal(t, "Weigh Roller", items[0].Description)
	assert.Equal(t, 4.0, *items[0].Quantity)
	assert.Equal(t, 250.0, *items[0].UnitPrice)

	assert.Equal(t, 2, items[1].LineNumber)
	assert.Nil(t, items[1].PartID)
	assert.Equal(t, 2.0, *items[1].Quantity)
	assert.Equal(t, 1500.0, *items[1].UnitPrice)
	assert.Nil(t, items[1].TotalPrice)
}

func TestCPSParser_ShortRowsSkipped(t *testing.T) {
	table := cpsTable()
	table = append(table[:3:3],
		domain.Table{
			{"3", "Bogus short row"},
			{"", "more text"},
		}...)
	table = append(table, cpsTable()[3:]...)

	items := parser.NewCPSParser(nil).Extract([]domain.Page{{Tables: []domain.Table{table}}})

	require.Len(t, items, 2)
	assert.Equal(t, []int{1, 2}, []int{items[0].LineNumber, items[1].LineNumber})
	assert.Equal(t, "Weigh Roller", items[0].Description)
	assert.Equal(t, "R04-123", *items[0].PartID)
}

func TestCPSParser_ContinuationRows(t *testing.T) {
	table := domain.Table{
		{"Item", "Description", "", "", "", "Qty", "Price"},
		{"", "", "", "", "", "", ""},
		{"1", "Idler", "", "", "", "1", "$10"},
		{"", "A12-1", "", "", "", "", ""},
		{"", "HARDWARE NOTE: bolts supplied separately", "", "", "", "", ""},
		{"", "B99-9", "", "", "", "", ""},
		{"", "galvanised frame", "", "", "", "", ""},
		{"", "Continued over page", "", "", "", "", ""},
		{"", "", "", "", "", "", ""},
	}

	items := parser.NewCPSParser(nil).Extract([]domain.Page{{Tables: []domain.Table{table}}})

	require.Len(t, items, 1)
	assert.Equal(t, "A12-1", *items[0].PartID)
	assert.Equal(t, "Idler B99-9 galvanised frame", items[0].Description)
}

func TestCPSParser_ItemsDoNotCrossPages(t *testing.T) {
	page1 := domain.Page{Number: 1, Tables: []domain.Table{cpsTable()[:4]}}
	page2 := domain.Page{Number: 2, Tables: []domain.Table{{
		{"Item", "Description", "", "", "", "Qty", "Price"},
		{"", "", "", "", "", "", ""},
		{"", "left over from page one", "", "", "", "", ""},
		{"5", "Pulley", "", "", "", "1", "POA"},
	}}}

	items := parser.NewCPSParser(nil).Extract([]domain.Page{page1, page2})

	require.Len(t, items, 2)
	assert.Equal(t, "Weigh Roller", items[0].Description)
	assert.Equal(t, 5, items[1].LineNumber)
	assert.Nil(t, items[1].UnitPrice)
}

func TestCPSParser_OnlyFirstTablePerPage(t *testing.T) {
	other := domain.Table{
		{"h", "h", "h", "h", "h", "h", "h"},
		{"", "", "", "", "", "", ""},
		{"9", "Should be ignored", "", "", "", "1", "1"},
	}
	pages := []domain.Page{
		{Number: 1, Text: "CONVEYOR PRODUCTS"},
		{Number: 2, Tables: []domain.Table{cpsTable(), other}},
	}

	items := parser.NewCPSParser(nil).Extract(pages)

	require.Len(t, items, 2)
	for _, it := range items {
		assert.NotEqual(t, 9, it.LineNumber)
	}
}

func TestCPSParser_CanHandle(t *testing.T) {
	p := parser.NewCPSParser(nil)

	assert.Equal(t, "cps", p.Name())
	assert.True(t, p.CanHandle("Conveyor Products & Solutions\nQuote #67890"))
	assert.True(t, p.CanHandle("cps pty ltd"))
	assert.False(t, p.CanHandle("CPS"))
	assert.False(t, p.CanHandle("BILLROY ENGINEERING"))
}

func TestCPSParser_PartIDNeedsADigit(t *testing.T) {
	table := domain.Table{
		{"Item", "Description", "", "", "", "Qty", "Price"},
		{"", "", "", "", "", "", ""},
		{"1", "Weigh Roller", "", "", "", "4", "$250.00"},
		{"", "GALVANISED", "", "", "", "", ""},
		{"", "R04-123", "", "", "", "", ""},
	}

	items := parser.NewCPSParser(nil).Extract([]domain.Page{{Tables: []domain.Table{table}}})

	require.Len(t, items, 1)
	require.NotNil(t, items[0].PartID)
	assert.Equal(t, "R04-123", *items[0].PartID)
	assert.Equal(t, "Weigh Roller GALVANISED", items[0].Description)
}
