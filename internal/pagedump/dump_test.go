package pagedump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteparse/internal/domain"
	"quoteparse/internal/pagedump"
)

func TestClean_FiltersAndJoinsComments(t *testing.T) {
	d := pagedump.New([]string{"Accurate Industries", "Page", "1300 101 666"}, 3)
	text := `ACCURATE INDUSTRIES PTY LTD
Phone 1300 101 666
Inspection notes
1. Belt worn on
drive side
2 Idler seized
   
3.Guard missing
Page 1 of 4`

	got := d.Clean(text)

	assert.Equal(t, "Inspection notes\n1. Belt worn on drive side\n2 Idler seized 3.Guard missing", got)
}

func TestDump_SplitsConfiguredPage(t *testing.T) {
	d := pagedump.New(nil, 2)
	pages := []domain.Page{
		{Number: 1, Text: "Cover", Width: 600},
		{Number: 2, Text: "ignored for split page", Width: 600, Words: []domain.Word{
			{Text: "Found", X: 50, Y: 700, Width: 40, Height: 10},
			{Text: "Left", X: 350, Y: 700, Width: 30, Height: 10},
		}},
		{Number: 3, Text: "Back", Width: 600},
	}

	dumps := d.Dump(pages)

	require.Len(t, dumps, 4)
	assert.Equal(t, domain.PageDump{Page: 1, Type: domain.PageDumpFull, Content: "Cover"}, dumps[0])
	assert.Equal(t, domain.PageDump{Page: 2, Type: domain.PageDumpLeft, Content: "Found"}, dumps[1])
	assert.Equal(t, domain.PageDump{Page: 2, Type: domain.PageDumpRight, Content: "Left"}, dumps[2])
	assert.Equal(t, domain.PageDumpFull, dumps[3].Type)
}

func TestDump_SplitDisabled(t *testing.T) {
	d := pagedump.New(nil, 0)

	dumps := d.Dump([]domain.Page{{Number: 1, Text: "a"}, {Number: 2, Text: "b"}, {Number: 3, Text: "c"}})

	require.Len(t, dumps, 3)
	for _, dump := range dumps {
		assert.Equal(t, domain.PageDumpFull, dump.Type)
	}
}

func TestDump_Empty(t *testing.T) {
	assert.Empty(t, pagedump.New(nil, 3).Dump(nil))
}
