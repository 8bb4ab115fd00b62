package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRegion_SplitsByHorizontalCentre(t *testing.T) {
	page := Page{
		Width:  600,
		Height: 800,
		Words: []Word{
			{Text: "Found", X: 50, Y: 700, Width: 40, Height: 10},
			{Text: "Left", X: 350, Y: 700, Width: 30, Height: 10},
			{Text: "Roller", X: 50, Y: 680, Width: 40, Height: 10},
			{Text: "worn", X: 100, Y: 681, Width: 30, Height: 10},
			{Text: "Replaced", X: 350, Y: 680, Width: 60, Height: 10},
		},
	}

	assert.Equal(t, "Found\nRoller worn", page.Region(0, 300))
	assert.Equal(t, "Left\nReplaced", page.Region(300, 600))
}

func TestPageRegion_NoWords(t *testing.T) {
	page := Page{Width: 600, Height: 800}
	assert.Equal(t, "", page.Region(0, 600))
}

func TestFirstTable(t *testing.T) {
	assert.Nil(t, Page{}.FirstTable())

	tbl := Table{{"a", "b"}}
	page := Page{Tables: []Table{tbl, {{"c"}}}}
	assert.Equal(t, tbl, page.FirstTable())
}

func TestJoinText(t *testing.T) {
	pages := []Page{{Text: "one"}, {Text: ""}, {Text: "three"}}
	assert.Equal(t, "one\n\nthree\n", JoinText(pages))
}

func TestNewExtractionResult_NilItems(t *testing.T) {
	res := NewExtractionResult("billroy", nil)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, "billroy", res.Vendor)
}
