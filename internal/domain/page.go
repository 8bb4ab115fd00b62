package domain

import (
	"math"
	"sort"
	"strings"
)

// Table is a detected page table. Rows are ordered top to bottom and an empty
// cell means the extractor found nothing there.
type Table [][]string

// Word is a positioned run of text on a page, in PDF points with Y growing upward.
type Word struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Page is the materialized output of the document extractor for one page.
type Page struct {
	Number int
	Text   string
	Tables []Table
	Width  float64
	Height float64
	Words  []Word
}

// FirstTable returns the first detected table on the page, or nil.
func (p Page) FirstTable() Table {
	if len(p.Tables) == 0 {
		return nil
	}
	return p.Tables[0]
}

// Region reassembles the text of words whose horizontal centre lies in
// [x0, x1), reading top to bottom and left to right.
func (p Page) Region(x0, x1 float64) string {
	var words []Word
	for _, w := range p.Words {
		cx := w.X + w.Width/2
		if cx >= x0 && cx < x1 && strings.TrimSpace(w.Text) != "" {
			words = append(words, w)
		}
	}
	return assembleLines(words)
}

// JoinText concatenates page texts with a newline after each page.
func JoinText(pages []Page) string {
	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(p.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func assembleLines(words []Word) string {
	if len(words) == 0 {
		return ""
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var lines [][]Word
	for _, w := range sorted {
		n := len(lines)
		if n > 0 && sameLine(lines[n-1][0], w) {
			lines[n-1] = append(lines[n-1], w)
			continue
		}
		lines = append(lines, []Word{w})
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })
		parts := make([]string, len(line))
		for i, w := range line {
			parts[i] = w.Text
		}
		out = append(out, strings.Join(parts, " "))
	}
	return strings.Join(out, "\n")
}

func sameLine(a, b Word) bool {
	tolerance := math.Max(a.Height, b.Height) * 0.5
	if tolerance <= 0 {
		tolerance = 1
	}
	return math.Abs(a.Y-b.Y) <= tolerance
}
