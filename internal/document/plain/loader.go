// Package plain loads PDF pages with github.com/ledongthuc/pdf. It recovers
// text and word geometry but no tables, and serves as the fallback when the
// tabula backend cannot read a file.
package plain

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"quoteparse/internal/domain"
)

// Name is the backend name used in configuration.
const Name = "plain"

// A4 portrait, used when a page has no readable MediaBox.
const (
	defaultWidth  = 595.0
	defaultHeight = 842.0
)

// Loader implements port.DocumentLoader on top of ledongthuc/pdf.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Name() string { return Name }

func (l *Loader) Load(ctx context.Context, data []byte) (pages []domain.Page, err error) {
	// The pdf package panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("plain: %w: %v", domain.ErrInvalidDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("plain: opening pdf: %w: %v", domain.ErrInvalidDocument, err)
	}

	n := r.NumPage()
	pages = make([]domain.Page, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := loadPage(r.Page(i), i)
		if err != nil {
			return nil, fmt.Errorf("plain: page %d: %w: %v", i, domain.ErrInvalidDocument, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func loadPage(p pdf.Page, number int) (domain.Page, error) {
	width, height := pageSize(p)
	page := domain.Page{Number: number, Width: width, Height: height}
	if p.V.IsNull() {
		return page, nil
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return domain.Page{}, err
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var (
			sb      strings.Builder
			prev    *pdf.Text
			spacing bool
		)
		for i := range row.Content {
			t := row.Content[i]
			if strings.TrimSpace(t.S) == "" {
				spacing = true
				continue
			}
			if prev != nil && (spacing || needsSpace(*prev, t)) {
				sb.WriteString(" ")
			}
			spacing = false
			sb.WriteString(t.S)
			page.Words = append(page.Words, domain.Word{
				Text:   t.S,
				X:      t.X,
				Y:      t.Y,
				Width:  t.W,
				Height: t.FontSize,
			})
			prev = &row.Content[i]
		}
		if line := strings.TrimSpace(sb.String()); line != "" {
			lines = append(lines, line)
		}
	}
	page.Text = strings.Join(lines, "\n")
	return page, nil
}

// needsSpace reports whether a visible gap separates two runs on one row.
func needsSpace(prev, cur pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(cur.S, " ") {
		return false
	}
	gap := cur.X - (prev.X + prev.W)
	return gap > math.Max(prev.FontSize, 1)*0.15
}

// pageSize reads the MediaBox, walking up the page tree when the page
// inherits it.
func pageSize(p pdf.Page) (float64, float64) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Len() == 4 {
			w := box.Index(2).Float64() - box.Index(0).Float64()
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
	}
	return defaultWidth, defaultHeight
}
