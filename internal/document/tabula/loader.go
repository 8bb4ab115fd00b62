// Package tabula loads PDF pages with github.com/tsawler/tabula, which gives
// page text, word geometry and geometrically detected tables.
package tabula

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"

	"quoteparse/internal/domain"
)

// Name is the backend name used in configuration.
const Name = "tabula"

// Loader implements port.DocumentLoader on top of tabula. tabula reads from
// an *os.File, so every Load spools the upload to a temp file that is
// removed before returning.
type Loader struct {
	tempDir  string
	detector *tables.GeometricDetector
}

// NewLoader creates a Loader that spools uploads under tempDir, or the
// system temp dir when empty.
func NewLoader(tempDir string) *Loader {
	return &Loader{
		tempDir:  tempDir,
		detector: tables.NewGeometricDetector(),
	}
}

func (l *Loader) Name() string { return Name }

func (l *Loader) Load(ctx context.Context, data []byte) ([]domain.Page, error) {
	f, err := spool(l.tempDir, data)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())

	r, err := reader.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tabula: opening pdf: %w: %v", domain.ErrInvalidDocument, err)
	}
	defer r.Close()

	count, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("tabula: counting pages: %w: %v", domain.ErrInvalidDocument, err)
	}

	pages := make([]domain.Page, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := l.loadPage(r, i)
		if err != nil {
			return nil, fmt.Errorf("tabula: page %d: %w: %v", i+1, domain.ErrInvalidDocument, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (l *Loader) loadPage(r *reader.Reader, index int) (domain.Page, error) {
	p, err := r.GetPage(index)
	if err != nil {
		return domain.Page{}, err
	}
	width, err := p.Width()
	if err != nil {
		return domain.Page{}, err
	}
	height, err := p.Height()
	if err != nil {
		return domain.Page{}, err
	}

	fragments, err := r.ExtractTextFragments(p)
	if err != nil {
		return domain.Page{}, err
	}

	pageText, warnings, err := tabula.FromReader(r).Pages(index + 1).Text()
	if err != nil {
		return domain.Page{}, err
	}
	if len(warnings) > 0 {
		log.Debug().Int("page", index+1).Int("warnings", len(warnings)).Msg("tabula.Loader: text extracted with warnings")
	}

	return domain.Page{
		Number: index + 1,
		Text:   pageText,
		Tables: l.detectTables(fragments, width, height, index+1),
		Width:  width,
		Height: height,
		Words:  toWords(fragments),
	}, nil
}

// detectTables runs the geometric detector over the page fragments. A
// detector failure only costs the page its tables.
func (l *Loader) detectTables(fragments []text.TextFragment, width, height float64, number int) []domain.Table {
	mp := model.NewPage(width, height)
	mp.Number = number
	for _, f := range fragments {
		mp.RawText = append(mp.RawText, model.TextFragment{
			Text:     f.Text,
			BBox:     model.NewBBox(f.X, f.Y, f.Width, f.Height),
			FontSize: f.FontSize,
			FontName: f.FontName,
		})
	}

	detected, err := l.detector.Detect(mp)
	if err != nil {
		log.Warn().Err(err).Int("page", number).Msg("tabula.Loader: table detection failed")
		return nil
	}

	out := make([]domain.Table, 0, len(detected))
	for _, t := range detected {
		if t == nil {
			continue
		}
		out = append(out, toTable(t))
	}
	return out
}

func toTable(t *model.Table) domain.Table {
	rows := make(domain.Table, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.Text
		}
		rows[i] = cells
	}
	return rows
}

func toWords(fragments []text.TextFragment) []domain.Word {
	words := make([]domain.Word, 0, len(fragments))
	for _, f := range fragments {
		words = append(words, domain.Word{
			Text:   f.Text,
			X:      f.X,
			Y:      f.Y,
			Width:  f.Width,
			Height: f.Height,
		})
	}
	return words
}

// spool writes data to a new temp file and rewinds it for reading.
func spool(dir string, data []byte) (*os.File, error) {
	f, err := os.CreateTemp(dir, "quote-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("tabula: creating temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("tabula: writing temp file: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("tabula: rewinding temp file: %w", err)
	}
	return f, nil
}
