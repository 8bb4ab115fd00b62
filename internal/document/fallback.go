package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"quoteparse/internal/domain"
	"quoteparse/internal/port"
)

// FallbackLoader tries loaders in order and returns the first usable result.
// A result whose pages carry no text at all is kept only until a later
// loader does better. It implements port.DocumentLoader.
type FallbackLoader struct {
	loaders []port.DocumentLoader
}

// NewFallbackLoader creates a FallbackLoader from an ordered list of loaders.
func NewFallbackLoader(loaders []port.DocumentLoader) *FallbackLoader {
	return &FallbackLoader{loaders: loaders}
}

func (f *FallbackLoader) Name() string {
	names := make([]string, len(f.loaders))
	for i, l := range f.loaders {
		names[i] = l.Name()
	}
	return strings.Join(names, "+")
}

func (f *FallbackLoader) Load(ctx context.Context, data []byte) ([]domain.Page, error) {
	var (
		lastErr error
		blank   []domain.Page
		found   bool
	)

	for _, l := range f.loaders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pages, err := l.Load(ctx, data)
		if err != nil {
			log.Warn().Err(err).Str("loader", l.Name()).Msg("document.FallbackLoader: loader failed")
			lastErr = err
			continue
		}
		if hasText(pages) {
			return pages, nil
		}
		log.Debug().Str("loader", l.Name()).Int("pages", len(pages)).Msg("document.FallbackLoader: no text found, trying next loader")
		if !found {
			blank, found = pages, true
		}
	}

	if found {
		return blank, nil
	}
	if lastErr == nil {
		return nil, fmt.Errorf("no document loaders configured: %w", domain.ErrInvalidDocument)
	}
	return nil, fmt.Errorf("all document loaders failed: %w", lastErr)
}

func hasText(pages []domain.Page) bool {
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			return true
		}
	}
	return false
}
