package port

import (
	"context"

	"quoteparse/internal/domain"
)

// DocumentLoader turns raw document bytes into fully materialized pages.
// Implementations wrap unreadable input with domain.ErrInvalidDocument.
type DocumentLoader interface {
	Name() string
	Load(ctx context.Context, data []byte) ([]domain.Page, error)
}
