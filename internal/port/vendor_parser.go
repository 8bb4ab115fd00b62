package port

import "quoteparse/internal/domain"

// VendorParser recognises one vendor's quote layout and pulls line items out
// of it. Implementations must be safe for concurrent use and must never fail:
// missing text, missing tables or unparseable fields degrade to fewer items
// or nil fields.
type VendorParser interface {
	// Name is the vendor label reported with the extraction result.
	Name() string
	// CanHandle reports whether the first page carries this vendor's keywords.
	CanHandle(firstPageText string) bool
	// Extract returns items in the order they appear across all pages.
	Extract(pages []domain.Page) []domain.LineItem
}
