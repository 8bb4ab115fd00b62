package parser

import (
	"quoteparse/internal/domain"
	"quoteparse/internal/noise"
	"quoteparse/internal/port"
)

// Registry is an ordered, immutable set of vendor parsers. Order matters:
// Select returns the first parser whose keywords match.
type Registry struct {
	parsers []port.VendorParser
}

// NewRegistry creates a Registry holding a copy of parsers in the given order.
func NewRegistry(parsers ...port.VendorParser) *Registry {
	cp := make([]port.VendorParser, len(parsers))
	copy(cp, parsers)
	return &Registry{parsers: cp}
}

// DefaultParsers returns the built-in vendor parsers in registration order.
// Their keyword sets are disjoint, so at most one matches a real quote.
func DefaultParsers(filter *noise.Filter) []port.VendorParser {
	return []port.VendorParser{
		NewBillroyParser(filter),
		NewCPSParser(filter),
		NewBunningsParser(filter),
	}
}

// Select returns the first registered parser that can handle the document's
// first page, or domain.ErrNoMatchingVendor.
func (r *Registry) Select(firstPageText string) (port.VendorParser, error) {
	for _, p := range r.parsers {
		if p.CanHandle(firstPageText) {
			return p, nil
		}
	}
	return nil, domain.ErrNoMatchingVendor
}

// Names lists the registered vendor labels in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.parsers))
	for i, p := range r.parsers {
		names[i] = p.Name()
	}
	return names
}
