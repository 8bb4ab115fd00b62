package domain

// LineItem is one quoted line recovered from a vendor document.
// Optional fields are nil when the source text did not yield a value.
type LineItem struct {
	LineNumber  int      `json:"line_number"`
	PartID      *string  `json:"part_id"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	TotalPrice  *float64 `json:"total_price,omitempty"`
}

// ExtractionResult is the outcome of running one parser over one document.
type ExtractionResult struct {
	Vendor string     `json:"vendor"`
	Items  []LineItem `json:"items"`
	Count  int        `json:"count"`
}

// NewExtractionResult builds a result, never returning a nil item slice.
func NewExtractionResult(vendor string, items []LineItem) *ExtractionResult {
	if items == nil {
		items = []LineItem{}
	}
	return &ExtractionResult{Vendor: vendor, Items: items, Count: len(items)}
}

// PageDump is one entry of the legacy whole-page text dump.
type PageDump struct {
	Page    int          `json:"page"`
	Type    PageDumpType `json:"type"`
	Content string       `json:"content"`
}
