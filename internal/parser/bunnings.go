package parser

import (
	"regexp"
	"strconv"
	"strings"

	"quoteparse/internal/domain"
	"quoteparse/internal/noise"
)

// BunningsName is the vendor label reported for Bunnings quotes.
const BunningsName = "bunnings"

var bunningsItem = regexp.MustCompile(`(?i)Item\s+(\d+):\s+([^-]+)-\s+Qty:\s+([\d.,]+)\s+-\s+Price:\s+\$?([\d,.]+)`)

// BunningsParser reads Bunnings quotes, which print one item per line as
// "Item N: description - Qty: n - Price: $p".
type BunningsParser struct {
	filter *noise.Filter
}

// NewBunningsParser creates a BunningsParser. A nil filter uses noise.Default.
func NewBunningsParser(filter *noise.Filter) *BunningsParser {
	if filter == nil {
		filter = noise.Default
	}
	return &BunningsParser{filter: filter}
}

func (p *BunningsParser) Name() string { return BunningsName }

func (p *BunningsParser) CanHandle(firstPageText string) bool {
	return containsAnyFold(firstPageText, "BUNNINGS")
}

func (p *BunningsParser) Extract(pages []domain.Page) []domain.LineItem {
	items := []domain.LineItem{}
	for _, page := range pages {
		for _, m := range bunningsItem.FindAllStringSubmatch(page.Text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			items = append(items, domain.LineItem{
				LineNumber:  n,
				Description: p.filter.Clean(strings.TrimSpace(m[2])),
				Quantity:    parseNumber(m[3]),
				UnitPrice:   parseNumber(strings.TrimRight(m[4], ".")),
			})
		}
	}
	return items
}
