package parser

import (
	"regexp"
	"strconv"
	"strings"

	"quoteparse/internal/domain"
	"quoteparse/internal/noise"
)

// BillroyName is the vendor label reported for Billroy quotes.
const BillroyName = "billroy"

var (
	billroyAnchor      = regexp.MustCompile(`Line:\s*\d+`)
	billroyLineNumber  = regexp.MustCompile(`Line:\s*(\d+)`)
	billroyPartID      = regexp.MustCompile(`Part ID:\s*([A-Za-z0-9-]+)`)
	billroyQuantity    = regexp.MustCompile(`Quantity\s*:?\s*(\d[\d,]*(?:\.\d+)?)`)
	billroyUnitPrice   = regexp.MustCompile(`Unit Price\s*:?\s*\$?\s*(\d[\d,]*(?:\.\d+)?)`)
	billroyTotalPrice  = regexp.MustCompile(`Total Price\s*:?\s*\$?\s*(\d[\d,]*(?:\.\d+)?)`)
	billroyFieldLabels = regexp.MustCompile(`Quantity|Unit Price|Total Price`)
)

// BillroyParser reads Billroy quotes, where every item is a block of text
// introduced by a "Line: N" anchor followed by labelled fields.
type BillroyParser struct {
	filter *noise.Filter
}

// NewBillroyParser creates a BillroyParser. A nil filter uses noise.Default.
func NewBillroyParser(filter *noise.Filter) *BillroyParser {
	if filter == nil {
		filter = noise.Default
	}
	return &BillroyParser{filter: filter}
}

func (p *BillroyParser) Name() string { return BillroyName }

func (p *BillroyParser) CanHandle(firstPageText string) bool {
	return containsAnyFold(firstPageText, "BILLROY")
}

func (p *BillroyParser) Extract(pages []domain.Page) []domain.LineItem {
	items := []domain.LineItem{}
	for _, block := range splitBlocks(domain.JoinText(pages)) {
		n, ok := blockLineNumber(block)
		if !ok {
			continue
		}
		items = append(items, domain.LineItem{
			LineNumber:  n,
			PartID:      blockPartID(block),
			Description: p.filter.Clean(blockDescription(block)),
			Quantity:    blockQuantity(block),
			UnitPrice:   blockUnitPrice(block),
			TotalPrice:  blockTotalPrice(block),
		})
	}
	return items
}

// splitBlocks cuts text at every "Line: N" anchor. Text before the first
// anchor is discarded.
func splitBlocks(text string) []string {
	locs := billroyAnchor.FindAllStringIndex(text, -1)
	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}

func blockLineNumber(block string) (int, bool) {
	m := billroyLineNumber.FindStringSubmatch(block)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func blockPartID(block string) *string {
	m := billroyPartID.FindStringSubmatch(block)
	if m == nil {
		return nil
	}
	return stringPtr(m[1])
}

// blockDescription returns the raw text between the part id (or the anchor
// when there is none) and the first field label.
func blockDescription(block string) string {
	start := 0
	if loc := billroyPartID.FindStringIndex(block); loc != nil {
		start = loc[1]
	} else if loc := billroyAnchor.FindStringIndex(block); loc != nil {
		start = loc[1]
	}
	rest := block[start:]
	if loc := billroyFieldLabels.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	return strings.Join(strings.Fields(rest), " ")
}

func blockQuantity(block string) *float64 {
	return labelledNumber(billroyQuantity, block)
}

func blockUnitPrice(block string) *float64 {
	return labelledNumber(billroyUnitPrice, block)
}

func blockTotalPrice(block string) *float64 {
	return labelledNumber(billroyTotalPrice, block)
}

func labelledNumber(re *regexp.Regexp, block string) *float64 {
	m := re.FindStringSubmatch(block)
	if m == nil {
		return nil
	}
	return parseNumber(m[1])
}
