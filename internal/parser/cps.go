package parser

import (
	"strconv"
	"strings"

	"quoteparse/internal/domain"
	"quoteparse/internal/noise"
)

// CPSName is the vendor label reported for Conveyor Products & Solutions quotes.
const CPSName = "cps"

const (
	cpsHeaderRows = 2
	cpsMinColumns = 7

	cpsColLine     = 0
	cpsColDesc     = 1
	cpsColQuantity = 5
	cpsColPrice    = 6
)

var cpsKeywords = []string{"CONVEYOR PRODUCTS", "CPS PTY LTD"}

// cpsDenylist holds boilerplate that CPS prints in the description column
// between items.
var cpsDenylist = []string{
	"hardware note",
	"hardware supplied",
	"please note",
	"continued",
}

// CPSParser reads CPS quotes from the first table on each page. A row with a
// numeric first column opens an item; the rows below it add a part id or more
// description until the next numbered row.
type CPSParser struct {
	filter *noise.Filter
}

// NewCPSParser creates a CPSParser. A nil filter uses noise.Default.
func NewCPSParser(filter *noise.Filter) *CPSParser {
	if filter == nil {
		filter = noise.Default
	}
	return &CPSParser{filter: filter}
}

func (p *CPSParser) Name() string { return CPSName }

func (p *CPSParser) CanHandle(firstPageText string) bool {
	return containsAnyFold(firstPageText, cpsKeywords...)
}

func (p *CPSParser) Extract(pages []domain.Page) []domain.LineItem {
	items := []domain.LineItem{}
	for _, page := range pages {
		items = append(items, p.parseTable(page.FirstTable())...)
	}
	for i := range items {
		items[i].Description = p.filter.Clean(items[i].Description)
	}
	return items
}

// parseTable walks one page's table. Open items are flushed at the end of
// the table and never continue onto the next page.
func (p *CPSParser) parseTable(table domain.Table) []domain.LineItem {
	var (
		items   []domain.LineItem
		current *domain.LineItem
	)
	flush := func() {
		if current != nil {
			items = append(items, *current)
			current = nil
		}
	}

	for i, row := range table {
		if i < cpsHeaderRows || len(row) < cpsMinColumns {
			continue
		}

		lineCell := strings.TrimSpace(row[cpsColLine])
		descCell := strings.TrimSpace(row[cpsColDesc])

		if lineCell != "" && isDigits(lineCell) {
			n, err := strconv.Atoi(lineCell)
			if err != nil {
				continue
			}
			flush()
			current = &domain.LineItem{
				LineNumber:  n,
				Description: descCell,
				Quantity:    parseNumber(row[cpsColQuantity]),
				UnitPrice:   parseNumber(row[cpsColPrice]),
			}
			continue
		}

		if current == nil || descCell == "" {
			continue
		}
		switch {
		case isPartID(descCell) && current.PartID == nil:
			current.PartID = stringPtr(descCell)
		case isDenylisted(descCell):
			// dropped
		default:
			current.Description = joinDescription(current.Description, descCell)
		}
	}
	flush()
	return items
}

func isDenylisted(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range cpsDenylist {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func joinDescription(desc, more string) string {
	if desc == "" {
		return more
	}
	return desc + " " + more
}
