package parser

import (
	"regexp"
	"strconv"
	"strings"

	"quoteparse/internal/domain"
	"quoteparse/internal/noise"
)

var (
	manualLabeledStart = regexp.MustCompile(`(?i)^Line:?\s*(\d+)\b[\s.:)\-]*(.*)$`)
	manualBareStart    = regexp.MustCompile(`^(\d+)(?:\.\s*|\)\s*|\s+)(.+)$`)
	manualCodeStart    = regexp.MustCompile(`^[A-Za-z0-9]{3,}`)
	manualPartIDLine   = regexp.MustCompile(`(?i)^Part\s*(?:ID|No\.?|Number)\s*:?\s*([A-Za-z0-9-]+)`)
	manualLabelOnly    = regexp.MustCompile(`(?i)^(qty|quantity|unit price|price|total price|total)\s*:?$`)
	manualLabelValue   = regexp.MustCompile(`(?i)^(qty|quantity|unit price|price|total price|total|unit)\s*:?\s*\$?\s*(\d[\d,]*(?:\.\d+)?)`)
	manualPureNumber   = regexp.MustCompile(`(?i)^(\$)?\s*(\d[\d,]*(?:\.\d+)?)\s*(?:ea|each|pcs?|units?)?$`)
	manualQuantity     = regexp.MustCompile(`(?i)(?:^|\s)(\d+(?:\.\d+)?)\s*(?:ea|each|pcs?|units?)?(?:\s|$)`)
	manualPrice        = regexp.MustCompile(`(?:^|[\s(])\$?\s*(\d[\d,]*(?:\.\d+)?)(?:[\s),;.]|$)`)
	manualUnitWords    = map[string]bool{"ea": true, "each": true, "pc": true, "pcs": true, "unit": true, "units": true}
)

type manualField int

const (
	fieldNone manualField = iota
	fieldQuantity
	fieldPrice
	fieldTotal
)

func labelField(label string) manualField {
	switch strings.ToLower(label) {
	case "qty", "quantity":
		return fieldQuantity
	case "price", "unit price", "unit":
		return fieldPrice
	case "total", "total price":
		return fieldTotal
	}
	return fieldNone
}

// ManualParser is the fallback for vendors with no registered parser. The
// caller bounds the interesting part of the document with a start and end
// marker and the section between them is read with loose line heuristics.
// It is never selected automatically.
type ManualParser struct {
	start  string
	end    string
	filter *noise.Filter
}

// NewManualParser creates a ManualParser for one request. A nil filter uses
// noise.Default.
func NewManualParser(startMarker, endMarker string, filter *noise.Filter) *ManualParser {
	if filter == nil {
		filter = noise.Default
	}
	return &ManualParser{start: startMarker, end: endMarker, filter: filter}
}

func (p *ManualParser) Name() string { return domain.VendorManual }

// CanHandle is always false.
func (p *ManualParser) CanHandle(string) bool { return false }

func (p *ManualParser) Extract(pages []domain.Page) []domain.LineItem {
	return p.parseSection(p.Section(domain.JoinText(pages)))
}

// Section returns text from the first occurrence of the start marker up to,
// but not including, the first occurrence of the end marker at or after it.
// A missing start marker starts at the beginning of the text and a missing
// end marker runs to the end.
func (p *ManualParser) Section(text string) string {
	start := 0
	if p.start != "" {
		if i := strings.Index(text, p.start); i >= 0 {
			start = i
		}
	}
	end := len(text)
	if p.end != "" {
		if i := strings.Index(text[start:], p.end); i >= 0 {
			end = start + i
		}
	}
	return text[start:end]
}

// manualState accumulates items while walking the section line by line.
type manualState struct {
	items   []domain.LineItem
	current *domain.LineItem
	started int
	armed   manualField
}

func (s *manualState) open(lineNumber int) {
	s.flush()
	s.started++
	s.current = &domain.LineItem{LineNumber: lineNumber}
}

func (s *manualState) flush() {
	if s.current != nil {
		s.items = append(s.items, *s.current)
		s.current = nil
	}
	s.armed = fieldNone
}

func (p *ManualParser) parseSection(section string) []domain.LineItem {
	s := &manualState{}
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if n, rest, ok := itemStart(line); ok {
			s.open(n)
			if rest != "" {
				p.readLine(s, rest)
			}
			continue
		}
		if isLineLabel(line) {
			continue
		}

		if s.current == nil {
			if manualCodeStart.MatchString(line) && !manualLabelOnly.MatchString(line) {
				fields := strings.Fields(line)
				s.open(s.started + 1)
				s.current.PartID = stringPtr(fields[0])
				s.current.Description = strings.Join(fields[1:], " ")
			}
			continue
		}

		p.readLine(s, line)
	}
	s.flush()

	items := s.items
	if items == nil {
		items = []domain.LineItem{}
	}
	for i := range items {
		if items[i].Description != "" {
			items[i].Description = p.filter.Clean(items[i].Description)
		}
	}
	return items
}

// isLineLabel reports whether line carries a "Line: N" label, whatever N is.
func isLineLabel(line string) bool {
	return manualLabeledStart.MatchString(line)
}

// itemStart recognises "Line: 12 ..." and "12. Some text" lines. A "Line:"
// label whose number does not fit an int is not an item start.
func itemStart(line string) (int, string, bool) {
	if m := manualLabeledStart.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, "", false
		}
		return n, strings.TrimSpace(m[2]), true
	}
	m := manualBareStart.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	rest := strings.TrimSpace(m[2])
	if !startsWithLetter(rest) {
		return 0, "", false
	}
	first := strings.ToLower(strings.Trim(strings.Fields(rest)[0], tokenTrimChars))
	if manualUnitWords[first] {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return n, rest, true
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// readLine applies the field heuristics to one line of an open item.
func (p *ManualParser) readLine(s *manualState, line string) {
	item := s.current

	if m := manualLabelOnly.FindStringSubmatch(line); m != nil {
		s.armed = labelField(m[1])
		return
	}
	if m := manualPartIDLine.FindStringSubmatch(line); m != nil {
		if item.PartID == nil {
			item.PartID = stringPtr(m[1])
		}
		return
	}
	if m := manualLabelValue.FindStringSubmatch(line); m != nil {
		setOnce(item, labelField(m[1]), parseNumber(m[2]))
		s.armed = fieldNone
		return
	}
	if m := manualPureNumber.FindStringSubmatch(line); m != nil {
		v := parseNumber(m[2])
		switch {
		case s.armed != fieldNone:
			setOnce(item, s.armed, v)
			s.armed = fieldNone
		case m[1] == "" && item.Quantity == nil:
			item.Quantity = v
		case item.UnitPrice == nil && v != nil && *v >= 0.01:
			item.UnitPrice = v
		}
		return
	}

	if item.PartID == nil {
		if id, ok := firstPartID(line); ok {
			item.PartID = stringPtr(id)
		}
	}
	// The price is searched for after the quantity when both share a line.
	priceText := line
	if item.Quantity == nil {
		if loc := manualQuantity.FindStringSubmatchIndex(line); loc != nil {
			if v := parseNumber(line[loc[2]:loc[3]]); v != nil {
				item.Quantity = v
				priceText = line[loc[1]:]
			}
		}
	}
	if item.UnitPrice == nil {
		if m := manualPrice.FindStringSubmatch(priceText); m != nil {
			if v := parseNumber(m[1]); v != nil && *v >= 0.01 {
				item.UnitPrice = v
			}
		}
	}
	item.Description = joinDescription(item.Description, line)
}

func setOnce(item *domain.LineItem, field manualField, v *float64) {
	if v == nil {
		return
	}
	switch field {
	case fieldQuantity:
		if item.Quantity == nil {
			item.Quantity = v
		}
	case fieldPrice:
		if item.UnitPrice == nil {
			item.UnitPrice = v
		}
	case fieldTotal:
		if item.TotalPrice == nil {
			item.TotalPrice = v
		}
	}
}
