package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	numberCleaner  = strings.NewReplacer(",", "", "$", "", " ", "")
	numberShape    = regexp.MustCompile(`^-?(?:\d+\.?\d*|\.\d+)$`)
	partIDShape    = regexp.MustCompile(`^[A-Z0-9-]{3,}$`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
	tokenTrimChars = ".,;:()[]"
)

// parseNumber strips currency symbols, thousands separators and spaces and
// parses what is left. Anything that is not a plain decimal yields nil.
func parseNumber(raw string) *float64 {
	s := numberCleaner.Replace(strings.TrimSpace(raw))
	if !numberShape.MatchString(s) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// isPartID reports whether token looks like a vendor part code: upper-case
// letters, digits and hyphens, at least three long, with at least one digit,
// and not a plain number.
func isPartID(token string) bool {
	if !partIDShape.MatchString(token) || digitsOnly.MatchString(token) {
		return false
	}
	return strings.IndexFunc(token, unicode.IsDigit) >= 0
}

// firstPartID returns the first part-id-shaped token in line.
func firstPartID(line string) (string, bool) {
	for _, tok := range strings.Fields(line) {
		tok = strings.Trim(tok, tokenTrimChars)
		if isPartID(tok) {
			return tok, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	return digitsOnly.MatchString(s)
}

// containsAnyFold reports whether text contains any keyword, ignoring case.
func containsAnyFold(text string, keywords ...string) bool {
	upper := strings.ToUpper(text)
	for _, kw := range keywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}

func stringPtr(s string) *string {
	return &s
}
