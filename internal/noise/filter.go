// Package noise strips letterhead boilerplate (contact details, tax ids and
// configured phrases) from free text pulled out of vendor documents.
package noise

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	urlPattern   = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s]+`)
	phonePattern = regexp.MustCompile(`(?i)\b(?:1300[\s\-]?\d{3}[\s\-]?\d{3}|\d{4}[\s\-]?\d{3}[\s\-]?\d{3})\b`)
	abnPattern   = regexp.MustCompile(`(?i)\bABN[:\s]*\d{2}\s?\d{3}\s?\d{3}\s?\d{3}\b`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Filter removes noise patterns from text. The zero value strips only the
// built-in patterns.
type Filter struct {
	phrases []*regexp.Regexp
}

// Default strips the built-in patterns and no extra phrases.
var Default = New(nil)

// New builds a Filter that additionally removes each of the given phrases,
// matched literally and case-insensitively. Blank phrases are ignored.
func New(phrases []string) *Filter {
	f := &Filter{}
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f.phrases = append(f.phrases, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p)))
	}
	return f
}

// Clean applies the removals and collapses whitespace. Removing one match
// can splice together text that forms another match, so the removal pass
// repeats until nothing changes; Clean(Clean(x)) == Clean(x). Every pass that
// changes the text removes at least one non-space character, so the loop ends.
func (f *Filter) Clean(text string) string {
	out := collapse(text)
	for {
		next := collapse(f.strip(out))
		if next == out {
			return out
		}
		out = next
	}
}

func (f *Filter) strip(text string) string {
	text = emailPattern.ReplaceAllString(text, " ")
	text = urlPattern.ReplaceAllString(text, " ")
	text = phonePattern.ReplaceAllString(text, " ")
	text = abnPattern.ReplaceAllString(text, " ")
	for _, p := range f.phrases {
		text = p.ReplaceAllString(text, " ")
	}
	return text
}

func collapse(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// Clean runs the Default filter.
func Clean(text string) string {
	return Default.Clean(text)
}
