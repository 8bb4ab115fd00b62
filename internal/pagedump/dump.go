// Package pagedump renders whole pages as filtered text for the legacy
// upload endpoint. One configured page is split down the middle into its
// "as found" and "as left" halves.
package pagedump

import (
	"math"
	"regexp"
	"strings"

	"quoteparse/internal/domain"
)

var numberedLine = regexp.MustCompile(`^\d+\.?\s`)

// Dumper turns pages into PageDump records.
type Dumper struct {
	ignore    []string
	splitPage int
}

// New creates a Dumper. Lines containing any ignore phrase (case-insensitive)
// are dropped. splitPage is the 1-based page to split; zero disables it.
func New(ignorePhrases []string, splitPage int) *Dumper {
	d := &Dumper{splitPage: splitPage}
	for _, p := range ignorePhrases {
		if p = strings.TrimSpace(p); p != "" {
			d.ignore = append(d.ignore, strings.ToLower(p))
		}
	}
	return d
}

// Dump returns one record per page, or two for the split page.
func (d *Dumper) Dump(pages []domain.Page) []domain.PageDump {
	out := make([]domain.PageDump, 0, len(pages)+1)
	for _, p := range pages {
		if d.splitPage > 0 && p.Number == d.splitPage {
			mid := p.Width / 2
			out = append(out,
				domain.PageDump{Page: p.Number, Type: domain.PageDumpLeft, Content: d.Clean(p.Region(math.Inf(-1), mid))},
				domain.PageDump{Page: p.Number, Type: domain.PageDumpRight, Content: d.Clean(p.Region(mid, math.Inf(1)))},
			)
			continue
		}
		out = append(out, domain.PageDump{Page: p.Number, Type: domain.PageDumpFull, Content: d.Clean(p.Text)})
	}
	return out
}

// Clean drops blank lines and lines containing an ignore phrase, then
// folds continuation lines into the numbered comment above them.
func (d *Dumper) Clean(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || d.ignored(line) {
			continue
		}
		kept = append(kept, line)
	}

	var (
		out     []string
		comment string
	)
	for _, line := range kept {
		switch {
		case numberedLine.MatchString(line):
			if comment != "" {
				out = append(out, comment)
			}
			comment = line
		case comment != "":
			comment += " " + line
		default:
			out = append(out, line)
		}
	}
	if comment != "" {
		out = append(out, comment)
	}
	return strings.Join(out, "\n")
}

func (d *Dumper) ignored(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range d.ignore {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
