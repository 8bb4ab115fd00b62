package quoteexport

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"quoteparse/internal/domain"
)

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a download name derived from the uploaded file.
// Format: {sanitized_source_stem}_{YYYY-MM-DD}.{format}
func BuildFilename(source string, format domain.ExportFormat, now time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	sanitized := SanitizeFilename(stem)
	if sanitized == "" {
		sanitized = "quote"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), format)
}

// ParseFormat validates a requested export format.
func ParseFormat(s string) (domain.ExportFormat, bool) {
	f := domain.ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	_, ok := domain.ExportContentTypes[f]
	return f, ok
}
