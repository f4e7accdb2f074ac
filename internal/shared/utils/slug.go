package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe identifier from a title:
// lowercase, strip anything outside [a-z0-9 space hyphen], collapse
// whitespace and hyphen runs to single hyphens, trim edge hyphens.
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)

	cleaned := slugStripRe.ReplaceAllString(lower, "")
	hyphenated := slugSpaceRe.ReplaceAllString(cleaned, "-")
	normalized := slugCollapseRe.ReplaceAllString(hyphenated, "-")

	return strings.Trim(normalized, "-")
}

// GenerateUniqueSlug appends a millisecond timestamp so repeated titles
// never collide. Used by content; programs rely on natural title uniqueness.
func GenerateUniqueSlug(input string) string {
	return fmt.Sprintf("%s-%d", GenerateSlug(input), time.Now().UnixMilli())
}
