package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)
	nonAlnum     = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Slugify lowercases the title, collapses runs of non-alphanumerics into a
// single hyphen and trims leading/trailing hyphens. Collision suffixes are
// the caller's concern.
func Slugify(title string) string {
	slug := nonAlnumRuns.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "board"
	}

	return slug
}

// SanitizeSlugPart replaces every non-alphanumeric character with a hyphen,
// used for the email fragment of provisioned board slugs.
func SanitizeSlugPart(s string) string {
	return nonAlnum.ReplaceAllString(s, "-")
}
