package database

import (
	"regexp"
	"strings"
)

// Matches runs of characters that cannot appear in a slug.
var nonSlugRunRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify maps a free-text name to its canonical slug: lowercase,
// runs of non-alphanumerics collapsed to a single hyphen, leading and
// trailing hyphens stripped. Applying it to its own output is a no-op,
// so the slug is the source of truth for tag identity.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonSlugRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
