package util

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	slugInvalid   = regexp.MustCompile(`[^a-z0-9-]+`)
	slugCollapsed = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a URL-safe slug. Non-latin characters are
// transliterated first so Cyrillic and accented titles produce ascii slugs.
func Slugify(s string) string {
	result := unidecode.Unidecode(s)
	result = strings.ToLower(strings.TrimSpace(result))
	result = strings.ReplaceAll(result, " ", "-")
	result = slugInvalid.ReplaceAllString(result, "")
	result = slugCollapsed.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsValidSlug reports whether s already satisfies the slug format.
func IsValidSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	if strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	return true
}
