package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9-]{2,200}$`)

// Slugs that collide with API route segments or well-known paths.
var reservedSlugs = map[string]struct{}{
	"admin":         {},
	"api":           {},
	"auth":          {},
	"users":         {},
	"posts":         {},
	"comments":      {},
	"games":         {},
	"reviews":       {},
	"tips":          {},
	"wiki":          {},
	"likes":         {},
	"leaderboard":   {},
	"achievements":  {},
	"notifications": {},
	"moderation":    {},
	"ws":            {},
	"swagger":       {},
	"metrics":       {},
	"health":        {},
	"login":         {},
	"signup":        {},
	"search":        {},
	"me":            {},
}

// ValidateSlug validates URL slug format and reserved names. Used for game
// and wiki entry slugs, which are addressable path segments.
func ValidateSlug(slug string) error {
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 2-200 characters and contain only lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	if _, exists := reservedSlugs[slug]; exists {
		return fmt.Errorf("slug is reserved")
	}

	return nil
}
