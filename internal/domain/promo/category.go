package promo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Target categories that match every service category.
var wildcardCategories = map[string]struct{}{
	"todos": {},
	"all":   {},
	"*":     {},
}

// NormalizeCategory folds case and strips diacritics so "Plomería" and
// "plomeria" compare equal.
func NormalizeCategory(category string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, category)
	if err != nil {
		out = category
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func IsWildcardCategory(category string) bool {
	n := NormalizeCategory(category)
	if n == "" {
		return true
	}
	_, ok := wildcardCategories[n]
	return ok
}

// CategoryApplies reports whether a promo targeting target can be used for candidate.
func CategoryApplies(target *string, candidate string) bool {
	if target == nil || IsWildcardCategory(*target) {
		return true
	}
	return NormalizeCategory(*target) == NormalizeCategory(candidate)
}
