package normalize

import "unicode"

// Uppercased reports whether s contains at least one cased rune and no
// lowercase ones, so "PLAN 2024" qualifies but "2024" alone does not.
func Uppercased(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// TitleCased reports whether s reads as title case: every cased run
// starts with an uppercase rune followed only by lowercase ones, and at
// least one cased rune is present.
func TitleCased(s string) bool {
	hasCased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			hasCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}
