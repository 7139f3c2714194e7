package catalog

import "unicode"

// FilterLatinKeywords drops keywords containing letters outside the
// Latin script. The site is English-facing; keywords written in other
// scripts in the personal sources are not rendered. Digits and
// punctuation do not disqualify a keyword. The result is never nil.
func FilterLatinKeywords(keywords []string) []string {
	filtered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if isLatinOnly(kw) {
			filtered = append(filtered, kw)
		}
	}
	return filtered
}

// isLatinOnly reports whether every letter in s belongs to the Latin script.
func isLatinOnly(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return true
}
