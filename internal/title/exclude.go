package title

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Shapes that are never titles: page furniture, legal boilerplate,
// links and revision markers. Matched against the lowercased text.
var nonTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`page \d+`),
	regexp.MustCompile(`\d+/\d+`),
	regexp.MustCompile(`chapter \d+`),
	regexp.MustCompile(`section \d+`),
	regexp.MustCompile(`table of contents`),
	regexp.MustCompile(`copyright`),
	regexp.MustCompile(`©`),
	regexp.MustCompile(`all rights reserved`),
	regexp.MustCompile(`www\.`),
	regexp.MustCompile(`http`),
	regexp.MustCompile(`@`),
	regexp.MustCompile(`\.com`),
	regexp.MustCompile(`\.org`),
	regexp.MustCompile(`version \d+`),
	regexp.MustCompile(`revision`),
	regexp.MustCompile(`draft`),
}

var (
	alphaSpaceRe = regexp.MustCompile(`[a-zA-Z\s]`)
	tableRowRe   = regexp.MustCompile(`\d+\s+\d+\s+\d+`)
	pureNumberRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// isLikelyNonTitle rejects text that matches a known non-title shape,
// is mostly non-alphabetic, is too short, or repeats its own words
// pathologically.
func isLikelyNonTitle(text string) bool {
	lower := strings.ToLower(text)
	for _, re := range nonTitlePatterns {
		if re.MatchString(lower) {
			return true
		}
	}

	rest := alphaSpaceRe.ReplaceAllString(text, "")
	if float64(utf8.RuneCountInString(rest)) > float64(utf8.RuneCountInString(text))*0.7 {
		return true
	}

	if utf8.RuneCountInString(text) <= 3 {
		return true
	}

	words := strings.Fields(text)
	if len(words) > 3 {
		counts := make(map[string]int, len(words))
		for _, w := range words {
			counts[strings.TrimSpace(strings.Trim(w, ":"))]++
		}
		max := 0
		for _, c := range counts {
			if c > max {
				max = c
			}
		}
		if max > 3 {
			return true
		}
		if float64(len(counts)) < float64(len(words))*0.4 {
			return true
		}
	}
	return false
}

// isObviousTableContent catches rows of figures and bare numbers.
func isObviousTableContent(text string) bool {
	if tableRowRe.MatchString(text) {
		return true
	}
	if strings.Count(text, "\t") > 2 {
		return true
	}
	if pureNumberRe.MatchString(strings.TrimSpace(text)) {
		return true
	}
	return false
}
