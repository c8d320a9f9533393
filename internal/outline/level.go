package outline

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	levelSpaceRe    = regexp.MustCompile(`\s+`)
	trailingMarksRe = regexp.MustCompile(`[.:;,]+$`)
)

// Confidence cutoffs used when neither a numbering pattern nor the
// font hierarchy decides a level.
const (
	confidenceH1 = 0.9
	confidenceH2 = 0.8
	confidenceH3 = 0.75
)

// AssignLevels turns scored elements into final headings: the four
// largest surviving font sizes form the H1..H4 hierarchy, numbering
// depth and appendix/phase/RFP prefixes override it, and duplicates
// (case-insensitive, whitespace-trimmed) are dropped after their first
// occurrence. Input order is preserved.
func AssignLevels(scored []Element) []Heading {
	if len(scored) == 0 {
		return nil
	}

	levelBySize := fontHierarchy(scored)

	var headings []Heading
	seen := make(map[string]bool, len(scored))
	for _, e := range scored {
		level := determineLevel(e.Text, e.FontSize, levelBySize, e.Confidence)
		text := finalCleanup(e.Text)
		key := strings.ToLower(strings.TrimSpace(text))
		if seen[key] || utf8.RuneCountInString(text) <= 2 {
			continue
		}
		seen[key] = true
		headings = append(headings, Heading{Level: level, Text: text, Page: e.Page})
	}
	return headings
}

// fontHierarchy maps the four largest distinct font sizes among the
// survivors to H1..H4.
func fontHierarchy(scored []Element) map[float64]Level {
	var sizes []float64
	seen := make(map[float64]bool)
	for _, e := range scored {
		if !seen[e.FontSize] {
			seen[e.FontSize] = true
			sizes = append(sizes, e.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := []Level{H1, H2, H3, H4}
	mapping := make(map[float64]Level, 4)
	for i, size := range sizes {
		if i >= len(levels) {
			break
		}
		mapping[size] = levels[i]
	}
	return mapping
}

// determineLevel picks a heading level in priority order: numbering
// depth, then special prefixes, then the font hierarchy, then
// confidence bands.
func determineLevel(text string, fontSize float64, levelBySize map[float64]Level, confidence float64) Level {
	switch {
	case threeLevelRe.MatchString(text):
		return H4
	case twoLevelRe.MatchString(text):
		return H3
	case oneLevelRe.MatchString(text):
		return H2
	}

	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "appendix"):
		return H2
	case strings.HasPrefix(lower, "phase"):
		return H3
	case strings.HasPrefix(strings.ToUpper(text), "RFP"):
		return H1
	}

	if level, ok := levelBySize[fontSize]; ok {
		return level
	}

	switch {
	case confidence > confidenceH1:
		return H1
	case confidence > confidenceH2:
		return H2
	case confidence > confidenceH3:
		return H3
	default:
		return H3
	}
}

// finalCleanup collapses whitespace and trims trailing punctuation,
// keeping a trailing colon.
func finalCleanup(text string) string {
	text = levelSpaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if !strings.HasSuffix(text, ":") {
		text = strings.TrimSpace(trailingMarksRe.ReplaceAllString(text, ""))
	}
	return text
}

// postProcess dedupes assigned headings by normalized text and orders
// them by page, preserving document order within a page.
func postProcess(headings []Heading) []Heading {
	if len(headings) == 0 {
		return nil
	}

	unique := make([]Heading, 0, len(headings))
	seen := make(map[string]bool, len(headings))
	for _, h := range headings {
		key := strings.ToLower(strings.TrimSpace(h.Text))
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, h)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Page < unique[j].Page
	})
	return unique
}
