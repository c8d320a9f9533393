package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/normalize"
	"github.com/dgallion1/docoutline/internal/pagetext"
)

// Element is a normalized text line annotated with the derived
// features the scorer reads. Created once per retained line and
// discarded after leveling.
type Element struct {
	Text          string
	OriginalText  string
	Page          int
	LineIndex     int
	FontSize      float64
	FontName      string
	Length        int
	PositionRatio float64
	DocPosition   int
	WordCount     int
	IsCaps        bool
	IsTitleCase   bool
	HasColon      bool
	HasNumbers    bool
	IsNumbered    bool
	IsAppendix    bool
	IsPhase       bool
	HasQuestion   bool
	Confidence    float64
}

var (
	numberedRe   = regexp.MustCompile(`^\d+\.`)
	anyDigitRe   = regexp.MustCompile(`\d`)
	linkOrPageRe = regexp.MustCompile(`www\.|http|@.*\.(com|org)|page\s+\d+|^\d+$`)
	legaleseRe   = regexp.MustCompile(`copyright|©|version\s+\d+|\d{4}-\d{2}-\d{2}`)
)

const (
	maxElementLen      = 500
	maxDigitRatio      = 0.7
	titleOverlapShare  = 0.75
	titleCaseWordShare = 0.6
)

// BuildElements walks every page, cleans each line and keeps the ones
// that could plausibly be headings. Lines that echo the document title,
// sit on a page boundary, or look like links, legalese or tabular
// filler contribute nothing. DocPosition is stamped in reading order
// across the whole document.
func BuildElements(pages []pagetext.Page, n *normalize.Normalizer, docTitle string) []Element {
	var elements []Element
	docPos := 0
	for _, page := range pages {
		total := len(page.Lines)
		for idx, line := range page.Lines {
			raw := strings.TrimSpace(line.Text)
			if utf8.RuneCountInString(raw) < 2 {
				continue
			}
			clean, ok := n.Clean(raw)
			if !ok {
				continue
			}
			if matchesTitle(clean, docTitle) {
				continue
			}
			if isNonStructural(idx, total, clean) {
				continue
			}

			length := utf8.RuneCountInString(clean)
			ratio := 0.0
			if total > 0 {
				ratio = float64(idx) / float64(total)
			}
			lower := strings.ToLower(clean)
			elements = append(elements, Element{
				Text:          clean,
				OriginalText:  raw,
				Page:          page.Number,
				LineIndex:     idx,
				FontSize:      line.Size,
				FontName:      line.Font,
				Length:        length,
				PositionRatio: ratio,
				DocPosition:   docPos,
				WordCount:     len(strings.Fields(clean)),
				IsCaps:        normalize.Uppercased(clean),
				IsTitleCase:   titleCased(clean),
				HasColon:      strings.HasSuffix(clean, ":"),
				HasNumbers:    anyDigitRe.MatchString(clean),
				IsNumbered:    numberedRe.MatchString(clean),
				IsAppendix:    strings.HasPrefix(lower, "appendix"),
				IsPhase:       strings.HasPrefix(lower, "phase"),
				HasQuestion:   strings.Contains(clean, "?"),
			})
			docPos++
		}
	}
	return elements
}

// titleCased extends exact title casing to multi-word headings: two or
// more words qualify when at least titleCaseWordShare of them start
// uppercase.
func titleCased(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 {
		return normalize.TitleCased(text)
	}
	capitalized := 0
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	return float64(capitalized) >= float64(len(words))*titleCaseWordShare
}

// matchesTitle suppresses lines that restate the resolved title,
// either verbatim or with a high share of its words.
func matchesTitle(text, docTitle string) bool {
	if docTitle == "" {
		return false
	}
	textClean := strings.ToLower(strings.TrimSpace(text))
	titleClean := strings.ToLower(strings.TrimSpace(docTitle))
	if textClean == titleClean {
		return true
	}

	textWords := fieldSet(textClean)
	titleWords := fieldSet(titleClean)
	if len(textWords) > 1 && len(titleWords) > 1 {
		overlap := 0
		for w := range textWords {
			if titleWords[w] {
				overlap++
			}
		}
		min := len(textWords)
		if len(titleWords) < min {
			min = len(titleWords)
		}
		if float64(overlap)/float64(min) >= titleOverlapShare {
			return true
		}
	}
	return false
}

func fieldSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// isNonStructural drops page-boundary lines, links, legalese, long
// paragraph text and digit-heavy tabular rows.
func isNonStructural(lineIdx, totalLines int, text string) bool {
	if lineIdx <= 1 || lineIdx >= totalLines-2 {
		return true
	}

	lower := strings.ToLower(text)
	if linkOrPageRe.MatchString(lower) {
		return true
	}
	if legaleseRe.MatchString(lower) {
		return true
	}

	length := utf8.RuneCountInString(text)
	if length > maxElementLen {
		return true
	}
	if length > 10 {
		digits := 0
		for _, r := range text {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if float64(digits)/float64(length) > maxDigitRatio {
			return true
		}
	}
	return false
}
