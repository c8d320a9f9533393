package pagetext

import (
	"math"
	"sort"
	"strings"
)

const (
	// DefaultSize is assumed for lines without character-level metadata.
	DefaultSize = 12.0
	// DefaultFont labels lines without font information.
	DefaultFont = "default"

	// Characters whose vertical positions differ by at most this much
	// belong to the same line.
	yTolerance = 2.0
)

// BuildLines groups positioned characters into text lines. Characters are
// ordered top-to-bottom, then left-to-right; a character joins the current
// line while its Y stays within the tolerance of the previous character's.
// Whitespace-only lines are discarded.
func BuildLines(chars []Char) []Line {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []Line
	var current []Char
	var currentY float64

	flush := func() {
		if len(current) == 0 {
			return
		}
		if line, ok := assembleLine(current); ok {
			lines = append(lines, line)
		}
		current = current[:0]
	}

	for _, c := range sorted {
		if len(current) == 0 || math.Abs(c.Y-currentY) <= yTolerance {
			current = append(current, c)
		} else {
			flush()
			current = append(current, c)
		}
		currentY = c.Y
	}
	flush()

	return lines
}

// assembleLine builds a Line from one row of characters: text is the
// left-to-right concatenation, size the mean of known sizes, font the
// most frequent font name (first seen wins ties). Returns false for
// empty rows.
func assembleLine(chars []Char) (Line, bool) {
	// Jittered Y values can interleave the group order, so re-sort the
	// row by X before joining.
	sort.SliceStable(chars, func(i, j int) bool {
		return chars[i].X < chars[j].X
	})

	var b strings.Builder
	var sizeSum float64
	sized := 0
	fontCount := make(map[string]int)
	var fontOrder []string

	for _, c := range chars {
		b.WriteString(c.S)
		if c.Size > 0 {
			sizeSum += c.Size
			sized++
		}
		if c.Font != "" {
			if fontCount[c.Font] == 0 {
				fontOrder = append(fontOrder, c.Font)
			}
			fontCount[c.Font]++
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return Line{}, false
	}

	size := DefaultSize
	if sized > 0 {
		size = sizeSum / float64(sized)
	}

	font := DefaultFont
	best := 0
	for _, f := range fontOrder {
		if fontCount[f] > best {
			best = fontCount[f]
			font = f
		}
	}

	return Line{Text: text, Size: size, Font: font}, true
}

// SplitPlain converts raw text into degraded lines at the default size and
// font, one per non-empty input line. Used when character-level positions
// are unavailable.
func SplitPlain(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		lines = append(lines, Line{Text: raw, Size: DefaultSize, Font: DefaultFont})
	}
	return lines
}
