package outline

import (
	"math"
	"sort"
)

// FontStats summarizes the font sizes seen across retained elements.
// UniqueSizes is descending.
type FontStats struct {
	Mean        float64
	Median      float64
	Std         float64
	UniqueSizes []float64
	SizeCounts  map[float64]int
}

// PatternStats counts the formatting signals across retained elements.
type PatternStats struct {
	Caps      int
	TitleCase int
	Colon     int
	Numbered  int
	Appendix  int
	Phase     int
	Question  int
}

// Analysis is the whole-document view the scorer works against.
type Analysis struct {
	Font          FontStats
	HeadingSizes  []float64
	Patterns      PatternStats
	TotalElements int
}

// Heading-size selection: a size qualifies when it sits above the mean
// by a fraction of the deviation and is used by a small share of lines.
const (
	headingStdShare = 0.1
	minSizeUsage    = 0.003
	maxSizeUsage    = 0.4

	defaultFontSize = 12.0
)

// Analyze computes font statistics, the candidate heading sizes and
// pattern counts for one document's elements. With no elements it
// returns a fixed default so downstream scoring still has a baseline.
func Analyze(elements []Element) Analysis {
	if len(elements) == 0 {
		return defaultAnalysis()
	}

	sizes := make([]float64, len(elements))
	for i, e := range elements {
		sizes[i] = e.FontSize
	}

	font := FontStats{
		Mean:       mean(sizes),
		Median:     median(sizes),
		Std:        stddev(sizes),
		SizeCounts: make(map[float64]int),
	}
	for _, s := range sizes {
		if font.SizeCounts[s] == 0 {
			font.UniqueSizes = append(font.UniqueSizes, s)
		}
		font.SizeCounts[s]++
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(font.UniqueSizes)))

	var patterns PatternStats
	for _, e := range elements {
		if e.IsCaps {
			patterns.Caps++
		}
		if e.IsTitleCase {
			patterns.TitleCase++
		}
		if e.HasColon {
			patterns.Colon++
		}
		if e.IsNumbered {
			patterns.Numbered++
		}
		if e.IsAppendix {
			patterns.Appendix++
		}
		if e.IsPhase {
			patterns.Phase++
		}
		if e.HasQuestion {
			patterns.Question++
		}
	}

	return Analysis{
		Font:          font,
		HeadingSizes:  headingSizes(font, len(sizes)),
		Patterns:      patterns,
		TotalElements: len(elements),
	}
}

// headingSizes picks the font sizes that plausibly mark headings:
// above the mean (by a share of the deviation) and neither vanishingly
// rare nor dominating the page.
func headingSizes(font FontStats, total int) []float64 {
	var out []float64
	for _, size := range font.UniqueSizes {
		if size < font.Mean+font.Std*headingStdShare {
			continue
		}
		usage := float64(font.SizeCounts[size]) / float64(total)
		if usage >= minSizeUsage && usage <= maxSizeUsage {
			out = append(out, size)
		}
	}
	return out
}

func defaultAnalysis() Analysis {
	return Analysis{
		Font: FontStats{
			Mean:        defaultFontSize,
			Median:      defaultFontSize,
			Std:         0,
			UniqueSizes: []float64{defaultFontSize},
			SizeCounts:  map[float64]int{},
		},
		HeadingSizes: []float64{14, 16},
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// stddev is the sample standard deviation; a single value has no
// spread.
func stddev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}
