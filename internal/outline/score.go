package outline

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Weights blend the five scoring dimensions into one confidence.
type Weights struct {
	Font      float64
	Format    float64
	Structure float64
	Length    float64
	Position  float64
}

// ScoreConfig carries the scoring thresholds. Zero fields fall back to
// the defaults.
type ScoreConfig struct {
	Weights       Weights
	MinConfidence float64
	MaxHeadings   int

	// StructuralIndicators are section words that mark structural
	// headings regardless of formatting ("Timeline", "Summary", ...).
	// Matched as lowercase substrings.
	StructuralIndicators []string
}

const (
	defaultMinConfidence = 0.65
	defaultMaxHeadings   = 50
)

// DefaultScoreConfig returns the stock weighting scheme: font size
// carries the most signal, format and structural patterns split the
// middle, length and position act as tie-breakers.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Weights: Weights{
			Font:      0.35,
			Format:    0.25,
			Structure: 0.25,
			Length:    0.10,
			Position:  0.05,
		},
		MinConfidence: defaultMinConfidence,
		MaxHeadings:   defaultMaxHeadings,
		StructuralIndicators: []string{
			"timeline", "summary", "background",
			"milestones", "approach", "evaluation",
		},
	}
}

// Scorer assigns a confidence to every element and keeps the ones
// above the threshold, in document order, capped at MaxHeadings.
// Safe for concurrent use.
type Scorer struct {
	cfg ScoreConfig
}

func NewScorer(cfg ScoreConfig) *Scorer {
	def := DefaultScoreConfig()
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = def.MinConfidence
	}
	if cfg.MaxHeadings <= 0 {
		cfg.MaxHeadings = def.MaxHeadings
	}
	if cfg.StructuralIndicators == nil {
		cfg.StructuralIndicators = def.StructuralIndicators
	}
	return &Scorer{cfg: cfg}
}

// Score filters elements to heading candidates. Survivors carry their
// blended confidence and come back sorted by (page, document
// position).
func (s *Scorer) Score(elements []Element, a Analysis) []Element {
	var scored []Element
	for _, e := range elements {
		w := s.cfg.Weights
		conf := w.Font*fontScore(e.FontSize, a) +
			w.Format*formatScore(e) +
			w.Structure*s.structureScore(e) +
			w.Length*lengthScore(e.Length) +
			w.Position*positionScore(e.PositionRatio)
		if conf >= s.cfg.MinConfidence {
			e.Confidence = conf
			scored = append(scored, e)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Page != scored[j].Page {
			return scored[i].Page < scored[j].Page
		}
		return scored[i].DocPosition < scored[j].DocPosition
	})

	if len(scored) > s.cfg.MaxHeadings {
		scored = scored[:s.cfg.MaxHeadings]
	}
	return scored
}

// fontScore is 1 for an identified heading size; otherwise a size
// above the mean earns up to 0.9 proportional to its z-score.
func fontScore(size float64, a Analysis) float64 {
	for _, h := range a.HeadingSizes {
		if size == h {
			return 1.0
		}
	}
	if a.Font.Std > 0 {
		z := (size - a.Font.Mean) / a.Font.Std
		if z > 0 {
			v := z / 2
			if v > 0.9 {
				v = 0.9
			}
			return v
		}
	}
	return 0
}

var (
	threeLevelRe = regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`)
	twoLevelRe   = regexp.MustCompile(`^\d+\.\d+\.?\s+`)
	oneLevelRe   = regexp.MustCompile(`^\d+\.?\s+`)
)

// formatScore rates how heading-like the text itself looks. Numbered
// sections dominate, then casing patterns by strictness; a trailing
// colon adds on top, and appendix/phase/RFP prefixes set a floor.
func formatScore(e Element) float64 {
	text := e.Text
	var score float64

	first, _ := utf8.DecodeRuneInString(text)
	switch {
	case threeLevelRe.MatchString(text):
		score = 1.0
	case twoLevelRe.MatchString(text):
		score = 0.95
	case oneLevelRe.MatchString(text):
		score = 0.9
	case e.IsCaps && e.Length >= 5 && e.Length <= 150:
		score = 0.85
	case e.IsTitleCase && e.Length >= 8 && e.Length <= 200:
		score = 0.75
	case unicode.IsUpper(first) && e.Length >= 10 && e.Length <= 300:
		score = 0.65
	}

	if e.HasColon && e.Length < 200 {
		score += 0.2
	}
	if e.IsAppendix && score < 0.85 {
		score = 0.85
	}
	if e.IsPhase && score < 0.8 {
		score = 0.8
	}
	if strings.HasPrefix(strings.ToUpper(text), "RFP") && score < 0.9 {
		score = 0.9
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// structureScore rewards shapes that read as section markers:
// questions, "for each ...:" leads, known section words, and short
// single-word labels ending in a colon.
func (s *Scorer) structureScore(e Element) float64 {
	var score float64

	if e.HasQuestion && e.Length >= 10 && e.Length <= 100 {
		score += 0.3
	}

	lower := strings.ToLower(e.Text)
	if strings.HasPrefix(lower, "for each") && e.HasColon {
		score += 0.4
	}

	for _, indicator := range s.cfg.StructuralIndicators {
		if strings.Contains(lower, indicator) {
			score += 0.3
			break
		}
	}

	if e.WordCount == 1 && e.HasColon && e.Length >= 5 && e.Length <= 25 {
		score += 0.4
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func lengthScore(length int) float64 {
	switch {
	case length >= 5 && length <= 100:
		return 1.0
	case length >= 3 && length <= 150:
		return 0.8
	case length <= 250:
		return 0.6
	case length <= 350:
		return 0.3
	default:
		return 0.1
	}
}

// positionScore penalizes the extreme top and bottom of a page.
func positionScore(ratio float64) float64 {
	if ratio >= 0.02 && ratio <= 0.98 {
		return 1.0
	}
	return 0.5
}
