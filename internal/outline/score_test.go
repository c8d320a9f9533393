package outline

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/normalize"
)

// newElement derives the feature flags the way BuildElements does,
// for scoring tests that construct elements directly.
func newElement(text string, size float64) Element {
	lower := strings.ToLower(text)
	return Element{
		Text:        text,
		FontSize:    size,
		Length:      utf8.RuneCountInString(text),
		WordCount:   len(strings.Fields(text)),
		IsCaps:      normalize.Uppercased(text),
		IsTitleCase: titleCased(text),
		HasColon:    strings.HasSuffix(text, ":"),
		IsAppendix:  strings.HasPrefix(lower, "appendix"),
		IsPhase:     strings.HasPrefix(lower, "phase"),
		HasQuestion: strings.Contains(text, "?"),
	}
}

func TestFormatScore_NumberedSections(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"1.2.3 Detailed Design", 1.0},
		{"2.1 Intended Audience", 0.95},
		{"3. Approach Overview", 0.9},
	}
	for _, c := range cases {
		if got := formatScore(newElement(c.text, 12)); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("formatScore(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestFormatScore_CasePatterns(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"EXECUTIVE SUMMARY", 0.85},
		{"Executive Summary", 0.75},
		{"Introduction to the plan", 0.65},
		{"lowercase body text here", 0.0},
	}
	for _, c := range cases {
		if got := formatScore(newElement(c.text, 12)); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("formatScore(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestFormatScore_ColonBonusAndFloors(t *testing.T) {
	// Title-case single word with colon: 0.75 + 0.2.
	if got := formatScore(newElement("Timeline:", 12)); math.Abs(got-0.95) > 1e-9 {
		t.Errorf("expected 0.95 for colon heading, got %v", got)
	}
	// Appendix floor lifts the title-case base.
	if got := formatScore(newElement("Appendix A Glossary", 12)); math.Abs(got-0.85) > 1e-9 {
		t.Errorf("expected 0.85 for appendix, got %v", got)
	}
	// Phase floor applies even with no case signal.
	if got := formatScore(newElement("phase two rollout", 12)); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("expected 0.8 for phase, got %v", got)
	}
	// RFP prefix floor.
	if got := formatScore(newElement("RFP: Request for Proposal", 12)); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("expected 0.9 for RFP prefix, got %v", got)
	}
	// Numbered section with colon caps at 1.0.
	if got := formatScore(newElement("1. Summary:", 12)); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected cap at 1.0, got %v", got)
	}
}

func TestStructureScore(t *testing.T) {
	s := NewScorer(DefaultScoreConfig())
	cases := []struct {
		text string
		want float64
	}{
		{"What could the platform really mean?", 0.3},
		{"for each vendor response:", 0.4},
		{"Project Timeline Overview", 0.3},
		{"Access:", 0.4},
		{"plain body sentence with nothing to say", 0.0},
	}
	for _, c := range cases {
		if got := s.structureScore(newElement(c.text, 12)); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("structureScore(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestLengthScore(t *testing.T) {
	cases := []struct {
		length int
		want   float64
	}{
		{4, 0.8},
		{50, 1.0},
		{100, 1.0},
		{120, 0.8},
		{200, 0.6},
		{250, 0.6},
		{300, 0.3},
		{400, 0.1},
	}
	for _, c := range cases {
		if got := lengthScore(c.length); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("lengthScore(%d) = %v, want %v", c.length, got, c.want)
		}
	}
}

func TestPositionScore(t *testing.T) {
	if got := positionScore(0.5); got != 1.0 {
		t.Errorf("expected 1.0 mid-page, got %v", got)
	}
	if got := positionScore(0.0); got != 0.5 {
		t.Errorf("expected 0.5 at page top, got %v", got)
	}
	if got := positionScore(0.99); got != 0.5 {
		t.Errorf("expected 0.5 at page bottom, got %v", got)
	}
}

func TestFontScore(t *testing.T) {
	a := Analysis{
		Font:         FontStats{Mean: 12, Std: 2},
		HeadingSizes: []float64{16},
	}
	if got := fontScore(16, a); got != 1.0 {
		t.Errorf("expected 1.0 for identified heading size, got %v", got)
	}
	if got := fontScore(14, a); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected 0.5 for z-score 1, got %v", got)
	}
	if got := fontScore(20, a); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("expected cap at 0.9, got %v", got)
	}
	if got := fontScore(10, a); got != 0 {
		t.Errorf("expected 0 below the mean, got %v", got)
	}
	flat := Analysis{Font: FontStats{Mean: 12, Std: 0}}
	if got := fontScore(14, flat); got != 0 {
		t.Errorf("expected 0 with no deviation, got %v", got)
	}
}

func TestScorer_FiltersAndOrders(t *testing.T) {
	s := NewScorer(DefaultScoreConfig())
	a := Analysis{
		Font:         FontStats{Mean: 12.5, Std: 2},
		HeadingSizes: []float64{16},
	}

	h1 := newElement("1. Introduction", 16)
	h1.Page, h1.DocPosition, h1.PositionRatio = 1, 0, 0.5

	h2 := newElement("2. Methods", 16)
	h2.Page, h2.DocPosition, h2.PositionRatio = 2, 5, 0.5

	body := newElement("the quarterly figures were reviewed by the board", 12)
	body.Page, body.DocPosition, body.PositionRatio = 1, 1, 0.5

	// Deliberately out of document order.
	scored := s.Score([]Element{h2, body, h1}, a)
	if len(scored) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(scored))
	}
	if scored[0].Text != "1. Introduction" || scored[1].Text != "2. Methods" {
		t.Errorf("expected document order, got %q then %q", scored[0].Text, scored[1].Text)
	}
	// 0.35 font + 0.25*0.9 format + 0.10 length + 0.05 position.
	if math.Abs(scored[0].Confidence-0.725) > 1e-9 {
		t.Errorf("expected confidence 0.725, got %v", scored[0].Confidence)
	}
}

func TestScorer_CapsHeadingCount(t *testing.T) {
	s := NewScorer(ScoreConfig{MaxHeadings: 2})
	a := Analysis{Font: FontStats{Mean: 12, Std: 2}, HeadingSizes: []float64{16}}

	var elements []Element
	for i, text := range []string{"1. Alpha Section", "2. Beta Section", "3. Gamma Section"} {
		e := newElement(text, 16)
		e.Page, e.DocPosition, e.PositionRatio = i+1, i, 0.5
		elements = append(elements, e)
	}

	scored := s.Score(elements, a)
	if len(scored) != 2 {
		t.Fatalf("expected cap at 2, got %d", len(scored))
	}
	if scored[0].Text != "1. Alpha Section" || scored[1].Text != "2. Beta Section" {
		t.Errorf("expected earliest survivors kept, got %q then %q", scored[0].Text, scored[1].Text)
	}
}
