package outline

import (
	"math"
	"testing"
)

func sized(sizes ...float64) []Element {
	elements := make([]Element, len(sizes))
	for i, s := range sizes {
		elements[i] = Element{FontSize: s}
	}
	return elements
}

func TestAnalyze_FontStats(t *testing.T) {
	a := Analyze(sized(12, 12, 12, 16))

	if math.Abs(a.Font.Mean-13) > 1e-9 {
		t.Errorf("expected mean 13, got %v", a.Font.Mean)
	}
	if math.Abs(a.Font.Median-12) > 1e-9 {
		t.Errorf("expected median 12, got %v", a.Font.Median)
	}
	if math.Abs(a.Font.Std-2) > 1e-9 {
		t.Errorf("expected sample deviation 2, got %v", a.Font.Std)
	}
	if len(a.Font.UniqueSizes) != 2 || a.Font.UniqueSizes[0] != 16 || a.Font.UniqueSizes[1] != 12 {
		t.Errorf("expected unique sizes [16 12], got %v", a.Font.UniqueSizes)
	}
	if a.Font.SizeCounts[12] != 3 || a.Font.SizeCounts[16] != 1 {
		t.Errorf("unexpected size counts %v", a.Font.SizeCounts)
	}
	if a.TotalElements != 4 {
		t.Errorf("expected 4 elements, got %d", a.TotalElements)
	}
}

func TestAnalyze_HeadingSizes(t *testing.T) {
	// 16 sits above the mean and is rare enough; 12 is the body size.
	a := Analyze(sized(12, 12, 12, 16))
	if len(a.HeadingSizes) != 1 || a.HeadingSizes[0] != 16 {
		t.Errorf("expected heading sizes [16], got %v", a.HeadingSizes)
	}
}

func TestAnalyze_UniformSizesYieldNoHeadings(t *testing.T) {
	// A single size used everywhere fails the usage ceiling.
	a := Analyze(sized(12, 12, 12, 12))
	if len(a.HeadingSizes) != 0 {
		t.Errorf("expected no heading sizes, got %v", a.HeadingSizes)
	}
}

func TestAnalyze_SingleElement(t *testing.T) {
	a := Analyze(sized(12))
	if a.Font.Std != 0 {
		t.Errorf("expected zero deviation for one element, got %v", a.Font.Std)
	}
	if len(a.HeadingSizes) != 0 {
		t.Errorf("expected no heading sizes, got %v", a.HeadingSizes)
	}
}

func TestAnalyze_EmptyDefaults(t *testing.T) {
	a := Analyze(nil)
	if a.Font.Mean != 12 || a.Font.Median != 12 || a.Font.Std != 0 {
		t.Errorf("unexpected default font stats %+v", a.Font)
	}
	if len(a.Font.UniqueSizes) != 1 || a.Font.UniqueSizes[0] != 12 {
		t.Errorf("expected default unique sizes [12], got %v", a.Font.UniqueSizes)
	}
	if len(a.HeadingSizes) != 2 || a.HeadingSizes[0] != 14 || a.HeadingSizes[1] != 16 {
		t.Errorf("expected default heading sizes [14 16], got %v", a.HeadingSizes)
	}
	if a.TotalElements != 0 {
		t.Errorf("expected no elements, got %d", a.TotalElements)
	}
}

func TestAnalyze_PatternCounts(t *testing.T) {
	elements := []Element{
		{FontSize: 12, IsCaps: true, HasColon: true},
		{FontSize: 12, IsTitleCase: true, IsNumbered: true},
		{FontSize: 12, IsAppendix: true, IsPhase: true, HasQuestion: true},
	}
	a := Analyze(elements)
	p := a.Patterns
	if p.Caps != 1 || p.TitleCase != 1 || p.Colon != 1 || p.Numbered != 1 {
		t.Errorf("unexpected pattern counts %+v", p)
	}
	if p.Appendix != 1 || p.Phase != 1 || p.Question != 1 {
		t.Errorf("unexpected pattern counts %+v", p)
	}
}
