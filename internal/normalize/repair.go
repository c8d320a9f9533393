package normalize

import (
	"sort"
	"strings"
	"unicode"
)

// Thresholds for the duplication repairs. Each repair fires only when
// its corruption pattern dominates the string.
const (
	doubledRatio = 0.5 // share of scan steps that hit a doubled letter

	fragmentMinWords   = 4   // shorter strings are left alone
	fragmentSpanWords  = 5   // longest word span considered
	fragmentMinRepeats = 3   // a span must recur this often
	fragmentMinSpanLen = 5   // and be longer than this many runes
	fragmentMaxShrink  = 0.8 // rebuilt text must come in under this share
)

// repairFragments undoes interleaved phrase repetition, the pattern
// where a line arrives as "RFP: R RFP: R RFP: R e e quest f quest f".
// It counts every 1..5-word span, and when a meaningful span recurs
// enough, rebuilds the line from the unique multi-rune tokens in
// first-seen order. The rebuild is accepted only when it shrinks the
// line below fragmentMaxShrink of the original.
func (n *Normalizer) repairFragments(text string) string {
	words := strings.Fields(text)
	if len(words) < fragmentMinWords {
		return text
	}

	counts := make(map[string]int)
	var order []string
	for i := 0; i < len(words); i++ {
		for j := i + 1; j <= len(words) && j <= i+fragmentSpanWords; j++ {
			span := strings.Join(words[i:j], " ")
			if runeLen(span) <= 2 {
				continue
			}
			if counts[span] == 0 {
				order = append(order, span)
			}
			counts[span]++
		}
	}

	// Top three spans by count, first seen wins ties.
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})
	if len(order) > 3 {
		order = order[:3]
	}

	origLen := float64(runeLen(text))
	for _, span := range order {
		if counts[span] < fragmentMinRepeats || runeLen(span) <= fragmentMinSpanLen {
			continue
		}
		rebuilt := n.rebuildFromTokens(words)
		if rebuilt != "" && float64(runeLen(rebuilt)) < origLen*fragmentMaxShrink {
			return rebuilt
		}
	}
	return text
}

// rebuildFromTokens keeps each multi-rune token once, in first-seen
// order. Single characters are dropped outright since they are almost
// always shards of a split word.
func (n *Normalizer) rebuildFromTokens(words []string) string {
	seen := make(map[string]bool)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if runeLen(w) <= 1 || seen[w] {
			continue
		}
		seen[w] = true
		kept = append(kept, w)
	}
	out := strings.Join(kept, " ")
	for _, f := range n.cfg.JoinFixes {
		out = strings.ReplaceAll(out, f.Old, f.New)
	}
	return out
}

// repairDoubling collapses systematic letter doubling ("PPrrooppoossaall").
// A pairwise scan estimates how much of the string is doubled; the
// collapse runs only past doubledRatio, leaving ordinary double
// letters ("committee") alone.
func (n *Normalizer) repairDoubling(text string) string {
	runes := []rune(text)
	if len(runes) < 4 {
		return text
	}

	doubled, total := 0, 0
	for i := 0; i < len(runes)-1; {
		if runes[i] == runes[i+1] && unicode.IsLetter(runes[i]) {
			doubled++
			i += 2
		} else {
			i++
		}
		total++
	}
	if total == 0 || float64(doubled)/float64(total) <= doubledRatio {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		b.WriteRune(runes[i])
		if i+1 < len(runes) && runes[i] == runes[i+1] && unicode.IsLetter(runes[i]) {
			i += 2
		} else {
			i++
		}
	}
	return b.String()
}

// repairWordRepeats drops a word that immediately repeats itself
// (case-insensitively), then checks whether the remaining sequence is
// one phrase written twice and keeps the first half if so.
func (n *Normalizer) repairWordRepeats(text string) string {
	words := strings.Fields(text)
	if len(words) <= 2 {
		return text
	}

	cleaned := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		word := words[i]
		if i+1 < len(words) && strings.EqualFold(words[i], words[i+1]) {
			i++
		}
		cleaned = append(cleaned, word)
		i++
	}

	if len(cleaned) >= 4 && len(cleaned)%2 == 0 {
		mid := len(cleaned) / 2
		same := true
		for i := 0; i < mid; i++ {
			if !strings.EqualFold(cleaned[i], cleaned[mid+i]) {
				same = false
				break
			}
		}
		if same {
			cleaned = cleaned[:mid]
		}
	}
	return strings.Join(cleaned, " ")
}
