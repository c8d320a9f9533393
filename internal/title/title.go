package title

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/normalize"
	"github.com/dgallion1/docoutline/internal/pagetext"
)

// Kind distinguishes a genuinely resolved title from the two
// non-answers: nothing matched at all, or a genre rule says the
// document intentionally has no title.
type Kind int

const (
	None Kind = iota
	Resolved
	EmptyByRule
)

// Resolution is the outcome of title resolution for one document.
// Title is only meaningful when Kind is Resolved.
type Resolution struct {
	Kind  Kind
	Title string
}

// Config carries the content rules injected into a Resolver.
type Config struct {
	// InvitationPhrases force an empty title when any of them appears
	// in the first page's joined text. Matched case-insensitively.
	InvitationPhrases []string
}

// DefaultConfig returns the stock rule set.
func DefaultConfig() Config {
	return Config{
		InvitationPhrases: []string{"hope to see you"},
	}
}

// Scan windows and scoring shape for title selection. Sizes are font
// points; the baseline is the conventional body size.
const (
	contentWindow  = 25 // first-page lines joined for phrase checks and fallback
	scanWindow     = 20 // lines eligible as direct candidates
	runStartWindow = 10 // multi-line runs must start inside this many lines
	maxRunLines    = 4
	baselineSize   = 12.0
	multiLineBonus = 5.0

	fallbackMinLen = 3   // exclusive
	fallbackMaxLen = 250 // exclusive
)

// Resolver picks a document title from the first page's normalized
// lines. Safe for concurrent use.
type Resolver struct {
	cfg Config
}

func NewResolver(cfg Config) *Resolver {
	if cfg.InvitationPhrases == nil {
		cfg.InvitationPhrases = DefaultConfig().InvitationPhrases
	}
	return &Resolver{cfg: cfg}
}

// Resolve inspects the first page and returns the best title it can.
// The decision runs in order: invitation phrases force an empty title,
// a single dominant display-sized line wins outright, otherwise
// single-line and multi-line candidates are scored and the best one is
// taken, with a lenient first-acceptable-line fallback behind them.
func (r *Resolver) Resolve(page pagetext.Page) Resolution {
	lines := page.Lines
	if len(lines) == 0 {
		return Resolution{Kind: None}
	}

	content := strings.ToLower(joinContent(lines, contentWindow))
	for _, phrase := range r.cfg.InvitationPhrases {
		if phrase != "" && strings.Contains(content, strings.ToLower(phrase)) {
			return Resolution{Kind: EmptyByRule}
		}
	}

	if text, ok := largestFontLine(lines); ok {
		return Resolution{Kind: Resolved, Title: text}
	}

	cands := singleLineCandidates(lines)
	cands = append(cands, multiLineCandidates(lines)...)
	if len(cands) > 0 {
		// Stable sort keeps first occurrence ahead on ties, and
		// single-line candidates ahead of multi-line ones.
		sort.SliceStable(cands, func(a, b int) bool {
			return cands[a].score > cands[b].score
		})
		return Resolution{Kind: Resolved, Title: cands[0].text}
	}

	for i, line := range lines {
		if i >= contentWindow {
			break
		}
		text := strings.TrimSpace(line.Text)
		n := utf8.RuneCountInString(text)
		if n > fallbackMinLen && n < fallbackMaxLen &&
			!isLikelyNonTitle(text) && !isObviousTableContent(text) {
			return Resolution{Kind: Resolved, Title: text}
		}
	}

	return Resolution{Kind: None}
}

func joinContent(lines []pagetext.Line, limit int) string {
	var parts []string
	for i, line := range lines {
		if i >= limit {
			break
		}
		if text := strings.TrimSpace(line.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// largestFontLine returns the text of the single largest line in the
// scan window when it is display-sized (strictly above the baseline).
// Ties keep the earliest line because only a strictly larger size
// replaces the running maximum.
func largestFontLine(lines []pagetext.Line) (string, bool) {
	var maxSize float64
	var maxText string
	for i, line := range lines {
		if i >= scanWindow {
			break
		}
		text := strings.TrimSpace(line.Text)
		if utf8.RuneCountInString(text) > 2 && line.Size > maxSize {
			maxSize = line.Size
			maxText = text
		}
	}
	if maxSize > baselineSize && maxText != "" {
		return maxText, true
	}
	return "", false
}

type candidate struct {
	text  string
	score float64
}

func singleLineCandidates(lines []pagetext.Line) []candidate {
	var cands []candidate
	for i, line := range lines {
		if i >= scanWindow {
			break
		}
		text := strings.TrimSpace(line.Text)
		if utf8.RuneCountInString(text) < 3 {
			continue
		}
		if isLikelyNonTitle(text) {
			continue
		}
		// A single colon splitting the line in two reads as a form
		// field ("Name: ____"), not a title.
		if strings.Count(text, ":") == 1 {
			continue
		}
		if isObviousTableContent(text) {
			continue
		}
		cands = append(cands, candidate{text: text, score: titleScore(text, line.Size, i)})
	}
	return cands
}

// multiLineCandidates assembles every contiguous run of 2 to
// maxRunLines lines starting inside runStartWindow. Blank lines inside
// a run are skipped; a disqualifying line voids the whole run. The run
// scores with the average size of its included lines plus a flat
// bonus.
func multiLineCandidates(lines []pagetext.Line) []candidate {
	var cands []candidate
	for start := 0; start < runStartWindow && start < len(lines); start++ {
		for end := start + 1; end < start+maxRunLines && end < len(lines); end++ {
			var parts []string
			var sizeSum float64
			valid := true
			for idx := start; idx <= end; idx++ {
				text := strings.TrimSpace(lines[idx].Text)
				if text == "" {
					continue
				}
				if isLikelyNonTitle(text) || isObviousTableContent(text) {
					valid = false
					break
				}
				if strings.Count(text, ":") == 1 {
					valid = false
					break
				}
				parts = append(parts, text)
				sizeSum += lines[idx].Size
			}
			if !valid || len(parts) < 2 {
				continue
			}
			combined := strings.Join(parts, " ")
			avgSize := sizeSum / float64(len(parts))
			cands = append(cands, candidate{
				text:  combined,
				score: titleScore(combined, avgSize, start) + multiLineBonus,
			})
		}
	}
	return cands
}

// titleScore rates how title-like a piece of text is from its position
// on the page, its font size relative to the baseline, its length band
// and its casing, with a penalty for repetitive wording.
func titleScore(text string, size float64, position int) float64 {
	var score float64

	if d := 15 - position; d > 0 {
		score += float64(d)
	}

	ratio := size / baselineSize
	if ratio > 4 {
		ratio = 4
	}
	score += ratio * 8

	length := utf8.RuneCountInString(text)
	switch {
	case length >= 15 && length <= 80:
		score += 15
	case length >= 10 && length <= 120:
		score += 10
	case length >= 5 && length <= 150:
		score += 5
	case length <= 200:
		score += 2
	}

	if normalize.TitleCased(text) || normalize.Uppercased(text) {
		score += 5
	}

	words := strings.Fields(text)
	if len(words) > 2 {
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[w] = true
		}
		r := float64(len(unique)) / float64(len(words))
		if r < 0.5 {
			score -= 10
		} else if r < 0.7 {
			score -= 5
		}
	}

	if length > 300 {
		score -= 10
	}
	return score
}
