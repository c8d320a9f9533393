package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Replacement is one ordered substitution applied during cleaning.
type Replacement struct {
	Old string
	New string
}

// Config controls the cleaning chain. Zero values fall back to the
// defaults from DefaultConfig.
type Config struct {
	// MinRepairLength gates the duplication repairs; shorter strings
	// skip them so short valid headings are never rewritten.
	MinRepairLength int

	// MinCleanLength is the shortest cleaned text Clean will accept.
	MinCleanLength int

	// OCRFixes are substitutions for known extractor misreads, matched
	// on word boundaries case-insensitively and replaced with the
	// canonical casing. Order matters.
	OCRFixes []Replacement

	// YearFixes patch truncated four-digit years, matched on word
	// boundaries.
	YearFixes []Replacement

	// JoinFixes repair words that came out of fragment reconstruction
	// still split in half. Applied as plain substring replacements.
	JoinFixes []Replacement
}

// DefaultConfig returns the cleaning table tuned for scanned RFP-style
// documents.
func DefaultConfig() Config {
	return Config{
		MinRepairLength: 10,
		MinCleanLength:  3,
		OCRFixes: []Replacement{
			{"Busines", "Business"},
			{"Aproach", "Approach"},
			{"Developrnent", "Development"},
			{"Cornmittee", "Committee"},
			{"Governrnent", "Government"},
			{"Irnplementation", "Implementation"},
			{"Managernent", "Management"},
			{"Requirernents", "Requirements"},
			{"Prrooppoossaall", "Proposal"},
			{"RReeqquueesstt", "Request"},
			{"ffoorr", "for"},
			{"PPrrooppoossaall", "Proposal"},
			{"quest f", "quest for"},
			{"r Pr", "r Proposal"},
		},
		YearFixes: []Replacement{
			{"203", "2003"},
			{"207", "2007"},
		},
		JoinFixes: []Replacement{
			{"quest f", "quest for"},
			{"r Pr", "r Proposal"},
		},
	}
}

var (
	spaceRe         = regexp.MustCompile(`\s+`)
	colonRunRe      = regexp.MustCompile(`[:]{2,}`)
	ellipsisRe      = regexp.MustCompile(`[.]{3,}`)
	bulletRe        = regexp.MustCompile(`^[•\-\*]\s+`)
	trailingPunctRe = regexp.MustCompile(`[.:;,\s]+$`)
)

type compiledFix struct {
	re  *regexp.Regexp
	rep string
}

// Normalizer cleans raw line text before any heuristic looks at it.
// Safe for concurrent use.
type Normalizer struct {
	cfg   Config
	fixes []compiledFix
	years []compiledFix
}

// New compiles the substitution tables. Zero thresholds in cfg are
// replaced with the defaults.
func New(cfg Config) *Normalizer {
	def := DefaultConfig()
	if cfg.MinRepairLength <= 0 {
		cfg.MinRepairLength = def.MinRepairLength
	}
	if cfg.MinCleanLength <= 0 {
		cfg.MinCleanLength = def.MinCleanLength
	}
	n := &Normalizer{cfg: cfg}
	for _, f := range cfg.OCRFixes {
		n.fixes = append(n.fixes, compiledFix{
			re:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(f.Old) + `\b`),
			rep: f.New,
		})
	}
	for _, f := range cfg.YearFixes {
		n.years = append(n.years, compiledFix{
			re:  regexp.MustCompile(`\b` + regexp.QuoteMeta(f.Old) + `\b`),
			rep: f.New,
		})
	}
	return n
}

// Clean runs the full chain: whitespace collapse, duplication repairs,
// OCR substitutions, punctuation cleanup and bullet stripping. The
// boolean reports whether the result met the minimum length; callers
// treat a false as "no usable text on this line". A trailing colon is
// preserved because it is a structural signal downstream.
func (n *Normalizer) Clean(text string) (string, bool) {
	text = fold(text)
	text = spaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return "", false
	}
	if runeLen(text) >= n.cfg.MinRepairLength {
		text = n.repairFragments(text)
		text = n.repairDoubling(text)
		text = n.repairWordRepeats(text)
	}
	for _, f := range n.fixes {
		text = f.re.ReplaceAllString(text, f.rep)
	}
	for _, f := range n.years {
		text = f.re.ReplaceAllString(text, f.rep)
	}
	text = colonRunRe.ReplaceAllString(text, ":")
	text = ellipsisRe.ReplaceAllString(text, "...")
	text = bulletRe.ReplaceAllString(text, "")
	if !strings.HasSuffix(text, ":") {
		text = strings.TrimSpace(trailingPunctRe.ReplaceAllString(text, ""))
	}
	if runeLen(text) < n.cfg.MinCleanLength {
		return "", false
	}
	return text, true
}

// fold applies NFKC so ligatures and fullwidth forms from PDF text
// streams compare equal to their ASCII spellings.
func fold(text string) string {
	out, _, err := transform.String(norm.NFKC, text)
	if err != nil {
		return text
	}
	return out
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
