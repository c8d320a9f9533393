package outline

import (
	"strings"

	"github.com/dgallion1/docoutline/internal/normalize"
	"github.com/dgallion1/docoutline/internal/pagetext"
)

// Genre is a coarse document-type classification. Non-generic genres
// take a terminal extraction branch instead of the scoring pipeline.
type Genre string

const (
	GenreGeneric        Genre = "generic"
	GenreForm           Genre = "form"
	GenreInvitation     Genre = "invitation"
	GenrePathwayOptions Genre = "pathway_options"
)

// GenreConfig carries the classification phrases and the terminal
// branches' extraction targets. Zero fields fall back to the defaults.
type GenreConfig struct {
	// InvitationPhrases classify a title-less document as an
	// invitation when found in the first two pages' text.
	InvitationPhrases []string

	// FormPhrases and PathwayPhrases classify by resolved title.
	FormPhrases    []string
	PathwayPhrases []string

	// InvitationHeading is the phrase whose containing line becomes an
	// invitation's single heading.
	InvitationHeading string

	// PathwayHeading is the uppercase line emitted as a pathway
	// document's single heading.
	PathwayHeading string

	// ZeroBasedHints switch a document to zero-based page numbering
	// when any emitted heading contains one of them.
	ZeroBasedHints []string
}

// DefaultGenreConfig returns the stock genre rules.
func DefaultGenreConfig() GenreConfig {
	return GenreConfig{
		InvitationPhrases: []string{"hope to see you"},
		FormPhrases:       []string{"application form"},
		PathwayPhrases:    []string{"stem pathways"},
		InvitationHeading: "hope to see you there",
		PathwayHeading:    "PATHWAY OPTIONS",
		ZeroBasedHints:    []string{"pathway", "hope to see"},
	}
}

// Classifier decides the genre for a document given its resolved
// title. Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(doc *pagetext.Document, docTitle string) Genre
}

// RuleClassifier classifies by phrase rules over the title and the
// first two pages of content.
type RuleClassifier struct {
	cfg GenreConfig
}

func NewRuleClassifier(cfg GenreConfig) *RuleClassifier {
	def := DefaultGenreConfig()
	if cfg.InvitationPhrases == nil {
		cfg.InvitationPhrases = def.InvitationPhrases
	}
	if cfg.FormPhrases == nil {
		cfg.FormPhrases = def.FormPhrases
	}
	if cfg.PathwayPhrases == nil {
		cfg.PathwayPhrases = def.PathwayPhrases
	}
	return &RuleClassifier{cfg: cfg}
}

// Classify runs the rules in precedence order: a title-less document
// with an invitation phrase is an invitation; otherwise the title
// decides between pathway, form and generic.
func (c *RuleClassifier) Classify(doc *pagetext.Document, docTitle string) Genre {
	titleLower := strings.ToLower(docTitle)

	if docTitle == "" {
		content := strings.ToLower(leadingContent(doc, 2))
		for _, phrase := range c.cfg.InvitationPhrases {
			if phrase != "" && strings.Contains(content, strings.ToLower(phrase)) {
				return GenreInvitation
			}
		}
	}

	for _, phrase := range c.cfg.PathwayPhrases {
		if phrase != "" && strings.Contains(titleLower, strings.ToLower(phrase)) {
			return GenrePathwayOptions
		}
	}
	for _, phrase := range c.cfg.FormPhrases {
		if phrase != "" && strings.Contains(titleLower, strings.ToLower(phrase)) {
			return GenreForm
		}
	}
	return GenreGeneric
}

func leadingContent(doc *pagetext.Document, pageLimit int) string {
	var b strings.Builder
	for i, page := range doc.Pages {
		if i >= pageLimit {
			break
		}
		for _, line := range page.Lines {
			b.WriteString(line.Text)
			b.WriteString(" ")
		}
	}
	return b.String()
}

// Strategy extracts the headings for one genre.
type Strategy interface {
	Extract(doc *pagetext.Document, docTitle string) []Heading
}

// FormStrategy: forms have fields, not structure. No headings.
type FormStrategy struct{}

func (FormStrategy) Extract(*pagetext.Document, string) []Heading { return nil }

// InvitationStrategy emits a single H1 from the line carrying the
// closing phrase, with its whitespace collapsed but otherwise raw.
type InvitationStrategy struct {
	Phrase string
}

func (s InvitationStrategy) Extract(doc *pagetext.Document, _ string) []Heading {
	phrase := strings.ToLower(s.Phrase)
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			text := strings.TrimSpace(line.Text)
			if strings.Contains(strings.ToLower(text), phrase) {
				return []Heading{{
					Level: H1,
					Text:  levelSpaceRe.ReplaceAllString(text, " "),
					Page:  page.Number,
				}}
			}
		}
	}
	return nil
}

// PathwayStrategy emits a single fixed H1 from the page whose line
// matches the configured heading case-insensitively.
type PathwayStrategy struct {
	Heading string
}

func (s PathwayStrategy) Extract(doc *pagetext.Document, _ string) []Heading {
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			if strings.ToUpper(strings.TrimSpace(line.Text)) == s.Heading {
				return []Heading{{Level: H1, Text: s.Heading, Page: page.Number}}
			}
		}
	}
	return nil
}

// GenericStrategy is the full scoring pipeline: build elements,
// analyze the font structure, score candidates, assign levels.
type GenericStrategy struct {
	norm   *normalize.Normalizer
	scorer *Scorer
}

func NewGenericStrategy(n *normalize.Normalizer, s *Scorer) *GenericStrategy {
	return &GenericStrategy{norm: n, scorer: s}
}

func (g *GenericStrategy) Extract(doc *pagetext.Document, docTitle string) []Heading {
	elements := BuildElements(doc.Pages, g.norm, docTitle)
	analysis := Analyze(elements)
	scored := g.scorer.Score(elements, analysis)
	return postProcess(AssignLevels(scored))
}
