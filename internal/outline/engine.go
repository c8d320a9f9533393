package outline

import (
	"strings"

	"github.com/dgallion1/docoutline/internal/normalize"
	"github.com/dgallion1/docoutline/internal/pagetext"
	"github.com/dgallion1/docoutline/internal/title"
)

// Config assembles the configuration for a full pipeline run.
type Config struct {
	Normalize normalize.Config
	Title     title.Config
	Genre     GenreConfig
	Score     ScoreConfig

	// ZeroBasedPages forces zero-based page numbering for every
	// document, overriding genre detection.
	ZeroBasedPages bool
}

// Engine runs the whole inference pipeline over one extracted
// document: normalize, resolve the title, classify the genre, extract
// headings, adjust page numbering. Safe for concurrent use once
// configured.
type Engine struct {
	cfg        Config
	norm       *normalize.Normalizer
	resolver   *title.Resolver
	classifier Classifier
	strategies map[Genre]Strategy
}

func NewEngine(cfg Config) *Engine {
	def := DefaultGenreConfig()
	if cfg.Genre.InvitationHeading == "" {
		cfg.Genre.InvitationHeading = def.InvitationHeading
	}
	if cfg.Genre.PathwayHeading == "" {
		cfg.Genre.PathwayHeading = def.PathwayHeading
	}
	if cfg.Genre.ZeroBasedHints == nil {
		cfg.Genre.ZeroBasedHints = def.ZeroBasedHints
	}

	norm := normalize.New(cfg.Normalize)
	scorer := NewScorer(cfg.Score)
	return &Engine{
		cfg:        cfg,
		norm:       norm,
		resolver:   title.NewResolver(cfg.Title),
		classifier: NewRuleClassifier(cfg.Genre),
		strategies: map[Genre]Strategy{
			GenreGeneric:        NewGenericStrategy(norm, scorer),
			GenreForm:           FormStrategy{},
			GenreInvitation:     InvitationStrategy{Phrase: cfg.Genre.InvitationHeading},
			GenrePathwayOptions: PathwayStrategy{Heading: cfg.Genre.PathwayHeading},
		},
	}
}

// SetClassifier swaps in a custom genre classifier. Call before the
// engine starts processing documents.
func (e *Engine) SetClassifier(c Classifier) {
	if c != nil {
		e.classifier = c
	}
}

// RegisterStrategy installs the extraction branch for a genre,
// replacing any existing one. A classified genre with no registered
// strategy falls back to the generic pipeline. Call before the engine
// starts processing documents.
func (e *Engine) RegisterStrategy(genre Genre, s Strategy) {
	if s != nil {
		e.strategies[genre] = s
	}
}

// Outline produces the outline for one document. It never returns nil:
// an empty document yields the unknown-document sentinel, and every
// other input yields a structurally valid outline.
func (e *Engine) Outline(doc *pagetext.Document) *Outline {
	if doc == nil || len(doc.Pages) == 0 || len(doc.Pages[0].Lines) == 0 {
		return UnknownOutline()
	}

	res := e.resolver.Resolve(e.normalizedPage(doc.Pages[0]))
	docTitle := ""
	switch res.Kind {
	case title.Resolved:
		docTitle = res.Title
	case title.None:
		if doc.TitleHint != "" {
			docTitle = strings.TrimSpace(doc.TitleHint)
		} else {
			docTitle = UnknownDocumentTitle
		}
	}

	genre := e.classifier.Classify(doc, docTitle)
	strategy, ok := e.strategies[genre]
	if !ok {
		strategy = e.strategies[GenreGeneric]
	}
	headings := strategy.Extract(doc, docTitle)
	if headings == nil {
		headings = []Heading{}
	}

	adjustPages(headings, e.zeroBased(genre, headings))
	return &Outline{Title: docTitle, Headings: headings}
}

// normalizedPage rewrites a page's lines through the cleaner, leaving
// rejected lines empty so positions in the page are preserved.
func (e *Engine) normalizedPage(page pagetext.Page) pagetext.Page {
	out := pagetext.Page{Number: page.Number, Raw: page.Raw}
	out.Lines = make([]pagetext.Line, len(page.Lines))
	for i, line := range page.Lines {
		text := ""
		if clean, ok := e.norm.Clean(line.Text); ok {
			text = clean
		}
		out.Lines[i] = pagetext.Line{Text: text, Size: line.Size, Font: line.Font}
	}
	return out
}

// zeroBased decides the page numbering base: an explicit override or a
// terminal genre switches to zero-based, as does any emitted heading
// carrying a configured hint phrase.
func (e *Engine) zeroBased(genre Genre, headings []Heading) bool {
	if e.cfg.ZeroBasedPages {
		return true
	}
	if genre == GenreInvitation || genre == GenrePathwayOptions {
		return true
	}
	for _, h := range headings {
		lower := strings.ToLower(h.Text)
		for _, hint := range e.cfg.Genre.ZeroBasedHints {
			if hint != "" && strings.Contains(lower, strings.ToLower(hint)) {
				return true
			}
		}
	}
	return false
}

// adjustPages rebases heading pages: zero-based numbering shifts every
// page down by one (never below zero), one-based numbering bumps a
// stray page zero up to one.
func adjustPages(headings []Heading, zeroBased bool) {
	for i := range headings {
		switch {
		case zeroBased && headings[i].Page > 0:
			headings[i].Page--
		case !zeroBased && headings[i].Page == 0:
			headings[i].Page = 1
		}
	}
}
