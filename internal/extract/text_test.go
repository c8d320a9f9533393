package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/dgallion1/docoutline/internal/pagetext"
)

func TestTextExtractor_BasicLines(t *testing.T) {
	input := "First line here.\nSecond line here.\n\nThird after a gap."
	e := &TextExtractor{}
	doc, err := e.Extract(context.Background(), strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Filename != "notes.txt" {
		t.Errorf("expected filename %q, got %q", "notes.txt", doc.Filename)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	page := doc.Pages[0]
	if page.Number != 1 {
		t.Errorf("expected page number 1, got %d", page.Number)
	}
	want := []string{"First line here.", "Second line here.", "Third after a gap."}
	if len(page.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(page.Lines))
	}
	for i, w := range want {
		if page.Lines[i].Text != w {
			t.Errorf("line %d: expected %q, got %q", i, w, page.Lines[i].Text)
		}
		if page.Lines[i].Size != pagetext.DefaultSize {
			t.Errorf("line %d: expected default size, got %v", i, page.Lines[i].Size)
		}
		if page.Lines[i].Font != pagetext.DefaultFont {
			t.Errorf("line %d: expected default font, got %q", i, page.Lines[i].Font)
		}
	}
}

func TestTextExtractor_FormFeedSplitsPages(t *testing.T) {
	input := "Cover title\fChapter one text\fChapter two text"
	e := &TextExtractor{}
	doc, err := e.Extract(context.Background(), strings.NewReader(input), "book.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	for i, wantText := range []string{"Cover title", "Chapter one text", "Chapter two text"} {
		page := doc.Pages[i]
		if page.Number != i+1 {
			t.Errorf("page %d: expected number %d, got %d", i, i+1, page.Number)
		}
		if len(page.Lines) != 1 || page.Lines[0].Text != wantText {
			t.Errorf("page %d: expected single line %q, got %v", i, wantText, page.Lines)
		}
	}
}

func TestTextExtractor_BlankPageKeepsNumbering(t *testing.T) {
	// An empty chunk between form feeds holds its physical slot.
	input := "Front matter\f\fReal content"
	e := &TextExtractor{}
	doc, err := e.Extract(context.Background(), strings.NewReader(input), "gapped.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Number != 1 || doc.Pages[1].Number != 3 {
		t.Errorf("expected page numbers 1 and 3, got %d and %d", doc.Pages[0].Number, doc.Pages[1].Number)
	}
}

func TestTextExtractor_EmptyInput(t *testing.T) {
	e := &TextExtractor{}
	doc, err := e.Extract(context.Background(), strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}

func TestTextExtractor_WhitespaceOnlyLines(t *testing.T) {
	input := "Para one.\n   \nPara two.\n\t\n"
	e := &TextExtractor{}
	doc, err := e.Extract(context.Background(), strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if len(doc.Pages[0].Lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(doc.Pages[0].Lines))
	}
}

func TestTextExtractor_PreservesRawChunk(t *testing.T) {
	input := "Line A\nLine B"
	e := &TextExtractor{}
	doc, err := e.Extract(context.Background(), strings.NewReader(input), "raw.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Pages[0].Raw != input {
		t.Errorf("expected raw chunk preserved, got %q", doc.Pages[0].Raw)
	}
}
