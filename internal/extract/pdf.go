package extract

import (
	"context"
	"fmt"
	"io"
	"os"

	dslipak "github.com/dslipak/pdf"
	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/dgallion1/docoutline/internal/pagetext"
)

// PDFExtractor handles PDF files. The primary backend reads positioned
// characters; when it errors or yields no text at all, a plain-text
// backend supplies degraded rows at the default size.
type PDFExtractor struct {
	// MaxPages rejects documents above this page count. Zero means
	// unlimited.
	MaxPages int
}

func (p *PDFExtractor) Extract(ctx context.Context, r io.Reader, filename string) (*pagetext.Document, error) {
	// Both backends need a ReadSeeker plus size, so spool to a temp file.
	tmp, err := os.CreateTemp("", "docoutline-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	if err := api.ValidateFile(tmpPath, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("validate pdf: %w", err)
	}
	pageCount, err := api.PageCountFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("count pdf pages: %w", err)
	}
	if p.MaxPages > 0 && pageCount > p.MaxPages {
		return nil, fmt.Errorf("pdf has %d pages, limit is %d", pageCount, p.MaxPages)
	}

	doc := &pagetext.Document{Filename: filename}
	doc.Pages, err = positionedPages(ctx, tmpPath)
	if err != nil || doc.LineCount() == 0 {
		doc.Pages, err = plainPages(ctx, tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return doc, nil
}

// positionedPages reads per-character spans and groups them into
// lines. Pages stay in the output even when empty so physical page
// numbering survives.
func positionedPages(ctx context.Context, path string) ([]pagetext.Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []pagetext.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		chars := make([]pagetext.Char, 0, len(content.Text))
		for _, t := range content.Text {
			chars = append(chars, pagetext.Char{
				S:    t.S,
				X:    t.X,
				Y:    t.Y,
				Size: t.FontSize,
				Font: t.Font,
			})
		}
		pages = append(pages, pagetext.Page{Number: i, Lines: pagetext.BuildLines(chars)})
	}
	return pages, nil
}

// plainPages is the degraded path: whole-page text split into rows at
// the default size, with no font geometry.
func plainPages(ctx context.Context, path string) ([]pagetext.Page, error) {
	reader, err := dslipak.Open(path)
	if err != nil {
		return nil, err
	}

	var pages []pagetext.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := reader.Page(i).GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, pagetext.Page{
			Number: i,
			Lines:  pagetext.SplitPlain(text),
			Raw:    text,
		})
	}
	return pages, nil
}
