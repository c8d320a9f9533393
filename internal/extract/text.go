package extract

import (
	"context"
	"io"
	"strings"

	"github.com/dgallion1/docoutline/internal/pagetext"
)

// TextExtractor handles plain text files. Form feeds split pages, and
// every non-empty line becomes a degraded line at the default size.
type TextExtractor struct{}

func (e *TextExtractor) Extract(ctx context.Context, r io.Reader, filename string) (*pagetext.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &pagetext.Document{Filename: filename}
	for i, chunk := range strings.Split(string(data), "\f") {
		lines := pagetext.SplitPlain(chunk)
		if len(lines) == 0 {
			continue
		}
		doc.Pages = append(doc.Pages, pagetext.Page{
			Number: i + 1,
			Lines:  lines,
			Raw:    chunk,
		})
	}
	return doc, nil
}
