package extract

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/pagetext"
)

// Extractor converts raw document bytes into positioned page text.
type Extractor interface {
	Extract(ctx context.Context, r io.Reader, filename string) (*pagetext.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename. Tabular
// formats are rejected: a spreadsheet has no heading structure.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DocxExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Synthetic display sizes for formats that carry heading markup
// instead of font geometry. Every heading level sits above body text
// so the font analyzer sees real size structure.
const bodySize = 11.0

var headingRamp = [...]float64{24, 20, 17, 15, 13.5, 12.5}

const (
	headingFont = "heading"
	bodyFont    = "body"
)

func headingSize(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > len(headingRamp) {
		level = len(headingRamp)
	}
	return headingRamp[level-1]
}

func headingLine(level int, text string) pagetext.Line {
	return pagetext.Line{
		Text: strings.TrimSpace(text),
		Size: headingSize(level),
		Font: headingFont,
	}
}

// bodyLines splits block text into body-sized lines, one per non-empty
// input line.
func bodyLines(text string) []pagetext.Line {
	var lines []pagetext.Line
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		lines = append(lines, pagetext.Line{Text: raw, Size: bodySize, Font: bodyFont})
	}
	return lines
}
