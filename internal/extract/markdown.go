package extract

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/docoutline/internal/pagetext"
)

// MarkdownExtractor handles Markdown files using goldmark. Heading
// levels map onto the synthetic size ramp and thematic breaks start a
// new page.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(ctx context.Context, r io.Reader, filename string) (*pagetext.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	doc := &pagetext.Document{Filename: filename}
	var current []pagetext.Line
	pageNum := 1

	flushPage := func() {
		if len(current) == 0 {
			return
		}
		doc.Pages = append(doc.Pages, pagetext.Page{Number: pageNum, Lines: current})
		current = nil
		pageNum++
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if t := blockText(node, src); t != "" {
				current = append(current, headingLine(node.Level, t))
			}
		case *ast.ThematicBreak:
			flushPage()
		default:
			if t := blockText(n, src); t != "" {
				current = append(current, bodyLines(t)...)
			}
		}
	}
	flushPage()

	return doc, nil
}

// blockText collects the text content of a goldmark node: inline text
// from parsed children, raw source lines for leaf blocks like code.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	collectText(&buf, n, src)
	return strings.TrimSpace(buf.String())
}

func collectText(buf *bytes.Buffer, n ast.Node, src []byte) {
	switch t := n.(type) {
	case *ast.Text:
		buf.Write(t.Value(src))
		if t.HardLineBreak() || t.SoftLineBreak() {
			buf.WriteByte('\n')
		}
		return
	case *ast.String:
		buf.Write(t.Value)
		return
	}

	if n.Type() == ast.TypeBlock && !n.HasChildren() {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return
	}

	first := true
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if !first && c.Type() == ast.TypeBlock {
			buf.WriteByte('\n')
		}
		collectText(buf, c, src)
		first = false
	}
}
