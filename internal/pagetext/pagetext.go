package pagetext

// Char is a single positioned character reported by a page text extractor.
// Coordinates follow PDF conventions: Y grows upward, so larger Y means
// higher on the page.
type Char struct {
	S    string  // character text, normally one rune
	X    float64 // left edge
	Y    float64 // vertical position
	Size float64 // font size in points (0 if unknown)
	Font string  // font name (empty if unknown)
}

// Line is one visually grouped row of text.
type Line struct {
	Text string  // concatenated character text, trimmed
	Size float64 // mean of constituent character sizes
	Font string  // most frequent constituent font
}

// Page holds the ordered lines of a single page, top to bottom.
type Page struct {
	Number int // 1-based page number
	Lines  []Line
	Raw    string // raw page text when the backend provides it
}

// Document is what an extractor hands to the outline engine.
type Document struct {
	Filename  string
	Pages     []Page
	TitleHint string // optional pre-declared title (e.g. an HTML <title>)
}

// LineCount returns the total number of lines across all pages.
func (d *Document) LineCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Lines)
	}
	return n
}
