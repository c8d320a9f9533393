package outline

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Level is a heading depth from H1 (top) to H4.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
	H4 Level = "H4"
)

func (l Level) valid() bool {
	switch l {
	case H1, H2, H3, H4:
		return true
	}
	return false
}

// rank maps a level to its depth, H1 being the shallowest.
func (l Level) rank() int {
	switch l {
	case H1:
		return 1
	case H2:
		return 2
	case H3:
		return 3
	case H4:
		return 4
	}
	return 4
}

// Heading is one emitted outline entry.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the sole output artifact: a resolved title and the
// ordered heading list. Headings is always non-nil so the JSON form
// carries an empty array rather than null.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
}

// Sentinel titles for documents that produced no usable content.
const (
	UnknownDocumentTitle = "Unknown Document"
	ProcessErrorTitle    = "Error: Could not process document"
)

// UnknownOutline is the record for an empty or unreadable-but-valid
// document: zero pages, or nothing on the first page.
func UnknownOutline() *Outline {
	return &Outline{Title: UnknownDocumentTitle, Headings: []Heading{}}
}

// ErrorOutline is the record for a document the extractor could not
// process at all. Callers emit it instead of propagating the error so
// a batch always yields one structurally valid record per input.
func ErrorOutline() *Outline {
	return &Outline{Title: ProcessErrorTitle, Headings: []Heading{}}
}

// Validate checks the structural invariants of an emitted outline:
// bounded length, valid levels, non-trivial unique texts and
// non-decreasing page order.
func (o *Outline) Validate() error {
	if o == nil {
		return fmt.Errorf("outline is nil")
	}
	if o.Headings == nil {
		return fmt.Errorf("headings must be non-nil")
	}
	if len(o.Headings) > defaultMaxHeadings {
		return fmt.Errorf("outline has %d headings, limit is %d", len(o.Headings), defaultMaxHeadings)
	}
	seen := make(map[string]bool, len(o.Headings))
	lastPage := 0
	for i, h := range o.Headings {
		if !h.Level.valid() {
			return fmt.Errorf("heading %d: invalid level %q", i, h.Level)
		}
		if utf8.RuneCountInString(h.Text) <= 2 {
			return fmt.Errorf("heading %d: text %q too short", i, h.Text)
		}
		key := strings.ToLower(strings.TrimSpace(h.Text))
		if seen[key] {
			return fmt.Errorf("heading %d: duplicate text %q", i, h.Text)
		}
		seen[key] = true
		if h.Page < lastPage {
			return fmt.Errorf("heading %d: page %d precedes page %d", i, h.Page, lastPage)
		}
		lastPage = h.Page
	}
	return nil
}
