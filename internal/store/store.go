package store

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/dgallion1/docoutline/internal/outline"
)

// Record is one stored extraction result: the outline plus the
// document metadata the API reports alongside it. The embedded
// outline keeps the title and outline keys at the top level of the
// serialized form, matching the batch output files.
type Record struct {
	DocID       string    `json:"doc_id"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"content_hash"`
	PageCount   int       `json:"page_count"`
	CreatedAt   time.Time `json:"created_at"`
	*outline.Outline
}

// Store persists outline records keyed by document ID, with a
// secondary content-hash index for duplicate detection. Get and
// GetByHash return (nil, nil) when no record matches.
type Store interface {
	Put(ctx context.Context, rec *Record) error
	Get(ctx context.Context, docID string) (*Record, error)
	GetByHash(ctx context.Context, hash string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
	Delete(ctx context.Context, docID string) (bool, error)
}

var (
	slugCharsRe    = regexp.MustCompile(`[^a-z0-9-]`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify converts a string to a lowercase filesystem-safe slug,
// capped at 50 bytes.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCharsRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
