package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docoutline/internal/extract"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/store"
)

// Worker processes a single document job.
type Worker struct {
	store  store.Store
	engine *outline.Engine
	stats  *extract.Stats
	log    *slog.Logger

	maxPDFPages int
}

func NewWorker(st store.Store, engine *outline.Engine, stats *extract.Stats, log *slog.Logger, maxPDFPages int) *Worker {
	return &Worker{
		store:       st,
		engine:      engine,
		stats:       stats,
		log:         log,
		maxPDFPages: maxPDFPages,
	}
}

// Process runs the full pipeline for a job: extract page text, infer
// the outline, store the result.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Extract
	job.SetStatus(StatusExtracting, "extracting")

	existing, err := w.store.GetByHash(ctx, job.ContentHash)
	if err != nil {
		log.Warn("duplicate check failed, proceeding", "error", err)
	} else if existing != nil {
		log.Info("duplicate document, skipping", "existing_doc_id", existing.DocID)
		job.SetDocID(existing.DocID)
		if existing.Outline != nil {
			job.SetTitle(existing.Title)
		}
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	ex, err := extract.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	if pdf, ok := ex.(*extract.PDFExtractor); ok {
		pdf.MaxPages = w.maxPDFPages
	}

	start := time.Now()
	doc, err := ex.Extract(ctx, bytes.NewReader(job.FileData()), job.Filename)
	w.stats.Record(time.Since(start).Milliseconds())
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	job.SetCounts(len(doc.Pages), doc.LineCount())

	// Phase 2: Analyze
	job.SetStatus(StatusAnalyzing, "analyzing")
	o := w.engine.Outline(doc)
	if job.Title != "" {
		o.Title = job.Title
	} else {
		job.SetTitle(o.Title)
	}
	job.SetHeadingsFound(len(o.Headings))
	log.Info("analysis complete", "title", o.Title, "headings", len(o.Headings), "pages", len(doc.Pages))

	// Phase 3: Store
	job.SetStatus(StatusStoring, "storing")
	rec := &store.Record{
		DocID:       job.DocID,
		Filename:    job.Filename,
		ContentHash: job.ContentHash,
		PageCount:   len(doc.Pages),
		CreatedAt:   job.CreatedAt,
		Outline:     o,
	}
	if err := w.store.Put(ctx, rec); err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	job.SetStatus(StatusCompleted, "done")
}
