package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dgallion1/docoutline/internal/extract"
	"github.com/dgallion1/docoutline/internal/outline"
)

// Config controls a batch run over a directory of documents.
type Config struct {
	InputDir  string
	OutputDir string

	// Workers caps concurrent file processing. Zero or less runs a
	// single worker.
	Workers int

	// MaxPDFPages rejects oversized PDFs. Zero means unlimited.
	MaxPDFPages int
}

// Result reports the outcome for one input file. Err is set when the
// file could not be processed; the output file then holds the error
// sentinel outline instead of a real one.
type Result struct {
	Input    string
	Output   string
	Title    string
	Headings int
	Err      error
}

// Runner walks an input directory and writes one outline JSON file per
// supported document, named after the input stem. A failed file still
// produces output: the error sentinel takes its place so a consumer
// always finds one result per input.
type Runner struct {
	cfg    Config
	engine *outline.Engine
	log    *slog.Logger
}

func NewRunner(cfg Config, engine *outline.Engine, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, engine: engine, log: log}
}

// Run processes every supported file in the input directory and
// returns per-file results sorted by input name. Subdirectories and
// unsupported extensions are skipped. Individual failures never abort
// the run; only setup errors or context cancellation do.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !extract.IsSupportedExtension(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan string)
	results := make([]Result, 0, len(files))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				res := r.processFile(ctx, name)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}
	for _, name := range files {
		jobs <- name
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Input < results[j].Input })
	return results, ctx.Err()
}

func (r *Runner) processFile(ctx context.Context, name string) Result {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	res := Result{Input: name, Output: filepath.Join(r.cfg.OutputDir, stem+".json")}

	o, err := r.outlineFor(ctx, name)
	if err != nil {
		res.Err = err
		// Cancellation is not a document failure, leave no sentinel.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res
		}
		r.log.Warn("processing failed, writing error outline", "file", name, "error", err)
		o = outline.ErrorOutline()
	}
	if werr := writeOutline(res.Output, o); werr != nil {
		if res.Err == nil {
			res.Err = werr
		}
		return res
	}
	res.Title = o.Title
	res.Headings = len(o.Headings)
	if res.Err == nil {
		r.log.Info("outline written", "file", name, "title", o.Title, "headings", len(o.Headings))
	}
	return res
}

func (r *Runner) outlineFor(ctx context.Context, name string) (*outline.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ex, err := extract.ForFile(name)
	if err != nil {
		return nil, err
	}
	if pdf, ok := ex.(*extract.PDFExtractor); ok {
		pdf.MaxPages = r.cfg.MaxPDFPages
	}
	f, err := os.Open(filepath.Join(r.cfg.InputDir, name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	doc, err := ex.Extract(ctx, f, name)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", name, err)
	}
	return r.engine.Outline(doc), nil
}

func writeOutline(path string, o *outline.Outline) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("encode outline: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}
	return nil
}
