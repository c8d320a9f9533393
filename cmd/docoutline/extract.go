package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/batch"
	"github.com/dgallion1/docoutline/internal/outline"
)

var (
	extractInput       string
	extractOutput      string
	extractWorkers     int
	extractMaxPDFPages int
	extractZeroBased   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Process a directory of documents into outline JSON files",
	Long: `Process every supported document in a directory.

Each input file produces <stem>.json in the output directory, holding
the document title and heading outline. A file that cannot be
processed produces an error outline instead, and the run continues.

Examples:
  docoutline extract                        # ./input -> ./output
  docoutline extract -i docs -o outlines
  docoutline extract --workers 8 --zero-based`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		engine := outline.NewEngine(outline.Config{ZeroBasedPages: extractZeroBased})
		runner := batch.NewRunner(batch.Config{
			InputDir:    extractInput,
			OutputDir:   extractOutput,
			Workers:     extractWorkers,
			MaxPDFPages: extractMaxPDFPages,
		}, engine, log)

		results, err := runner.Run(cmd.Context())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			log.Warn("no supported documents found", "dir", extractInput)
			return nil
		}
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		fmt.Printf("processed %d documents (%d failed) -> %s\n", len(results), failed, extractOutput)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "input", "directory of documents to process")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "output", "directory for outline JSON files")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 4, "concurrent documents")
	extractCmd.Flags().IntVar(&extractMaxPDFPages, "max-pdf-pages", 200, "reject PDFs above this page count (0 = unlimited)")
	extractCmd.Flags().BoolVar(&extractZeroBased, "zero-based", false, "force zero-based page numbers")

	rootCmd.AddCommand(extractCmd)
}
