package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/version"
)

var logFormat string

var rootCmd = &cobra.Command{
	Use:   "docoutline",
	Short: "Document outline extraction service",
	Long: `Docoutline infers titles and heading outlines from documents.

It reads PDF, DOCX, HTML, Markdown and plain-text files, reconstructs
the text layout, and scores candidate lines to produce a JSON outline:
a document title plus leveled headings with page numbers.

Run it as an HTTP service (serve) or over a directory of files
(extract).`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&logFormat, "log-format", "json", "log output format: json or text",
	)

	rootCmd.AddCommand(versionCmd)
}

func newLogger() *slog.Logger {
	if logFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
