// Package cmd provides CLI commands for affilclean.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "affilclean",
	Short: "Clean author affiliations and attribute countries",
	Long: `Affilclean normalizes the author affiliation strings of a publication
dataset, resolves them to canonical institution names, and attributes a
country to each affiliation.

Examples:
  affilclean clean -i vispubdata.csv -o cleaned.csv
  affilclean clean -i vispubdata.csv -o cleaned.csv --enrich --mailto you@example.org
  affilclean audit countries -i cleaned.csv -o mismatches.csv
  affilclean coauthor -i vispubdata.csv -o coauthor_edges.csv
  affilclean lexicon list --keywords`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(coauthorCmd)
	rootCmd.AddCommand(lexiconCmd)
}
