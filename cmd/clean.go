package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vispubdata/affilclean/affiliation"
	"github.com/vispubdata/affilclean/dataset"
	"github.com/vispubdata/affilclean/openalex"
	"github.com/vispubdata/affilclean/pipeline"
)

var (
	cleanInput       string
	cleanOutput      string
	cleanArtifactDir string
	cleanProfile     string
	cleanKnown       string
	cleanAliases     string
	cleanMinScore    float64
	cleanReviewScore float64
	cleanLimit       int

	cleanEnrich         bool
	cleanEnrichTopN     int
	cleanEnrichMinScore float64
	cleanCacheDir       string
	cleanMailto         string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean affiliations and attribute countries",
	Long: `Clean runs the two-pass affiliation pipeline: it discovers the unique
affiliations of the dataset, canonicalizes them against the known
institution list and alias map, attributes a country to each canonical
name, and writes the cleaned dataset plus audit artifacts
(affiliation_mapping.csv, country_dictionary.csv,
top_100_country_missing.csv, report.json) next to the output.

With --enrich, the most frequent canonical names still missing a country
are looked up in OpenAlex; hits are accepted only when the returned
institution name closely matches.

Examples:
  affilclean clean -i vispubdata.csv -o cleaned.csv
  affilclean clean -i data.csv -o out.csv --known institutions.csv --aliases aliases.csv
  affilclean clean -i data.csv -o out.csv --enrich --mailto you@example.org`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInput, "input", "i", "", "Input dataset CSV (required)")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "cleaned.csv", "Output dataset CSV")
	cleanCmd.Flags().StringVar(&cleanArtifactDir, "artifact-dir", "", "Directory for audit artifacts (default: output directory)")
	cleanCmd.Flags().StringVarP(&cleanProfile, "profile", "p", "", "Column profile YAML for non-default datasets")
	cleanCmd.Flags().StringVar(&cleanKnown, "known", "", "Known canonical institution list CSV")
	cleanCmd.Flags().StringVar(&cleanAliases, "aliases", "", "Alias map CSV (pattern,canonical_affiliation_en)")
	cleanCmd.Flags().Float64Var(&cleanMinScore, "min-score", affiliation.DefaultMinScore, "Fuzzy canonicalization acceptance score (0-100)")
	cleanCmd.Flags().Float64Var(&cleanReviewScore, "review-score", pipeline.DefaultReviewMinScore, "Flag rows for review below this match score")
	cleanCmd.Flags().IntVar(&cleanLimit, "limit", 0, "Process at most this many rows (0 = all)")
	cleanCmd.Flags().BoolVar(&cleanEnrich, "enrich", false, "Look up missing countries in OpenAlex")
	cleanCmd.Flags().IntVar(&cleanEnrichTopN, "enrich-top", pipeline.DefaultEnrichTopN, "Enrich at most this many missing affiliations")
	cleanCmd.Flags().Float64Var(&cleanEnrichMinScore, "enrich-score", pipeline.DefaultEnrichMinScore, "Enrichment name-match acceptance score (0-100)")
	cleanCmd.Flags().StringVar(&cleanCacheDir, "cache-dir", ".openalex-cache", "Directory for cached OpenAlex responses")
	cleanCmd.Flags().StringVar(&cleanMailto, "mailto", "", "Contact email sent with OpenAlex requests")
	cleanCmd.MarkFlagRequired("input")
}

func runClean(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cleanInput); err != nil {
		fmt.Fprintf(os.Stderr, "input file not found: %s\n", cleanInput)
		os.Exit(2)
	}

	profile := dataset.DefaultProfile()
	if cleanProfile != "" {
		var err error
		profile, err = dataset.LoadProfile(cleanProfile)
		if err != nil {
			return err
		}
	}

	known, err := affiliation.LoadKnownList(cleanKnown)
	if err != nil {
		return err
	}
	aliases, err := affiliation.LoadAliases(cleanAliases)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		InputPath:      cleanInput,
		OutputPath:     cleanOutput,
		ArtifactDir:    cleanArtifactDir,
		Profile:        profile,
		Limit:          cleanLimit,
		Canonicalizer:  affiliation.NewCanonicalizer(known, aliases, affiliation.NewTokenSortScorer(), cleanMinScore),
		EnrichTopN:     cleanEnrichTopN,
		EnrichMinScore: cleanEnrichMinScore,
		ReviewMinScore: cleanReviewScore,
	}
	if cleanEnrich {
		client, err := openalex.NewClient(cleanCacheDir, cleanMailto)
		if err != nil {
			return err
		}
		cfg.Enricher = client
	}

	report, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"cleaned %d rows into %d affiliation rows (%d unique, %d with country, %d needing review)\n",
		report.Rows, report.OutputRows, report.UniqueAffiliations,
		report.WithCountry, report.NeedsReview)
	return nil
}
