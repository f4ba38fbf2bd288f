package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vispubdata/affilclean/coauthor"
	"github.com/vispubdata/affilclean/dataset"
)

var (
	auditInput   string
	auditOutput  string
	auditProfile string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit cleaned datasets",
}

var auditCountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Check per-author country counts against author counts",
	Long: `Countries compares, per paper, the number of ";"-separated country
chunks with the number of authors in both author name columns. Rows where
the chunk count matches neither column are reported and written to the
mismatch CSV.

Examples:
  affilclean audit countries -i cleaned.csv -o mismatches.csv`,
	Args: cobra.NoArgs,
	RunE: runAuditCountries,
}

func init() {
	auditCountriesCmd.Flags().StringVarP(&auditInput, "input", "i", "", "Cleaned dataset CSV (required)")
	auditCountriesCmd.Flags().StringVarP(&auditOutput, "output", "o", "country_mismatches.csv", "Mismatch report CSV")
	auditCountriesCmd.Flags().StringVarP(&auditProfile, "profile", "p", "", "Column profile YAML for non-default datasets")
	auditCountriesCmd.MarkFlagRequired("input")
	auditCmd.AddCommand(auditCountriesCmd)
}

func countChunks(field string) int {
	if strings.TrimSpace(field) == "" {
		return 0
	}
	return len(strings.Split(field, ";"))
}

func runAuditCountries(cmd *cobra.Command, args []string) error {
	profile := dataset.DefaultProfile()
	if auditProfile != "" {
		var err error
		profile, err = dataset.LoadProfile(auditProfile)
		if err != nil {
			return err
		}
	}
	cols := profile.Columns

	in, err := dataset.Open(auditInput)
	if err != nil {
		return err
	}
	defer in.Close()
	if !in.HasColumn(cols.Country) {
		return fmt.Errorf("input has no %q column", cols.Country)
	}

	out, err := dataset.Create(auditOutput, []string{
		"row", cols.DOI, "countries", "authors", "authors_deduped",
		cols.Country, cols.Authors, cols.AuthorsDeduped,
	})
	if err != nil {
		return err
	}

	rows, mismatches := 0, 0
	for {
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Close()
			return fmt.Errorf("reading input: %w", err)
		}
		rows++

		countries := countChunks(row.Get(cols.Country))
		authors := len(coauthor.SplitAuthors(row.Get(cols.Authors)))
		deduped := len(coauthor.SplitAuthors(row.Get(cols.AuthorsDeduped)))
		if countries == authors || countries == deduped {
			continue
		}
		mismatches++

		if err := out.Write([]string{
			strconv.Itoa(row.Index), row.Get(cols.DOI),
			strconv.Itoa(countries), strconv.Itoa(authors), strconv.Itoa(deduped),
			row.Get(cols.Country), row.Get(cols.Authors), row.Get(cols.AuthorsDeduped),
		}); err != nil {
			out.Close()
			return fmt.Errorf("writing mismatches: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "checked %d rows, %d country count mismatches\n", rows, mismatches)
	return nil
}
