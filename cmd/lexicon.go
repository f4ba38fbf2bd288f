package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vispubdata/affilclean/country"
)

var (
	lexiconKeywords bool
	lexiconSynonyms bool
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect the country lexicons",
}

var lexiconListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print lexicon entries in precedence order",
	Long: `List prints the country lexicon in the order entries are matched, so
curators can review precedence. --keywords prints the institution keyword
map instead, --synonyms the normalized-key synonym map.

Examples:
  affilclean lexicon list
  affilclean lexicon list --keywords`,
	Args: cobra.NoArgs,
	RunE: runLexiconList,
}

func init() {
	lexiconListCmd.Flags().BoolVar(&lexiconKeywords, "keywords", false, "List the institution keyword map")
	lexiconListCmd.Flags().BoolVar(&lexiconSynonyms, "synonyms", false, "List the normalized-key synonym map")
	lexiconCmd.AddCommand(lexiconListCmd)
}

func runLexiconList(cmd *cobra.Command, args []string) error {
	var entries []country.Entry
	switch {
	case lexiconKeywords:
		entries = country.KeywordKeys()
	case lexiconSynonyms:
		entries = country.SynonymKeys()
	default:
		entries = country.CountryKeys()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tCOUNTRY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Country)
	}
	return w.Flush()
}
