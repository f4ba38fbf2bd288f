package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vispubdata/affilclean/country"
	"github.com/vispubdata/affilclean/dataset"
)

var (
	annotateInput   string
	annotateOutput  string
	annotateProfile string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Add a per-author country column to a dataset",
	Long: `Annotate runs the per-chunk country extractor over every ";"-separated
affiliation chunk and appends a country column whose chunks stay aligned
with the author list. Unlike clean, it does no canonicalization: it is
meant for quick per-author country tagging and for feeding audit
countries.

Examples:
  affilclean annotate -i vispubdata.csv -o annotated.csv`,
	Args: cobra.NoArgs,
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateInput, "input", "i", "", "Input dataset CSV (required)")
	annotateCmd.Flags().StringVarP(&annotateOutput, "output", "o", "annotated.csv", "Output dataset CSV")
	annotateCmd.Flags().StringVarP(&annotateProfile, "profile", "p", "", "Column profile YAML for non-default datasets")
	annotateCmd.MarkFlagRequired("input")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	profile := dataset.DefaultProfile()
	if annotateProfile != "" {
		var err error
		profile, err = dataset.LoadProfile(annotateProfile)
		if err != nil {
			return err
		}
	}
	cols := profile.Columns

	in, err := dataset.Open(annotateInput)
	if err != nil {
		return err
	}
	defer in.Close()
	if !in.HasColumn(cols.Affiliation) {
		return fmt.Errorf("input has no %q column", cols.Affiliation)
	}

	header := append(append([]string(nil), in.Header()...), cols.Country)
	out, err := dataset.Create(annotateOutput, header)
	if err != nil {
		return err
	}

	baseWidth := len(in.Header())
	rows := 0
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

		fields := make([]string, baseWidth, baseWidth+1)
		copy(fields, row.Fields())
		fields = append(fields, country.AnnotateField(row.Get(cols.Affiliation)))
		if err := out.Write(fields); err != nil {
			out.Close()
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "annotated %d rows\n", rows)
	return nil
}
