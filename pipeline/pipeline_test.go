package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vispubdata/affilclean/affiliation"
	"github.com/vispubdata/affilclean/openalex"
)

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rows [][]string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		rows = append(rows, splitCSVLine(line))
	}
	return rows
}

// splitCSVLine handles the quoting this test suite produces; it is not a
// general CSV parser.
func splitCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	quoted := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

const sampleInput = "DOI,Title,AuthorAffiliation\n" +
	"10.1/a,Paper A,\"Univ. of Utah, USA; MIT; University of Utah, USA\"\n" +
	"10.1/b,Paper B,Mystery Institute\n" +
	"10.1/c,Paper C,\n"

func sampleConfig(t *testing.T, dir string) Config {
	t.Helper()
	known := []string{"University of Utah, USA", "Massachusetts Institute of Technology"}
	aliases := map[string]string{"mit": "Massachusetts Institute of Technology"}
	return Config{
		InputPath:     writeInput(t, dir, sampleInput),
		OutputPath:    filepath.Join(dir, "cleaned.csv"),
		ArtifactDir:   dir,
		Canonicalizer: affiliation.NewCanonicalizer(known, aliases, affiliation.NewTokenSortScorer(), 0),
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	report, err := Run(context.Background(), sampleConfig(t, dir))
	if err != nil {
		t.Fatal(err)
	}

	if report.Rows != 3 {
		t.Errorf("Rows = %d, want 3", report.Rows)
	}
	// Paper A has 3 tokens but 2 unique keys; paper C has none.
	if report.OutputRows != 3 {
		t.Errorf("OutputRows = %d, want 3", report.OutputRows)
	}
	if report.UniqueAffiliations != 3 {
		t.Errorf("UniqueAffiliations = %d, want 3", report.UniqueAffiliations)
	}
	if report.CanonicalNames != 3 {
		t.Errorf("CanonicalNames = %d, want 3", report.CanonicalNames)
	}
	if report.WithCountry != 2 || report.MissingCountry != 1 {
		t.Errorf("WithCountry/MissingCountry = %d/%d, want 2/1",
			report.WithCountry, report.MissingCountry)
	}
	if report.NeedsReview != 1 {
		t.Errorf("NeedsReview = %d, want 1", report.NeedsReview)
	}

	rows := readCSV(t, filepath.Join(dir, "cleaned.csv"))
	wantHeader := []string{
		"DOI", "Title", "AuthorAffiliation",
		"AuthorAffiliation_raw", "AuthorAffiliation_clean",
		"canonical_affiliation_en", "canonical_method",
		"canonical_match_score", "Country", "needs_review",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Fatalf("header = %v, want %v", rows[0], wantHeader)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows", len(rows))
	}

	first := rows[1]
	want := []string{
		"10.1/a", "Paper A", "Univ. of Utah, USA; MIT; University of Utah, USA",
		"Univ. of Utah, USA", "Univ. of Utah, USA",
		"University of Utah, USA", "exact", "100.0", "United States", "0",
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("first row = %v, want %v", first, want)
	}

	second := rows[2]
	if second[5] != "Massachusetts Institute of Technology" || second[6] != "alias" {
		t.Errorf("MIT row canonical = %v", second)
	}
	if second[8] != "United States" {
		t.Errorf("MIT row country = %q, want United States", second[8])
	}

	third := rows[3]
	if third[6] != "identity" || third[8] != "" || third[9] != "1" {
		t.Errorf("Mystery Institute row = %v, want identity, no country, review", third)
	}
}

func TestRunArtifacts(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(context.Background(), sampleConfig(t, dir)); err != nil {
		t.Fatal(err)
	}

	mapping := readCSV(t, filepath.Join(dir, MappingFile))
	if len(mapping) != 4 {
		t.Fatalf("mapping has %d lines, want header + 3", len(mapping))
	}
	// Sorted by cleaned string.
	if mapping[1][0] != "MIT" || mapping[2][0] != "Mystery Institute" || mapping[3][0] != "Univ. of Utah, USA" {
		t.Errorf("mapping order = %v / %v / %v", mapping[1][0], mapping[2][0], mapping[3][0])
	}
	// The Utah token appeared twice in paper A but deduped to one; count
	// counts token occurrences post-dedupe.
	if mapping[3][4] != "1" {
		t.Errorf("Utah count = %q, want 1", mapping[3][4])
	}

	dict := readCSV(t, filepath.Join(dir, DictionaryFile))
	if len(dict) != 4 {
		t.Fatalf("dictionary has %d lines, want header + 3", len(dict))
	}
	if dict[1][0] != "Massachusetts Institute of Technology" || dict[1][1] != "United States" {
		t.Errorf("dictionary first = %v", dict[1])
	}

	missing := readCSV(t, filepath.Join(dir, MissingFile))
	if len(missing) != 2 {
		t.Fatalf("missing list has %d lines, want header + 1", len(missing))
	}
	if missing[1][0] != "Mystery Institute" || missing[1][1] != "1" {
		t.Errorf("missing row = %v", missing[1])
	}

	if _, err := os.Stat(filepath.Join(dir, ReportFile)); err != nil {
		t.Errorf("report.json not written: %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	if _, err := Run(context.Background(), sampleConfig(t, dirA)); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(context.Background(), sampleConfig(t, dirB)); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"cleaned.csv", MappingFile, DictionaryFile, MissingFile, ReportFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("%s differs across runs", name)
		}
	}
}

// The country dictionary is keyed and decided by canonical name: a
// variant that carries country text must not hand its country to a
// canonical name that has no evidence of its own.
func TestRunCountryDecidedFromCanonicalName(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir,
		"DOI,AuthorAffiliation\n"+
			"10.1/a,\"Acme Labs, Canada\"\n")

	aliases := map[string]string{"acme labs canada": "Acme Laboratories"}
	report, err := Run(context.Background(), Config{
		InputPath:     input,
		OutputPath:    filepath.Join(dir, "cleaned.csv"),
		ArtifactDir:   dir,
		Canonicalizer: affiliation.NewCanonicalizer(nil, aliases, nil, 0),
	})
	if err != nil {
		t.Fatal(err)
	}

	if report.WithCountry != 0 || report.MissingCountry != 1 {
		t.Errorf("WithCountry/MissingCountry = %d/%d, want 0/1",
			report.WithCountry, report.MissingCountry)
	}

	dict := readCSV(t, filepath.Join(dir, DictionaryFile))
	if len(dict) != 2 {
		t.Fatalf("dictionary has %d lines, want header + 1", len(dict))
	}
	if dict[1][0] != "Acme Laboratories" || dict[1][1] != "" || dict[1][2] != "unknown" {
		t.Errorf("dictionary row = %v, want Acme Laboratories with no country", dict[1])
	}

	missing := readCSV(t, filepath.Join(dir, MissingFile))
	if len(missing) != 2 || missing[1][0] != "Acme Laboratories" {
		t.Errorf("missing list = %v, want Acme Laboratories as enrichment candidate", missing)
	}

	rows := readCSV(t, filepath.Join(dir, "cleaned.csv"))
	row := rows[1]
	if row[4] != "Acme Laboratories" || row[5] != "alias" {
		t.Errorf("output row canonical = %v", row)
	}
	if row[7] != "" || row[8] != "1" {
		t.Errorf("output row country/review = %q/%q, want empty and flagged", row[7], row[8])
	}
}

func TestRunLimit(t *testing.T) {
	dir := t.TempDir()
	cfg := sampleConfig(t, dir)
	cfg.Limit = 1

	report, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if report.Rows != 1 {
		t.Errorf("Rows = %d, want 1", report.Rows)
	}
	// Only paper A's two unique tokens survive the cap, in both passes.
	if report.OutputRows != 2 {
		t.Errorf("OutputRows = %d, want 2", report.OutputRows)
	}
	if report.UniqueAffiliations != 2 {
		t.Errorf("UniqueAffiliations = %d, want 2", report.UniqueAffiliations)
	}

	rows := readCSV(t, filepath.Join(dir, "cleaned.csv"))
	if len(rows) != 3 {
		t.Errorf("got %d output lines, want header + 2", len(rows))
	}
	mapping := readCSV(t, filepath.Join(dir, MappingFile))
	if len(mapping) != 3 {
		t.Errorf("mapping has %d lines, want header + 2", len(mapping))
	}
}

type fakeEnricher struct {
	calls   []string
	lookups map[string]openalex.Lookup
}

func (f *fakeEnricher) LookupInstitution(ctx context.Context, name string) (openalex.Lookup, error) {
	f.calls = append(f.calls, name)
	return f.lookups[name], nil
}

func TestRunEnrichment(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir,
		"DOI,AuthorAffiliation\n"+
			"10.1/a,Mystery Institute\n"+
			"10.1/b,Another Lab\n")

	enricher := &fakeEnricher{lookups: map[string]openalex.Lookup{
		"Mystery Institute": {DisplayName: "Mystery Institute", CountryCode: "DE", Found: true},
		"Another Lab":       {DisplayName: "Completely Different Name University", CountryCode: "FR", Found: true},
	}}

	report, err := Run(context.Background(), Config{
		InputPath:   input,
		OutputPath:  filepath.Join(dir, "cleaned.csv"),
		ArtifactDir: dir,
		Enricher:    enricher,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(enricher.calls) != 2 {
		t.Errorf("enricher calls = %v, want 2", enricher.calls)
	}
	if report.Enrichment.Attempted != 2 || report.Enrichment.Accepted != 1 || report.Enrichment.Rejected != 1 {
		t.Errorf("enrichment stats = %+v", report.Enrichment)
	}
	if report.WithCountry != 1 || report.MissingCountry != 1 {
		t.Errorf("WithCountry/MissingCountry = %d/%d, want 1/1", report.WithCountry, report.MissingCountry)
	}

	dict := readCSV(t, filepath.Join(dir, DictionaryFile))
	var mystery []string
	for _, row := range dict[1:] {
		if row[0] == "Mystery Institute" {
			mystery = row
		}
	}
	if mystery == nil || mystery[1] != "Germany" || mystery[2] != "external" {
		t.Errorf("enriched dictionary row = %v, want Germany/external", mystery)
	}
}

func TestRunEnrichTopN(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir,
		"DOI,AuthorAffiliation\n"+
			"10.1/a,Frequent Lab; Frequent Lab Annex\n"+
			"10.1/b,Frequent Lab\n"+
			"10.1/c,Rare Lab\n")

	enricher := &fakeEnricher{lookups: map[string]openalex.Lookup{}}
	_, err := Run(context.Background(), Config{
		InputPath:   input,
		OutputPath:  filepath.Join(dir, "cleaned.csv"),
		ArtifactDir: dir,
		Enricher:    enricher,
		EnrichTopN:  1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(enricher.calls) != 1 || enricher.calls[0] != "Frequent Lab" {
		t.Errorf("enricher calls = %v, want just the most frequent name", enricher.calls)
	}
}

func TestRunMissingAffiliationColumn(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "DOI,Title\n10.1/a,Paper A\n")

	_, err := Run(context.Background(), Config{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "cleaned.csv"),
	})
	if err == nil {
		t.Fatal("want error when the affiliation column is missing")
	}
}

func TestRunReviewBoundary(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir,
		"DOI,AuthorAffiliation\n"+
			"10.1/a,\"University of Utahh, USA\"\n")

	known := []string{"University of Utah, USA"}
	report, err := Run(context.Background(), Config{
		InputPath:     input,
		OutputPath:    filepath.Join(dir, "cleaned.csv"),
		ArtifactDir:   dir,
		Canonicalizer: affiliation.NewCanonicalizer(known, nil, affiliation.NewTokenSortScorer(), 0),
	})
	if err != nil {
		t.Fatal(err)
	}

	// One-letter typo: fuzzy accepted (>= 95) but below the review
	// threshold of 97, so the row keeps its country yet is flagged.
	rows := readCSV(t, filepath.Join(dir, "cleaned.csv"))
	if len(rows) != 2 {
		t.Fatalf("got %d lines, want 2", len(rows))
	}
	row := rows[1]
	if row[5] != "fuzzy" {
		t.Errorf("canonical_method = %q, want fuzzy", row[5])
	}
	if row[7] != "United States" {
		t.Errorf("Country = %q, want United States", row[7])
	}
	if row[8] != "1" {
		t.Errorf("needs_review = %q, want 1", row[8])
	}
	if report.NeedsReview != 1 {
		t.Errorf("NeedsReview = %d, want 1", report.NeedsReview)
	}
}
