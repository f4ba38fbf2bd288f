// Package pipeline orchestrates the affiliation cleaning run: two passes
// over the input dataset with an optional enrichment step in between, and
// a set of audit artifacts next to the main output.
//
// Pass 1 discovers the unique cleaned affiliations and decides, once per
// canonical name, which country each one belongs to. Pass 2 re-streams
// the input and materializes one output row per affiliation token,
// reusing the pass-1 decisions verbatim so the output is deterministic.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/vispubdata/affilclean/affiliation"
	"github.com/vispubdata/affilclean/country"
	"github.com/vispubdata/affilclean/dataset"
	"github.com/vispubdata/affilclean/openalex"
	"github.com/vispubdata/affilclean/textnorm"
)

// Defaults for the tunable thresholds.
const (
	DefaultEnrichTopN     = 100
	DefaultEnrichMinScore = 92.0
	DefaultReviewMinScore = 97.0

	missingListSize = 100
)

// Enricher resolves an institution name through an external catalog.
// *openalex.Client satisfies it.
type Enricher interface {
	LookupInstitution(ctx context.Context, name string) (openalex.Lookup, error)
}

// Config describes one cleaning run.
type Config struct {
	InputPath  string
	OutputPath string
	// ArtifactDir receives the mapping, dictionary, missing-country and
	// report files; defaults to the output file's directory.
	ArtifactDir string

	Profile       *dataset.Profile
	Canonicalizer *affiliation.Canonicalizer

	// Limit caps the number of data rows processed in each pass;
	// 0 means all rows. Useful for sampling large datasets.
	Limit int

	// Enricher enables the external country lookup for the most frequent
	// canonical names still missing a country. nil disables enrichment.
	Enricher   Enricher
	EnrichTopN int
	// EnrichMinScore gates enrichment hits on the similarity between the
	// canonical name and the catalog's display name.
	EnrichMinScore float64
	// ReviewMinScore marks rows for review when the canonical match score
	// falls below it.
	ReviewMinScore float64
	// Scorer used for the enrichment gate; defaults to the token-sort
	// scorer.
	Scorer affiliation.Scorer
}

// Report is the run summary written to report.json.
type Report struct {
	Rows               int             `json:"rows"`
	OutputRows         int             `json:"output_rows"`
	UniqueAffiliations int             `json:"unique_affiliations"`
	CanonicalNames     int             `json:"canonical_names"`
	WithCountry        int             `json:"with_country"`
	MissingCountry     int             `json:"missing_country"`
	NeedsReview        int             `json:"needs_review"`
	CanonicalMethods   map[string]int  `json:"canonical_methods"`
	CountryMethods     map[string]int  `json:"country_methods"`
	Enrichment         EnrichmentStats `json:"enrichment"`
}

// EnrichmentStats summarizes the external lookup step.
type EnrichmentStats struct {
	Attempted int `json:"attempted"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
	Errors    int `json:"errors"`
}

type countryDecision struct {
	Name   string
	Method country.Method
}

type runState struct {
	cleans     []string // discovery order
	freq       map[string]int
	canonical  map[string]affiliation.Match
	canonOrder []string // discovery order of canonical names
	countryOf  map[string]countryDecision
}

func newRunState() *runState {
	return &runState{
		freq:      make(map[string]int),
		canonical: make(map[string]affiliation.Match),
		countryOf: make(map[string]countryDecision),
	}
}

// observe folds one raw affiliation field into the pass-1 caches.
func (s *runState) observe(canon *affiliation.Canonicalizer, rawField string) {
	for _, tok := range affiliation.Split(rawField) {
		s.freq[tok.Clean]++
		if _, ok := s.canonical[tok.Clean]; ok {
			continue
		}
		s.cleans = append(s.cleans, tok.Clean)
		match := canon.Canonicalize(tok.Clean)
		s.canonical[tok.Clean] = match

		// The country is decided once per canonical name, from the
		// canonical name itself. A variant that carries country text the
		// canonical form lacks must not smuggle it into the dictionary;
		// such names stay missing and become enrichment candidates.
		if _, ok := s.countryOf[match.CanonicalName]; !ok {
			name, method := country.ExtractHighPrecision(match.CanonicalName)
			s.countryOf[match.CanonicalName] = countryDecision{Name: name, Method: method}
			s.canonOrder = append(s.canonOrder, match.CanonicalName)
		}
	}
}

func (s *runState) freqByCanonical() map[string]int {
	out := make(map[string]int, len(s.canonOrder))
	for clean, n := range s.freq {
		out[s.canonical[clean].CanonicalName] += n
	}
	return out
}

// missingCanonical returns canonical names without a country, most
// frequent first, name ascending on ties.
func (s *runState) missingCanonical() []string {
	freq := s.freqByCanonical()
	var missing []string
	for _, name := range s.canonOrder {
		if s.countryOf[name].Name == "" {
			missing = append(missing, name)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if freq[missing[i]] != freq[missing[j]] {
			return freq[missing[i]] > freq[missing[j]]
		}
		return missing[i] < missing[j]
	})
	return missing
}

func (s *runState) enrich(ctx context.Context, cfg Config) EnrichmentStats {
	var stats EnrichmentStats
	if cfg.Enricher == nil {
		return stats
	}
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = affiliation.NewTokenSortScorer()
	}

	candidates := s.missingCanonical()
	if len(candidates) > cfg.EnrichTopN {
		candidates = candidates[:cfg.EnrichTopN]
	}
	slog.Info("enriching affiliations without a country", "candidates", len(candidates))

	for _, name := range candidates {
		stats.Attempted++
		lookup, err := cfg.Enricher.LookupInstitution(ctx, name)
		if err != nil {
			stats.Errors++
			slog.Warn("enrichment lookup failed", "affiliation", name, "err", err)
			continue
		}
		if !lookup.Found || lookup.CountryCode == "" {
			stats.Rejected++
			continue
		}
		countryName, ok := country.FromISO2(lookup.CountryCode)
		if !ok {
			stats.Rejected++
			slog.Debug("enrichment returned unmapped country code",
				"affiliation", name, "code", lookup.CountryCode)
			continue
		}
		score := scorer.Score(textnorm.MatchKey(name), textnorm.MatchKey(lookup.DisplayName))
		if score < cfg.EnrichMinScore {
			stats.Rejected++
			slog.Debug("enrichment match below acceptance gate",
				"affiliation", name, "match", lookup.DisplayName, "score", score)
			continue
		}
		s.countryOf[name] = countryDecision{Name: countryName, Method: country.MethodExternal}
		stats.Accepted++
	}
	return stats
}

// Run executes the full pipeline and writes the main output plus the
// audit artifacts. Rows that yield no plausible affiliation token
// contribute zero output rows; only input and artifact I/O errors abort
// the run.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Profile == nil {
		cfg.Profile = dataset.DefaultProfile()
	}
	if cfg.Canonicalizer == nil {
		cfg.Canonicalizer = affiliation.NewCanonicalizer(nil, nil, nil, 0)
	}
	if cfg.EnrichTopN <= 0 {
		cfg.EnrichTopN = DefaultEnrichTopN
	}
	if cfg.EnrichMinScore <= 0 {
		cfg.EnrichMinScore = DefaultEnrichMinScore
	}
	if cfg.ReviewMinScore <= 0 {
		cfg.ReviewMinScore = DefaultReviewMinScore
	}
	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = filepath.Dir(cfg.OutputPath)
	}
	affilColumn := cfg.Profile.Columns.Affiliation

	state := newRunState()
	report := &Report{
		CanonicalMethods: make(map[string]int),
		CountryMethods:   make(map[string]int),
	}

	// Pass 1: discovery.
	in, err := dataset.Open(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	if !in.HasColumn(affilColumn) {
		in.Close()
		return nil, fmt.Errorf("input has no %q column", affilColumn)
	}
	for {
		if cfg.Limit > 0 && report.Rows >= cfg.Limit {
			break
		}
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("reading input: %w", err)
		}
		report.Rows++
		state.observe(cfg.Canonicalizer, row.Get(affilColumn))
	}
	in.Close()
	slog.Info("discovery pass complete",
		"rows", report.Rows, "unique_affiliations", len(state.cleans),
		"canonical_names", len(state.canonOrder))

	report.Enrichment = state.enrich(ctx, cfg)

	// Pass 2: materialization.
	in, err = dataset.Open(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	header := append(append([]string(nil), in.Header()...),
		"AuthorAffiliation_raw", "AuthorAffiliation_clean",
		"canonical_affiliation_en", "canonical_method",
		"canonical_match_score", "Country", "needs_review")
	out, err := dataset.Create(cfg.OutputPath, header)
	if err != nil {
		return nil, err
	}

	baseWidth := len(in.Header())
	rowsRead := 0
	for {
		if cfg.Limit > 0 && rowsRead >= cfg.Limit {
			break
		}
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Close()
			return nil, fmt.Errorf("reading input: %w", err)
		}
		rowsRead++

		base := make([]string, baseWidth)
		copy(base, row.Fields())

		for _, tok := range affiliation.Split(row.Get(affilColumn)) {
			match := state.canonical[tok.Clean]
			dec := state.countryOf[match.CanonicalName]

			score := ""
			if match.HasScore {
				score = strconv.FormatFloat(match.Score, 'f', 1, 64)
			}
			review := "0"
			if dec.Name == "" || (match.HasScore && match.Score < cfg.ReviewMinScore) {
				review = "1"
				report.NeedsReview++
			}

			fields := make([]string, 0, len(header))
			fields = append(fields, base...)
			fields = append(fields, tok.Raw, tok.Clean,
				match.CanonicalName, match.Method, score, dec.Name, review)

			if err := out.Write(fields); err != nil {
				out.Close()
				return nil, fmt.Errorf("writing output: %w", err)
			}
			report.OutputRows++
		}
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("finalizing output: %w", err)
	}

	report.UniqueAffiliations = len(state.cleans)
	report.CanonicalNames = len(state.canonOrder)
	for _, clean := range state.cleans {
		report.CanonicalMethods[state.canonical[clean].Method]++
	}
	for _, name := range state.canonOrder {
		dec := state.countryOf[name]
		report.CountryMethods[string(dec.Method)]++
		if dec.Name == "" {
			report.MissingCountry++
		} else {
			report.WithCountry++
		}
	}

	if err := writeArtifacts(cfg, state, report); err != nil {
		return nil, err
	}
	slog.Info("run complete",
		"output_rows", report.OutputRows,
		"with_country", report.WithCountry,
		"missing_country", report.MissingCountry,
		"needs_review", report.NeedsReview)
	return report, nil
}
