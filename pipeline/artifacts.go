package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/vispubdata/affilclean/dataset"
)

// Artifact file names, written next to the main output.
const (
	MappingFile    = "affiliation_mapping.csv"
	DictionaryFile = "country_dictionary.csv"
	MissingFile    = "top_100_country_missing.csv"
	ReportFile     = "report.json"
)

func writeArtifacts(cfg Config, state *runState, report *Report) error {
	if err := os.MkdirAll(cfg.ArtifactDir, 0o755); err != nil {
		return fmt.Errorf("creating artifact dir %s: %w", cfg.ArtifactDir, err)
	}
	if err := writeMapping(filepath.Join(cfg.ArtifactDir, MappingFile), state); err != nil {
		return err
	}
	if err := writeDictionary(filepath.Join(cfg.ArtifactDir, DictionaryFile), state); err != nil {
		return err
	}
	if err := writeMissing(filepath.Join(cfg.ArtifactDir, MissingFile), state); err != nil {
		return err
	}
	return writeReport(filepath.Join(cfg.ArtifactDir, ReportFile), report)
}

// writeMapping records every cleaned affiliation with its canonical
// resolution and frequency, sorted by cleaned string.
func writeMapping(path string, state *runState) error {
	cleans := append([]string(nil), state.cleans...)
	sort.Strings(cleans)

	w, err := dataset.Create(path, []string{
		"AuthorAffiliation_clean", "canonical_affiliation_en",
		"canonical_method", "canonical_match_score", "count",
	})
	if err != nil {
		return err
	}
	for _, clean := range cleans {
		match := state.canonical[clean]
		score := ""
		if match.HasScore {
			score = strconv.FormatFloat(match.Score, 'f', 1, 64)
		}
		if err := w.Write([]string{
			clean, match.CanonicalName, match.Method, score,
			strconv.Itoa(state.freq[clean]),
		}); err != nil {
			w.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return w.Close()
}

// writeDictionary records the country decision per canonical name, sorted
// by canonical name.
func writeDictionary(path string, state *runState) error {
	names := append([]string(nil), state.canonOrder...)
	sort.Strings(names)

	w, err := dataset.Create(path, []string{
		"canonical_affiliation_en", "Country", "country_method",
	})
	if err != nil {
		return err
	}
	for _, name := range names {
		dec := state.countryOf[name]
		if err := w.Write([]string{name, dec.Name, string(dec.Method)}); err != nil {
			w.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return w.Close()
}

// writeMissing records the most frequent canonical names still lacking a
// country after enrichment, count descending.
func writeMissing(path string, state *runState) error {
	missing := state.missingCanonical()
	if len(missing) > missingListSize {
		missing = missing[:missingListSize]
	}
	freq := state.freqByCanonical()

	w, err := dataset.Create(path, []string{"canonical_affiliation_en", "count"})
	if err != nil {
		return err
	}
	for _, name := range missing {
		if err := w.Write([]string{name, strconv.Itoa(freq[name])}); err != nil {
			w.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return w.Close()
}

func writeReport(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
