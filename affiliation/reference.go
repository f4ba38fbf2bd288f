package affiliation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/vispubdata/affilclean/textnorm"
)

// LoadKnownList reads the canonical institution list: one name per line,
// first CSV column, header and blank lines tolerated, duplicates by
// matching key dropped. An empty path or a missing file yields an empty
// list and degraded canonicalization, not an error.
func LoadKnownList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("known institution list not found, fuzzy matching disabled", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening known list %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var names []string
	seen := make(map[string]bool)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading known list %s: %w", path, err)
		}
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" || strings.EqualFold(name, "canonical_affiliation_en") {
			continue
		}
		key := textnorm.MatchKey(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names, nil
}

// LoadAliases reads the alias map CSV with a "pattern,
// canonical_affiliation_en" header. Keys are matching keys of the pattern
// column; the first mapping for a key wins. An empty path or a missing
// file yields an empty map, not an error.
func LoadAliases(path string) (map[string]string, error) {
	aliases := make(map[string]string)
	if path == "" {
		return aliases, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("alias map not found, alias resolution disabled", "path", path)
		return aliases, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening alias map %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading alias map %s: %w", path, err)
		}
		if len(row) < 2 {
			continue
		}
		pattern := strings.TrimSpace(row[0])
		canonical := strings.TrimSpace(row[1])
		if first {
			first = false
			if strings.EqualFold(pattern, "pattern") {
				continue
			}
		}
		if pattern == "" || canonical == "" {
			continue
		}
		key := textnorm.MatchKey(pattern)
		if key == "" {
			continue
		}
		if _, ok := aliases[key]; !ok {
			aliases[key] = canonical
		}
	}
	return aliases, nil
}
