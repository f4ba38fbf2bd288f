// Package affiliation turns raw author affiliation fields into cleaned,
// deduplicated tokens and resolves each token to a canonical institution
// name.
package affiliation

import (
	"strings"
	"unicode"

	"github.com/vispubdata/affilclean/country"
	"github.com/vispubdata/affilclean/textnorm"
)

// Token is one affiliation mention extracted from a raw author field.
type Token struct {
	Raw   string // the original ";"-separated segment, trimmed
	Clean string // display form after normalization
	Key   string // matching key, used for dedupe and canonicalization
}

// Match keys that mean "no affiliation given".
var nullKeys = map[string]bool{
	"na":   true,
	"n a":  true,
	"none": true,
	"null": true,
}

// Split breaks a raw affiliation field into plausible tokens. Segments are
// separated by ";"; each is cleaned, implausible segments (empty, null
// markers, no letters) are dropped, and a single " and " / " & "
// conjunction is split only when both sides independently resolve to a
// country. Duplicate tokens within the field are removed by matching key,
// first occurrence wins.
func Split(rawField string) []Token {
	var tokens []Token
	seen := make(map[string]bool)

	for _, seg := range strings.Split(rawField, ";") {
		raw := strings.TrimSpace(seg)
		clean := textnorm.CleanDisplay(seg)
		if clean == "" {
			continue
		}
		for _, part := range splitConjunction(clean) {
			if !plausible(part) {
				continue
			}
			key := textnorm.MatchKey(part)
			if key == "" || nullKeys[key] || seen[key] {
				continue
			}
			seen[key] = true
			tokens = append(tokens, Token{Raw: raw, Clean: part, Key: key})
		}
	}
	return tokens
}

// splitConjunction splits "X, Country1 and Y, Country2" into its two
// institutions, but only when both halves carry their own country
// evidence. Anything less certain stays a single token, since " and " is
// far more often part of an institution name than a separator.
func splitConjunction(clean string) []string {
	for _, sep := range []string{" and ", " & "} {
		i := strings.Index(clean, sep)
		if i < 0 {
			continue
		}
		// Each half goes back through display cleaning so a trailing
		// comma before the conjunction does not survive into the output.
		left := textnorm.CleanDisplay(clean[:i])
		right := textnorm.CleanDisplay(clean[i+len(sep):])
		if left == "" || right == "" {
			continue
		}
		if c, _ := country.ExtractHighPrecision(left); c == "" {
			continue
		}
		if c, _ := country.ExtractHighPrecision(right); c == "" {
			continue
		}
		return []string{left, right}
	}
	return []string{clean}
}

func plausible(clean string) bool {
	if clean == "" {
		return false
	}
	for _, r := range clean {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
