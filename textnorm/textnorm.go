// Package textnorm provides the two text normalization layers used by the
// affiliation pipeline:
//
//   - CleanDisplay produces the cleaned display form of an affiliation
//     string. It is what a curator sees and what ends up in output tables.
//   - MatchKey produces a folded, ASCII-collapsed key used only for
//     equality and fuzzy comparison, never for display.
//
// Both functions are pure and total: they never fail, and empty or
// whitespace-only input yields the empty string. MatchKey is idempotent:
// applying it to its own output returns the same key.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// Narrative boilerplate like "John Smith and Jane Doe are with MIT."
	// The text after the match is the actual affiliation.
	boilerplateRE = regexp.MustCompile(`(?i)\b(?:are|is|was)\s+(?:with|at)\b\s*`)

	nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)

	// Whole-token abbreviation expansions, with an optional trailing dot.
	abbrevSubs = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`\bdept\.?\b`), "department"},
		{regexp.MustCompile(`\buniv\.?\b`), "university"},
		{regexp.MustCompile(`\blab\.?\b`), "laboratory"},
		{regexp.MustCompile(`\binst\.?\b`), "institute"},
	}

	// Decompose, drop combining marks, recompose.
	stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// StripOuterQuotes removes one layer of matching surrounding quote
// characters (single or double) and trims whitespace.
func StripOuterQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// CleanDisplay normalizes an affiliation string for display: it strips
// surrounding quotes, collapses internal whitespace, removes leading
// narrative boilerplate ("... are with <X>" keeps "<X>"), and trims
// trailing punctuation.
func CleanDisplay(raw string) string {
	v := StripOuterQuotes(raw)
	v = whitespaceRE.ReplaceAllString(strings.TrimSpace(v), " ")

	if loc := boilerplateRE.FindStringIndex(v); loc != nil {
		v = strings.TrimSpace(v[loc[1]:])
	}

	v = strings.Trim(v, " \t\r\n,;.")
	return whitespaceRE.ReplaceAllString(v, " ")
}

// MatchKey derives the matching key for an affiliation string: Unicode
// decomposition with diacritics stripped, case folding, "&" expanded to
// "and", a small set of abbreviations expanded as whole tokens, and all
// non-alphanumeric runs collapsed to single spaces.
func MatchKey(display string) string {
	v := StripOuterQuotes(display)
	if folded, _, err := transform.String(stripMarks, v); err == nil {
		v = folded
	}
	v = strings.ToLower(v)
	v = strings.ReplaceAll(v, "&", " and ")
	for _, sub := range abbrevSubs {
		v = sub.re.ReplaceAllString(v, sub.repl)
	}
	v = nonAlnumRE.ReplaceAllString(v, " ")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(v, " "))
}
