package country

import (
	"regexp"
	"strings"

	"github.com/vispubdata/affilclean/textnorm"
)

// Method identifies which rule produced a country attribution.
type Method string

// Attribution methods, roughly in decreasing order of confidence.
const (
	MethodSynonymLast Method = "synonym:last"
	MethodISOLast     Method = "iso:last"
	MethodNameLast    Method = "name:last"
	MethodSynonymAny  Method = "synonym:any"
	MethodKeyword     Method = "keyword"
	MethodExternal    Method = "external"
	MethodUnknown     Method = "unknown"
	MethodEmpty       Method = "empty"
)

var (
	// Explicit US markers. Short dotted forms are matched case-sensitively
	// so that a lowercase "us" never flips a chunk into US context.
	usMarkerRE = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(?:USA|U\.S\.A\.|U\.S\.)(?:[^\p{L}\p{N}_]|$)`)
	usNameRE   = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])united states(?:[^\p{L}\p{N}_]|$)`)

	// "Seattle, WA 98195" style state+zip pattern.
	stateZipRE = regexp.MustCompile(`\b([A-Z]{2})\s+\d{5}(?:-\d{4})?\b`)

	// ", MA," / ", MA" style bare state code between segments.
	bareStateRE = regexp.MustCompile(`,\s*([A-Z]{2})\s*(?:,|$)`)

	// AT&T and its spacing variants; masked before the lexicon scan so the
	// "AT" country code cannot read Austria out of a brand name.
	attBrandRE = regexp.MustCompile(`AT\s*&\s*T\b|AT\s+and\s+T\b`)

	codeRE = regexp.MustCompile(`^[A-Za-z]{2,3}$`)
)

var (
	countryKeyRE map[string]*regexp.Regexp
	keywordKeyRE map[string]*regexp.Regexp
	synonymMap   map[string]string
	nameMap      map[string]string
)

func init() {
	countryKeyRE = make(map[string]*regexp.Regexp, len(countryTable))
	for _, e := range countryTable {
		countryKeyRE[e.Key] = compileTokenRE(e.Key)
	}

	keywordKeyRE = make(map[string]*regexp.Regexp, len(keywordTable))
	for _, e := range keywordTable {
		keywordKeyRE[e.Key] = compileTokenRE(e.Key)
	}

	synonymMap = make(map[string]string, len(synonymTable))
	for _, e := range synonymTable {
		if _, ok := synonymMap[e.Key]; !ok {
			synonymMap[e.Key] = e.Country
		}
	}

	// Full-name keys (everything that is not a short code) for the
	// named-country-last-segment lookup.
	nameMap = make(map[string]string)
	for _, e := range countryTable {
		if isShortCode(e.Key) {
			continue
		}
		k := strings.ToLower(e.Key)
		if _, ok := nameMap[k]; !ok {
			nameMap[k] = e.Country
		}
	}
}

// isShortCode reports whether a lexicon key is a short all-uppercase code
// that must be matched case-sensitively.
func isShortCode(key string) bool {
	return len(key) <= 3 && key == strings.ToUpper(key) && key != strings.ToLower(key)
}

func compileTokenRE(key string) *regexp.Regexp {
	pattern := `(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(key) + `(?:[^\p{L}\p{N}_]|$)`
	if !isShortCode(key) {
		pattern = `(?i)` + pattern
	}
	return regexp.MustCompile(pattern)
}

// isUSContext reports whether the text independently identifies itself as
// a US affiliation: an explicit USA marker, a state+zip pattern, or a bare
// state code between comma segments.
func isUSContext(text string) bool {
	if usMarkerRE.MatchString(text) || usNameRE.MatchString(text) {
		return true
	}
	for _, m := range stateZipRE.FindAllStringSubmatch(text, -1) {
		if usStateCodes[m[1]] {
			return true
		}
	}
	for _, m := range bareStateRE.FindAllStringSubmatch(text, -1) {
		if usStateCodes[m[1]] {
			return true
		}
	}
	return false
}

// Extract scans one author's affiliation segment and returns every country
// the lexicon can defend, in lexicon order, without duplicates.
//
// The country lexicon is scanned first, honoring the ambiguity
// suppressions; the keyword lexicon is consulted only when the first scan
// finds nothing. Empty or unusable input yields an empty result; Extract
// never fails.
func Extract(chunk string) []string {
	if strings.TrimSpace(chunk) == "" {
		return nil
	}

	text := strings.ReplaceAll(chunk, ";", ",")
	scanText := attBrandRE.ReplaceAllString(text, "ATT")
	usContext := isUSContext(scanText)

	var found []string
	seen := make(map[string]bool)
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			found = append(found, c)
		}
	}

	for _, e := range countryTable {
		// In US context, a short code that doubles as a US state
		// abbreviation must not be read as a country.
		if usContext && isShortCode(e.Key) && usStateCodes[e.Key] {
			continue
		}
		if countryKeyRE[e.Key].MatchString(scanText) {
			add(e.Country)
		}
	}

	if len(found) == 0 {
		for _, e := range keywordTable {
			if keywordKeyRE[e.Key].MatchString(scanText) {
				add(e.Country)
			}
		}
	}

	// "Hong Kong, China": when Hong Kong textually precedes the China
	// mention, Hong Kong is authoritative.
	if seen["Hong Kong"] && seen["China"] && hongKongPrecedesChina(text) {
		trimmed := found[:0]
		for _, c := range found {
			if c != "China" {
				trimmed = append(trimmed, c)
			}
		}
		found = trimmed
	}

	return found
}

// AnnotateField maps each ";"-separated chunk of an affiliation field to
// its extracted countries ("/"-joined within a chunk). Chunk positions are
// preserved, so the result stays aligned with ";"-separated author fields;
// a chunk without evidence yields an empty slot.
func AnnotateField(field string) string {
	if strings.TrimSpace(field) == "" {
		return ""
	}
	parts := strings.Split(field, ";")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.Join(Extract(p), "/")
	}
	return strings.Join(out, "; ")
}

func hongKongPrecedesChina(text string) bool {
	lowered := strings.ToLower(text)
	hk := strings.Index(lowered, "hong kong")
	if hk < 0 {
		return false
	}
	cn := strings.Index(lowered, "china")
	return cn < 0 || hk < cn
}

// ExtractHighPrecision inspects a cleaned affiliation and returns at most
// one country, preferring unknown over guessing. The last comma-separated
// segment is tried first (synonym, then ISO code, then full country name);
// only if all three fail is the whole string scanned for a synonym as a
// whole-word match, and finally for a keyword match that names a single
// country.
func ExtractHighPrecision(affiliation string) (string, Method) {
	if strings.TrimSpace(affiliation) == "" {
		return "", MethodEmpty
	}

	cleaned := textnorm.CleanDisplay(affiliation)
	segments := splitSegments(cleaned)
	if len(segments) == 0 {
		return "", MethodUnknown
	}
	last := segments[len(segments)-1]

	if c, ok := synonymMap[textnorm.MatchKey(last)]; ok {
		return c, MethodSynonymLast
	}

	if codeRE.MatchString(last) {
		code := strings.ToUpper(last)
		if len(code) == 2 && ambiguousISO2[code] {
			return "", MethodUnknown
		}
		if name, ok := LookupCode(code); ok {
			return name, MethodISOLast
		}
	}

	if name, ok := nameMap[strings.ToLower(last)]; ok {
		return name, MethodNameLast
	}

	key := textnorm.MatchKey(cleaned)
	for _, e := range synonymTable {
		if containsWholeWords(key, e.Key) {
			return e.Country, MethodSynonymAny
		}
	}

	if c, ok := keywordSingle(cleaned); ok {
		return c, MethodKeyword
	}

	return "", MethodUnknown
}

func splitSegments(cleaned string) []string {
	parts := strings.Split(cleaned, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.Trim(strings.TrimSpace(p), "."))
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// containsWholeWords reports whether needle occurs in haystack at token
// boundaries. Both strings must already be normalized matching keys
// (lowercase tokens separated by single spaces).
func containsWholeWords(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}

// keywordSingle scans the keyword lexicon and accepts the result only when
// every matching keyword names the same country.
func keywordSingle(cleaned string) (string, bool) {
	result := ""
	for _, e := range keywordTable {
		if !keywordKeyRE[e.Key].MatchString(cleaned) {
			continue
		}
		if result == "" {
			result = e.Country
		} else if result != e.Country {
			return "", false
		}
	}
	return result, result != ""
}
