package affiliation

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/vispubdata/affilclean/textnorm"
)

// Canonicalization methods, in the order they are tried.
const (
	MethodAlias    = "alias"
	MethodExact    = "exact"
	MethodFuzzy    = "fuzzy"
	MethodIdentity = "identity"
)

// DefaultMinScore is the fuzzy acceptance threshold on the 0-100 scale.
const DefaultMinScore = 95.0

// Match describes the canonical form chosen for a cleaned affiliation.
// CanonicalName is never empty for non-empty input. Score is only
// meaningful when HasScore is set; identity matches keep the best fuzzy
// score for auditing even when it fell below the threshold.
type Match struct {
	CanonicalName string
	Method        string
	Score         float64
	HasScore      bool
}

// Scorer computes a 0-100 similarity between two matching keys.
type Scorer interface {
	Score(a, b string) float64
}

// TokenSortScorer scores normalized Levenshtein similarity over
// token-sorted keys, so word order differences ("MIT CSAIL" vs "CSAIL
// MIT") do not count against a pair.
type TokenSortScorer struct {
	metric *metrics.Levenshtein
}

func NewTokenSortScorer() *TokenSortScorer {
	return &TokenSortScorer{metric: metrics.NewLevenshtein()}
}

func (s *TokenSortScorer) Score(a, b string) float64 {
	return strutil.Similarity(sortTokens(a), sortTokens(b), s.metric) * 100
}

func sortTokens(key string) string {
	fields := strings.Fields(key)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// Canonicalizer resolves cleaned affiliation strings to canonical
// institution names using, in order: the alias map, an exact key match
// against the known list, and fuzzy matching against the known list.
// Construct it once per run; it is safe for concurrent reads.
type Canonicalizer struct {
	known     []string
	knownKeys []string
	byKey     map[string]int
	aliases   map[string]string
	scorer    Scorer
	minScore  float64

	degradedOnce sync.Once
}

// NewCanonicalizer builds a canonicalizer over a known institution list
// (load order preserved, first occurrence of a key wins) and an alias map
// keyed by matching key. A nil scorer degrades to alias-or-identity
// resolution. minScore <= 0 selects DefaultMinScore.
func NewCanonicalizer(known []string, aliases map[string]string, scorer Scorer, minScore float64) *Canonicalizer {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	c := &Canonicalizer{
		known:    make([]string, 0, len(known)),
		byKey:    make(map[string]int, len(known)),
		aliases:  aliases,
		scorer:   scorer,
		minScore: minScore,
	}
	if c.aliases == nil {
		c.aliases = map[string]string{}
	}
	for _, name := range known {
		key := textnorm.MatchKey(name)
		if key == "" {
			continue
		}
		if _, ok := c.byKey[key]; ok {
			continue
		}
		c.byKey[key] = len(c.known)
		c.known = append(c.known, name)
		c.knownKeys = append(c.knownKeys, key)
	}
	return c
}

// Canonicalize resolves one cleaned affiliation string.
func (c *Canonicalizer) Canonicalize(clean string) Match {
	key := textnorm.MatchKey(clean)
	if key == "" {
		return Match{CanonicalName: clean, Method: MethodIdentity}
	}

	if name, ok := c.aliases[key]; ok {
		return Match{CanonicalName: name, Method: MethodAlias, Score: 100, HasScore: true}
	}

	if i, ok := c.byKey[key]; ok {
		return Match{CanonicalName: c.known[i], Method: MethodExact, Score: 100, HasScore: true}
	}

	if c.scorer == nil {
		c.degradedOnce.Do(func() {
			slog.Warn("no fuzzy scorer configured, canonicalization degrades to alias-or-identity")
		})
		return Match{CanonicalName: clean, Method: MethodIdentity}
	}

	if len(c.knownKeys) == 0 {
		return Match{CanonicalName: clean, Method: MethodIdentity}
	}

	best := -1
	bestScore := -1.0
	for i, known := range c.knownKeys {
		if score := c.scorer.Score(key, known); score > bestScore {
			best = i
			bestScore = score
		}
	}

	if bestScore >= c.minScore {
		return Match{CanonicalName: c.known[best], Method: MethodFuzzy, Score: bestScore, HasScore: true}
	}
	return Match{CanonicalName: clean, Method: MethodIdentity, Score: bestScore, HasScore: true}
}
