// Package coauthor builds a weighted co-authorship edge list from the
// per-paper author lists of a publication dataset.
package coauthor

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// Edge is one undirected co-authorship pair; Weight counts shared papers.
// AuthorID1 < AuthorID2 always holds.
type Edge struct {
	AuthorID1 string
	AuthorID2 string
	Weight    int
}

// LocalAuthorID derives a deterministic identifier for an author name
// when no external id is available. An optional context string
// disambiguates distinct authors with identical names.
func LocalAuthorID(name, context string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if context != "" {
		key += "|" + strings.ToLower(strings.TrimSpace(context))
	}
	sum := sha1.Sum([]byte(key))
	return "local:" + hex.EncodeToString(sum[:])[:16]
}

// SplitAuthors splits a ";"-separated author field into trimmed,
// non-empty names.
func SplitAuthors(field string) []string {
	var names []string
	for _, part := range strings.Split(field, ";") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ChooseAuthorList picks the author list for a paper, preferring the
// deduplicated name column and falling back to the raw one when the
// deduplicated column is empty.
func ChooseAuthorList(deduped, raw string) []string {
	if names := SplitAuthors(deduped); len(names) > 0 {
		return names
	}
	return SplitAuthors(raw)
}

// Builder accumulates co-authorship weights across papers. Papers with a
// known id are counted once, no matter how many dataset rows carry them.
type Builder struct {
	weights    map[[2]string]int
	seenPapers map[string]bool
}

func NewBuilder() *Builder {
	return &Builder{
		weights:    make(map[[2]string]int),
		seenPapers: make(map[string]bool),
	}
}

// AddPaper records one paper's author names. paperID is any stable paper
// identifier (a normalized DOI works well); when empty, the paper is
// counted unconditionally.
func (b *Builder) AddPaper(paperID string, authors []string) {
	if paperID != "" {
		if b.seenPapers[paperID] {
			return
		}
		b.seenPapers[paperID] = true
	}

	ids := make([]string, 0, len(authors))
	seen := make(map[string]bool, len(authors))
	for _, name := range authors {
		if strings.TrimSpace(name) == "" {
			continue
		}
		id := LocalAuthorID(name, "")
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			b.weights[[2]string{ids[i], ids[j]}]++
		}
	}
}

// Edges returns the accumulated edge list, sorted by weight descending,
// then by author ids ascending for a stable output order.
func (b *Builder) Edges() []Edge {
	edges := make([]Edge, 0, len(b.weights))
	for pair, weight := range b.weights {
		edges = append(edges, Edge{AuthorID1: pair[0], AuthorID2: pair[1], Weight: weight})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}
		if edges[i].AuthorID1 != edges[j].AuthorID1 {
			return edges[i].AuthorID1 < edges[j].AuthorID1
		}
		return edges[i].AuthorID2 < edges[j].AuthorID2
	})
	return edges
}
