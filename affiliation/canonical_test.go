package affiliation

import (
	"math"
	"testing"
)

func TestCanonicalizeAlias(t *testing.T) {
	aliases := map[string]string{
		"mit csail": "Massachusetts Institute of Technology",
	}
	c := NewCanonicalizer(nil, aliases, NewTokenSortScorer(), 0)

	got := c.Canonicalize("MIT CSAIL")
	if got.CanonicalName != "Massachusetts Institute of Technology" {
		t.Errorf("CanonicalName = %q, want %q", got.CanonicalName, "Massachusetts Institute of Technology")
	}
	if got.Method != MethodAlias {
		t.Errorf("Method = %q, want %q", got.Method, MethodAlias)
	}
	if !got.HasScore || got.Score != 100 {
		t.Errorf("Score = (%v, %v), want (100, true)", got.Score, got.HasScore)
	}
}

func TestCanonicalizeExact(t *testing.T) {
	known := []string{
		"University of Utah",
		"Univ. of Utah", // duplicate key, first occurrence must win
		"Stanford University",
	}
	c := NewCanonicalizer(known, nil, NewTokenSortScorer(), 0)

	got := c.Canonicalize("Univ. of Utah")
	if got.CanonicalName != "University of Utah" {
		t.Errorf("CanonicalName = %q, want %q", got.CanonicalName, "University of Utah")
	}
	if got.Method != MethodExact {
		t.Errorf("Method = %q, want %q", got.Method, MethodExact)
	}
	if !got.HasScore || got.Score != 100 {
		t.Errorf("Score = (%v, %v), want (100, true)", got.Score, got.HasScore)
	}
}

func TestCanonicalizeFuzzy(t *testing.T) {
	known := []string{"Stanford University"}
	c := NewCanonicalizer(known, nil, NewTokenSortScorer(), 0)

	// Word order must not count against the pair.
	got := c.Canonicalize("University Stanford")
	if got.Method != MethodFuzzy {
		t.Fatalf("Method = %q, want %q (score %v)", got.Method, MethodFuzzy, got.Score)
	}
	if got.CanonicalName != "Stanford University" {
		t.Errorf("CanonicalName = %q, want %q", got.CanonicalName, "Stanford University")
	}
	if got.Score < DefaultMinScore {
		t.Errorf("Score = %v, want >= %v", got.Score, DefaultMinScore)
	}
}

func TestCanonicalizeIdentityBelowThreshold(t *testing.T) {
	known := []string{"Stanford University"}
	c := NewCanonicalizer(known, nil, NewTokenSortScorer(), 0)

	got := c.Canonicalize("Tiny Robotics GmbH")
	if got.Method != MethodIdentity {
		t.Fatalf("Method = %q, want %q", got.Method, MethodIdentity)
	}
	if got.CanonicalName != "Tiny Robotics GmbH" {
		t.Errorf("CanonicalName = %q, want input kept", got.CanonicalName)
	}
	if !got.HasScore || got.Score >= DefaultMinScore {
		t.Errorf("Score = (%v, %v), want audited score below %v", got.Score, got.HasScore, DefaultMinScore)
	}
}

func TestCanonicalizeDegradedWithoutScorer(t *testing.T) {
	known := []string{"Stanford University"}
	c := NewCanonicalizer(known, nil, nil, 0)

	got := c.Canonicalize("Stanford Uni")
	if got.Method != MethodIdentity {
		t.Errorf("Method = %q, want %q", got.Method, MethodIdentity)
	}
	if got.CanonicalName != "Stanford Uni" {
		t.Errorf("CanonicalName = %q, want input kept", got.CanonicalName)
	}
	if got.HasScore {
		t.Errorf("HasScore = true, want false in degraded mode")
	}

	// Alias and exact resolution still work without a scorer.
	exact := c.Canonicalize("Stanford University")
	if exact.Method != MethodExact {
		t.Errorf("exact Method = %q, want %q", exact.Method, MethodExact)
	}
}

func TestTokenSortScorer(t *testing.T) {
	s := NewTokenSortScorer()

	if got := s.Score("stanford university", "university stanford"); got != 100 {
		t.Errorf("token order score = %v, want 100", got)
	}
	if got := s.Score("stanford university", "stanford university"); got != 100 {
		t.Errorf("identical score = %v, want 100", got)
	}
	got := s.Score("mit", "eth zurich")
	if got < 0 || got > 50 {
		t.Errorf("dissimilar score = %v, want low", got)
	}
	if math.IsNaN(got) {
		t.Errorf("score is NaN")
	}
}
