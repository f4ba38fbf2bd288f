package affiliation

import (
	"reflect"
	"testing"
)

func cleans(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Clean
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty field",
			raw:  "",
			want: nil,
		},
		{
			name: "single affiliation",
			raw:  "University of Konstanz",
			want: []string{"University of Konstanz"},
		},
		{
			name: "semicolon separated",
			raw:  "MIT; Stanford University",
			want: []string{"MIT", "Stanford University"},
		},
		{
			name: "null tokens dropped",
			raw:  "n/a; none; MIT; NA",
			want: []string{"MIT"},
		},
		{
			name: "no letters dropped",
			raw:  "12345; ---; MIT",
			want: []string{"MIT"},
		},
		{
			name: "dedupe by matching key keeps first",
			raw:  "Univ. of Utah; MIT; University of Utah",
			want: []string{"Univ. of Utah", "MIT"},
		},
		{
			name: "three tokens two unique",
			raw:  `MIT; "MIT"; Stanford University`,
			want: []string{"MIT", "Stanford University"},
		},
		{
			name: "conjunction with countries on both sides splits",
			raw:  "University of Konstanz, Germany and Stanford University, USA",
			want: []string{"University of Konstanz, Germany", "Stanford University, USA"},
		},
		{
			name: "ampersand conjunction with countries splits",
			raw:  "TU Wien, Austria & ETH, CH",
			want: []string{"TU Wien, Austria", "ETH, CH"},
		},
		{
			name: "comma before conjunction does not leak into halves",
			raw:  "MIT, USA, and ETH, Switzerland",
			want: []string{"MIT, USA", "ETH, Switzerland"},
		},
		{
			name: "conjunction without countries stays whole",
			raw:  "Department of Science and Technology Studies",
			want: []string{"Department of Science and Technology Studies"},
		},
		{
			name: "conjunction with country on one side stays whole",
			raw:  "Institute for Systems and Robotics, Portugal",
			want: []string{"Institute for Systems and Robotics, Portugal"},
		},
		{
			name: "boilerplate stripped before split",
			raw:  "The authors are with MIT CSAIL.",
			want: []string{"MIT CSAIL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleans(Split(tt.raw))
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) cleans = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitTokenFields(t *testing.T) {
	tokens := Split(`  "Univ. of Utah" ; MIT `)
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	first := tokens[0]
	if first.Raw != `"Univ. of Utah"` {
		t.Errorf("Raw = %q, want %q", first.Raw, `"Univ. of Utah"`)
	}
	if first.Clean != "Univ. of Utah" {
		t.Errorf("Clean = %q, want %q", first.Clean, "Univ. of Utah")
	}
	if first.Key != "university of utah" {
		t.Errorf("Key = %q, want %q", first.Key, "university of utah")
	}
}
