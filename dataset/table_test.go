package dataset

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	input := "DOI,Title,AuthorAffiliation\n" +
		"10.1/a,First,\"MIT; Stanford University\"\n" +
		"10.1/b,Short row\n"

	r, err := NewReader(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := r.Header(), []string{"DOI", "Title", "AuthorAffiliation"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Header = %v, want %v", got, want)
	}
	if !r.HasColumn("Title") || r.HasColumn("Missing") {
		t.Error("HasColumn misreported column presence")
	}

	row, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if row.Index != 1 {
		t.Errorf("Index = %d, want 1", row.Index)
	}
	if got := row.Get("AuthorAffiliation"); got != "MIT; Stanford University" {
		t.Errorf("Get(AuthorAffiliation) = %q", got)
	}
	if got := row.Get("Missing"); got != "" {
		t.Errorf("Get(Missing) = %q, want empty", got)
	}

	row, err = r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if got := row.Get("AuthorAffiliation"); got != "" {
		t.Errorf("short row Get = %q, want empty", got)
	}

	if _, err := r.Read(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestNewReaderEmptyInput(t *testing.T) {
	if _, err := NewReader(strings.NewReader("")); err == nil {
		t.Error("want error for input without header row")
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write([]string{"1", "two, three"}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := "a,b\n1,\"two, three\"\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLoadProfileDefaults(t *testing.T) {
	p, err := parseProfile([]byte("name: custom\ncolumns:\n  affiliation: Affil\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "custom" {
		t.Errorf("Name = %q, want custom", p.Name)
	}
	if p.Columns.Affiliation != "Affil" {
		t.Errorf("Affiliation = %q, want Affil", p.Columns.Affiliation)
	}
	// Unset columns fall back to the VIS defaults.
	if p.Columns.Authors != "AuthorNames" {
		t.Errorf("Authors = %q, want AuthorNames", p.Columns.Authors)
	}
	if p.Columns.AuthorsDeduped != "AuthorNames-Deduped" {
		t.Errorf("AuthorsDeduped = %q, want AuthorNames-Deduped", p.Columns.AuthorsDeduped)
	}
}

func TestParseProfileInvalidYAML(t *testing.T) {
	if _, err := parseProfile([]byte(":\n  - not yaml")); err == nil {
		t.Error("want error for invalid YAML")
	}
}
