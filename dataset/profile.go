package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile names the dataset columns the pipeline reads. Datasets other
// than the default VIS publication export provide their own profile as a
// small YAML file.
type Profile struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Columns     Columns `yaml:"columns"`
}

// Columns maps pipeline roles to dataset column names. Affiliation is
// the only column the cleaning pass requires; the rest enable the audit
// and coauthor commands.
type Columns struct {
	Affiliation    string `yaml:"affiliation"`
	Authors        string `yaml:"authors,omitempty"`
	AuthorsDeduped string `yaml:"authors_deduped,omitempty"`
	Country        string `yaml:"country,omitempty"`
	DOI            string `yaml:"doi,omitempty"`
	Title          string `yaml:"title,omitempty"`
	Year           string `yaml:"year,omitempty"`
}

// DefaultProfile returns the column names of the original VIS publication
// dataset.
func DefaultProfile() *Profile {
	return &Profile{
		Name: "vispubdata",
		Columns: Columns{
			Affiliation:    "AuthorAffiliation",
			Authors:        "AuthorNames",
			AuthorsDeduped: "AuthorNames-Deduped",
			Country:        "Country",
			DOI:            "DOI",
			Title:          "Title",
			Year:           "Year",
		},
	}
}

// LoadProfile reads a column profile from a YAML file. Columns left empty
// in the file fall back to the default profile, so a minimal profile only
// needs to name what differs.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	return parseProfile(data)
}

func parseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}

	def := DefaultProfile()
	if p.Columns.Affiliation == "" {
		p.Columns.Affiliation = def.Columns.Affiliation
	}
	if p.Columns.Authors == "" {
		p.Columns.Authors = def.Columns.Authors
	}
	if p.Columns.AuthorsDeduped == "" {
		p.Columns.AuthorsDeduped = def.Columns.AuthorsDeduped
	}
	if p.Columns.Country == "" {
		p.Columns.Country = def.Columns.Country
	}
	if p.Columns.DOI == "" {
		p.Columns.DOI = def.Columns.DOI
	}
	if p.Columns.Title == "" {
		p.Columns.Title = def.Columns.Title
	}
	if p.Columns.Year == "" {
		p.Columns.Year = def.Columns.Year
	}
	return &p, nil
}
