// Package doi normalizes DOI strings from mixed bibliographic sources into
// a single comparable form.
package doi

import (
	"regexp"
	"strings"
)

var bodyRE = regexp.MustCompile(`10\.\d{4,9}/\S+`)

// Normalize extracts the bare DOI body from a raw value: resolver URL
// prefixes and a leading "doi:" label are stripped, the "10.<registrant>/
// <suffix>" body is extracted and lowercased, and trailing punctuation is
// trimmed. Placeholder registrant 10.0000 and values without a DOI body
// yield "".
func Normalize(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}

	lowered := strings.ToLower(v)
	for _, prefix := range []string{
		"https://doi.org/",
		"http://doi.org/",
		"https://dx.doi.org/",
		"http://dx.doi.org/",
		"doi.org/",
		"doi:",
	} {
		if strings.HasPrefix(lowered, prefix) {
			v = v[len(prefix):]
			lowered = lowered[len(prefix):]
			break
		}
	}

	body := bodyRE.FindString(v)
	if body == "" {
		return ""
	}
	body = strings.ToLower(strings.TrimRight(body, ".,;)"))
	if strings.HasPrefix(body, "10.0000/") {
		return ""
	}
	return body
}
