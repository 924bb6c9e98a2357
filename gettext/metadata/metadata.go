// Package metadata parses the GNU MO "empty id" translation blob into a
// header map and extracts the two headers the parser cares about:
// Content-Type's charset and Plural-Forms.
//
// Grounded on justinas/gettext's metadata.rs (MetadataMap, charset,
// plural_forms) and the teacher's readMoHeader in mo.go, which performs
// the same line-by-line ":"-split but folds the result straight into
// Catalog.Header instead of a standalone type.
package metadata

import (
	"strconv"
	"strings"

	gettexterr "github.com/justinas/gettext/gettext/errors"
)

// Map is a header name to value mapping parsed out of a catalog's
// metadata entry. Ordering is not significant; a duplicate header uses
// last-writer-wins.
type Map map[string]string

// Parse splits blob on "\n", drops empty lines, and for each remaining
// line splits at the first ':' into a trimmed name and trimmed value.
// It returns a MalformedMetadata error if any non-empty line lacks a
// colon.
func Parse(blob string) (Map, error) {
	m := make(Map)
	for _, line := range strings.Split(blob, "\n") {
		if line == "" {
			continue
		}
		i := strings.IndexByte(line, ':')
		if i == -1 {
			return nil, gettexterr.New(gettexterr.MalformedMetadata)
		}
		name := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		m[name] = value
	}
	return m, nil
}

// Charset returns the charset= substring of the Content-Type header, if
// present.
func (m Map) Charset() (string, bool) {
	ct, ok := m["Content-Type"]
	if !ok {
		return "", false
	}
	const marker = "charset="
	idx := strings.Index(ct, marker)
	if idx == -1 {
		return "", false
	}
	return ct[idx+len(marker):], true
}

// PluralForms splits the Plural-Forms header on ';' and, for each piece,
// at the first '='. It recognizes "n_plurals" (parsed as a decimal
// integer) and "plural" (kept as raw expression source). A missing
// header, a missing piece, or a non-integer n_plurals yields the zero
// value for that component rather than an error.
func (m Map) PluralForms() (nPlurals int, nPluralsOK bool, plural string, pluralOK bool) {
	header, ok := m["Plural-Forms"]
	if !ok {
		return 0, false, "", false
	}
	for _, part := range strings.Split(header, ";") {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		name := strings.TrimSpace(part[:eq])
		value := strings.TrimSpace(part[eq+1:])
		switch name {
		case "n_plurals", "nplurals":
			if n, err := strconv.Atoi(value); err == nil {
				nPlurals, nPluralsOK = n, true
			}
		case "plural":
			plural, pluralOK = value, true
		}
	}
	return
}
