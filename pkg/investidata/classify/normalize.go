// Package classify guesses the semantic role of worksheets and columns
// from their human-chosen names.
package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var spaceRE = regexp.MustCompile(`\s+`)

// Normalizer prepares names and keywords for substring matching.
type Normalizer struct {
	// FoldAccents strips combining marks so "Ubicación" matches "ubicacion".
	FoldAccents bool
}

// Normalize returns s in NFC, trimmed, lower-cased and with whitespace
// runs collapsed to one space.
func (n Normalizer) Normalize(s string) string {
	s = norm.NFC.String(s)
	if n.FoldAccents {
		s = foldAccents(s)
	}
	return spaceRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func (n Normalizer) all(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = n.Normalize(s)
	}
	return out
}
