package facts

import (
	"regexp"
	"strings"

	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// Scanner tests text against every alert category of a lexicon.
// A Scanner is immutable and safe for concurrent use.
type Scanner struct {
	labels   []string
	patterns []*regexp.Regexp
}

// NewScanner compiles one case-insensitive alternation per category.
// Categories without terms never hit.
func NewScanner(lex lexicon.Lexicon) *Scanner {
	s := &Scanner{}
	for _, label := range lex.Labels() {
		var quoted []string
		for _, term := range lex[label] {
			if term = strings.TrimSpace(term); term != "" {
				quoted = append(quoted, regexp.QuoteMeta(term))
			}
		}
		var re *regexp.Regexp
		if len(quoted) > 0 {
			re = regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
		}
		s.labels = append(s.labels, label)
		s.patterns = append(s.patterns, re)
	}
	return s
}

// Labels returns the category labels in scan order.
func (s *Scanner) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Match returns the labels of every category with a term in text.
func (s *Scanner) Match(text string) []string {
	var hit []string
	for i, re := range s.patterns {
		if re != nil && re.MatchString(text) {
			hit = append(hit, s.labels[i])
		}
	}
	return hit
}

// ScanColumn tests the given column of every row. It returns one
// CategoryHits per label and the mask of rows hitting any category.
func (s *Scanner) ScanColumn(t *models.Table, col models.ColumnRef) ([]models.CategoryHits, []bool) {
	n := t.Len()
	hits := make([]models.CategoryHits, len(s.labels))
	for i, label := range s.labels {
		hits[i] = models.CategoryHits{Label: label, Mask: make([]bool, n)}
	}
	anyHit := make([]bool, n)

	for row := 0; row < n; row++ {
		text := t.Text(row, col.Index)
		if text == "" {
			continue
		}
		for i, re := range s.patterns {
			if re != nil && re.MatchString(text) {
				hits[i].Mask[row] = true
				hits[i].Rows++
				anyHit[row] = true
			}
		}
	}
	return hits, anyHit
}

// ScanKeywords compiles lex and scans one column of t.
func ScanKeywords(t *models.Table, col models.ColumnRef, lex lexicon.Lexicon) ([]models.CategoryHits, []bool) {
	return NewScanner(lex).ScanColumn(t, col)
}

// CountMask returns the number of set entries in mask.
func CountMask(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
