// Package facts extracts structured facts from forensic tables with
// regular expressions and simple counting heuristics.
package facts

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// Flatten returns the canonical text of a table: header excluded, rows in
// order, the non-empty cells of a row joined by models.CellSeparator in
// column order, rows joined by a newline.
func Flatten(t *models.Table) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for i := range t.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.RowText(i))
	}
	return b.String()
}

// FlattenColumns is Flatten restricted to the given columns.
func FlattenColumns(t *models.Table, cols []models.ColumnRef) string {
	if t == nil || len(cols) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range t.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		first := true
		for _, c := range cols {
			s := t.Text(i, c.Index)
			if s == "" {
				continue
			}
			if !first {
				b.WriteString(models.CellSeparator)
			}
			b.WriteString(s)
			first = false
		}
	}
	return b.String()
}

var (
	phoneRE     = regexp.MustCompile(`\+?\d(?:(?:\)[ .\-]?|[ .\-]?\(?)\d){6,14}`)
	dateLikeRE  = regexp.MustCompile(`^(?:\d{4}[-.]\d{1,2}[-.]\d{1,2}|\d{1,2}[-.]\d{1,2}[-.](?:\d{4}|\d{2}))(?:[ T]\d{1,2})?$`)
	emailRE     = regexp.MustCompile(`(?i)[\w.+-]+@[\w-]+(?:\.[\w-]+)*\.[a-z]{2,}`)
	imeiRE      = regexp.MustCompile(`\d{15}`)
	properRE    = regexp.MustCompile(`\p{Lu}\p{Ll}{2,}`)
	wordRE      = regexp.MustCompile(`\p{L}{3,}`)
	nonDigitsRE = regexp.MustCompile(`[^\d]`)
)

// Phones returns the sorted set of phone-like numbers in text. A candidate
// is a run of 7 to 15 digits, optionally led by '+'. Digits may be split
// by one space, dot or hyphen, and area codes may sit in parentheses, as
// in "+57 (311) 252 8641". Candidates glued to more digits are rejected,
// and so are candidates that are entirely a date, optionally followed by
// the hour ("2023-03-12 14"). Numbers are normalized to the optional '+'
// followed by digits.
func Phones(text string) []string {
	return sortedSet(phoneMatches(text))
}

func phoneMatches(text string) []string {
	var out []string
	for _, loc := range phoneRE.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isDigitAt(text, start-1) {
			continue
		}
		if end < len(text) && isDigitAt(text, end) {
			continue
		}
		raw := text[start:end]
		if dateLikeRE.MatchString(strings.TrimPrefix(raw, "+")) {
			continue
		}
		digits := nonDigitsRE.ReplaceAllString(raw, "")
		if len(digits) < 7 || len(digits) > 15 {
			continue
		}
		if strings.HasPrefix(raw, "+") {
			digits = "+" + digits
		}
		out = append(out, digits)
	}
	return out
}

// Emails returns the e-mail addresses in text, de-duplicated without
// regard to case and sorted. The first spelling seen is kept.
func Emails(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range emailRE.FindAllString(text, -1) {
		m = strings.Trim(m, ".")
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// IMEI returns the first standalone run of exactly 15 digits in text.
// When several candidates exist the first one wins.
func IMEI(text string) string {
	for _, loc := range imeiRE.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && isDigitAt(text, loc[0]-1) {
			continue
		}
		if loc[1] < len(text) && isDigitAt(text, loc[1]) {
			continue
		}
		return text[loc[0]:loc[1]]
	}
	return ""
}

// ProperNouns returns capitalized tokens of at least three letters
// (accented Latin letters included) that do not start mid-word.
func ProperNouns(text string) []string {
	var out []string
	for _, loc := range properRE.FindAllStringIndex(text, -1) {
		if loc[0] > 0 {
			r, _ := utf8.DecodeLastRuneInString(text[:loc[0]])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				continue
			}
		}
		out = append(out, text[loc[0]:loc[1]])
	}
	return out
}

// Words returns the lower-cased words of at least three letters in text,
// minus the stopwords.
func Words(text string, stopwords []string) []string {
	stop := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		stop[strings.ToLower(w)] = true
	}
	var out []string
	for _, w := range wordRE.FindAllString(text, -1) {
		w = strings.ToLower(w)
		if stop[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

func isDigitAt(s string, i int) bool {
	return s[i] >= '0' && s[i] <= '9'
}

func sortedSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
