// Package lexicon holds the keyword tables that drive classification and alerting.
package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"gopkg.in/yaml.v3"
)

// SheetTable maps a category to the ordered keywords identifying its sheet.
type SheetTable map[models.Category][]string

// RoleTable maps a role to the ordered keywords identifying its column.
type RoleTable map[models.Role][]string

// Lexicon maps an alert category label to its trigger terms.
type Lexicon map[string][]string

// Labels returns the alert labels in sorted order.
func (l Lexicon) Labels() []string {
	labels := make([]string, 0, len(l))
	for label := range l {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Terms returns every term of every category, in label order.
func (l Lexicon) Terms() []string {
	var terms []string
	for _, label := range l.Labels() {
		terms = append(terms, l[label]...)
	}
	return terms
}

// Tables bundles every keyword table used by an analysis.
// Tables are read-only once loaded and safe to share between analyses.
type Tables struct {
	// Sheets classifies worksheets into categories.
	Sheets SheetTable `yaml:"sheets"`
	// Columns classifies columns into roles, per category.
	Columns map[models.Category]RoleTable `yaml:"columns"`
	// Alerts is the keyword lexicon scanned in message bodies.
	Alerts Lexicon `yaml:"alerts"`
	// SuspiciousApps flags installed applications by name or path.
	SuspiciousApps []string `yaml:"suspicious_apps"`
	// AppTextColumns selects the app columns scanned for suspicious terms.
	AppTextColumns []string `yaml:"app_text_columns"`
	// Stopwords are excluded from the word frequency table.
	Stopwords []string `yaml:"stopwords"`
	// DateLayouts are tried, in order, before the generic date parser.
	DateLayouts []string `yaml:"date_layouts"`
}

// Roles returns the role table for category c, or nil.
func (t Tables) Roles(c models.Category) RoleTable {
	return t.Columns[c]
}

// ErrInvalidTables indicates a tables file that does not describe keyword tables.
var ErrInvalidTables = errors.New("invalid keyword tables")

// Load reads a YAML tables file and merges it over Default.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables %s: %w", path, err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML tables from r and merges them over Default.
// Keys present in the input replace the default entry wholesale.
func Parse(r io.Reader) (Tables, error) {
	var override Tables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&override); err != nil && !errors.Is(err, io.EOF) {
		return Tables{}, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	for c := range override.Sheets {
		if !c.Valid() {
			return Tables{}, fmt.Errorf("%w: unknown category %q", ErrInvalidTables, c)
		}
	}
	for c := range override.Columns {
		if !c.Valid() {
			return Tables{}, fmt.Errorf("%w: unknown category %q", ErrInvalidTables, c)
		}
	}
	return Merge(Default(), override), nil
}

// Merge returns base with every non-empty entry of override applied.
func Merge(base, override Tables) Tables {
	out := base.clone()
	for c, kws := range override.Sheets {
		out.Sheets[c] = append([]string(nil), kws...)
	}
	for c, roles := range override.Columns {
		if out.Columns[c] == nil {
			out.Columns[c] = RoleTable{}
		}
		for r, kws := range roles {
			out.Columns[c][r] = append([]string(nil), kws...)
		}
	}
	for label, terms := range override.Alerts {
		out.Alerts[label] = append([]string(nil), terms...)
	}
	if len(override.SuspiciousApps) > 0 {
		out.SuspiciousApps = append([]string(nil), override.SuspiciousApps...)
	}
	if len(override.AppTextColumns) > 0 {
		out.AppTextColumns = append([]string(nil), override.AppTextColumns...)
	}
	if len(override.Stopwords) > 0 {
		out.Stopwords = append([]string(nil), override.Stopwords...)
	}
	if len(override.DateLayouts) > 0 {
		out.DateLayouts = append([]string(nil), override.DateLayouts...)
	}
	return out
}

// Marshal encodes t as YAML.
func Marshal(t Tables) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t Tables) clone() Tables {
	out := Tables{
		Sheets:         SheetTable{},
		Columns:        map[models.Category]RoleTable{},
		Alerts:         Lexicon{},
		SuspiciousApps: append([]string(nil), t.SuspiciousApps...),
		AppTextColumns: append([]string(nil), t.AppTextColumns...),
		Stopwords:      append([]string(nil), t.Stopwords...),
		DateLayouts:    append([]string(nil), t.DateLayouts...),
	}
	for c, kws := range t.Sheets {
		out.Sheets[c] = append([]string(nil), kws...)
	}
	for c, roles := range t.Columns {
		rt := RoleTable{}
		for r, kws := range roles {
			rt[r] = append([]string(nil), kws...)
		}
		out.Columns[c] = rt
	}
	for label, terms := range t.Alerts {
		out.Alerts[label] = append([]string(nil), terms...)
	}
	return out
}
