package classify

import (
	"strings"

	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// ClassifyColumns maps each role of table to a column label. For every
// keyword in order, an exact label match wins over a substring match; the
// first keyword with any match decides. Unmatched roles are absent.
func ClassifyColumns(columns []string, table lexicon.RoleTable, n Normalizer) models.FieldMapping {
	result := make(models.FieldMapping)
	if len(columns) == 0 {
		return result
	}
	lowered := n.all(columns)

	for role, keywords := range table {
		if idx := matchColumn(lowered, keywords, n); idx >= 0 {
			result[role] = models.ColumnRef{Index: idx, Label: columns[idx]}
		}
	}
	return result
}

func matchColumn(lowered, keywords []string, n Normalizer) int {
	for _, kw := range keywords {
		kw = n.Normalize(kw)
		if kw == "" {
			continue
		}
		for i, low := range lowered {
			if low == kw {
				return i
			}
		}
		for i, low := range lowered {
			if strings.Contains(low, kw) {
				return i
			}
		}
	}
	return -1
}

// ColumnsContaining returns every column whose label contains one of the
// keywords, in column order.
func ColumnsContaining(columns []string, keywords []string, n Normalizer) []models.ColumnRef {
	kws := n.all(keywords)
	var refs []models.ColumnRef
	for i, label := range columns {
		low := n.Normalize(label)
		for _, kw := range kws {
			if kw != "" && strings.Contains(low, kw) {
				refs = append(refs, models.ColumnRef{Index: i, Label: label})
				break
			}
		}
	}
	return refs
}
