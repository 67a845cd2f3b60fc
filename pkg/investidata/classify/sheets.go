package classify

import (
	"strings"

	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// ClassifySheets maps each category of table to the first sheet name
// containing one of its keywords. Keywords are tried in order and, for
// each keyword, names in input order. Unmatched categories are absent.
func ClassifySheets(names []string, table lexicon.SheetTable, n Normalizer) models.CategoryMapping {
	result := make(models.CategoryMapping)
	if len(names) == 0 {
		return result
	}
	lowered := n.all(names)

	for category, keywords := range table {
		if name, ok := firstContaining(names, lowered, keywords, n); ok {
			result[category] = name
		}
	}
	return result
}

// firstContaining returns the first original name whose normalized form
// contains a keyword, honoring keyword order before name order.
func firstContaining(names, lowered, keywords []string, n Normalizer) (string, bool) {
	for _, kw := range keywords {
		kw = n.Normalize(kw)
		if kw == "" {
			continue
		}
		for i, low := range lowered {
			if strings.Contains(low, kw) {
				return names[i], true
			}
		}
	}
	return "", false
}
