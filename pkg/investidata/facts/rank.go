package facts

import (
	"sort"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// DefaultTopN is used when a non-positive top-N is requested.
const DefaultTopN = 10

// Rank counts values and returns the n most frequent, ordered by count
// descending then value ascending. Empty values are ignored.
func Rank(values []string, n int) []models.Count {
	if n <= 0 {
		n = DefaultTopN
	}
	counts := make(map[string]int)
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}
	ranked := make([]models.Count, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, models.Count{Value: v, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Value < ranked[j].Value
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
