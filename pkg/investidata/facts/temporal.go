package facts

import (
	"sort"
	"time"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// nocturnalEnd is the exclusive upper hour of the nocturnal window [0,6).
const nocturnalEnd = 6

// weekdays orders heat cells Monday first.
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ParseDates parses one column without touching the table. The returned
// slice is indexed like t.Rows; ok[i] is false for unparseable cells.
func ParseDates(t *models.Table, col models.ColumnRef, p DateParser) (times []time.Time, ok []bool) {
	n := t.Len()
	times = make([]time.Time, n)
	ok = make([]bool, n)
	for i := 0; i < n; i++ {
		times[i], ok[i] = p.Parse(t.Get(i, col.Index))
	}
	return times, ok
}

// Bucket builds activity histograms from the date column of t.
// Unparseable or empty cells are counted as malformed and excluded.
func Bucket(t *models.Table, col models.ColumnRef, p DateParser) *models.Temporal {
	times, ok := ParseDates(t, col, p)
	out := &models.Temporal{Column: col}

	days := make(map[string]int)
	heat := make(map[time.Weekday]*[24]int)
	for i, ts := range times {
		if !ok[i] {
			out.Malformed++
			continue
		}
		out.Parsed++
		h := ts.Hour()
		out.ByHour[h]++
		if h < nocturnalEnd {
			out.Nocturnal++
		}
		days[ts.Format("2006-01-02")]++
		wd := ts.Weekday()
		if heat[wd] == nil {
			heat[wd] = new([24]int)
		}
		heat[wd][h]++
	}

	for day, c := range days {
		out.ByDay = append(out.ByDay, models.Count{Value: day, Count: c})
	}
	sort.Slice(out.ByDay, func(i, j int) bool { return out.ByDay[i].Value < out.ByDay[j].Value })

	for _, wd := range weekdays {
		hours := heat[wd]
		if hours == nil {
			continue
		}
		for h, c := range hours {
			if c > 0 {
				out.Heat = append(out.Heat, models.HeatCell{Weekday: wd.String(), Hour: h, Count: c})
			}
		}
	}
	return out
}

// Nocturnal counts the rows of t whose date falls in the hours [0,6).
func Nocturnal(t *models.Table, col models.ColumnRef, p DateParser) int {
	return Bucket(t, col, p).Nocturnal
}
