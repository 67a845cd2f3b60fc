package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// WriteRowsCSV writes the header of t and the rows selected by mask.
// A nil mask selects every row.
func WriteRowsCSV(w io.Writer, t *models.Table, mask []bool) error {
	cw := csv.NewWriter(w)
	if t == nil {
		cw.Flush()
		return cw.Error()
	}
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, i := range selectRows(t, mask) {
		record := make([]string, len(t.Columns))
		for col := range record {
			record[col] = t.Text(i, col)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// selectRows returns the indexes of the rows of t set in mask.
func selectRows(t *models.Table, mask []bool) []int {
	var out []int
	for i := 0; i < t.Len(); i++ {
		if mask == nil || (i < len(mask) && mask[i]) {
			out = append(out, i)
		}
	}
	return out
}
