package facts

import "github.com/ukaji3/investidata-go/pkg/investidata/models"

// newTable builds a table whose header sits on row 1.
func newTable(name string, columns []string, rows ...[]any) *models.Table {
	t := &models.Table{Name: name, HeaderRow: 1, Columns: columns}
	for i, cells := range rows {
		t.Rows = append(t.Rows, models.Row{R: i + 2, Cells: cells})
	}
	return t
}

func ref(t *models.Table, label string) models.ColumnRef {
	for i, c := range t.Columns {
		if c == label {
			return models.ColumnRef{Index: i, Label: c}
		}
	}
	panic("no column " + label)
}
