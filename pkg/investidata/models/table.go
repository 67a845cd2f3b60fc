package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Row represents one data row of a table.
type Row struct {
	// R is the sheet row index (1-based).
	R int `json:"r"`
	// Cells holds one value per column: string, int64, float64,
	// time.Time (Excel date cells) or nil.
	Cells []any `json:"c"`
}

// Table represents a worksheet as a header plus data rows.
type Table struct {
	// Name is the sheet name the table was read from.
	Name string `json:"name"`
	// HeaderRow is the sheet row holding the column labels (1-based).
	HeaderRow int `json:"header_row"`
	// Range is the used cell range of the sheet (e.g. "A1:D10").
	Range string `json:"range,omitempty"`
	// Columns holds the column labels in sheet order. Labels may repeat.
	Columns []string `json:"columns"`
	// Rows holds the data rows below the header.
	Rows []Row `json:"rows,omitempty"`
}

// Len returns the number of data rows. A nil table has none.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Get returns the value at data row i, column col, or nil when out of range.
func (t *Table) Get(i, col int) any {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return nil
	}
	cells := t.Rows[i].Cells
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}

// Text returns the display string of the value at data row i, column col.
func (t *Table) Text(i, col int) string {
	return CellString(t.Get(i, col))
}

// CellSeparator joins cell texts when a row is flattened. It is never a
// phone-number separator, so numbers in adjacent cells stay apart.
const CellSeparator = "\t"

// RowText joins the non-empty display strings of row i with CellSeparator.
func (t *Table) RowText(i int) string {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return ""
	}
	parts := make([]string, 0, len(t.Rows[i].Cells))
	for _, v := range t.Rows[i].Cells {
		if s := CellString(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, CellSeparator)
}

// CellString converts a cell value to its display string.
// Whole floats print without a fractional part so 3.112528641e+09 reads as digits.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		if x < 1e18 && x > -1e18 && x == math.Trunc(x) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
