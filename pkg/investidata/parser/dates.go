package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/xuri/excelize/v2"
)

// Built-in number formats that display a date or time.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// dateCells converts date-formatted numeric cells of one sheet.
type dateCells struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newDateCells(f *excelize.File, sheet string) *dateCells {
	d := &dateCells{f: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// apply replaces every cell of t whose raw value is a serial number shown
// through a date format. raw holds the unformatted sheet rows.
func (d *dateCells) apply(t *models.Table, raw [][]string) {
	for i := range t.Rows {
		row := &t.Rows[i]
		r := row.R - 1
		if r < 0 || r >= len(raw) {
			continue
		}
		for col, v := range row.Cells {
			if v == nil || col >= len(raw[r]) {
				continue
			}
			rawValue := raw[r][col]
			// Unformatted cells read the same both ways.
			if rawValue == "" || rawValue == models.CellString(v) {
				continue
			}
			serial, err := strconv.ParseFloat(rawValue, 64)
			if err != nil || !d.isDate(col+1, row.R) {
				continue
			}
			ts, err := excelize.ExcelDateToTime(serial, d.date1904)
			if err != nil {
				continue
			}
			row.Cells[col] = ts.Round(time.Millisecond)
		}
	}
}

func (d *dateCells) isDate(col, row int) bool {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	id, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil {
		return false
	}
	if known, ok := d.styles[id]; ok {
		return known
	}
	isDate := false
	if style, err := d.f.GetStyle(id); err == nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormat(*style.CustomNumFmt)
		} else {
			isDate = builtinDateFormats[style.NumFmt]
		}
	}
	d.styles[id] = isDate
	return isDate
}

// IsDateFormat reports whether a custom number format code displays a
// date or time. Quoted literals and bracketed sections are ignored.
func IsDateFormat(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ydh")
}
