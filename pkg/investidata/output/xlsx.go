package output

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// WriteRowsXLSX saves the header of t and the rows selected by mask as a
// one-sheet workbook at path. A nil mask selects every row.
func WriteRowsXLSX(path string, t *models.Table, mask []bool) error {
	f, err := buildRowsFile(t, mask)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// WriteRowsXLSXTo is WriteRowsXLSX for a stream.
func WriteRowsXLSXTo(w io.Writer, t *models.Table, mask []bool) error {
	f, err := buildRowsFile(t, mask)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

func buildRowsFile(t *models.Table, mask []bool) (*excelize.File, error) {
	f := excelize.NewFile()
	if t == nil {
		return f, nil
	}
	sheet := SheetName(t.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	for col, label := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			f.Close()
			return nil, err
		}
	}
	if len(t.Columns) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			f.Close()
			return nil, err
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			f.Close()
			return nil, err
		}
	}

	// Cells keep their parsed type so numbers stay numbers.
	for out, i := range selectRows(t, mask) {
		for col := range t.Columns {
			v := t.Get(i, col)
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, out+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

// SheetName makes name acceptable as an Excel sheet name: forbidden
// characters become "_" and the result is cut to 31 characters.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.Trim(strings.TrimSpace(name), "'"))
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	if name == "" {
		return "Sheet1"
	}
	return name
}
