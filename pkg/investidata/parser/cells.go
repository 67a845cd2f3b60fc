// Package parser materializes workbook sheets into tables.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/xuri/excelize/v2"
)

// ExtractTable reads a sheet, detects its header row and returns the
// rows below it. Fully empty rows are dropped. A sheet without data
// yields a table with no columns. Cells with a date number format become
// time.Time values instead of their locale-formatted text.
func ExtractTable(f *excelize.File, sheetName string, params HeaderParams) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	t := BuildTable(sheetName, rows, params)
	newDateCells(f, sheetName).apply(t, raw)
	return t, nil
}

// BuildTable turns raw sheet rows into a table.
func BuildTable(sheetName string, rows [][]string, params HeaderParams) *models.Table {
	t := &models.Table{Name: sheetName}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return t
	}
	t.Range = rangeRef(minRow, maxRow, minCol, maxCol)

	header := DetectHeaderRow(rows, params)
	t.HeaderRow = header + 1
	width := maxCol + 1
	t.Columns = make([]string, width)
	for colIdx := 0; colIdx < width; colIdx++ {
		label := ""
		if colIdx < len(rows[header]) {
			label = strings.TrimSpace(rows[header][colIdx])
		}
		if label == "" {
			label = fmt.Sprintf("Column%d", colIdx+1)
		}
		t.Columns[colIdx] = label
	}

	for rowIdx := header + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]any, width)
		hasData := false
		for colIdx := 0; colIdx < width && colIdx < len(row); colIdx++ {
			if row[colIdx] == "" {
				continue
			}
			hasData = true
			cells[colIdx] = parseValue(row[colIdx])
		}
		if hasData {
			t.Rows = append(t.Rows, models.Row{R: rowIdx + 1, Cells: cells})
		}
	}
	return t
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Values a number would alter ("+57...", "0300...") stay strings.
func parseValue(s string) any {
	if keepAsText(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

func keepAsText(s string) bool {
	if s == "" || s[0] == '+' || strings.TrimSpace(s) != s {
		return true
	}
	digits := strings.TrimPrefix(s, "-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] != '.' {
		return true
	}
	// Beyond 15 significant digits a float loses precision.
	return len(digits) > 15
}

func rangeRef(minRow, maxRow, minCol, maxCol int) string {
	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}
