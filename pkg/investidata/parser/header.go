package parser

// HeaderParams holds parameters for header row detection.
type HeaderParams struct {
	// CoverageMin is the share of the data width a header must fill.
	CoverageMin float64
	// MinNonemptyCells is the least number of labels a header carries.
	MinNonemptyCells int
	// ScanRows bounds how far below the first data row the header is sought.
	ScanRows int
}

// DefaultHeaderParams returns default header detection parameters.
func DefaultHeaderParams() HeaderParams {
	return HeaderParams{
		CoverageMin:      0.5,
		MinNonemptyCells: 2,
		ScanRows:         20,
	}
}

// DetectHeaderRow returns the 0-based index of the header row: the first
// row whose labels cover CoverageMin of the data width. Forensic exports
// often carry a title block above the table, which this skips. When no
// row qualifies the first non-empty row is used; -1 means no data.
func DetectHeaderRow(rows [][]string, params HeaderParams) int {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return -1
	}
	width := maxCol - minCol + 1
	need := params.MinNonemptyCells
	if need > width {
		need = width
	}

	last := maxRow
	if params.ScanRows > 0 && minRow+params.ScanRows-1 < last {
		last = minRow + params.ScanRows - 1
	}
	for rowIdx := minRow; rowIdx <= last; rowIdx++ {
		count := countNonEmptyCells(rows, rowIdx, rowIdx, minCol, maxCol)
		if count < need {
			continue
		}
		if float64(count)/float64(width) >= params.CoverageMin {
			return rowIdx
		}
	}
	return minRow
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
