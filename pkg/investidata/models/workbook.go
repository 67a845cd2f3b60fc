// Package models defines data structures for forensic workbook analysis.
package models

// Workbook represents a loaded workbook with one table per readable sheet.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists every sheet in workbook order, readable or not.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its materialized table.
	Sheets map[string]*Table `json:"-"`
	// Warnings records sheets that could not be read.
	Warnings []string `json:"warnings,omitempty"`
}

// Table returns the table for a sheet, or nil if it was not loaded.
func (wb *Workbook) Table(sheetName string) *Table {
	if wb == nil || wb.Sheets == nil {
		return nil
	}
	return wb.Sheets[sheetName]
}
