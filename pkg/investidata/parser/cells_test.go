package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractTable(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Title block above the header, as UFED reports do
	f.SetCellValue(sheetName, "A1", "Reporte de extracción")
	f.SetCellValue(sheetName, "A3", "Fecha")
	f.SetCellValue(sheetName, "B3", "Remitente")
	f.SetCellValue(sheetName, "C3", "Cuerpo")
	f.SetCellValue(sheetName, "A4", "12/03/2023 14:22")
	f.SetCellValue(sheetName, "B4", "+573001112233")
	f.SetCellValue(sheetName, "C4", "hola")
	f.SetCellValue(sheetName, "B6", 3112528641)
	f.SetCellValue(sheetName, "C6", 200.5)

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and extract
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := ExtractTable(f2, sheetName, DefaultHeaderParams())
	if err != nil {
		t.Fatalf("ExtractTable failed: %v", err)
	}

	if table.HeaderRow != 3 {
		t.Errorf("Expected header on row 3, got %d", table.HeaderRow)
	}
	if table.Range != "A1:C6" {
		t.Errorf("Expected range A1:C6, got %q", table.Range)
	}
	expectedCols := []string{"Fecha", "Remitente", "Cuerpo"}
	if len(table.Columns) != len(expectedCols) {
		t.Fatalf("Expected %d columns, got %v", len(expectedCols), table.Columns)
	}
	for i, c := range expectedCols {
		if table.Columns[i] != c {
			t.Errorf("Column %d = %q, expected %q", i, table.Columns[i], c)
		}
	}

	// Empty row 5 is dropped
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].R != 4 || table.Rows[1].R != 6 {
		t.Errorf("Expected sheet rows 4 and 6, got %d and %d", table.Rows[0].R, table.Rows[1].R)
	}
	if table.Rows[0].Cells[1] != "+573001112233" {
		t.Errorf("Expected phone kept as text, got %v (type: %T)", table.Rows[0].Cells[1], table.Rows[0].Cells[1])
	}
	if table.Rows[1].Cells[0] != nil {
		t.Errorf("Expected nil for empty cell, got %v", table.Rows[1].Cells[0])
	}
	if table.Rows[1].Cells[1] != int64(3112528641) {
		t.Errorf("Expected int64(3112528641), got %v (type: %T)", table.Rows[1].Cells[1], table.Rows[1].Cells[1])
	}
	if table.Rows[1].Cells[2] != 200.5 {
		t.Errorf("Expected 200.5, got %v", table.Rows[1].Cells[2])
	}
}

func TestExtractTableMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractTable(f, "Nope", DefaultHeaderParams()); err == nil {
		t.Error("Expected an error for a missing sheet")
	}
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable("Vacía", nil, DefaultHeaderParams())
	if table.Len() != 0 || len(table.Columns) != 0 || table.HeaderRow != 0 {
		t.Errorf("Expected empty table, got %+v", table)
	}
}

func TestBuildTableBlankLabels(t *testing.T) {
	rows := [][]string{
		{"Nombre", "", "Número"},
		{"Ana", "x", "3001112233"},
	}
	table := BuildTable("Contactos", rows, DefaultHeaderParams())
	if table.Columns[1] != "Column2" {
		t.Errorf("Expected placeholder label, got %q", table.Columns[1])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"0", int64(0)},
		{"0.5", 0.5},
		{"+573001112233", "+573001112233"},
		{"03001112233", "03001112233"},
		{"3569380356438091", "3569380356438091"},
		{"356938035643809", int64(356938035643809)},
		{" 42", " 42"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
