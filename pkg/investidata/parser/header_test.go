package parser

import "testing"

func TestDetectHeaderRow(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected int
	}{
		{"no data", nil, -1},
		{"header first", [][]string{{"a", "b"}, {"1", "2"}}, 0},
		{"title block", [][]string{{"Reporte"}, {}, {"Fecha", "De", "Texto"}, {"x", "y", "z"}}, 2},
		{"single column", [][]string{{"Nombre"}, {"Ana"}}, 0},
		{"sparse fallback", [][]string{{"t", "", "", ""}, {"", "", "", "x"}}, 0},
	}

	for _, tt := range tests {
		if got := DetectHeaderRow(tt.rows, DefaultHeaderParams()); got != tt.expected {
			t.Errorf("%s: DetectHeaderRow = %d, expected %d", tt.name, got, tt.expected)
		}
	}
}

func TestDetectHeaderRowScanLimit(t *testing.T) {
	rows := [][]string{{"t"}, {""}, {""}, {"a", "b"}}
	params := DefaultHeaderParams()
	params.ScanRows = 2
	if got := DetectHeaderRow(rows, params); got != 0 {
		t.Errorf("DetectHeaderRow = %d, expected fallback to 0", got)
	}
}
