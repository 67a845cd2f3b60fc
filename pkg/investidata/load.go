package investidata

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/ukaji3/investidata-go/pkg/investidata/parser"
	"github.com/xuri/excelize/v2"
)

// Load opens a workbook and materializes every readable sheet.
// Only an unopenable file is an error; unreadable sheets become warnings.
func Load(path string, opts Options) (*models.Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &UnreadableInputError{Path: path, Err: ErrFileNotFound}
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &UnreadableInputError{Path: path, Err: err}
	}
	defer f.Close()

	return readWorkbook(f, filepath.Base(path), opts), nil
}

// LoadReader is Load for an uploaded stream; name labels the workbook.
func LoadReader(r io.Reader, name string, opts Options) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &UnreadableInputError{Path: name, Err: err}
	}
	defer f.Close()

	return readWorkbook(f, name, opts), nil
}

func readWorkbook(f *excelize.File, bookName string, opts Options) *models.Workbook {
	wb := &models.Workbook{
		BookName: bookName,
		Sheets:   make(map[string]*models.Table),
	}

	// Get sheet names
	wb.SheetNames = f.GetSheetList()
	params := opts.headerParams()

	for _, sheetName := range wb.SheetNames {
		table, err := parser.ExtractTable(f, sheetName, params)
		if err != nil {
			xerr := NewExtractionError(sheetName, "cells", err)
			slog.Warn("sheet skipped", "book", bookName, "sheet", sheetName, "error", err)
			wb.Warnings = append(wb.Warnings, xerr.Error())
			continue
		}
		slog.Debug("sheet loaded", "sheet", sheetName, "header_row", table.HeaderRow, "rows", table.Len(), "range", table.Range)
		wb.Sheets[sheetName] = table
	}
	return wb
}
