package investidata

import (
	"errors"
	"fmt"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnreadableInput indicates the input cannot be parsed as a workbook.
// It is the only error that stops an analysis.
var ErrUnreadableInput = errors.New("unreadable workbook")

// ErrNotFound is matched by MissingCategoryError and MissingFieldError.
var ErrNotFound = models.ErrNotFound

// MissingCategoryError indicates no worksheet was classified into a category.
type MissingCategoryError = models.MissingCategoryError

// MissingFieldError indicates no column was classified into a role.
type MissingFieldError = models.MissingFieldError

// UnreadableInputError reports why a workbook could not be opened.
type UnreadableInputError struct {
	Path string
	Err  error
}

func (e *UnreadableInputError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrUnreadableInput, e.Err)
}

func (e *UnreadableInputError) Unwrap() []error {
	return []error{ErrUnreadableInput, e.Err}
}

// ExtractionError represents a non-fatal error while reading one sheet.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "header"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
