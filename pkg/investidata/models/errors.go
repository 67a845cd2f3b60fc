package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every "not found / not available" error.
var ErrNotFound = errors.New("not available")

// MissingCategoryError indicates no worksheet was classified into a category.
type MissingCategoryError struct {
	Category Category
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("%s: sheet not found", e.Category)
}

func (e *MissingCategoryError) Unwrap() error {
	return ErrNotFound
}

// MissingFieldError indicates no column was classified into a role.
type MissingFieldError struct {
	SheetName string
	Role      Role
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: no %s column", e.SheetName, e.Role)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrNotFound
}

// Require returns the column mapped to r or a *MissingFieldError.
func (m FieldMapping) Require(r Role, sheetName string) (ColumnRef, error) {
	ref, ok := m[r]
	if !ok {
		return ColumnRef{}, &MissingFieldError{SheetName: sheetName, Role: r}
	}
	return ref, nil
}

// Unavailable describes an analysis step that was skipped.
type Unavailable struct {
	// Step names the skipped computation (e.g. "keywords", "temporal").
	Step string `json:"step"`
	// Reason is the user-facing explanation.
	Reason string `json:"reason"`
}

// NewUnavailable builds a note for a step skipped because of err.
func NewUnavailable(step string, err error) Unavailable {
	return Unavailable{Step: step, Reason: err.Error()}
}
