package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched by every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a field outside its declared range, enum or format.
type ValidationError struct {
	Entity string
	Field  string
	Rule   string
	Value  interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: value %v violates %q", e.Entity, e.Field, e.Value, e.Rule)
}

// UniqueConstraintViolation reports a duplicate unique key.
type UniqueConstraintViolation struct {
	Entity string
	Fields []string
}

func (e *UniqueConstraintViolation) Error() string {
	return fmt.Sprintf("%s: duplicate value for unique key (%s)", e.Entity, strings.Join(e.Fields, ", "))
}

// ReferentialIntegrityError reports a reference to a record that does not exist.
type ReferentialIntegrityError struct {
	Entity string
	Field  string
	RefID  uint
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s.%s: referenced record %d does not exist", e.Entity, e.Field, e.RefID)
}

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
