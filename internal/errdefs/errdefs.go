//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package errdefs defines the error taxonomy shared by the pipeline stages.
// Typed errors wrap package sentinels so callers can classify failures with
// errors.Is without losing per-failure context.
package errdefs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline error classes.
var (
	// ErrSchema indicates a required column or type is missing, or a rule
	// set rejected an entire non-empty input.
	ErrSchema = errors.New("schema mismatch")

	// ErrIntegrity indicates a uniqueness or referential violation.
	ErrIntegrity = errors.New("integrity violation")

	// ErrInputMissing indicates an expected raw or prepared table is absent.
	ErrInputMissing = errors.New("input missing")

	// ErrNotFound indicates an unknown dimension or attribute name in a
	// cube query.
	ErrNotFound = errors.New("not found")
)

// SchemaError reports a dataset whose declared schema cannot be satisfied.
type SchemaError struct {
	Dataset string
	Column  string
	Detail  string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("dataset %s: column %q: %s", e.Dataset, e.Column, e.Detail)
	}
	return fmt.Sprintf("dataset %s: %s", e.Dataset, e.Detail)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// NewSchemaError creates a SchemaError for the given dataset and column.
// Column may be empty when the failure is not tied to a single column.
func NewSchemaError(dataset, column, detail string) error {
	return &SchemaError{Dataset: dataset, Column: column, Detail: detail}
}

// IntegrityError reports a uniqueness or referential failure in the
// warehouse.
type IntegrityError struct {
	Table  string
	Key    string
	Detail string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("table %s: key %s: %s", e.Table, e.Key, e.Detail)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }

// NewIntegrityError creates an IntegrityError for the given table and key.
func NewIntegrityError(table, key, detail string) error {
	return &IntegrityError{Table: table, Key: key, Detail: detail}
}

// InputMissingError reports an absent raw or prepared table.
type InputMissingError struct {
	Dataset string
	Path    string
}

func (e *InputMissingError) Error() string {
	return fmt.Sprintf("dataset %s: input %s does not exist", e.Dataset, e.Path)
}

func (e *InputMissingError) Unwrap() error { return ErrInputMissing }

// NewInputMissingError creates an InputMissingError for the given dataset.
func NewInputMissingError(dataset, path string) error {
	return &InputMissingError{Dataset: dataset, Path: path}
}

// NotFoundError reports an unknown name in a cube query.
type NotFoundError struct {
	Kind string // "dimension", "measure", "attribute"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given kind and name.
func NewNotFoundError(kind, name string) error {
	return &NotFoundError{Kind: kind, Name: name}
}

// IsSchema reports whether err is a schema error.
func IsSchema(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsIntegrity reports whether err is an integrity error.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsInputMissing reports whether err is a missing-input error.
func IsInputMissing(err error) bool {
	return errors.Is(err, ErrInputMissing)
}

// IsNotFound reports whether err is an unknown-name error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
