// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import "github.com/pkg/errors"

// Sentinel errors surfaced to callers of this package's public API. They
// sit above the lower-level per-Diagram error record kept in errors.go
// (seterror/Error/Errored); no Diagram operation in this package writes to
// that record.
var (
	// ErrFormulaUnsolvable is returned by Solve when the Diagram has
	// reduced to pure-false: the formula has no model.
	ErrFormulaUnsolvable = errors.New("formula is unsolvable")

	// ErrInsufficientAssignment is returned when a sampled clause
	// cannot be decided from the current assignment.
	ErrInsufficientAssignment = errors.New("insufficient assignment to decide clause")

	// ErrInvalidModel is returned when the CDCL solver reports an
	// undefined value for a variable in a supposedly SAT result.
	ErrInvalidModel = errors.New("invalid model: undefined variable value")

	// ErrCancelled is returned when a cancel signal fired before an
	// operation produced a result.
	ErrCancelled = errors.New("operation cancelled")
)

// wrap attaches context to one of the sentinel errors above without
// losing errors.Is/errors.Cause compatibility.
func wrap(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
