package services

import "errors"

// Sentinel errors shared by the service layer. Controllers map these to
// HTTP status codes with errors.Is.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a missing application, document, school or year.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate unique key, e.g. double registration.
	ErrConflict = errors.New("conflict")
	// ErrStateConflict marks an operation attempted outside its valid
	// state or submission window.
	ErrStateConflict = errors.New("state conflict")
)
