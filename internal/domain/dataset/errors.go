// Package dataset holds the relational consistency rules for the four entity
// collections. Every operation takes a Dataset value and returns a new one;
// nothing here performs I/O.
package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrReferenceNotFound    = errors.New("reference not found")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrKeyChanged           = errors.New("key cannot change on update")
	ErrNotFound             = errors.New("not found")
)

// FieldError names the field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func missing(field string) error {
	return &FieldError{Field: field, Err: ErrMissingRequiredField}
}

func invalid(field string) error {
	return &FieldError{Field: field, Err: ErrInvalidField}
}

// KeyError carries the key that collided or did not resolve.
type KeyError struct {
	Collection string
	Key        string
	Err        error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Collection, e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }
