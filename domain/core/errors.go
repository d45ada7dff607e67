package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors: the source could not be turned into a dataset
	ErrLoad        = errors.New("dataset load failed")
	ErrNotTabular  = fmt.Errorf("%w: source is not tabular", ErrLoad)
	ErrEmptySource = fmt.Errorf("%w: source has no header row", ErrLoad)

	// Query errors: an operation explicitly required a field the dataset lacks.
	// Filter predicates never produce this; they skip absent fields instead.
	ErrFieldMissing = errors.New("field missing from dataset")

	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrFilterNotFound = fmt.Errorf("%w: saved filter", ErrNotFound)
)

// Error constructors with context
func NewLoadError(source string, cause error) error {
	return fmt.Errorf("%w: source %s: %v", ErrLoad, source, cause)
}

func NewFieldMissingError(operation, field string) error {
	return fmt.Errorf("%w: %s requires field %q", ErrFieldMissing, operation, field)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoad)
}

func IsFieldMissing(err error) bool {
	return errors.Is(err, ErrFieldMissing)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
