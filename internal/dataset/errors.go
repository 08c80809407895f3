package dataset

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is wrapped by a LoadError when a required column is absent.
var ErrMissingColumn = errors.New("missing required column")

// LoadError reports a dataset that could not be read: the file is missing or
// unreadable, or its schema does not carry the columns the analysis needs.
// It is always fatal to a run.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErrorf(source, format string, args ...any) error {
	return &LoadError{Source: source, Err: fmt.Errorf(format, args...)}
}
