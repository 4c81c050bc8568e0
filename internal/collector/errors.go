package collector

import (
	"errors"
	"fmt"
)

var (
	ErrSectionIncomplete = errors.New("current section is incomplete")
	ErrFormIncomplete    = errors.New("form is incomplete")
	ErrNoPreviousSection = errors.New("already on the first section")
	ErrNoNextSection     = errors.New("already on the last section")
	ErrBusy              = errors.New("submission already in progress")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidDraft      = errors.New("invalid draft")
)

// IncompleteError lists the 1-based sections that block submission.
type IncompleteError struct {
	Sections []int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: sections %v", ErrFormIncomplete, e.Sections)
}

func (e *IncompleteError) Unwrap() error {
	return ErrFormIncomplete
}
