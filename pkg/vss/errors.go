package vss

import (
	"fmt"

	"github.com/luxfi/vss/pkg/errs"
)

// SplitError wraps an errs.Error with the split state at which it occurred,
// so a caller (or the CLI's --verbose flag) can report which phase failed
// without the taxonomy itself needing a state field (spec §4.7a).
type SplitError struct {
	State SplitState
	Err   *errs.Error
}

func newSplitError(state SplitState, op string, kind errs.Kind, cause error) *SplitError {
	return &SplitError{State: state, Err: errs.New(op, kind, cause)}
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("%s [state=%s]", e.Err.Error(), e.State)
}

func (e *SplitError) Unwrap() error { return e.Err }

// CombineError wraps an errs.Error with the combine state at which it
// occurred.
type CombineError struct {
	State CombineState
	Err   *errs.Error
}

func newCombineError(state CombineState, op string, kind errs.Kind, cause error) *CombineError {
	return &CombineError{State: state, Err: errs.New(op, kind, cause)}
}

func (e *CombineError) Error() string {
	return fmt.Sprintf("%s [state=%s]", e.Err.Error(), e.State)
}

func (e *CombineError) Unwrap() error { return e.Err }
