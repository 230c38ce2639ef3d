// Package errorkit holds the small error toolkit shared by the cursor adapters.
package errorkit

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a string based error kind that can be declared as a constant.
//
//	const ErrParse errorkit.Error = "ErrParse"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches cause to the error kind.
// Both of them remain reachable with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &kindError{kind: err, cause: cause}
}

// F wraps a formatted cause.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type kindError struct {
	kind  Error
	cause error
}

func (e *kindError) Error() string {
	return "[" + string(e.kind) + "] " + e.cause.Error()
}

func (e *kindError) Is(target error) bool {
	return e.kind == target || errors.Is(e.cause, target)
}

func (e *kindError) As(target any) bool {
	if kind, ok := target.(*Error); ok {
		*kind = e.kind
		return true
	}
	return errors.As(e.cause, target)
}

func (e *kindError) Unwrap() error { return e.cause }

// Finish merges the result of blk into the error a function is about to return.
// It is meant to be deferred:
//
//	defer errorkit.Finish(&returnErr, src.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// Merge combines the non nil errors into one.
// It returns nil when there is none, and the error itself when there is only one.
func Merge(errs ...error) error {
	var present []error
	for _, err := range errs {
		if err != nil {
			present = append(present, err)
		}
	}
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	default:
		return multiError(present)
	}
}

type multiError []error

func (errs multiError) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (errs multiError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

func (errs multiError) Unwrap() []error { return errs }
