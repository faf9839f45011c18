// Package errors holds the sentinel errors shared across packages and a small
// accumulator used by cleanup paths that must keep going after a failure.
package errors

import "errors"

// ErrPanicRecovery marks an error that was produced from a recovered panic.
var ErrPanicRecovery = errors.New("recovered from panic")

// Collection accumulates errors from a sequence of steps that should all run,
// such as releasing every element of a partially built array. It is not safe
// for concurrent use.
type Collection struct {
	errors []error
}

// Add records err. Nil errors are ignored, so results can be added unchecked.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len reports how many errors have been recorded.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if at least one error has been recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the error itself when there is
// exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Wrap returns GetError joined after cause. A nil cause with no recorded
// errors is nil; errors.Is(result, cause) holds whenever cause is non-nil.
func (c *Collection) Wrap(cause error) error {
	if cause == nil {
		return c.GetError()
	}

	if !c.HasError() {
		return cause
	}

	return errors.Join(append([]error{cause}, c.errors...)...)
}
