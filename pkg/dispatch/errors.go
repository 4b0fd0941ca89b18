// pkg/dispatch/errors.go
package dispatch

import (
	"errors"
	"fmt"
)

// Request-scoped failure causes. All of them abort a single dispatch and
// nothing else; none may leak into a later request or stop the process.
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrConversion       = errors.New("parameter conversion failed")
	ErrMethodMissing    = errors.New("handler method not defined")
	ErrConstruction     = errors.New("handler construction failed")
)

// BindError reports a declared parameter that could not be resolved to
// an argument value.
type BindError struct {
	Param string // declared parameter name
	Owner string // Target::Method that declared it
	Err   error  // ErrMissingParameter or ErrConversion with cause
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %q for %s: %v", e.Param, e.Owner, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// InvokeError reports a handler reference that could not be resolved or
// called.
type InvokeError struct {
	Owner string
	Err   error // ErrMethodMissing or ErrConstruction with cause
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("invoke %s: %v", e.Owner, e.Err)
}

func (e *InvokeError) Unwrap() error { return e.Err }
