// Package error defines the error values shared by the presence and rsf
// packages.
package error

import "fmt"

// PresenceError wraps a lower-level cause with enough context to produce a
// useful diagnostic: the option being processed, when known, and the input
// text that triggered the failure.
type PresenceError struct {
	Cause  error
	Option string
	Input  string
}

func (e *PresenceError) Error() string {
	switch {
	case e.Option != "" && e.Input != "":
		return fmt.Sprintf("%s: %v: %q", e.Option, e.Cause, e.Input)
	case e.Option != "":
		return fmt.Sprintf("%s: %v", e.Option, e.Cause)
	case e.Input != "":
		return fmt.Sprintf("%v: %q", e.Cause, e.Input)
	default:
		return e.Cause.Error()
	}
}

func (e *PresenceError) Unwrap() error {
	return e.Cause
}

// PresenceErrors collects more than one PresenceError, e.g. when a batch
// operation over many options keeps going after an individual failure.
type PresenceErrors []*PresenceError

func (es PresenceErrors) Error() string {
	switch len(es) {
	case 0:
		return "no errors"
	case 1:
		return es[0].Error()
	default:
		return fmt.Sprintf("%v (and %d more errors)", es[0], len(es)-1)
	}
}
