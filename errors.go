package rpcvalue

import "fmt"

// TypeMismatchError is returned by a typed accessor invoked on a Value whose
// kind does not match. Check the kind first, or errors.As and branch.
type TypeMismatchError struct {
	Want, Got Kind
}

// Error implements error.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value is %s, not %s", e.Got, e.Want)
}

// FrozenError is returned by an attempt to change the kind of a frozen Value.
// It is always a contract violation on the caller's side, never transient.
type FrozenError struct {
	Kind      Kind // current kind of the frozen Value
	Attempted Kind // kind the caller tried to change to
}

// Error implements error.
func (e *FrozenError) Error() string {
	return fmt.Sprintf("cannot change kind of frozen %s value to %s", e.Kind, e.Attempted)
}

// CoercionError is returned by a coercion that has no defined result for the
// Value's kind, e.g. the string form of an object.
type CoercionError struct {
	Kind Kind
	To   string
}

// Error implements error.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("no %s form of %s value", e.To, e.Kind)
}
