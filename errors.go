package calldata

import (
	"fmt"
)

/*
Error types returned by this package. Functions return them wrapped with a
stack trace via "github.com/pkg/errors"; use "errors.As" or "errors.Cause" to
get at the value:

	var mismatch calldata.ErrTypeMismatch
	if errors.As(err, &mismatch) {
		...
	}

None of these conditions is transient. Retrying with the same input yields the
same error.
*/

// The interface description couldn't be read from its source.
type ErrResourceUnavailable struct {
	Path  string
	Cause error
}

// Implements "error".
func (self ErrResourceUnavailable) Error() string {
	return fmt.Sprintf(`ABI definition %q is unavailable: %v`, self.Path, self.Cause)
}

// Supports "errors.Is" and "errors.As" on the underlying I/O error.
func (self ErrResourceUnavailable) Unwrap() error { return self.Cause }

/*
The interface description has the wrong shape: invalid JSON, not an array,
or a function parameter without a string "type".
*/
type ErrMalformedDescription struct {
	Function string // "" when the whole document is malformed
	Position int    // parameter index; -1 when not about a parameter
	Reason   string
}

// Implements "error".
func (self ErrMalformedDescription) Error() string {
	if self.Function == "" {
		return fmt.Sprintf(`malformed ABI definition: %v`, self.Reason)
	}
	if self.Position < 0 {
		return fmt.Sprintf(`malformed ABI definition of function %v: %v`, self.Function, self.Reason)
	}
	return fmt.Sprintf(`malformed ABI definition of function %v, parameter %v: %v`,
		self.Function, self.Position, self.Reason)
}

// No function with this name exists in the interface description.
type ErrFunctionNotFound struct {
	Name string
}

// Implements "error".
func (self ErrFunctionNotFound) Error() string {
	return fmt.Sprintf(`function %v not found in ABI definition`, self.Name)
}

/*
An argument's type differs from the declared parameter type at the same
position. Only the first mismatch is reported.
*/
type ErrTypeMismatch struct {
	Function string
	Expected string
	Found    string
	Position int
}

// Implements "error".
func (self ErrTypeMismatch) Error() string {
	return fmt.Sprintf(`type mismatch in function %v, argument %v: expected %q, found %q`,
		self.Function, self.Position, self.Expected, self.Found)
}

/*
The argument count differs from the declared parameter count. Only returned by
the strict encoding variants.
*/
type ErrArityMismatch struct {
	Function string
	Expected int
	Found    int
}

// Implements "error".
func (self ErrArityMismatch) Error() string {
	return fmt.Sprintf(`arity mismatch in function %v: expected %v arguments, got %v`,
		self.Function, self.Expected, self.Found)
}

// A byte slice is too wide for the fixed-size type it's converted into.
type ErrOversizedInput struct {
	Kind AbiKind
	Len  int
}

// Implements "error".
func (self ErrOversizedInput) Error() string {
	return fmt.Sprintf(`input of %v bytes doesn't fit into %v (%v bytes)`,
		self.Len, self.Kind.AbiType(), self.Kind.Size())
}
