package usage

import "fmt"

// InvalidArgument is returned when a command identifier has more than one
// namespace separator.
func InvalidArgument(input string) *Error {
	return &Error{
		Kind:    ErrInvalidArgument,
		Message: fmt.Sprintf("Invalid input: %s. Valid format is \"[namespace.]command [arguments]\"", input),
	}
}
