package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidArgument
	ErrUnknownCommand
	ErrHandlerFailure
	ErrMissingArgument
	ErrInvalidConfigKey
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrHandlerFailure:
		return "handler failure"
	case ErrMissingArgument:
		return "missing argument"
	case ErrInvalidConfigKey:
		return "invalid config key"
	default:
		return "unknown"
	}
}

// Error represents a user-facing error with semantic type information.
// None of the kinds are fatal: the shell reports them and keeps reading.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of the first *Error in err's chain,
// or ErrUnknown if there is none.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
