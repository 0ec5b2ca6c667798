package usage

// HandlerFailure wraps the error returned by a handler. The message is the
// handler's own, so callers print what the handler reported.
func HandlerFailure(cause error) *Error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Kind:    ErrHandlerFailure,
		Message: msg,
		Cause:   cause,
	}
}
