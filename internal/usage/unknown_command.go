package usage

import "fmt"

func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("Invalid command \"%s\".\nType \"help\" for a list of commands.", command),
	}
}
