package dispatchers

// Handler runs a command with its ordered arguments. A non-empty result is
// printed by the dispatcher.
type Handler func(args []string) (string, error)

// CommandSpec describes one command exposed by a namespace.
type CommandSpec struct {
	Name    string
	Summary string
	Usage   string
	Handler Handler
}
