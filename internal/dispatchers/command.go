package dispatchers

import (
	"strings"

	"github.com/footprint-tools/consoleapp/internal/usage"
)

// Command is one parsed input line: an optional namespace, a lowercased
// command name and the ordered arguments. It is not modified after Parse.
type Command struct {
	namespace string
	qualified bool
	name      string
	args      []string
}

// NewCommand builds a Command directly, bypassing tokenization.
func NewCommand(namespace, name string, args ...string) Command {
	return Command{
		namespace: namespace,
		qualified: namespace != "",
		name:      name,
		args:      append([]string(nil), args...),
	}
}

// Parse tokenizes input and builds a Command from it. The first token is the
// identifier, "[namespace.]command"; an identifier with more than one dot is
// rejected with an invalid argument error. Each argument that both starts and
// ends with a double quote has its surrounding quotes trimmed.
//
// A blank line parses to an empty command name, which no registry holds.
func Parse(input string) (Command, error) {
	tokens := Tokenize(input)

	var cmd Command
	cmd.name = strings.ToLower(tokens[0])

	if strings.Contains(cmd.name, ".") {
		pieces := strings.Split(cmd.name, ".")
		if len(pieces) > 2 {
			return Command{}, usage.InvalidArgument(input)
		}
		cmd.namespace = pieces[0]
		cmd.qualified = true
		cmd.name = pieces[1]
	}

	cmd.args = make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		cmd.args = append(cmd.args, stripQuotes(tok))
	}

	return cmd, nil
}

// stripQuotes removes every leading and trailing quote from a token whose
// first and last characters are both quotes. Tokens that are only quoted on
// one side are left untouched.
func stripQuotes(tok string) string {
	if strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return strings.TrimRight(strings.TrimLeft(tok, `"`), `"`)
	}
	return tok
}

// Namespace returns the namespace prefix, or "" when none was given.
func (c Command) Namespace() string { return c.namespace }

// Qualified reports whether the identifier carried a namespace prefix,
// including an empty one as in ".cmd".
func (c Command) Qualified() bool { return c.qualified }

// Name returns the lowercased command name.
func (c Command) Name() string { return c.name }

// Args returns a copy of the arguments.
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// String renders the command as "[namespace.]name" for logs.
func (c Command) String() string {
	if c.qualified {
		return c.namespace + "." + c.name
	}
	return c.name
}
