// Package cli handles the process command line of the console binary: the
// root flags, their parsed values and the words left over for single-shot
// mode.
package cli

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/ui/style"
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
}

var RootFlags = []FlagDescriptor{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show this help and exit",
	},
	{
		Names:       []string{"--version", "-v"},
		Description: "Show version and exit",
	},
	{
		Names:       []string{"--echo"},
		Description: "Print each received command and its arguments",
	},
	{
		Names:       []string{"--prompt"},
		ValueHint:   "=<text>",
		Description: "Prompt written before each line (escapes like \\n allowed)",
	},
	{
		Names:       []string{"--namespaces"},
		ValueHint:   "=<a,b>",
		Description: "Namespaces to load, in dispatch order",
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
	},
}

// Usage renders the help text for the console binary.
func Usage(program string) string {
	var out strings.Builder

	out.WriteString("USAGE\n")
	fmt.Fprintf(&out, "   %s %s\n\n", style.Info(program), style.Muted("[flags] [[namespace.]command [arguments]]"))
	out.WriteString("Without a command, reads commands from standard input until 'quit'.\n\n")

	out.WriteString("FLAGS\n")
	for _, f := range RootFlags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name += f.ValueHint
		}
		fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}

	return out.String()
}
