package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/ui/style"
)

const defaultSuggestionsCount = 3

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := usage[cmdEnd:]

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// HelpText lists every active namespace with its commands, in dispatch order.
func HelpText(reg *Registry) string {
	var out strings.Builder

	out.WriteString("COMMANDS\n")

	for _, ns := range reg.Namespaces() {
		cmds := reg.NamespaceCommands(ns)
		if len(cmds) == 0 {
			continue
		}

		out.WriteString("\n")
		out.WriteString(style.Header(ns))
		out.WriteString("\n")

		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", cmd.Name)), cmd.Summary)
		}
	}

	out.WriteString("\nSee 'help <command>' to read about a specific command.\n")
	out.WriteString("Prefix a command with its namespace to be explicit, e.g. 'config.get theme'.")

	return out.String()
}

// CommandHelp describes name in every active namespace that exposes it, or
// suggests similar names when none does.
func CommandHelp(reg *Registry, name string) string {
	name = strings.ToLower(name)

	if !reg.Has(name) {
		msg := fmt.Sprintf("No command %q.", name)
		suggestions := FindSimilarCommands(name, reg.Commands(), defaultSuggestionsCount)
		if len(suggestions) > 0 {
			msg += " Did you mean: " + strings.Join(suggestions, ", ") + "?"
		}
		return msg
	}

	var sections []string
	for _, ns := range reg.Namespaces() {
		cmd, ok := reg.Lookup(ns, name)
		if !ok {
			continue
		}

		var out strings.Builder
		out.WriteString(ns + "." + cmd.Name)
		if cmd.Summary != "" {
			out.WriteString(" - ")
			out.WriteString(cmd.Summary)
		}

		usage := cmd.Usage
		if usage == "" {
			usage = cmd.Name
		}
		out.WriteString("\n\nUSAGE\n   ")
		out.WriteString(formatUsage(usage))

		sections = append(sections, out.String())
	}

	return strings.Join(sections, "\n\n")
}
