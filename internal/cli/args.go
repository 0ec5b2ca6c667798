package cli

import "strings"

// ExtractFlags returns the arguments that start with a dash.
func ExtractFlags(args []string) []string {
	var flags []string
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
		}
	}
	return flags
}

// ExtractCommands returns the arguments that do not start with a dash.
func ExtractCommands(args []string) []string {
	var cmds []string
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			cmds = append(cmds, a)
		}
	}
	return cmds
}

// JoinCommandLine rebuilds a shell input line from process arguments. Words
// containing a space were quoted by the invoking shell, so they are wrapped
// in double quotes again to stay a single argument.
func JoinCommandLine(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		if strings.Contains(w, " ") {
			w = `"` + w + `"`
		}
		parts[i] = w
	}
	return strings.Join(parts, " ")
}
