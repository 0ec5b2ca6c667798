package shell

import (
	"github.com/footprint-tools/consoleapp/internal/actions"
	"github.com/footprint-tools/consoleapp/internal/dispatchers"
)

const goodbye = "Goodbye!"

func (s *Shell) builtins() []dispatchers.CommandSpec {
	return []dispatchers.CommandSpec{
		{
			Name:    "quit",
			Summary: "Leave the shell",
			Usage:   "quit",
			Handler: s.quit,
		},
		{
			Name:    "exit",
			Summary: "Leave the shell",
			Usage:   "exit",
			Handler: s.quit,
		},
		{
			Name:    "help",
			Summary: "List commands, or describe one",
			Usage:   "help [<command>]",
			Handler: s.help,
		},
		{
			Name:    "version",
			Summary: "Show version",
			Usage:   "version",
			Handler: actions.ShowVersion,
		},
	}
}

func (s *Shell) quit(_ []string) (string, error) {
	s.Stop()
	return goodbye, nil
}

func (s *Shell) help(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return dispatchers.CommandHelp(s.registry, args[0]), nil
	}
	return dispatchers.HelpText(s.registry), nil
}
