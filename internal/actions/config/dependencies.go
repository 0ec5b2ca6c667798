// Package config implements the handlers of the "config" namespace.
package config

import (
	"github.com/footprint-tools/consoleapp/internal/dispatchers"
	"github.com/footprint-tools/consoleapp/internal/domain"
)

// Namespace is the name the handlers are registered under.
const Namespace = "config"

type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(string, string) (bool, error)
	Unset  func(string) (bool, error)
	Clear  func() error
}

func DepsFrom(p domain.ConfigProvider) Deps {
	return Deps{
		Get:    p.Get,
		GetAll: p.GetAll,
		Set:    p.Set,
		Unset:  p.Unset,
		Clear:  p.Clear,
	}
}

// Commands returns the handlers of the config namespace bound to deps.
func Commands(deps Deps) []dispatchers.CommandSpec {
	return []dispatchers.CommandSpec{
		{
			Name:    "get",
			Summary: "Print the value of a configuration key",
			Usage:   "config.get <key>",
			Handler: func(args []string) (string, error) { return get(args, deps) },
		},
		{
			Name:    "set",
			Summary: "Store a configuration value",
			Usage:   "config.set <key> <value>",
			Handler: func(args []string) (string, error) { return set(args, deps) },
		},
		{
			Name:    "unset",
			Summary: "Remove a stored value, or all of them with --all",
			Usage:   "config.unset <key> | --all",
			Handler: func(args []string) (string, error) { return unset(args, deps) },
		},
		{
			Name:    "list",
			Summary: "List configuration values",
			Usage:   "config.list",
			Handler: func(args []string) (string, error) { return list(args, deps) },
		},
	}
}
