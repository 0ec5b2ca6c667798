package config

import (
	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/usage"
)

func get(args []string, deps Deps) (string, error) {
	if len(args) < 1 || args[0] == "" {
		return "", usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return "", usage.InvalidConfigKey(key)
	}

	value, found := deps.Get(key)
	if !found {
		return "", usage.InvalidConfigKey(key)
	}

	return value, nil
}
