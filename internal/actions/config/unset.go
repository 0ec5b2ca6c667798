package config

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/usage"
)

func unset(args []string, deps Deps) (string, error) {
	if len(args) > 0 && args[0] == "--all" {
		if len(args) > 1 {
			return "", errors.New("--all does not take arguments")
		}

		if err := deps.Clear(); err != nil {
			return "", err
		}
		return "all config entries removed", nil
	}

	if len(args) < 1 || args[0] == "" {
		return "", usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return "", usage.InvalidConfigKey(key)
	}

	removed, err := deps.Unset(key)
	if err != nil {
		return "", err
	}
	if !removed {
		return fmt.Sprintf("%s is not set", key), nil
	}

	return fmt.Sprintf("unset %s", key), nil
}
