package config

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/ui/style"
	"github.com/footprint-tools/consoleapp/internal/usage"
)

func set(args []string, deps Deps) (string, error) {
	if len(args) < 2 {
		return "", usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if !domain.IsValidConfigKey(key) {
		return "", usage.InvalidConfigKey(key)
	}
	if key == "theme" && !isTheme(value) {
		return "", fmt.Errorf("unknown theme %q. Available: %s", value, strings.Join(style.BaseThemeNames, ", "))
	}

	updated, err := deps.Set(key, value)
	if err != nil {
		return "", err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	return fmt.Sprintf("%s %s=%s", action, key, value), nil
}

// isTheme accepts a base theme name, optionally pinned with -dark or -light.
func isTheme(name string) bool {
	base := strings.TrimSuffix(strings.TrimSuffix(name, "-dark"), "-light")
	for _, t := range style.BaseThemeNames {
		if t == base {
			return true
		}
	}
	return false
}
