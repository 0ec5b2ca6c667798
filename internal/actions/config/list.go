package config

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/domain"
)

func list(_ []string, deps Deps) (string, error) {
	configMap, err := deps.GetAll()
	if err != nil {
		return "", err
	}

	var out []string
	for _, key := range domain.VisibleConfigKeys() {
		value, exists := configMap[key.Name]
		if !exists {
			continue
		}
		if key.HideIfEmpty && value == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s=%s", key.Name, value))
	}

	return strings.Join(out, "\n"), nil
}
