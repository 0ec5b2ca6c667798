package config

import (
	"fmt"
	"strings"
)

// Parse turns dotfile lines into a key/value map. Blank lines and lines
// starting with # are ignored; later duplicates win. Values wrapped in
// double quotes are unwrapped; unquoted values lose any " #" comment.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = parseValue(strings.TrimSpace(parts[1]))
	}

	return cfg, nil
}

func parseValue(v string) string {
	value, _ := splitValue(v)
	return value
}

// splitValue separates a trimmed raw value from its inline comment. A quoted
// value runs to the last quote on the line, so it may contain " #".
func splitValue(v string) (value, comment string) {
	if strings.HasPrefix(v, "\"") {
		end := strings.LastIndex(v, "\"")
		if end == 0 {
			return v, ""
		}
		rest := strings.TrimSpace(v[end+1:])
		if strings.HasPrefix(rest, "#") {
			comment = rest
		}
		return v[1:end], comment
	}
	if i := strings.Index(v, " #"); i >= 0 {
		return strings.TrimSpace(v[:i]), strings.TrimSpace(v[i:])
	}
	return v, ""
}

// formatValue quotes values that contain spaces so that surrounding
// whitespace survives a Parse round trip.
func formatValue(v string) string {
	if strings.Contains(v, " ") {
		return "\"" + v + "\""
	}
	return v
}
