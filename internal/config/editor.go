package config

import "strings"

// Set replaces the value of key in lines, or appends a new entry. Reports
// whether an existing entry was updated. An inline comment on the replaced
// entry is carried over.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + formatValue(value)

	for i, line := range lines {
		if k, ok := entryKey(line); !ok || k != key {
			continue
		}

		_, raw, _ := strings.Cut(line, "=")
		if _, comment := splitValue(strings.TrimSpace(raw)); comment != "" {
			entry += " " + comment
		}
		lines[i] = entry
		return lines, true
	}

	return append(lines, entry), false
}

// Unset drops every entry for key. Reports whether anything was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var kept []string
	removed := false

	for _, line := range lines {
		if k, ok := entryKey(line); ok && k == key {
			removed = true
			continue
		}
		kept = append(kept, line)
	}

	return kept, removed
}

// entryKey returns the key of a key=value line. Blank, comment and
// malformed lines have none.
func entryKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(key), true
}
