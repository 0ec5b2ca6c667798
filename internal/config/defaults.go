package config

import "github.com/footprint-tools/consoleapp/internal/domain"

// Defaults maps every known key to its in-code default (not persisted).
var Defaults = func() map[string]string {
	m := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		m[key.Name] = key.Default
	}
	return m
}()

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	if cfg, err := load(); err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	value, ok := Defaults[key]
	return value, ok
}

// GetAll returns all config values (user overrides merged with defaults).
// A broken or unreadable dotfile yields the defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		result[key] = value
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
