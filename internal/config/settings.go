package config

import (
	"strconv"
	"strings"
)

// Settings is the typed view of the shell-related keys.
type Settings struct {
	ReadPrompt   string
	EchoCommands bool
	Namespaces   []string
	LogEnabled   bool
	LogLevel     string
}

// LoadSettings reads the shell settings from cfg, as returned by GetAll.
// Missing keys take their defaults.
func LoadSettings(cfg map[string]string) Settings {
	get := func(key string) string {
		if v, ok := cfg[key]; ok {
			return v
		}
		return Defaults[key]
	}

	return Settings{
		ReadPrompt:   Unescape(get("read_prompt")),
		EchoCommands: parseBool(get("echo_commands")),
		Namespaces:   splitList(get("namespaces")),
		LogEnabled:   parseBool(get("enable_log")),
		LogLevel:     get("log_level"),
	}
}

// Unescape interprets Go escape sequences such as \n. Values that are not
// valid escape sequences are returned as written.
func Unescape(s string) string {
	if u, err := strconv.Unquote("\"" + s + "\""); err == nil {
		return u
	}
	return s
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
