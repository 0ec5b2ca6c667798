package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/consoleapp/internal/domain"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		configLines []string
		key         string
		wantValue   string
		wantFound   bool
	}{
		{
			name:        "key exists in config file",
			configLines: []string{"log_level=debug"},
			key:         "log_level",
			wantValue:   "debug",
			wantFound:   true,
		},
		{
			name:        "key exists in defaults but not in file",
			configLines: []string{"# empty"},
			key:         "namespaces",
			wantValue:   "default,config",
			wantFound:   true,
		},
		{
			name:        "unknown key",
			configLines: []string{"# empty"},
			key:         "nope",
			wantFound:   false,
		},
		{
			name:        "broken file falls back to default",
			configLines: []string{"not a pair"},
			key:         "echo_commands",
			wantValue:   "false",
			wantFound:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTempHome(t)
			require.NoError(t, WriteLines(tt.configLines))

			value, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, value)
		})
	}
}

func TestGetAll_MergesDefaults(t *testing.T) {
	tempHome := setupTempHome(t)
	content := "echo_commands=true\ncustom=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(tempHome, ".consolerc"), []byte(content), 0600))

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "true", all["echo_commands"])
	require.Equal(t, "1", all["custom"])
	require.Equal(t, "warn", all["log_level"])
}

func TestDefaults_CoverConfigKeys(t *testing.T) {
	for _, key := range domain.ConfigKeys {
		_, ok := Defaults[key.Name]
		require.True(t, ok, "missing default for %s", key.Name)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := LoadSettings(nil)
		require.Equal(t, "\n> ", s.ReadPrompt)
		require.False(t, s.EchoCommands)
		require.Equal(t, []string{"default", "config"}, s.Namespaces)
		require.True(t, s.LogEnabled)
		require.Equal(t, "warn", s.LogLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		s := LoadSettings(map[string]string{
			"read_prompt":   "$ ",
			"echo_commands": "TRUE",
			"namespaces":    " tools , ,default ",
			"enable_log":    "nope",
		})
		require.Equal(t, "$ ", s.ReadPrompt)
		require.True(t, s.EchoCommands)
		require.Equal(t, []string{"tools", "default"}, s.Namespaces)
		require.False(t, s.LogEnabled)
	})

	t.Run("invalid escape kept verbatim", func(t *testing.T) {
		s := LoadSettings(map[string]string{"read_prompt": `say "hi" \q`})
		require.Equal(t, `say "hi" \q`, s.ReadPrompt)
	})

	t.Run("empty namespaces", func(t *testing.T) {
		s := LoadSettings(map[string]string{"namespaces": ""})
		require.Empty(t, s.Namespaces)
	})
}
