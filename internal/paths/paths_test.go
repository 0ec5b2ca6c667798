package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ContainsAppName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.True(t, strings.HasSuffix(dir, appDirName), "AppDataDir should end with %q: %s", appDirName, dir)
	require.DirExists(t, dir)
}

func TestConfigFilePath_InHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".consolerc"), path)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := LogFilePath()
	require.Equal(t, "console.log", filepath.Base(path))
	require.Equal(t, AppDataDir(), filepath.Dir(path))
}
