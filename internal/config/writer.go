package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/paths"
)

// WriteLines replaces the dotfile with lines. The new content is written to
// a temp file in the same directory and renamed over the dotfile, so a
// reader never sees a half-written config.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	var content strings.Builder
	for _, line := range lines {
		content.WriteString(line)
		content.WriteByte('\n')
	}

	if err := replaceFile(configPath, content.String()); err != nil {
		return fmt.Errorf("config: write %s: %w", configPath, err)
	}
	return nil
}

func replaceFile(path, content string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err = tmp.WriteString(content); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
