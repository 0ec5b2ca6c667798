package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/log"
	"github.com/footprint-tools/consoleapp/internal/paths"
)

// ReadLines returns the raw lines of the dotfile. A missing dotfile is
// created and seeded with the visible defaults.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	_, err = os.Stat(configPath)
	isNew := errors.Is(err, fs.ErrNotExist)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# Console configuration",
		"# Edit values below or use: config.set <key> <value>",
		"",
	}

	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		lines = append(lines, key.Name+"="+formatValue(key.Default))
	}

	return lines
}
